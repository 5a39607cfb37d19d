package entity

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrNonPositiveDuration is returned when a sick leave is saved with a
// duration of zero or fewer days.
var ErrNonPositiveDuration = errors.New("sick leave duration must be positive")

// SickLeave is a certified absence period tied one-to-one to a medical visit.
// EndDate is derived from StartDate and DurationDays and is recomputed on
// every save so it can never drift from its inputs.
type SickLeave struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StartDate      time.Time `gorm:"type:date;not null" json:"start_date"`
	DurationDays   int       `gorm:"not null" json:"duration_days"`
	EndDate        time.Time `gorm:"type:date" json:"end_date"`
	Reason         string    `gorm:"type:text" json:"reason,omitempty"`
	MedicalVisitID uint      `gorm:"uniqueIndex;not null" json:"medical_visit_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	MedicalVisit MedicalVisit `gorm:"foreignKey:MedicalVisitID;constraint:OnDelete:CASCADE" json:"medical_visit,omitempty"`
}

func (SickLeave) TableName() string {
	return "sick_leaves"
}

// ComputeEndDate returns the last covered day: startDate + durationDays - 1.
func ComputeEndDate(startDate time.Time, durationDays int) time.Time {
	return startDate.AddDate(0, 0, durationDays-1)
}

// BeforeSave validates the duration and recomputes EndDate. Running inside
// the save keeps the derived field atomic with the update that changes its
// inputs.
func (s *SickLeave) BeforeSave(tx *gorm.DB) error {
	if s.DurationDays <= 0 {
		return ErrNonPositiveDuration
	}
	s.EndDate = ComputeEndDate(s.StartDate, s.DurationDays)
	return nil
}
