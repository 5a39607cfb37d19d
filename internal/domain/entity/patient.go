package entity

import (
	"time"
)

// Patient represents a registered patient with a mandatory family doctor
type Patient struct {
	ID                       uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                     string     `gorm:"type:varchar(255);not null" json:"name"`
	EGN                      string     `gorm:"type:char(10);uniqueIndex;not null" json:"egn"`
	HealthInsurancePaid      bool       `gorm:"not null;default:false" json:"health_insurance_paid"`
	LastInsurancePaymentDate *time.Time `gorm:"type:date" json:"last_insurance_payment_date,omitempty"`
	FamilyDoctorID           uint       `gorm:"not null;index" json:"family_doctor_id"`
	CreatedAt                time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	FamilyDoctor Doctor         `gorm:"foreignKey:FamilyDoctorID" json:"family_doctor,omitempty"`
	Visits       []MedicalVisit `gorm:"foreignKey:PatientID" json:"visits,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// IsInsuranceValid reports whether the last insurance payment falls within
// the six months preceding asOf. Never stored; always derived from
// LastInsurancePaymentDate so it cannot go stale.
func (p *Patient) IsInsuranceValid(asOf time.Time) bool {
	if p.LastInsurancePaymentDate == nil {
		return false
	}
	return p.LastInsurancePaymentDate.After(asOf.AddDate(0, -6, 0))
}
