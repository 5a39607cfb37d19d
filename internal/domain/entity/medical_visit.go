package entity

import (
	"time"
)

// MedicalVisit is the fact record every report aggregates over. It links one
// patient and one doctor, optionally a diagnosis, and at most one sick leave.
type MedicalVisit struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitDate            time.Time `gorm:"type:date;not null;index" json:"visit_date"`
	VisitTime            string    `gorm:"type:time" json:"visit_time,omitempty"`
	Symptoms             string    `gorm:"type:text" json:"symptoms,omitempty"`
	Treatment            string    `gorm:"type:text" json:"treatment,omitempty"`
	PrescribedMedication string    `gorm:"type:text" json:"prescribed_medication,omitempty"`
	Notes                string    `gorm:"type:text" json:"notes,omitempty"`
	PatientID            uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID             uint      `gorm:"not null;index" json:"doctor_id"`
	DiagnosisID          *uint     `gorm:"index" json:"diagnosis_id,omitempty"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient    `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor    Doctor     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Diagnosis *Diagnosis `gorm:"foreignKey:DiagnosisID;constraint:OnDelete:SET NULL" json:"diagnosis,omitempty"`
	SickLeave *SickLeave `gorm:"foreignKey:MedicalVisitID" json:"sick_leave,omitempty"`
}

func (MedicalVisit) TableName() string {
	return "medical_visits"
}
