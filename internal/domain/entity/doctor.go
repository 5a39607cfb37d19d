package entity

import "time"

// Doctor represents a practicing doctor. A doctor can be flagged as a family
// doctor (eligible for patient assignment) and still conduct regular visits.
type Doctor struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	IdentificationNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"identification_number"`
	Name                 string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialty            string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	IsFamilyDoctor       bool      `gorm:"not null;default:false;index" json:"is_family_doctor"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patients []Patient      `gorm:"foreignKey:FamilyDoctorID" json:"patients,omitempty"`
	Visits   []MedicalVisit `gorm:"foreignKey:DoctorID" json:"visits,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
