package entity

import "time"

// Diagnosis is a reference catalog entry referenced by zero or more visits
type Diagnosis struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Visits []MedicalVisit `gorm:"foreignKey:DiagnosisID" json:"visits,omitempty"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}
