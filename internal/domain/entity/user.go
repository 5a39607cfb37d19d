package entity

import (
	"time"
)

// User represents an authentication account. Doctor and patient accounts
// carry a link to their domain record.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	PatientID *uint     `gorm:"index" json:"patient_id,omitempty"`
	DoctorID  *uint     `gorm:"index" json:"doctor_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role    Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (User) TableName() string {
	return "users"
}
