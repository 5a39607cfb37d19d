package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	IdentificationNumber string `json:"identification_number" validate:"required"`
	Name                 string `json:"name" validate:"required,min=2"`
	Specialty            string `json:"specialty" validate:"required"`
	IsFamilyDoctor       bool   `json:"is_family_doctor"`
}

type UpdateDoctorRequest struct {
	IdentificationNumber string `json:"identification_number" validate:"omitempty"`
	Name                 string `json:"name" validate:"omitempty,min=2"`
	Specialty            string `json:"specialty" validate:"omitempty"`
	IsFamilyDoctor       *bool  `json:"is_family_doctor" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID                   uint      `json:"id"`
	IdentificationNumber string    `json:"identification_number"`
	Name                 string    `json:"name"`
	Specialty            string    `json:"specialty"`
	IsFamilyDoctor       bool      `json:"is_family_doctor"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
