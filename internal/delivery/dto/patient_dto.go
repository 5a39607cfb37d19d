package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	Name                     string `json:"name" validate:"required,min=2"`
	EGN                      string `json:"egn" validate:"required,len=10,numeric"`
	HealthInsurancePaid      bool   `json:"health_insurance_paid"`
	LastInsurancePaymentDate string `json:"last_insurance_payment_date" validate:"omitempty,datetime=2006-01-02"`
	FamilyDoctorID           uint   `json:"family_doctor_id" validate:"required"`
}

type UpdatePatientRequest struct {
	Name                     string `json:"name" validate:"omitempty,min=2"`
	EGN                      string `json:"egn" validate:"omitempty,len=10,numeric"`
	HealthInsurancePaid      *bool  `json:"health_insurance_paid" validate:"omitempty"`
	LastInsurancePaymentDate string `json:"last_insurance_payment_date" validate:"omitempty,datetime=2006-01-02"`
	FamilyDoctorID           *uint  `json:"family_doctor_id" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID                       uint       `json:"id"`
	Name                     string     `json:"name"`
	EGN                      string     `json:"egn"`
	HealthInsurancePaid      bool       `json:"health_insurance_paid"`
	LastInsurancePaymentDate *time.Time `json:"last_insurance_payment_date,omitempty"`
	InsuranceValid           bool       `json:"insurance_valid"`
	FamilyDoctorID           uint       `json:"family_doctor_id"`
	FamilyDoctorName         string     `json:"family_doctor_name,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
