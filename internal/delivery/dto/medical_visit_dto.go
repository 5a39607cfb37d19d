package dto

import "time"

// Request DTOs

type CreateMedicalVisitRequest struct {
	VisitDate            string `json:"visit_date" validate:"required,datetime=2006-01-02"`
	VisitTime            string `json:"visit_time" validate:"omitempty,datetime=15:04:05"`
	Symptoms             string `json:"symptoms" validate:"omitempty"`
	Treatment            string `json:"treatment" validate:"omitempty"`
	PrescribedMedication string `json:"prescribed_medication" validate:"omitempty"`
	Notes                string `json:"notes" validate:"omitempty"`
	PatientID            uint   `json:"patient_id" validate:"required"`
	DoctorID             uint   `json:"doctor_id" validate:"required"`
	DiagnosisID          *uint  `json:"diagnosis_id" validate:"omitempty"`
}

type UpdateMedicalVisitRequest struct {
	VisitDate            string `json:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	VisitTime            string `json:"visit_time" validate:"omitempty,datetime=15:04:05"`
	Symptoms             string `json:"symptoms" validate:"omitempty"`
	Treatment            string `json:"treatment" validate:"omitempty"`
	PrescribedMedication string `json:"prescribed_medication" validate:"omitempty"`
	Notes                string `json:"notes" validate:"omitempty"`
	PatientID            *uint  `json:"patient_id" validate:"omitempty"`
	DoctorID             *uint  `json:"doctor_id" validate:"omitempty"`
	DiagnosisID          *uint  `json:"diagnosis_id" validate:"omitempty"`
}

// Response DTOs

type MedicalVisitResponse struct {
	ID                   uint      `json:"id"`
	VisitDate            time.Time `json:"visit_date"`
	VisitTime            string    `json:"visit_time,omitempty"`
	Symptoms             string    `json:"symptoms,omitempty"`
	Treatment            string    `json:"treatment,omitempty"`
	PrescribedMedication string    `json:"prescribed_medication,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	PatientID            uint      `json:"patient_id"`
	PatientName          string    `json:"patient_name,omitempty"`
	DoctorID             uint      `json:"doctor_id"`
	DoctorName           string    `json:"doctor_name,omitempty"`
	DiagnosisID          *uint     `json:"diagnosis_id,omitempty"`
	DiagnosisName        string    `json:"diagnosis_name,omitempty"`
	SickLeaveID          *uint     `json:"sick_leave_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type MedicalVisitListResponse struct {
	Visits []MedicalVisitResponse `json:"visits"`
	Total  int                    `json:"total"`
}
