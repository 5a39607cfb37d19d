package dto

import "time"

// Request DTOs

type CreateSickLeaveRequest struct {
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	DurationDays   int    `json:"duration_days" validate:"required,gt=0"`
	Reason         string `json:"reason" validate:"omitempty"`
	MedicalVisitID uint   `json:"medical_visit_id" validate:"required"`
}

type UpdateSickLeaveRequest struct {
	StartDate    string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	DurationDays *int   `json:"duration_days" validate:"omitempty,gt=0"`
	Reason       string `json:"reason" validate:"omitempty"`
}

// Response DTOs

type SickLeaveResponse struct {
	ID             uint      `json:"id"`
	StartDate      time.Time `json:"start_date"`
	DurationDays   int       `json:"duration_days"`
	EndDate        time.Time `json:"end_date"`
	Reason         string    `json:"reason,omitempty"`
	MedicalVisitID uint      `json:"medical_visit_id"`
	PatientName    string    `json:"patient_name,omitempty"`
	DoctorName     string    `json:"doctor_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SickLeaveListResponse struct {
	SickLeaves []SickLeaveResponse `json:"sick_leaves"`
	Total      int                 `json:"total"`
}
