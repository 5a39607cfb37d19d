package dto

import "time"

// Request DTOs

type CreateDiagnosisRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

type UpdateDiagnosisRequest struct {
	Code        string `json:"code" validate:"omitempty"`
	Name        string `json:"name" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty"`
}

// Response DTOs

type DiagnosisResponse struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DiagnosisListResponse struct {
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
	Total     int                 `json:"total"`
}
