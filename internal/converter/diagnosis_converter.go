package converter

import (
	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/domain/entity"
)

// DiagnosisToResponse converts a Diagnosis entity to DiagnosisResponse DTO
func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}

	return &dto.DiagnosisResponse{
		ID:          diagnosis.ID,
		Code:        diagnosis.Code,
		Name:        diagnosis.Name,
		Description: diagnosis.Description,
		CreatedAt:   diagnosis.CreatedAt,
		UpdatedAt:   diagnosis.UpdatedAt,
	}
}

// DiagnosesToResponses converts a slice of Diagnosis entities to DTOs
func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i := range diagnoses {
		responses[i] = *DiagnosisToResponse(&diagnoses[i])
	}
	return responses
}
