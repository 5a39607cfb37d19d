package converter

import (
	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/domain/entity"
)

// SickLeaveToResponse converts a SickLeave entity to its DTO
func SickLeaveToResponse(sickLeave *entity.SickLeave) *dto.SickLeaveResponse {
	if sickLeave == nil {
		return nil
	}

	return &dto.SickLeaveResponse{
		ID:             sickLeave.ID,
		StartDate:      sickLeave.StartDate,
		DurationDays:   sickLeave.DurationDays,
		EndDate:        sickLeave.EndDate,
		Reason:         sickLeave.Reason,
		MedicalVisitID: sickLeave.MedicalVisitID,
		PatientName:    sickLeave.MedicalVisit.Patient.Name,
		DoctorName:     sickLeave.MedicalVisit.Doctor.Name,
		CreatedAt:      sickLeave.CreatedAt,
		UpdatedAt:      sickLeave.UpdatedAt,
	}
}

// SickLeavesToResponses converts a slice of SickLeave entities to DTOs
func SickLeavesToResponses(sickLeaves []entity.SickLeave) []dto.SickLeaveResponse {
	responses := make([]dto.SickLeaveResponse, len(sickLeaves))
	for i := range sickLeaves {
		responses[i] = *SickLeaveToResponse(&sickLeaves[i])
	}
	return responses
}
