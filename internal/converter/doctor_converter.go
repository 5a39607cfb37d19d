package converter

import (
	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                   doctor.ID,
		IdentificationNumber: doctor.IdentificationNumber,
		Name:                 doctor.Name,
		Specialty:            doctor.Specialty,
		IsFamilyDoctor:       doctor.IsFamilyDoctor,
		CreatedAt:            doctor.CreatedAt,
		UpdatedAt:            doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
