package converter

import (
	"time"

	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO.
// InsuranceValid is derived at conversion time, never read from storage.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                       patient.ID,
		Name:                     patient.Name,
		EGN:                      patient.EGN,
		HealthInsurancePaid:      patient.HealthInsurancePaid,
		LastInsurancePaymentDate: patient.LastInsurancePaymentDate,
		InsuranceValid:           patient.IsInsuranceValid(time.Now()),
		FamilyDoctorID:           patient.FamilyDoctorID,
		FamilyDoctorName:         patient.FamilyDoctor.Name,
		CreatedAt:                patient.CreatedAt,
		UpdatedAt:                patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
