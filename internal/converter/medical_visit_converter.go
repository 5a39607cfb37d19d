package converter

import (
	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/domain/entity"
)

// MedicalVisitToResponse converts a MedicalVisit entity to its DTO. Related
// names are filled only when the associations were preloaded.
func MedicalVisitToResponse(visit *entity.MedicalVisit) *dto.MedicalVisitResponse {
	if visit == nil {
		return nil
	}

	resp := &dto.MedicalVisitResponse{
		ID:                   visit.ID,
		VisitDate:            visit.VisitDate,
		VisitTime:            visit.VisitTime,
		Symptoms:             visit.Symptoms,
		Treatment:            visit.Treatment,
		PrescribedMedication: visit.PrescribedMedication,
		Notes:                visit.Notes,
		PatientID:            visit.PatientID,
		PatientName:          visit.Patient.Name,
		DoctorID:             visit.DoctorID,
		DoctorName:           visit.Doctor.Name,
		DiagnosisID:          visit.DiagnosisID,
		CreatedAt:            visit.CreatedAt,
		UpdatedAt:            visit.UpdatedAt,
	}

	if visit.Diagnosis != nil {
		resp.DiagnosisName = visit.Diagnosis.Name
	}
	if visit.SickLeave != nil {
		id := visit.SickLeave.ID
		resp.SickLeaveID = &id
	}

	return resp
}

// MedicalVisitsToResponses converts a slice of MedicalVisit entities to DTOs
func MedicalVisitsToResponses(visits []entity.MedicalVisit) []dto.MedicalVisitResponse {
	responses := make([]dto.MedicalVisitResponse, len(visits))
	for i := range visits {
		responses[i] = *MedicalVisitToResponse(&visits[i])
	}
	return responses
}
