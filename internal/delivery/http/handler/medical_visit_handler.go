package handler

import (
	"encoding/json"
	"net/http"

	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/usecase"
	"medical-history-service/pkg/response"
	"medical-history-service/pkg/validator"
)

type MedicalVisitHandler struct {
	visitUsecase usecase.MedicalVisitUsecase
	validator    *validator.CustomValidator
}

func NewMedicalVisitHandler(visitUsecase usecase.MedicalVisitUsecase, validator *validator.CustomValidator) *MedicalVisitHandler {
	return &MedicalVisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

func (h *MedicalVisitHandler) GetAllVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.visitUsecase.GetAllVisits(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *MedicalVisitHandler) GetVisit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	visit, err := h.visitUsecase.GetVisit(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		default:
			response.InternalServerError(w, "Failed to get visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit retrieved successfully", visit)
}

func (h *MedicalVisitHandler) GetVisitsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIDParam(r, "patientId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	visits, err := h.visitUsecase.GetVisitsByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *MedicalVisitHandler) GetVisitsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseIDParam(r, "doctorId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	visits, err := h.visitUsecase.GetVisitsByDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *MedicalVisitHandler) GetVisitsByDiagnosis(w http.ResponseWriter, r *http.Request) {
	diagnosisID, err := parseIDParam(r, "diagnosisId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	visits, err := h.visitUsecase.GetVisitsByDiagnosis(r.Context(), diagnosisID)
	if err != nil {
		response.InternalServerError(w, "Failed to get visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *MedicalVisitHandler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.CreateVisit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitPatientInvalid:
			response.NotFound(w, "Patient not found")
		case usecase.ErrVisitDoctorInvalid:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDiagnosisNotFound:
			response.NotFound(w, "Diagnosis not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create visit")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Visit created successfully", visit)
}

func (h *MedicalVisitHandler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.UpdateMedicalVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.UpdateVisit(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrVisitPatientInvalid:
			response.NotFound(w, "Patient not found")
		case usecase.ErrVisitDoctorInvalid:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDiagnosisNotFound:
			response.NotFound(w, "Diagnosis not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit updated successfully", visit)
}

func (h *MedicalVisitHandler) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	if err := h.visitUsecase.DeleteVisit(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		default:
			response.InternalServerError(w, "Failed to delete visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit deleted successfully", nil)
}
