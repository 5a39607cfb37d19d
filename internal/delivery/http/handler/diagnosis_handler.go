package handler

import (
	"encoding/json"
	"net/http"

	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/usecase"
	"medical-history-service/pkg/response"
	"medical-history-service/pkg/validator"

	"github.com/gorilla/mux"
)

type DiagnosisHandler struct {
	diagnosisUsecase usecase.DiagnosisUsecase
	validator        *validator.CustomValidator
}

func NewDiagnosisHandler(diagnosisUsecase usecase.DiagnosisUsecase, validator *validator.CustomValidator) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisUsecase: diagnosisUsecase,
		validator:        validator,
	}
}

func (h *DiagnosisHandler) GetAllDiagnoses(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		diagnoses, err := h.diagnosisUsecase.SearchDiagnosesByName(r.Context(), name)
		if err != nil {
			response.InternalServerError(w, "Failed to search diagnoses")
			return
		}
		response.Success(w, http.StatusOK, "Diagnoses retrieved successfully", diagnoses)
		return
	}

	diagnoses, err := h.diagnosisUsecase.GetAllDiagnoses(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get diagnoses")
		return
	}

	response.Success(w, http.StatusOK, "Diagnoses retrieved successfully", diagnoses)
}

func (h *DiagnosisHandler) GetDiagnosis(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	diagnosis, err := h.diagnosisUsecase.GetDiagnosis(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDiagnosisNotFound:
			response.NotFound(w, "Diagnosis not found")
		default:
			response.InternalServerError(w, "Failed to get diagnosis")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis retrieved successfully", diagnosis)
}

func (h *DiagnosisHandler) GetDiagnosisByCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	diagnosis, err := h.diagnosisUsecase.GetDiagnosisByCode(r.Context(), code)
	if err != nil {
		switch err {
		case usecase.ErrDiagnosisNotFound:
			response.NotFound(w, "Diagnosis not found")
		default:
			response.InternalServerError(w, "Failed to get diagnosis")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis retrieved successfully", diagnosis)
}

func (h *DiagnosisHandler) CreateDiagnosis(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnosis, err := h.diagnosisUsecase.CreateDiagnosis(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDiagnosisCodeExists:
			response.Error(w, http.StatusConflict, "Diagnosis code already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create diagnosis")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Diagnosis created successfully", diagnosis)
}

func (h *DiagnosisHandler) UpdateDiagnosis(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	var req dto.UpdateDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnosis, err := h.diagnosisUsecase.UpdateDiagnosis(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDiagnosisNotFound:
			response.NotFound(w, "Diagnosis not found")
		case usecase.ErrDiagnosisCodeExists:
			response.Error(w, http.StatusConflict, "Diagnosis code already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update diagnosis")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis updated successfully", diagnosis)
}

func (h *DiagnosisHandler) DeleteDiagnosis(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	if err := h.diagnosisUsecase.DeleteDiagnosis(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDiagnosisNotFound:
			response.NotFound(w, "Diagnosis not found")
		default:
			response.InternalServerError(w, "Failed to delete diagnosis")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis deleted successfully", nil)
}
