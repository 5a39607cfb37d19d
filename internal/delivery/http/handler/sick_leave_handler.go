package handler

import (
	"encoding/json"
	"net/http"

	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/usecase"
	"medical-history-service/pkg/response"
	"medical-history-service/pkg/validator"
)

type SickLeaveHandler struct {
	sickLeaveUsecase usecase.SickLeaveUsecase
	validator        *validator.CustomValidator
}

func NewSickLeaveHandler(sickLeaveUsecase usecase.SickLeaveUsecase, validator *validator.CustomValidator) *SickLeaveHandler {
	return &SickLeaveHandler{
		sickLeaveUsecase: sickLeaveUsecase,
		validator:        validator,
	}
}

func (h *SickLeaveHandler) GetAllSickLeaves(w http.ResponseWriter, r *http.Request) {
	sickLeaves, err := h.sickLeaveUsecase.GetAllSickLeaves(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get sick leaves")
		return
	}

	response.Success(w, http.StatusOK, "Sick leaves retrieved successfully", sickLeaves)
}

func (h *SickLeaveHandler) GetSickLeave(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid sick leave ID", nil)
		return
	}

	sickLeave, err := h.sickLeaveUsecase.GetSickLeave(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSickLeaveNotFound:
			response.NotFound(w, "Sick leave not found")
		default:
			response.InternalServerError(w, "Failed to get sick leave")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sick leave retrieved successfully", sickLeave)
}

func (h *SickLeaveHandler) GetSickLeaveByVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := parseIDParam(r, "visitId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	sickLeave, err := h.sickLeaveUsecase.GetSickLeaveByVisit(r.Context(), visitID)
	if err != nil {
		switch err {
		case usecase.ErrSickLeaveNotFound:
			response.NotFound(w, "Sick leave not found")
		default:
			response.InternalServerError(w, "Failed to get sick leave")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sick leave retrieved successfully", sickLeave)
}

func (h *SickLeaveHandler) GetSickLeavesByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIDParam(r, "patientId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	sickLeaves, err := h.sickLeaveUsecase.GetSickLeavesByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get sick leaves")
		return
	}

	response.Success(w, http.StatusOK, "Sick leaves retrieved successfully", sickLeaves)
}

func (h *SickLeaveHandler) GetSickLeavesByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseIDParam(r, "doctorId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	sickLeaves, err := h.sickLeaveUsecase.GetSickLeavesByDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get sick leaves")
		return
	}

	response.Success(w, http.StatusOK, "Sick leaves retrieved successfully", sickLeaves)
}

func (h *SickLeaveHandler) GetSickLeavesByDateRange(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	sickLeaves, err := h.sickLeaveUsecase.GetSickLeavesByStartDateRange(r.Context(), start, end)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to get sick leaves")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sick leaves retrieved successfully", sickLeaves)
}

func (h *SickLeaveHandler) CreateSickLeave(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSickLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	sickLeave, err := h.sickLeaveUsecase.CreateSickLeave(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrSickLeaveExists:
			response.Error(w, http.StatusConflict, "Visit already has a sick leave", nil)
		case usecase.ErrInvalidDuration, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create sick leave")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Sick leave created successfully", sickLeave)
}

func (h *SickLeaveHandler) UpdateSickLeave(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid sick leave ID", nil)
		return
	}

	var req dto.UpdateSickLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	sickLeave, err := h.sickLeaveUsecase.UpdateSickLeave(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSickLeaveNotFound:
			response.NotFound(w, "Sick leave not found")
		case usecase.ErrInvalidDuration, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update sick leave")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sick leave updated successfully", sickLeave)
}

func (h *SickLeaveHandler) DeleteSickLeave(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid sick leave ID", nil)
		return
	}

	if err := h.sickLeaveUsecase.DeleteSickLeave(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrSickLeaveNotFound:
			response.NotFound(w, "Sick leave not found")
		default:
			response.InternalServerError(w, "Failed to delete sick leave")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sick leave deleted successfully", nil)
}
