package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/usecase"
	"medical-history-service/pkg/response"
	"medical-history-service/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetPatientByEGN(w http.ResponseWriter, r *http.Request) {
	egn := mux.Vars(r)["egn"]

	patient, err := h.patientUsecase.GetPatientByEGN(r.Context(), egn)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEGNExists:
			response.Error(w, http.StatusConflict, "EGN already exists", nil)
		case usecase.ErrFamilyDoctorNotFound:
			response.NotFound(w, "Family doctor not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrEGNExists:
			response.Error(w, http.StatusConflict, "EGN already exists", nil)
		case usecase.ErrFamilyDoctorNotFound:
			response.NotFound(w, "Family doctor not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to delete patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

// parseIDParam reads a numeric path variable shared by every resource
// handler.
func parseIDParam(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	return uint(id), err
}
