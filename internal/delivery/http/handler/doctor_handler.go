package handler

import (
	"encoding/json"
	"net/http"

	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/usecase"
	"medical-history-service/pkg/response"
	"medical-history-service/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	// ?family=true narrows to family doctors, ?specialty= filters by specialty
	if r.URL.Query().Get("family") == "true" {
		doctors, err := h.doctorUsecase.GetFamilyDoctors(r.Context())
		if err != nil {
			response.InternalServerError(w, "Failed to get doctors")
			return
		}
		response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
		return
	}

	if specialty := r.URL.Query().Get("specialty"); specialty != "" {
		doctors, err := h.doctorUsecase.GetDoctorsBySpecialty(r.Context(), specialty)
		if err != nil {
			response.InternalServerError(w, "Failed to get doctors")
			return
		}
		response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
		return
	}

	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorIDNumberExists:
			response.Error(w, http.StatusConflict, "Identification number already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDoctorIDNumberExists:
			response.Error(w, http.StatusConflict, "Identification number already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDoctorReferenced:
			response.Error(w, http.StatusConflict, "Doctor is referenced by patients or visits", nil)
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}
