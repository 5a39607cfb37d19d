package handler

import (
	"net/http"
	"strconv"

	"medical-history-service/internal/usecase"
	"medical-history-service/pkg/response"
)

// ReportHandler serves the statistics catalog. Grouped reports come back
// ranked; filter params that match nothing yield empty results with 200.
type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

func (h *ReportHandler) GetPatientsByDiagnosis(w http.ResponseWriter, r *http.Request) {
	diagnosisID, err := parseIDParam(r, "diagnosisId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return
	}

	report, err := h.reportUsecase.GetPatientsByDiagnosis(r.Context(), diagnosisID)
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetMostCommonDiagnoses(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	report, err := h.reportUsecase.GetMostCommonDiagnoses(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetPatientsByFamilyDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseIDParam(r, "doctorId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	report, err := h.reportUsecase.GetPatientsByFamilyDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetFamilyDoctorPatientCounts(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetFamilyDoctorPatientCounts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetDoctorVisitCounts(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetDoctorVisitCounts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetDoctorsByPatientCount(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetDoctorsByPatientCount(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetVisitsByDateRange(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	report, err := h.reportUsecase.GetVisitsByDateRange(r.Context(), start, end)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to build report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetVisitsByDoctorAndDateRange(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseIDParam(r, "doctorId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	report, err := h.reportUsecase.GetVisitsByDoctorAndDateRange(r.Context(), doctorID, start, end)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to build report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetMonthWithMostSickLeaves(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetMonthWithMostSickLeaves(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetDoctorsWithMostSickLeaves(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	report, err := h.reportUsecase.GetDoctorsWithMostSickLeaves(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetSickLeavesByMonth(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetSickLeavesByMonth(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetPatientsWithMostVisits(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetPatientsWithMostVisits(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetInsuranceStats(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetInsuranceStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetDetailedSickLeavesByMonth(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetDetailedSickLeavesByMonth(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetDetailedDoctorSickLeaveStats(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetDetailedDoctorSickLeaveStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportUsecase.GetDashboardStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
