package http

import (
	"net/http"

	"medical-history-service/internal/delivery/http/handler"
	"medical-history-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	doctorHandler    *handler.DoctorHandler
	diagnosisHandler *handler.DiagnosisHandler
	visitHandler     *handler.MedicalVisitHandler
	sickLeaveHandler *handler.SickLeaveHandler
	reportHandler    *handler.ReportHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	visitHandler *handler.MedicalVisitHandler,
	sickLeaveHandler *handler.SickLeaveHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		doctorHandler:    doctorHandler,
		diagnosisHandler: diagnosisHandler,
		visitHandler:     visitHandler,
		sickLeaveHandler: sickLeaveHandler,
		reportHandler:    reportHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Clinical records (protected - any authenticated role may read,
	// doctors and admins may write)
	records := api.PathPrefix("").Subrouter()
	records.Use(r.authMiddleware.Authenticate)

	records.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	records.HandleFunc("/patients/egn/{egn}", r.patientHandler.GetPatientByEGN).Methods(http.MethodGet)
	records.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	records.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	records.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	records.HandleFunc("/diagnoses", r.diagnosisHandler.GetAllDiagnoses).Methods(http.MethodGet)
	records.HandleFunc("/diagnoses/code/{code}", r.diagnosisHandler.GetDiagnosisByCode).Methods(http.MethodGet)
	records.HandleFunc("/diagnoses/{id}", r.diagnosisHandler.GetDiagnosis).Methods(http.MethodGet)
	records.HandleFunc("/visits", r.visitHandler.GetAllVisits).Methods(http.MethodGet)
	records.HandleFunc("/visits/{id}", r.visitHandler.GetVisit).Methods(http.MethodGet)
	records.HandleFunc("/patients/{patientId}/visits", r.visitHandler.GetVisitsByPatient).Methods(http.MethodGet)
	records.HandleFunc("/doctors/{doctorId}/visits", r.visitHandler.GetVisitsByDoctor).Methods(http.MethodGet)
	records.HandleFunc("/diagnoses/{diagnosisId}/visits", r.visitHandler.GetVisitsByDiagnosis).Methods(http.MethodGet)
	records.HandleFunc("/sick-leaves", r.sickLeaveHandler.GetAllSickLeaves).Methods(http.MethodGet)
	records.HandleFunc("/sick-leaves/date-range", r.sickLeaveHandler.GetSickLeavesByDateRange).Methods(http.MethodGet)
	records.HandleFunc("/sick-leaves/{id}", r.sickLeaveHandler.GetSickLeave).Methods(http.MethodGet)
	records.HandleFunc("/visits/{visitId}/sick-leave", r.sickLeaveHandler.GetSickLeaveByVisit).Methods(http.MethodGet)
	records.HandleFunc("/patients/{patientId}/sick-leaves", r.sickLeaveHandler.GetSickLeavesByPatient).Methods(http.MethodGet)
	records.HandleFunc("/doctors/{doctorId}/sick-leaves", r.sickLeaveHandler.GetSickLeavesByDoctor).Methods(http.MethodGet)

	// Write routes (protected - doctor or admin)
	clinical := api.PathPrefix("").Subrouter()
	clinical.Use(r.authMiddleware.Authenticate)
	clinical.Use(middleware.RequireAdminOrDoctor)

	clinical.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	clinical.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	clinical.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	clinical.HandleFunc("/diagnoses", r.diagnosisHandler.CreateDiagnosis).Methods(http.MethodPost)
	clinical.HandleFunc("/diagnoses/{id}", r.diagnosisHandler.UpdateDiagnosis).Methods(http.MethodPut)
	clinical.HandleFunc("/diagnoses/{id}", r.diagnosisHandler.DeleteDiagnosis).Methods(http.MethodDelete)
	clinical.HandleFunc("/visits", r.visitHandler.CreateVisit).Methods(http.MethodPost)
	clinical.HandleFunc("/visits/{id}", r.visitHandler.UpdateVisit).Methods(http.MethodPut)
	clinical.HandleFunc("/visits/{id}", r.visitHandler.DeleteVisit).Methods(http.MethodDelete)
	clinical.HandleFunc("/sick-leaves", r.sickLeaveHandler.CreateSickLeave).Methods(http.MethodPost)
	clinical.HandleFunc("/sick-leaves/{id}", r.sickLeaveHandler.UpdateSickLeave).Methods(http.MethodPut)
	clinical.HandleFunc("/sick-leaves/{id}", r.sickLeaveHandler.DeleteSickLeave).Methods(http.MethodDelete)

	// Reports (protected - doctor or admin)
	reports := api.PathPrefix("/reports").Subrouter()
	reports.Use(r.authMiddleware.Authenticate)
	reports.Use(middleware.RequireAdminOrDoctor)

	reports.HandleFunc("/patients-by-diagnosis/{diagnosisId}", r.reportHandler.GetPatientsByDiagnosis).Methods(http.MethodGet)
	reports.HandleFunc("/most-common-diagnoses", r.reportHandler.GetMostCommonDiagnoses).Methods(http.MethodGet)
	reports.HandleFunc("/patients-by-family-doctor/{doctorId}", r.reportHandler.GetPatientsByFamilyDoctor).Methods(http.MethodGet)
	reports.HandleFunc("/family-doctor-patient-counts", r.reportHandler.GetFamilyDoctorPatientCounts).Methods(http.MethodGet)
	reports.HandleFunc("/doctor-visit-counts", r.reportHandler.GetDoctorVisitCounts).Methods(http.MethodGet)
	reports.HandleFunc("/doctors-by-patient-count", r.reportHandler.GetDoctorsByPatientCount).Methods(http.MethodGet)
	reports.HandleFunc("/visits-by-date-range", r.reportHandler.GetVisitsByDateRange).Methods(http.MethodGet)
	reports.HandleFunc("/visits-by-doctor-and-date-range/{doctorId}", r.reportHandler.GetVisitsByDoctorAndDateRange).Methods(http.MethodGet)
	reports.HandleFunc("/month-most-sick-leaves", r.reportHandler.GetMonthWithMostSickLeaves).Methods(http.MethodGet)
	reports.HandleFunc("/doctors-most-sick-leaves", r.reportHandler.GetDoctorsWithMostSickLeaves).Methods(http.MethodGet)
	reports.HandleFunc("/sick-leaves-by-month", r.reportHandler.GetSickLeavesByMonth).Methods(http.MethodGet)
	reports.HandleFunc("/patients-most-visits", r.reportHandler.GetPatientsWithMostVisits).Methods(http.MethodGet)
	reports.HandleFunc("/insurance-stats", r.reportHandler.GetInsuranceStats).Methods(http.MethodGet)
	reports.HandleFunc("/sick-leaves-detailed-monthly", r.reportHandler.GetDetailedSickLeavesByMonth).Methods(http.MethodGet)
	reports.HandleFunc("/doctors-sick-leaves-detailed", r.reportHandler.GetDetailedDoctorSickLeaveStats).Methods(http.MethodGet)
	reports.HandleFunc("/dashboard-stats", r.reportHandler.GetDashboardStats).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
