package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medical-history-service/internal/converter"
	"medical-history-service/internal/delivery/dto"
	"medical-history-service/internal/delivery/http/middleware"
	"medical-history-service/internal/domain/entity"
	"medical-history-service/internal/domain/repository"
	"medical-history-service/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrEGNExists            = errors.New("EGN already exists")
	ErrFamilyDoctorNotFound = errors.New("family doctor not found")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, id uint) (*dto.PatientResponse, error)
	GetPatientByEGN(ctx context.Context, egn string) (*dto.PatientResponse, error)
	GetPatientsByFamilyDoctor(ctx context.Context, doctorID uint) (*dto.PatientListResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	statsCache   *service.StatsCacheService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	statsCache *service.StatsCacheService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		statsCache:   statsCache,
	}
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatientByEGN(ctx context.Context, egn string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByEGN(u.db.WithContext(ctx), egn)
	if err != nil {
		u.log.Warnf("Failed to find patient by EGN: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// GetPatientsByFamilyDoctor filters by value: an unknown doctor ID is simply
// no matches, not an error.
func (u *patientUsecase) GetPatientsByFamilyDoctor(ctx context.Context, doctorID uint) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindByFamilyDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find patients by family doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Family doctor must resolve before the insert
	familyDoctor, err := u.doctorRepo.FindByID(tx, req.FamilyDoctorID)
	if err != nil {
		u.log.Warnf("Failed to find family doctor: %+v", err)
		return nil, err
	}
	if familyDoctor == nil {
		return nil, ErrFamilyDoctorNotFound
	}

	patient := &entity.Patient{
		Name:                req.Name,
		EGN:                 req.EGN,
		HealthInsurancePaid: req.HealthInsurancePaid,
		FamilyDoctorID:      req.FamilyDoctorID,
	}

	if req.LastInsurancePaymentDate != "" {
		paymentDate, err := parseDate(req.LastInsurancePaymentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.LastInsurancePaymentDate = &paymentDate
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "egn") {
			return nil, ErrEGNExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}
	patient.FamilyDoctor = *familyDoctor

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionPatientCreate, "patient", fmt.Sprint(patient.ID), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateStats(ctx)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.EGN != "" {
		patient.EGN = req.EGN
	}
	if req.HealthInsurancePaid != nil {
		patient.HealthInsurancePaid = *req.HealthInsurancePaid
	}
	if req.LastInsurancePaymentDate != "" {
		paymentDate, err := parseDate(req.LastInsurancePaymentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.LastInsurancePaymentDate = &paymentDate
	}
	if req.FamilyDoctorID != nil {
		familyDoctor, err := u.doctorRepo.FindByID(tx, *req.FamilyDoctorID)
		if err != nil {
			u.log.Warnf("Failed to find family doctor: %+v", err)
			return nil, err
		}
		if familyDoctor == nil {
			return nil, ErrFamilyDoctorNotFound
		}
		patient.FamilyDoctorID = *req.FamilyDoctorID
		patient.FamilyDoctor = *familyDoctor
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		if isDuplicateKeyError(err, "egn") {
			return nil, ErrEGNExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	newValue := converter.PatientToResponse(patient)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionPatientUpdate, "patient", fmt.Sprint(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeletePatient removes the patient together with its visits and their sick
// leaves (cascade).
func (u *patientUsecase) DeletePatient(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	oldValue := converter.PatientToResponse(patient)

	affectedRows, err := u.patientRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrPatientNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionPatientDelete, "patient", fmt.Sprint(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.invalidateStats(ctx)
	return nil
}

func (u *patientUsecase) invalidateStats(ctx context.Context) {
	if err := u.statsCache.InvalidateDashboardStats(ctx); err != nil {
		u.log.Warnf("Failed to invalidate dashboard stats cache (non-fatal): %+v", err)
	}
}

// parseDate parses the wire date format shared by every request DTO.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
