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
	ErrVisitNotFound       = errors.New("medical visit not found")
	ErrVisitPatientInvalid = errors.New("visit patient not found")
	ErrVisitDoctorInvalid  = errors.New("visit doctor not found")
)

type MedicalVisitUsecase interface {
	GetAllVisits(ctx context.Context) (*dto.MedicalVisitListResponse, error)
	GetVisit(ctx context.Context, id uint) (*dto.MedicalVisitResponse, error)
	GetVisitsByPatient(ctx context.Context, patientID uint) (*dto.MedicalVisitListResponse, error)
	GetVisitsByDoctor(ctx context.Context, doctorID uint) (*dto.MedicalVisitListResponse, error)
	GetVisitsByDiagnosis(ctx context.Context, diagnosisID uint) (*dto.MedicalVisitListResponse, error)
	GetVisitsByDateRange(ctx context.Context, startDate, endDate string) (*dto.MedicalVisitListResponse, error)
	CreateVisit(ctx context.Context, req *dto.CreateMedicalVisitRequest) (*dto.MedicalVisitResponse, error)
	UpdateVisit(ctx context.Context, id uint, req *dto.UpdateMedicalVisitRequest) (*dto.MedicalVisitResponse, error)
	DeleteVisit(ctx context.Context, id uint) error
}

type medicalVisitUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	visitRepo     repository.MedicalVisitRepository
	patientRepo   repository.PatientRepository
	doctorRepo    repository.DoctorRepository
	diagnosisRepo repository.DiagnosisRepository
	auditService  service.AuditService
	statsCache    *service.StatsCacheService
}

func NewMedicalVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.MedicalVisitRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	diagnosisRepo repository.DiagnosisRepository,
	auditService service.AuditService,
	statsCache *service.StatsCacheService,
) MedicalVisitUsecase {
	return &medicalVisitUsecase{
		db:            db,
		log:           log,
		visitRepo:     visitRepo,
		patientRepo:   patientRepo,
		doctorRepo:    doctorRepo,
		diagnosisRepo: diagnosisRepo,
		auditService:  auditService,
		statsCache:    statsCache,
	}
}

func (u *medicalVisitUsecase) GetAllVisits(ctx context.Context) (*dto.MedicalVisitListResponse, error) {
	visits, err := u.visitRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all visits: %+v", err)
		return nil, err
	}

	return &dto.MedicalVisitListResponse{
		Visits: converter.MedicalVisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

func (u *medicalVisitUsecase) GetVisit(ctx context.Context, id uint) (*dto.MedicalVisitResponse, error) {
	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	return converter.MedicalVisitToResponse(visit), nil
}

// The by-patient, by-doctor and by-diagnosis lookups filter by value: an
// unknown ID is no matches, not an error.
func (u *medicalVisitUsecase) GetVisitsByPatient(ctx context.Context, patientID uint) (*dto.MedicalVisitListResponse, error) {
	visits, err := u.visitRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find visits by patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.MedicalVisitListResponse{
		Visits: converter.MedicalVisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

func (u *medicalVisitUsecase) GetVisitsByDoctor(ctx context.Context, doctorID uint) (*dto.MedicalVisitListResponse, error) {
	visits, err := u.visitRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find visits by doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.MedicalVisitListResponse{
		Visits: converter.MedicalVisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

func (u *medicalVisitUsecase) GetVisitsByDiagnosis(ctx context.Context, diagnosisID uint) (*dto.MedicalVisitListResponse, error) {
	visits, err := u.visitRepo.FindByDiagnosisID(u.db.WithContext(ctx), diagnosisID)
	if err != nil {
		u.log.Warnf("Failed to find visits by diagnosis %d: %+v", diagnosisID, err)
		return nil, err
	}

	return &dto.MedicalVisitListResponse{
		Visits: converter.MedicalVisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

// GetVisitsByDateRange is inclusive at both ends. An inverted range matches
// nothing rather than failing.
func (u *medicalVisitUsecase) GetVisitsByDateRange(ctx context.Context, startDate, endDate string) (*dto.MedicalVisitListResponse, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	visits, err := u.visitRepo.FindByDateRange(u.db.WithContext(ctx), start, end)
	if err != nil {
		u.log.Warnf("Failed to find visits by date range: %+v", err)
		return nil, err
	}

	return &dto.MedicalVisitListResponse{
		Visits: converter.MedicalVisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

func (u *medicalVisitUsecase) CreateVisit(ctx context.Context, req *dto.CreateMedicalVisitRequest) (*dto.MedicalVisitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrVisitPatientInvalid
	}

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrVisitDoctorInvalid
	}

	var diagnosis *entity.Diagnosis
	if req.DiagnosisID != nil {
		diagnosis, err = u.diagnosisRepo.FindByID(tx, *req.DiagnosisID)
		if err != nil {
			u.log.Warnf("Failed to find diagnosis: %+v", err)
			return nil, err
		}
		if diagnosis == nil {
			return nil, ErrDiagnosisNotFound
		}
	}

	visitDate, err := parseDate(req.VisitDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	visitTime := req.VisitTime
	if visitTime == "" {
		// Time of record creation stands in when no explicit time is given
		visitTime = time.Now().Format("15:04:05")
	}

	visit := &entity.MedicalVisit{
		VisitDate:            visitDate,
		VisitTime:            visitTime,
		Symptoms:             req.Symptoms,
		Treatment:            req.Treatment,
		PrescribedMedication: req.PrescribedMedication,
		Notes:                req.Notes,
		PatientID:            req.PatientID,
		DoctorID:             req.DoctorID,
		DiagnosisID:          req.DiagnosisID,
	}

	if err := u.visitRepo.Create(tx, visit); err != nil {
		u.log.Warnf("Failed to create visit: %+v", err)
		return nil, err
	}
	visit.Patient = *patient
	visit.Doctor = *doctor
	visit.Diagnosis = diagnosis

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionVisitCreate, "medical_visit", fmt.Sprint(visit.ID), converter.MedicalVisitToResponse(visit)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateStats(ctx)
	return converter.MedicalVisitToResponse(visit), nil
}

func (u *medicalVisitUsecase) UpdateVisit(ctx context.Context, id uint, req *dto.UpdateMedicalVisitRequest) (*dto.MedicalVisitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	oldValue := converter.MedicalVisitToResponse(visit)

	if req.VisitDate != "" {
		visitDate, err := parseDate(req.VisitDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		visit.VisitDate = visitDate
	}
	if req.VisitTime != "" {
		visit.VisitTime = req.VisitTime
	}
	if req.Symptoms != "" {
		visit.Symptoms = req.Symptoms
	}
	if req.Treatment != "" {
		visit.Treatment = req.Treatment
	}
	if req.PrescribedMedication != "" {
		visit.PrescribedMedication = req.PrescribedMedication
	}
	if req.Notes != "" {
		visit.Notes = req.Notes
	}
	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByID(tx, *req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrVisitPatientInvalid
		}
		visit.PatientID = *req.PatientID
		visit.Patient = *patient
	}
	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(tx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrVisitDoctorInvalid
		}
		visit.DoctorID = *req.DoctorID
		visit.Doctor = *doctor
	}
	if req.DiagnosisID != nil {
		diagnosis, err := u.diagnosisRepo.FindByID(tx, *req.DiagnosisID)
		if err != nil {
			u.log.Warnf("Failed to find diagnosis: %+v", err)
			return nil, err
		}
		if diagnosis == nil {
			return nil, ErrDiagnosisNotFound
		}
		visit.DiagnosisID = req.DiagnosisID
		visit.Diagnosis = diagnosis
	}

	if err := u.visitRepo.Update(tx, visit); err != nil {
		u.log.Warnf("Failed to update visit: %+v", err)
		return nil, err
	}

	newValue := converter.MedicalVisitToResponse(visit)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionVisitUpdate, "medical_visit", fmt.Sprint(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteVisit removes the visit together with its sick leave, if any
// (cascade).
func (u *medicalVisitUsecase) DeleteVisit(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return err
	}
	if visit == nil {
		return ErrVisitNotFound
	}
	oldValue := converter.MedicalVisitToResponse(visit)

	affectedRows, err := u.visitRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete visit: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrVisitNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionVisitDelete, "medical_visit", fmt.Sprint(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.invalidateStats(ctx)
	return nil
}

func (u *medicalVisitUsecase) invalidateStats(ctx context.Context) {
	if err := u.statsCache.InvalidateDashboardStats(ctx); err != nil {
		u.log.Warnf("Failed to invalidate dashboard stats cache (non-fatal): %+v", err)
	}
}
