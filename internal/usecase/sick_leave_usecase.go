package usecase

import (
	"context"
	"errors"
	"fmt"

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
	ErrSickLeaveNotFound = errors.New("sick leave not found")
	ErrSickLeaveExists   = errors.New("visit already has a sick leave")
	ErrInvalidDuration   = errors.New("sick leave duration must be positive")
)

type SickLeaveUsecase interface {
	GetAllSickLeaves(ctx context.Context) (*dto.SickLeaveListResponse, error)
	GetSickLeave(ctx context.Context, id uint) (*dto.SickLeaveResponse, error)
	GetSickLeaveByVisit(ctx context.Context, visitID uint) (*dto.SickLeaveResponse, error)
	GetSickLeavesByPatient(ctx context.Context, patientID uint) (*dto.SickLeaveListResponse, error)
	GetSickLeavesByDoctor(ctx context.Context, doctorID uint) (*dto.SickLeaveListResponse, error)
	GetSickLeavesByStartDateRange(ctx context.Context, startDate, endDate string) (*dto.SickLeaveListResponse, error)
	CreateSickLeave(ctx context.Context, req *dto.CreateSickLeaveRequest) (*dto.SickLeaveResponse, error)
	UpdateSickLeave(ctx context.Context, id uint, req *dto.UpdateSickLeaveRequest) (*dto.SickLeaveResponse, error)
	DeleteSickLeave(ctx context.Context, id uint) error
}

type sickLeaveUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	sickLeaveRepo repository.SickLeaveRepository
	visitRepo     repository.MedicalVisitRepository
	auditService  service.AuditService
	statsCache    *service.StatsCacheService
}

func NewSickLeaveUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sickLeaveRepo repository.SickLeaveRepository,
	visitRepo repository.MedicalVisitRepository,
	auditService service.AuditService,
	statsCache *service.StatsCacheService,
) SickLeaveUsecase {
	return &sickLeaveUsecase{
		db:            db,
		log:           log,
		sickLeaveRepo: sickLeaveRepo,
		visitRepo:     visitRepo,
		auditService:  auditService,
		statsCache:    statsCache,
	}
}

func (u *sickLeaveUsecase) GetAllSickLeaves(ctx context.Context) (*dto.SickLeaveListResponse, error) {
	sickLeaves, err := u.sickLeaveRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all sick leaves: %+v", err)
		return nil, err
	}

	return &dto.SickLeaveListResponse{
		SickLeaves: converter.SickLeavesToResponses(sickLeaves),
		Total:      len(sickLeaves),
	}, nil
}

func (u *sickLeaveUsecase) GetSickLeave(ctx context.Context, id uint) (*dto.SickLeaveResponse, error) {
	sickLeave, err := u.sickLeaveRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find sick leave: %+v", err)
		return nil, err
	}
	if sickLeave == nil {
		return nil, ErrSickLeaveNotFound
	}

	return converter.SickLeaveToResponse(sickLeave), nil
}

func (u *sickLeaveUsecase) GetSickLeaveByVisit(ctx context.Context, visitID uint) (*dto.SickLeaveResponse, error) {
	sickLeave, err := u.sickLeaveRepo.FindByMedicalVisitID(u.db.WithContext(ctx), visitID)
	if err != nil {
		u.log.Warnf("Failed to find sick leave by visit %d: %+v", visitID, err)
		return nil, err
	}
	if sickLeave == nil {
		return nil, ErrSickLeaveNotFound
	}

	return converter.SickLeaveToResponse(sickLeave), nil
}

func (u *sickLeaveUsecase) GetSickLeavesByPatient(ctx context.Context, patientID uint) (*dto.SickLeaveListResponse, error) {
	sickLeaves, err := u.sickLeaveRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find sick leaves by patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.SickLeaveListResponse{
		SickLeaves: converter.SickLeavesToResponses(sickLeaves),
		Total:      len(sickLeaves),
	}, nil
}

func (u *sickLeaveUsecase) GetSickLeavesByDoctor(ctx context.Context, doctorID uint) (*dto.SickLeaveListResponse, error) {
	sickLeaves, err := u.sickLeaveRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find sick leaves by doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.SickLeaveListResponse{
		SickLeaves: converter.SickLeavesToResponses(sickLeaves),
		Total:      len(sickLeaves),
	}, nil
}

// GetSickLeavesByStartDateRange lists sick leaves whose start date falls in
// the range, inclusive at both ends. An inverted range matches nothing rather
// than failing.
func (u *sickLeaveUsecase) GetSickLeavesByStartDateRange(ctx context.Context, startDate, endDate string) (*dto.SickLeaveListResponse, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	sickLeaves, err := u.sickLeaveRepo.FindByStartDateRange(u.db.WithContext(ctx), start, end)
	if err != nil {
		u.log.Warnf("Failed to find sick leaves by start date range: %+v", err)
		return nil, err
	}

	return &dto.SickLeaveListResponse{
		SickLeaves: converter.SickLeavesToResponses(sickLeaves),
		Total:      len(sickLeaves),
	}, nil
}

func (u *sickLeaveUsecase) CreateSickLeave(ctx context.Context, req *dto.CreateSickLeaveRequest) (*dto.SickLeaveResponse, error) {
	if req.DurationDays <= 0 {
		return nil, ErrInvalidDuration
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(tx, req.MedicalVisitID)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	sickLeave := &entity.SickLeave{
		StartDate:      startDate,
		DurationDays:   req.DurationDays,
		Reason:         req.Reason,
		MedicalVisitID: req.MedicalVisitID,
	}

	if err := u.sickLeaveRepo.Create(tx, sickLeave); err != nil {
		if errors.Is(err, entity.ErrNonPositiveDuration) {
			return nil, ErrInvalidDuration
		}
		if isDuplicateKeyError(err, "medical_visit_id") {
			return nil, ErrSickLeaveExists
		}
		u.log.Warnf("Failed to create sick leave: %+v", err)
		return nil, err
	}
	sickLeave.MedicalVisit = *visit

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionSickLeaveCreate, "sick_leave", fmt.Sprint(sickLeave.ID), converter.SickLeaveToResponse(sickLeave)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateStats(ctx)
	return converter.SickLeaveToResponse(sickLeave), nil
}

// UpdateSickLeave recomputes the end date whenever the start date or the
// duration changes; the save hook keeps the derived field atomic with its
// inputs.
func (u *sickLeaveUsecase) UpdateSickLeave(ctx context.Context, id uint, req *dto.UpdateSickLeaveRequest) (*dto.SickLeaveResponse, error) {
	if req.DurationDays != nil && *req.DurationDays <= 0 {
		return nil, ErrInvalidDuration
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	sickLeave, err := u.sickLeaveRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find sick leave: %+v", err)
		return nil, err
	}
	if sickLeave == nil {
		return nil, ErrSickLeaveNotFound
	}

	oldValue := converter.SickLeaveToResponse(sickLeave)

	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		sickLeave.StartDate = startDate
	}
	if req.DurationDays != nil {
		sickLeave.DurationDays = *req.DurationDays
	}
	if req.Reason != "" {
		sickLeave.Reason = req.Reason
	}

	if err := u.sickLeaveRepo.Update(tx, sickLeave); err != nil {
		if errors.Is(err, entity.ErrNonPositiveDuration) {
			return nil, ErrInvalidDuration
		}
		u.log.Warnf("Failed to update sick leave: %+v", err)
		return nil, err
	}

	newValue := converter.SickLeaveToResponse(sickLeave)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionSickLeaveUpdate, "sick_leave", fmt.Sprint(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *sickLeaveUsecase) DeleteSickLeave(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	sickLeave, err := u.sickLeaveRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find sick leave: %+v", err)
		return err
	}
	if sickLeave == nil {
		return ErrSickLeaveNotFound
	}
	oldValue := converter.SickLeaveToResponse(sickLeave)

	affectedRows, err := u.sickLeaveRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete sick leave: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrSickLeaveNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionSickLeaveDelete, "sick_leave", fmt.Sprint(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.invalidateStats(ctx)
	return nil
}

func (u *sickLeaveUsecase) invalidateStats(ctx context.Context) {
	if err := u.statsCache.InvalidateDashboardStats(ctx); err != nil {
		u.log.Warnf("Failed to invalidate dashboard stats cache (non-fatal): %+v", err)
	}
}
