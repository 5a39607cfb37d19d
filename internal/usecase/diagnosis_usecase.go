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
	ErrDiagnosisNotFound   = errors.New("diagnosis not found")
	ErrDiagnosisCodeExists = errors.New("diagnosis code already exists")
)

type DiagnosisUsecase interface {
	GetAllDiagnoses(ctx context.Context) (*dto.DiagnosisListResponse, error)
	GetDiagnosis(ctx context.Context, id uint) (*dto.DiagnosisResponse, error)
	GetDiagnosisByCode(ctx context.Context, code string) (*dto.DiagnosisResponse, error)
	SearchDiagnosesByName(ctx context.Context, name string) (*dto.DiagnosisListResponse, error)
	CreateDiagnosis(ctx context.Context, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error)
	UpdateDiagnosis(ctx context.Context, id uint, req *dto.UpdateDiagnosisRequest) (*dto.DiagnosisResponse, error)
	DeleteDiagnosis(ctx context.Context, id uint) error
}

type diagnosisUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	diagnosisRepo repository.DiagnosisRepository
	auditService  service.AuditService
}

func NewDiagnosisUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diagnosisRepo repository.DiagnosisRepository,
	auditService service.AuditService,
) DiagnosisUsecase {
	return &diagnosisUsecase{
		db:            db,
		log:           log,
		diagnosisRepo: diagnosisRepo,
		auditService:  auditService,
	}
}

func (u *diagnosisUsecase) GetAllDiagnoses(ctx context.Context) (*dto.DiagnosisListResponse, error) {
	diagnoses, err := u.diagnosisRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all diagnoses: %+v", err)
		return nil, err
	}

	return &dto.DiagnosisListResponse{
		Diagnoses: converter.DiagnosesToResponses(diagnoses),
		Total:     len(diagnoses),
	}, nil
}

func (u *diagnosisUsecase) GetDiagnosis(ctx context.Context, id uint) (*dto.DiagnosisResponse, error) {
	diagnosis, err := u.diagnosisRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis: %+v", err)
		return nil, err
	}
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) GetDiagnosisByCode(ctx context.Context, code string) (*dto.DiagnosisResponse, error) {
	diagnosis, err := u.diagnosisRepo.FindByCode(u.db.WithContext(ctx), code)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis by code: %+v", err)
		return nil, err
	}
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) SearchDiagnosesByName(ctx context.Context, name string) (*dto.DiagnosisListResponse, error) {
	diagnoses, err := u.diagnosisRepo.SearchByName(u.db.WithContext(ctx), name)
	if err != nil {
		u.log.Warnf("Failed to search diagnoses by name %q: %+v", name, err)
		return nil, err
	}

	return &dto.DiagnosisListResponse{
		Diagnoses: converter.DiagnosesToResponses(diagnoses),
		Total:     len(diagnoses),
	}, nil
}

func (u *diagnosisUsecase) CreateDiagnosis(ctx context.Context, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	diagnosis := &entity.Diagnosis{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := u.diagnosisRepo.Create(tx, diagnosis); err != nil {
		if isDuplicateKeyError(err, "code") {
			return nil, ErrDiagnosisCodeExists
		}
		u.log.Warnf("Failed to create diagnosis: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionDiagnosisCreate, "diagnosis", fmt.Sprint(diagnosis.ID), converter.DiagnosisToResponse(diagnosis)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) UpdateDiagnosis(ctx context.Context, id uint, req *dto.UpdateDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	diagnosis, err := u.diagnosisRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis: %+v", err)
		return nil, err
	}
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}

	oldValue := converter.DiagnosisToResponse(diagnosis)

	if req.Code != "" {
		diagnosis.Code = req.Code
	}
	if req.Name != "" {
		diagnosis.Name = req.Name
	}
	if req.Description != "" {
		diagnosis.Description = req.Description
	}

	if err := u.diagnosisRepo.Update(tx, diagnosis); err != nil {
		if isDuplicateKeyError(err, "code") {
			return nil, ErrDiagnosisCodeExists
		}
		u.log.Warnf("Failed to update diagnosis: %+v", err)
		return nil, err
	}

	newValue := converter.DiagnosisToResponse(diagnosis)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionDiagnosisUpdate, "diagnosis", fmt.Sprint(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteDiagnosis orphans the reference on historical visits (set null);
// the visits themselves are kept.
func (u *diagnosisUsecase) DeleteDiagnosis(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	diagnosis, err := u.diagnosisRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis: %+v", err)
		return err
	}
	if diagnosis == nil {
		return ErrDiagnosisNotFound
	}
	oldValue := converter.DiagnosisToResponse(diagnosis)

	affectedRows, err := u.diagnosisRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete diagnosis: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDiagnosisNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionDiagnosisDelete, "diagnosis", fmt.Sprint(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
