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
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrDoctorIDNumberExists = errors.New("identification number already exists")
	ErrDoctorReferenced     = errors.New("doctor is referenced by patients or visits")
)

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	GetFamilyDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorsBySpecialty(ctx context.Context, specialty string) (*dto.DoctorListResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id uint) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	statsCache   *service.StatsCacheService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	statsCache *service.StatsCacheService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		statsCache:   statsCache,
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetFamilyDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindFamilyDoctors(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find family doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctorsBySpecialty(ctx context.Context, specialty string) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindBySpecialty(u.db.WithContext(ctx), specialty)
	if err != nil {
		u.log.Warnf("Failed to find doctors by specialty %q: %+v", specialty, err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		IdentificationNumber: req.IdentificationNumber,
		Name:                 req.Name,
		Specialty:            req.Specialty,
		IsFamilyDoctor:       req.IsFamilyDoctor,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "identification_number") {
			return nil, ErrDoctorIDNumberExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionDoctorCreate, "doctor", fmt.Sprint(doctor.ID), converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateStats(ctx)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(doctor)

	if req.IdentificationNumber != "" {
		doctor.IdentificationNumber = req.IdentificationNumber
	}
	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Specialty != "" {
		doctor.Specialty = req.Specialty
	}
	if req.IsFamilyDoctor != nil {
		doctor.IsFamilyDoctor = *req.IsFamilyDoctor
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "identification_number") {
			return nil, ErrDoctorIDNumberExists
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionDoctorUpdate, "doctor", fmt.Sprint(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteDoctor rejects the delete while the doctor is still someone's family
// doctor or has conducted visits, so historical reports stay intact.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	oldValue := converter.DoctorToResponse(doctor)

	affectedRows, err := u.doctorRepo.Delete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "family_doctor") || isForeignKeyError(err, "doctor") {
			return ErrDoctorReferenced
		}
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionDoctorDelete, "doctor", fmt.Sprint(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.invalidateStats(ctx)
	return nil
}

func (u *doctorUsecase) invalidateStats(ctx context.Context) {
	if err := u.statsCache.InvalidateDashboardStats(ctx); err != nil {
		u.log.Warnf("Failed to invalidate dashboard stats cache (non-fatal): %+v", err)
	}
}
