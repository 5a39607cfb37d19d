package repository

import (
	"time"

	"medical-history-service/internal/domain/entity"

	"gorm.io/gorm"
)

type SickLeaveRepository interface {
	Create(db *gorm.DB, sickLeave *entity.SickLeave) error
	FindByID(db *gorm.DB, id uint) (*entity.SickLeave, error)
	FindAll(db *gorm.DB) ([]entity.SickLeave, error)
	FindByMedicalVisitID(db *gorm.DB, visitID uint) (*entity.SickLeave, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.SickLeave, error)
	FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.SickLeave, error)
	FindByStartDateRange(db *gorm.DB, start, end time.Time) ([]entity.SickLeave, error)
	Update(db *gorm.DB, sickLeave *entity.SickLeave) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
