package repository

import (
	"medical-history-service/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindByEGN(db *gorm.DB, egn string) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindByFamilyDoctorID(db *gorm.DB, doctorID uint) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
