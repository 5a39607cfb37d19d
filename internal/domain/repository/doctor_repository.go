package repository

import (
	"medical-history-service/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindByIdentificationNumber(db *gorm.DB, idNumber string) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindFamilyDoctors(db *gorm.DB) ([]entity.Doctor, error)
	FindBySpecialty(db *gorm.DB, specialty string) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
