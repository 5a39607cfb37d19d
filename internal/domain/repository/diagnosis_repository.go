package repository

import (
	"medical-history-service/internal/domain/entity"

	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	Create(db *gorm.DB, diagnosis *entity.Diagnosis) error
	FindByID(db *gorm.DB, id uint) (*entity.Diagnosis, error)
	FindByCode(db *gorm.DB, code string) (*entity.Diagnosis, error)
	FindAll(db *gorm.DB) ([]entity.Diagnosis, error)
	SearchByName(db *gorm.DB, name string) ([]entity.Diagnosis, error)
	Update(db *gorm.DB, diagnosis *entity.Diagnosis) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
