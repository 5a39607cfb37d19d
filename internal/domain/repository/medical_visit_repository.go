package repository

import (
	"time"

	"medical-history-service/internal/domain/entity"

	"gorm.io/gorm"
)

// MedicalVisitRepository exposes the visit fact stream the report layer
// scans. Range lookups are inclusive at both ends; an inverted range simply
// matches nothing.
type MedicalVisitRepository interface {
	Create(db *gorm.DB, visit *entity.MedicalVisit) error
	FindByID(db *gorm.DB, id uint) (*entity.MedicalVisit, error)
	FindAll(db *gorm.DB) ([]entity.MedicalVisit, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.MedicalVisit, error)
	FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.MedicalVisit, error)
	FindByDiagnosisID(db *gorm.DB, diagnosisID uint) ([]entity.MedicalVisit, error)
	FindByDateRange(db *gorm.DB, start, end time.Time) ([]entity.MedicalVisit, error)
	FindByDoctorAndDateRange(db *gorm.DB, doctorID uint, start, end time.Time) ([]entity.MedicalVisit, error)
	Update(db *gorm.DB, visit *entity.MedicalVisit) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
