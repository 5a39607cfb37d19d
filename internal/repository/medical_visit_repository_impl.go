package repository

import (
	"errors"
	"time"

	"medical-history-service/internal/domain/entity"
	domainRepo "medical-history-service/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalVisitRepository struct{}

func NewMedicalVisitRepository() domainRepo.MedicalVisitRepository {
	return &medicalVisitRepository{}
}

func (r *medicalVisitRepository) Create(db *gorm.DB, visit *entity.MedicalVisit) error {
	return db.Create(visit).Error
}

func (r *medicalVisitRepository) FindByID(db *gorm.DB, id uint) (*entity.MedicalVisit, error) {
	var visit entity.MedicalVisit
	err := db.Preload("Patient").Preload("Doctor").Preload("Diagnosis").Preload("SickLeave").
		Where("id = ?", id).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *medicalVisitRepository) FindAll(db *gorm.DB) ([]entity.MedicalVisit, error) {
	var visits []entity.MedicalVisit
	err := db.Preload("Patient").Preload("Doctor").Preload("Diagnosis").Preload("SickLeave").
		Order("id").Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *medicalVisitRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.MedicalVisit, error) {
	var visits []entity.MedicalVisit
	err := db.Preload("Patient").Preload("Doctor").Preload("Diagnosis").Preload("SickLeave").
		Where("patient_id = ?", patientID).
		Order("visit_date DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *medicalVisitRepository) FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.MedicalVisit, error) {
	var visits []entity.MedicalVisit
	err := db.Preload("Patient").Preload("Doctor").Preload("Diagnosis").Preload("SickLeave").
		Where("doctor_id = ?", doctorID).
		Order("visit_date DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *medicalVisitRepository) FindByDiagnosisID(db *gorm.DB, diagnosisID uint) ([]entity.MedicalVisit, error) {
	var visits []entity.MedicalVisit
	err := db.Preload("Patient").Preload("Patient.FamilyDoctor").Preload("Doctor").Preload("Diagnosis").
		Where("diagnosis_id = ?", diagnosisID).
		Order("id").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

// FindByDateRange matches start <= visit_date <= end. An inverted range
// matches nothing and returns an empty slice, not an error.
func (r *medicalVisitRepository) FindByDateRange(db *gorm.DB, start, end time.Time) ([]entity.MedicalVisit, error) {
	var visits []entity.MedicalVisit
	err := db.Preload("Patient").Preload("Doctor").Preload("Diagnosis").Preload("SickLeave").
		Where("visit_date BETWEEN ? AND ?", start, end).
		Order("visit_date").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *medicalVisitRepository) FindByDoctorAndDateRange(db *gorm.DB, doctorID uint, start, end time.Time) ([]entity.MedicalVisit, error) {
	var visits []entity.MedicalVisit
	err := db.Preload("Patient").Preload("Doctor").Preload("Diagnosis").Preload("SickLeave").
		Where("doctor_id = ? AND visit_date BETWEEN ? AND ?", doctorID, start, end).
		Order("visit_date").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *medicalVisitRepository) Update(db *gorm.DB, visit *entity.MedicalVisit) error {
	return db.Save(visit).Error
}

func (r *medicalVisitRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.MedicalVisit{}, id)
	return result.RowsAffected, result.Error
}

func (r *medicalVisitRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.MedicalVisit{}).Count(&count).Error
	return count, err
}
