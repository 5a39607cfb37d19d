package repository

import (
	"errors"
	"time"

	"medical-history-service/internal/domain/entity"
	domainRepo "medical-history-service/internal/domain/repository"

	"gorm.io/gorm"
)

type sickLeaveRepository struct{}

func NewSickLeaveRepository() domainRepo.SickLeaveRepository {
	return &sickLeaveRepository{}
}

func (r *sickLeaveRepository) Create(db *gorm.DB, sickLeave *entity.SickLeave) error {
	return db.Create(sickLeave).Error
}

func (r *sickLeaveRepository) FindByID(db *gorm.DB, id uint) (*entity.SickLeave, error) {
	var sickLeave entity.SickLeave
	err := db.Preload("MedicalVisit").Preload("MedicalVisit.Patient").Preload("MedicalVisit.Doctor").
		Where("id = ?", id).First(&sickLeave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sickLeave, nil
}

func (r *sickLeaveRepository) FindAll(db *gorm.DB) ([]entity.SickLeave, error) {
	var sickLeaves []entity.SickLeave
	err := db.Preload("MedicalVisit").Preload("MedicalVisit.Patient").Preload("MedicalVisit.Doctor").
		Order("id").Find(&sickLeaves).Error
	if err != nil {
		return nil, err
	}
	return sickLeaves, nil
}

func (r *sickLeaveRepository) FindByMedicalVisitID(db *gorm.DB, visitID uint) (*entity.SickLeave, error) {
	var sickLeave entity.SickLeave
	err := db.Where("medical_visit_id = ?", visitID).First(&sickLeave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sickLeave, nil
}

func (r *sickLeaveRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.SickLeave, error) {
	var sickLeaves []entity.SickLeave
	err := db.Preload("MedicalVisit").Preload("MedicalVisit.Doctor").
		Joins("JOIN medical_visits ON medical_visits.id = sick_leaves.medical_visit_id").
		Where("medical_visits.patient_id = ?", patientID).
		Order("sick_leaves.start_date DESC").
		Find(&sickLeaves).Error
	if err != nil {
		return nil, err
	}
	return sickLeaves, nil
}

func (r *sickLeaveRepository) FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.SickLeave, error) {
	var sickLeaves []entity.SickLeave
	err := db.Preload("MedicalVisit").Preload("MedicalVisit.Patient").
		Joins("JOIN medical_visits ON medical_visits.id = sick_leaves.medical_visit_id").
		Where("medical_visits.doctor_id = ?", doctorID).
		Order("sick_leaves.start_date DESC").
		Find(&sickLeaves).Error
	if err != nil {
		return nil, err
	}
	return sickLeaves, nil
}

func (r *sickLeaveRepository) FindByStartDateRange(db *gorm.DB, start, end time.Time) ([]entity.SickLeave, error) {
	var sickLeaves []entity.SickLeave
	err := db.Preload("MedicalVisit").
		Where("start_date BETWEEN ? AND ?", start, end).
		Order("start_date").
		Find(&sickLeaves).Error
	if err != nil {
		return nil, err
	}
	return sickLeaves, nil
}

func (r *sickLeaveRepository) Update(db *gorm.DB, sickLeave *entity.SickLeave) error {
	return db.Save(sickLeave).Error
}

func (r *sickLeaveRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.SickLeave{}, id)
	return result.RowsAffected, result.Error
}

func (r *sickLeaveRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.SickLeave{}).Count(&count).Error
	return count, err
}
