package repository

import (
	"errors"

	"medical-history-service/internal/domain/entity"
	domainRepo "medical-history-service/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("FamilyDoctor").Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEGN(db *gorm.DB, egn string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("FamilyDoctor").Where("egn = ?", egn).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Preload("FamilyDoctor").Order("id").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByFamilyDoctorID(db *gorm.DB, doctorID uint) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Preload("FamilyDoctor").
		Where("family_doctor_id = ?", doctorID).
		Order("id").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Patient{}, id)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Count(&count).Error
	return count, err
}
