package repository

import (
	"errors"

	"medical-history-service/internal/domain/entity"
	domainRepo "medical-history-service/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByIdentificationNumber(db *gorm.DB, idNumber string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("identification_number = ?", idNumber).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Order("id").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindFamilyDoctors(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Where("is_family_doctor = ?", true).Order("id").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindBySpecialty(db *gorm.DB, specialty string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Where("specialty = ?", specialty).Order("id").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Doctor{}, id)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}
