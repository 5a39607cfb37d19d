package repository

import (
	"errors"

	"medical-history-service/internal/domain/entity"
	domainRepo "medical-history-service/internal/domain/repository"

	"gorm.io/gorm"
)

type diagnosisRepository struct{}

func NewDiagnosisRepository() domainRepo.DiagnosisRepository {
	return &diagnosisRepository{}
}

func (r *diagnosisRepository) Create(db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.Create(diagnosis).Error
}

func (r *diagnosisRepository) FindByID(db *gorm.DB, id uint) (*entity.Diagnosis, error) {
	var diagnosis entity.Diagnosis
	err := db.Where("id = ?", id).First(&diagnosis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &diagnosis, nil
}

func (r *diagnosisRepository) FindByCode(db *gorm.DB, code string) (*entity.Diagnosis, error) {
	var diagnosis entity.Diagnosis
	err := db.Where("code = ?", code).First(&diagnosis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &diagnosis, nil
}

func (r *diagnosisRepository) FindAll(db *gorm.DB) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	err := db.Order("id").Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnosisRepository) SearchByName(db *gorm.DB, name string) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	err := db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").Order("id").Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnosisRepository) Update(db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.Save(diagnosis).Error
}

func (r *diagnosisRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Diagnosis{}, id)
	return result.RowsAffected, result.Error
}

func (r *diagnosisRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Diagnosis{}).Count(&count).Error
	return count, err
}
