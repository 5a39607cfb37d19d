package repository

import (
	"errors"

	"medical-history-service/internal/domain/entity"
	domainRepo "medical-history-service/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Role").Preload("Patient").Preload("Doctor").
		Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Role").Preload("Patient").Preload("Doctor").
		Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Role").Preload("Patient").Preload("Doctor").
		Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Save(user).Error
}

func (r *userRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.User{}, id)
	return result.RowsAffected, result.Error
}

func (r *userRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.User{}).Count(&count).Error
	return count, err
}
