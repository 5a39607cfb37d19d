package repository

import (
	"medical-history-service/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
