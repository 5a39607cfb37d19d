package repository

import (
	"medical-history-service/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(db *gorm.DB, role *entity.Role) error
	FindByID(db *gorm.DB, id int) (*entity.Role, error)
	FindByName(db *gorm.DB, name string) (*entity.Role, error)
	Count(db *gorm.DB) (int64, error)
}
