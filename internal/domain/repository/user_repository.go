package repository

import (
	"clinic-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id int) (*entity.User, error)
	FindByIDAndRole(db *gorm.DB, id int, role entity.Role) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindAllByRole(db *gorm.DB, role entity.Role) ([]entity.User, error)
}
