package repository

import (
	"clinic-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindAllDetailed(db *gorm.DB) ([]entity.Appointment, error)
	FindByUserID(db *gorm.DB, userID int) ([]entity.Appointment, error)
	Count(db *gorm.DB) (int64, error)
}
