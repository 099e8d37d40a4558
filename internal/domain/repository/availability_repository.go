package repository

import (
	"clinic-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Create(db *gorm.DB, availability *entity.Availability) error
	FindAll(db *gorm.DB) ([]entity.Availability, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Availability, error)
	FindByDate(db *gorm.DB, date string) ([]entity.Availability, error)
}
