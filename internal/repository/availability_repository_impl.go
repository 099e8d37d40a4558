package repository

import (
	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) Create(db *gorm.DB, availability *entity.Availability) error {
	return db.Create(availability).Error
}

func (r *availabilityRepository) FindAll(db *gorm.DB) ([]entity.Availability, error) {
	var availabilities []entity.Availability
	err := db.Order("id ASC").Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *availabilityRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Availability, error) {
	var availabilities []entity.Availability
	err := db.Where(`"doctorID" = ?`, doctorID).Order(`date ASC, "startTime" ASC`).Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *availabilityRepository) FindByDate(db *gorm.DB, date string) ([]entity.Availability, error) {
	var availabilities []entity.Availability
	err := db.Where("date = ?", date).Order(`"startTime" ASC`).Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}
