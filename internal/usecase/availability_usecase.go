package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-scheduler/internal/converter"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidClockFormat = errors.New("invalid time format, use HH:mm")
	ErrInvalidTimeRange   = errors.New("start time must be before end time")
	ErrInvalidDuration    = errors.New("duration must fit within the availability window")
)

type AvailabilityUsecase interface {
	CreateAvailability(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	GetAvailabilities(ctx context.Context) (*dto.AvailabilityListResponse, error)
	GetAvailabilitiesByDoctor(ctx context.Context, doctorID int) (*dto.AvailabilityListResponse, error)
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	availabilityRepo repository.AvailabilityRepository
	listCache        *service.ListCache
}

// NewAvailabilityUsecase creates the availability usecase. listCache may be
// nil when Redis is disabled.
func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	availabilityRepo repository.AvailabilityRepository,
	listCache *service.ListCache,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		listCache:        listCache,
	}
}

// CreateAvailability inserts one availability window for a doctor. The window
// must be well-formed (start strictly before end, duration at most the window
// length); the duration does not have to divide the window evenly, a trailing
// partial slot is simply never offered.
func (u *availabilityUsecase) CreateAvailability(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	if _, err := time.Parse(entity.DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDateFormat
	}

	start, err := time.Parse(entity.ClockLayout, req.StartTime)
	if err != nil {
		return nil, ErrInvalidClockFormat
	}
	end, err := time.Parse(entity.ClockLayout, req.EndTime)
	if err != nil {
		return nil, ErrInvalidClockFormat
	}

	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}
	if time.Duration(req.Duration)*time.Minute > end.Sub(start) {
		return nil, ErrInvalidDuration
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.userRepo.FindByIDAndRole(tx, req.DoctorID, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	availability := &entity.Availability{
		DoctorID:  doctor.ID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Duration:  req.Duration,
	}

	if err := u.availabilityRepo.Create(tx, availability); err != nil {
		u.log.Warnf("Failed to create availability: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit availability: %+v", err)
		return nil, err
	}

	if u.listCache != nil {
		u.listCache.InvalidateAvailabilities(ctx)
	}

	return converter.AvailabilityToResponse(availability), nil
}

func (u *availabilityUsecase) GetAvailabilities(ctx context.Context) (*dto.AvailabilityListResponse, error) {
	if u.listCache != nil {
		var cached dto.AvailabilityListResponse
		if u.listCache.GetAvailabilities(ctx, &cached) {
			return &cached, nil
		}
	}

	availabilities, err := u.availabilityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find availabilities: %+v", err)
		return nil, err
	}

	response := toAvailabilityList(availabilities)

	if u.listCache != nil {
		u.listCache.SetAvailabilities(ctx, response)
	}

	return response, nil
}

func (u *availabilityUsecase) GetAvailabilitiesByDoctor(ctx context.Context, doctorID int) (*dto.AvailabilityListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.userRepo.FindByIDAndRole(db, doctorID, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	availabilities, err := u.availabilityRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find availabilities for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return toAvailabilityList(availabilities), nil
}

func toAvailabilityList(availabilities []entity.Availability) *dto.AvailabilityListResponse {
	responses := make([]dto.AvailabilityResponse, len(availabilities))
	for i, availability := range availabilities {
		responses[i] = *converter.AvailabilityToResponse(&availability)
	}
	return &dto.AvailabilityListResponse{
		Availabilities: responses,
		Total:          len(responses),
	}
}
