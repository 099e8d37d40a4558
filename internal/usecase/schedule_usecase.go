package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// The office works a fixed half-hour grid from 08:00 to 18:00.
const (
	dayStartMinute = 8 * 60
	dayEndMinute   = 18 * 60
	slotStepMinute = 30
)

type ScheduleUsecase interface {
	GetDailySchedule(ctx context.Context, date string) (*dto.DailyScheduleResponse, error)
}

type scheduleUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	appointmentRepo  repository.AppointmentRepository
	availabilityRepo repository.AvailabilityRepository
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	availabilityRepo repository.AvailabilityRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
	}
}

// GetDailySchedule assembles the per-doctor slot grid for one day. Only
// doctors with an availability window or an appointment on that day appear.
// A slot is booked when an appointment starts at it, available when it falls
// inside a declared window, and closed otherwise. Pure read.
func (u *scheduleUsecase) GetDailySchedule(ctx context.Context, date string) (*dto.DailyScheduleResponse, error) {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	doctors, err := u.userRepo.FindAllByRole(db, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	availabilities, err := u.availabilityRepo.FindByDate(db, date)
	if err != nil {
		u.log.Warnf("Failed to find availabilities for %s: %+v", date, err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	// Appointment times carry the date; keep only this day's.
	dayPrefix := date + " "
	bookedAt := make(map[int]map[string]bool)
	for _, appointment := range appointments {
		if !strings.HasPrefix(appointment.Time, dayPrefix) {
			continue
		}
		clock := strings.TrimPrefix(appointment.Time, dayPrefix)
		if bookedAt[appointment.DoctorID] == nil {
			bookedAt[appointment.DoctorID] = make(map[string]bool)
		}
		bookedAt[appointment.DoctorID][clock] = true
	}

	windowsByDoctor := make(map[int][]entity.Availability)
	for _, availability := range availabilities {
		windowsByDoctor[availability.DoctorID] = append(windowsByDoctor[availability.DoctorID], availability)
	}

	response := &dto.DailyScheduleResponse{
		Date:    date,
		Doctors: make([]dto.DoctorDayResponse, 0, len(doctors)),
	}

	for _, doctor := range doctors {
		windows := windowsByDoctor[doctor.ID]
		booked := bookedAt[doctor.ID]
		if len(windows) == 0 && len(booked) == 0 {
			continue
		}

		day := dto.DoctorDayResponse{
			DoctorID:  doctor.ID,
			Name:      doctor.Name,
			Surname:   doctor.Surname,
			Specialty: doctor.Specialty,
			Slots:     buildSlots(windows, booked),
		}
		response.Doctors = append(response.Doctors, day)
	}

	return response, nil
}

func buildSlots(windows []entity.Availability, booked map[string]bool) []dto.SlotResponse {
	slots := make([]dto.SlotResponse, 0, (dayEndMinute-dayStartMinute)/slotStepMinute+1)

	for minute := dayStartMinute; minute <= dayEndMinute; minute += slotStepMinute {
		clock := fmt.Sprintf("%02d:%02d", minute/60, minute%60)

		status := dto.SlotStatusClosed
		switch {
		case booked[clock]:
			status = dto.SlotStatusBooked
		case insideAnyWindow(minute, windows):
			status = dto.SlotStatusAvailable
		}

		slots = append(slots, dto.SlotResponse{Time: clock, Status: status})
	}

	return slots
}

func insideAnyWindow(minute int, windows []entity.Availability) bool {
	for _, window := range windows {
		start, errStart := clockToMinute(window.StartTime)
		end, errEnd := clockToMinute(window.EndTime)
		if errStart != nil || errEnd != nil {
			continue
		}
		if minute >= start && minute < end {
			return true
		}
	}
	return false
}

func clockToMinute(clock string) (int, error) {
	t, err := time.Parse(entity.ClockLayout, clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
