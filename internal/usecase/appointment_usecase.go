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
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrInvalidTimeFormat = errors.New("invalid appointment time, use YYYY-MM-DD HH:mm")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointmentsDetailed(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	listCache       *service.ListCache
}

// NewAppointmentUsecase creates the appointment usecase. listCache may be nil
// when Redis is disabled.
func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	listCache *service.ListCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		listCache:       listCache,
	}
}

// CreateAppointment inserts one appointment after checking both role-typed
// foreign keys. The validation and the insert share one transaction, so a
// failed check never leaves a partial write. Overlapping appointments for the
// same doctor are not detected.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if _, err := time.Parse(entity.TimeLayout, req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
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

	patient, err := u.userRepo.FindByIDAndRole(tx, req.PatientID, entity.RolePatient)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointment := &entity.Appointment{
		Time:      req.Time,
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit appointment: %+v", err)
		return nil, err
	}

	if u.listCache != nil {
		u.listCache.InvalidateAppointments(ctx)
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetAppointmentsDetailed returns every appointment flattened with the joined
// doctor and patient fields, one record per appointment row.
func (u *appointmentUsecase) GetAppointmentsDetailed(ctx context.Context) (*dto.AppointmentListResponse, error) {
	if u.listCache != nil {
		var cached dto.AppointmentListResponse
		if u.listCache.GetAppointments(ctx, &cached) {
			return &cached, nil
		}
	}

	appointments, err := u.appointmentRepo.FindAllDetailed(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	responses := make([]dto.AppointmentDetailedResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *converter.AppointmentToDetailedResponse(&appointment)
	}

	response := &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}

	if u.listCache != nil {
		u.listCache.SetAppointments(ctx, response)
	}

	return response, nil
}
