package usecase

import (
	"context"
	"errors"

	"clinic-scheduler/internal/converter"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserUsecase interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUsersWithAppointments(ctx context.Context) (*dto.UserListResponse, error)
	GetUserWithAppointments(ctx context.Context, userID int) (*dto.UserResponse, error)
}

type userUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
) UserUsecase {
	return &userUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := &entity.User{
		Name:        req.Name,
		Surname:     req.Surname,
		Role:        entity.Role(req.Role),
		Specialty:   req.Specialty,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user, nil), nil
}

// GetUsersWithAppointments returns every user augmented with the appointments
// where the user occupies the doctor or the patient side. One bulk read per
// table, grouped in memory, instead of one appointment query per user.
func (u *userUsecase) GetUsersWithAppointments(ctx context.Context) (*dto.UserListResponse, error) {
	db := u.db.WithContext(ctx)

	users, err := u.userRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	byUser := make(map[int][]entity.Appointment)
	for _, appointment := range appointments {
		byUser[appointment.DoctorID] = append(byUser[appointment.DoctorID], appointment)
		if appointment.PatientID != appointment.DoctorID {
			byUser[appointment.PatientID] = append(byUser[appointment.PatientID], appointment)
		}
	}

	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = *converter.UserToResponse(&user, byUser[user.ID])
	}

	return &dto.UserListResponse{
		Users: responses,
		Total: len(responses),
	}, nil
}

func (u *userUsecase) GetUserWithAppointments(ctx context.Context, userID int) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	appointments, err := u.appointmentRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for user %d: %+v", userID, err)
		return nil, err
	}

	return converter.UserToResponse(user, appointments), nil
}
