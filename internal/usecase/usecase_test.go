package usecase_test

import (
	"context"
	"io"
	"testing"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/infrastructure/database"
	"clinic-scheduler/internal/repository"
	"clinic-scheduler/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// An in-memory SQLite database exists per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fixture struct {
	db                  *gorm.DB
	userUsecase         usecase.UserUsecase
	appointmentUsecase  usecase.AppointmentUsecase
	availabilityUsecase usecase.AvailabilityUsecase
	scheduleUsecase     usecase.ScheduleUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := setupTestDB(t)
	log := testLogger()

	userRepo := repository.NewUserRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	availabilityRepo := repository.NewAvailabilityRepository()

	return &fixture{
		db:                  db,
		userUsecase:         usecase.NewUserUsecase(db, log, userRepo, appointmentRepo),
		appointmentUsecase:  usecase.NewAppointmentUsecase(db, log, userRepo, appointmentRepo, nil),
		availabilityUsecase: usecase.NewAvailabilityUsecase(db, log, userRepo, availabilityRepo, nil),
		scheduleUsecase:     usecase.NewScheduleUsecase(db, log, userRepo, appointmentRepo, availabilityRepo),
	}
}

func (f *fixture) createDoctor(t *testing.T, name, surname, specialty string) *dto.UserResponse {
	t.Helper()

	doctor, err := f.userUsecase.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:        name,
		Surname:     surname,
		Role:        "doctor",
		Specialty:   specialty,
		PhoneNumber: "+1-555-0100",
	})
	require.NoError(t, err)
	return doctor
}

func (f *fixture) createPatient(t *testing.T, name, surname string) *dto.UserResponse {
	t.Helper()

	patient, err := f.userUsecase.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:        name,
		Surname:     surname,
		Role:        "patient",
		PhoneNumber: "+1-555-0200",
	})
	require.NoError(t, err)
	return patient
}
