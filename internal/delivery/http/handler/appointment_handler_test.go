package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	deliveryHttp "clinic-scheduler/internal/delivery/http"
	"clinic-scheduler/internal/delivery/http/handler"
	"clinic-scheduler/internal/delivery/http/middleware"
	"clinic-scheduler/internal/infrastructure/database"
	"clinic-scheduler/internal/repository"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/response"
	"clinic-scheduler/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *mux.Router {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	log := logrus.New()
	log.SetOutput(io.Discard)

	customValidator := validator.NewValidator()
	userRepo := repository.NewUserRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	availabilityRepo := repository.NewAvailabilityRepository()

	userUsecase := usecase.NewUserUsecase(db, log, userRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, userRepo, appointmentRepo, nil)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, userRepo, availabilityRepo, nil)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, userRepo, appointmentRepo, availabilityRepo)

	router := deliveryHttp.NewRouter(
		handler.NewUserHandler(userUsecase, customValidator),
		handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		handler.NewAvailabilityHandler(availabilityUsecase, customValidator),
		handler.NewScheduleHandler(scheduleUsecase),
		middleware.NewLoggingMiddleware(log),
		middleware.NewCORSMiddleware(),
	)
	return router.Setup()
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var envelope response.Response
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	return recorder, envelope
}

func createUser(t *testing.T, router *mux.Router, body map[string]any) int {
	t.Helper()

	recorder, envelope := doJSON(t, router, http.MethodPost, "/api/v1/users", body)
	require.Equal(t, http.StatusCreated, recorder.Code)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	return int(data["id"].(float64))
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	router := setupRouter(t)

	doctorID := createUser(t, router, map[string]any{
		"name": "Ana", "surname": "Lee", "role": "doctor",
		"specialty": "Cardiology", "phone_number": "+1-555-0100",
	})
	patientID := createUser(t, router, map[string]any{
		"name": "Sam", "surname": "Fox", "role": "patient",
		"phone_number": "+1-555-0200",
	})

	recorder, envelope := doJSON(t, router, http.MethodPost, "/api/v1/appointments", map[string]any{
		"time": "2024-06-01 09:00", "doctorID": doctorID, "patientID": patientID,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	require.True(t, envelope.Success)

	data := envelope.Data.(map[string]any)
	assert.Equal(t, "2024-06-01 09:00", data["time"])
	assert.EqualValues(t, doctorID, data["doctorID"])
	assert.EqualValues(t, patientID, data["patientID"])
}

func TestCreateAppointmentEndpointRoleSwap(t *testing.T) {
	router := setupRouter(t)

	doctorID := createUser(t, router, map[string]any{
		"name": "Ana", "surname": "Lee", "role": "doctor",
		"specialty": "Cardiology", "phone_number": "+1-555-0100",
	})
	patientID := createUser(t, router, map[string]any{
		"name": "Sam", "surname": "Fox", "role": "patient",
		"phone_number": "+1-555-0200",
	})

	recorder, envelope := doJSON(t, router, http.MethodPost, "/api/v1/appointments", map[string]any{
		"time": "2024-06-01 09:00", "doctorID": patientID, "patientID": doctorID,
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Doctor not found", envelope.Message)
}

func TestCreateAppointmentEndpointValidation(t *testing.T) {
	router := setupRouter(t)

	// Missing all required fields.
	recorder, envelope := doJSON(t, router, http.MethodPost, "/api/v1/appointments", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Validation failed", envelope.Message)
}

func TestCreateUserEndpointValidation(t *testing.T) {
	router := setupRouter(t)

	// Role outside the enumeration is rejected at the boundary.
	recorder, envelope := doJSON(t, router, http.MethodPost, "/api/v1/users", map[string]any{
		"name": "Ana", "surname": "Lee", "role": "admin", "phone_number": "+1-555-0100",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, envelope.Success)

	// Missing phone number.
	recorder, envelope = doJSON(t, router, http.MethodPost, "/api/v1/users", map[string]any{
		"name": "Ana", "surname": "Lee", "role": "doctor",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, envelope.Success)
}

func TestGetUserEndpointNotFound(t *testing.T) {
	router := setupRouter(t)

	recorder, envelope := doJSON(t, router, http.MethodGet, "/api/v1/users/999", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.False(t, envelope.Success)
}

func TestGetUsersEndpointIncludesAppointments(t *testing.T) {
	router := setupRouter(t)

	doctorID := createUser(t, router, map[string]any{
		"name": "Ana", "surname": "Lee", "role": "doctor",
		"specialty": "Cardiology", "phone_number": "+1-555-0100",
	})
	patientID := createUser(t, router, map[string]any{
		"name": "Sam", "surname": "Fox", "role": "patient",
		"phone_number": "+1-555-0200",
	})

	recorder, _ := doJSON(t, router, http.MethodPost, "/api/v1/appointments", map[string]any{
		"time": "2024-06-01 09:00", "doctorID": doctorID, "patientID": patientID,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder, envelope := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", doctorID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	data := envelope.Data.(map[string]any)
	appointments := data["appointments"].([]any)
	assert.Len(t, appointments, 1)
}

func TestCreateAvailabilityEndpointInvalidRange(t *testing.T) {
	router := setupRouter(t)

	doctorID := createUser(t, router, map[string]any{
		"name": "Ana", "surname": "Lee", "role": "doctor",
		"specialty": "Cardiology", "phone_number": "+1-555-0100",
	})

	recorder, envelope := doJSON(t, router, http.MethodPost, "/api/v1/availabilities", map[string]any{
		"doctorID": doctorID, "date": "2024-06-01",
		"startTime": "12:00", "endTime": "09:00", "duration": 30,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, envelope.Success)
}

func TestDailyScheduleEndpoint(t *testing.T) {
	router := setupRouter(t)

	doctorID := createUser(t, router, map[string]any{
		"name": "Ana", "surname": "Lee", "role": "doctor",
		"specialty": "Cardiology", "phone_number": "+1-555-0100",
	})

	recorder, _ := doJSON(t, router, http.MethodPost, "/api/v1/availabilities", map[string]any{
		"doctorID": doctorID, "date": "2024-06-01",
		"startTime": "09:00", "endTime": "11:00", "duration": 30,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder, envelope := doJSON(t, router, http.MethodGet, "/api/v1/schedule/daily?date=2024-06-01", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	data := envelope.Data.(map[string]any)
	doctors := data["doctors"].([]any)
	require.Len(t, doctors, 1)

	recorder, envelope = doJSON(t, router, http.MethodGet, "/api/v1/schedule/daily", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, envelope.Success)
}
