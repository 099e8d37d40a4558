package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"clinic-scheduler/config"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/infrastructure/database"
	"clinic-scheduler/internal/repository"
	"clinic-scheduler/internal/usecase"

	"github.com/sirupsen/logrus"
)

// Seeds the store with random doctors, patients and appointments for manual
// testing. Goes through the usecase layer so the same validation applies as
// for boundary requests.

var specialties = []string{"Cardiology", "Dermatology", "Neurology", "Pediatrics", "Radiology"}

var firstNames = []string{"John", "Jane", "Alex", "Emily", "Chris", "Katie", "Michael", "Sarah", "David", "Laura"}

var lastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}

func randomPhoneNumber() string {
	return fmt.Sprintf("+1-%d-%d-%d", 100+rand.Intn(900), 100+rand.Intn(900), 1000+rand.Intn(9000))
}

func randomEmail(name, surname string) string {
	return fmt.Sprintf("%s.%s@example.com", strings.ToLower(name), strings.ToLower(surname))
}

// Half-hour slot between 08:00 and 17:30.
func randomClock() string {
	return fmt.Sprintf("%02d:%02d", 8+rand.Intn(10), 30*rand.Intn(2))
}

func main() {
	ctx := context.Background()
	log := logrus.StandardLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := repository.NewUserRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	userUsecase := usecase.NewUserUsecase(db, log, userRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, userRepo, appointmentRepo, nil)

	var doctorIDs, patientIDs []int

	for i := 0; i < 30; i++ {
		name := firstNames[rand.Intn(len(firstNames))]
		surname := lastNames[rand.Intn(len(lastNames))]
		doctor, err := userUsecase.CreateUser(ctx, &dto.CreateUserRequest{
			Name:        name,
			Surname:     surname,
			Role:        "doctor",
			Specialty:   specialties[rand.Intn(len(specialties))],
			PhoneNumber: randomPhoneNumber(),
			Email:       randomEmail(name, surname),
		})
		if err != nil {
			log.Fatalf("Failed to create doctor: %v", err)
		}
		doctorIDs = append(doctorIDs, doctor.ID)
	}

	for i := 0; i < 50; i++ {
		name := firstNames[rand.Intn(len(firstNames))]
		surname := lastNames[rand.Intn(len(lastNames))]
		patient, err := userUsecase.CreateUser(ctx, &dto.CreateUserRequest{
			Name:        name,
			Surname:     surname,
			Role:        "patient",
			PhoneNumber: randomPhoneNumber(),
			Email:       randomEmail(name, surname),
		})
		if err != nil {
			log.Fatalf("Failed to create patient: %v", err)
		}
		patientIDs = append(patientIDs, patient.ID)
	}

	for i := 0; i < 25; i++ {
		date := time.Now().AddDate(0, 0, rand.Intn(4)).Format("2006-01-02")
		_, err := appointmentUsecase.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
			Time:      date + " " + randomClock(),
			DoctorID:  doctorIDs[rand.Intn(len(doctorIDs))],
			PatientID: patientIDs[rand.Intn(len(patientIDs))],
		})
		if err != nil {
			log.Fatalf("Failed to create appointment: %v", err)
		}
	}

	log.Info("Database populated successfully")
}
