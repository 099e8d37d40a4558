package http

import (
	"net/http"

	"clinic-scheduler/internal/delivery/http/handler"
	"clinic-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	userHandler         *handler.UserHandler
	appointmentHandler  *handler.AppointmentHandler
	availabilityHandler *handler.AvailabilityHandler
	scheduleHandler     *handler.ScheduleHandler
	loggingMiddleware   *middleware.LoggingMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	availabilityHandler *handler.AvailabilityHandler,
	scheduleHandler *handler.ScheduleHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		userHandler:         userHandler,
		appointmentHandler:  appointmentHandler,
		availabilityHandler: availabilityHandler,
		scheduleHandler:     scheduleHandler,
		loggingMiddleware:   loggingMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Users: create and read only, there is no update or delete
	api.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users", r.userHandler.GetUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)

	// Availabilities
	api.HandleFunc("/availabilities", r.availabilityHandler.CreateAvailability).Methods(http.MethodPost)
	api.HandleFunc("/availabilities", r.availabilityHandler.GetAvailabilities).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/availabilities", r.availabilityHandler.GetAvailabilitiesByDoctor).Methods(http.MethodGet)

	// Daily schedule view
	api.HandleFunc("/schedule/daily", r.scheduleHandler.GetDailySchedule).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
