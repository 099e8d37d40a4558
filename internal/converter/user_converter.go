package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

// UserToResponse converts a User entity plus its appointments to a
// UserResponse DTO. The appointments slice may be nil for a user with none;
// the response always carries a non-nil (possibly empty) list.
func UserToResponse(user *entity.User, appointments []entity.Appointment) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Surname:      user.Surname,
		Role:         string(user.Role),
		PhoneNumber:  user.PhoneNumber,
		Email:        user.Email,
		Appointments: make([]dto.AppointmentResponse, 0, len(appointments)),
	}

	// Specialty is only meaningful for doctors.
	if user.IsDoctor() {
		response.Specialty = user.Specialty
	}

	for _, appointment := range appointments {
		response.Appointments = append(response.Appointments, *AppointmentToResponse(&appointment))
	}

	return response
}
