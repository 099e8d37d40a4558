package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its plain DTO form.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		Time:      appointment.Time,
		DoctorID:  appointment.DoctorID,
		PatientID: appointment.PatientID,
	}
}

// AppointmentToDetailedResponse flattens an appointment with its preloaded
// doctor and patient into one record, aliasing the user fields per role.
func AppointmentToDetailedResponse(appointment *entity.Appointment) *dto.AppointmentDetailedResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentDetailedResponse{
		ID:                 appointment.ID,
		Time:               appointment.Time,
		DoctorID:           appointment.DoctorID,
		DoctorName:         appointment.Doctor.Name,
		DoctorSurname:      appointment.Doctor.Surname,
		DoctorSpecialty:    appointment.Doctor.Specialty,
		DoctorPhoneNumber:  appointment.Doctor.PhoneNumber,
		DoctorEmail:        appointment.Doctor.Email,
		PatientID:          appointment.PatientID,
		PatientName:        appointment.Patient.Name,
		PatientSurname:     appointment.Patient.Surname,
		PatientPhoneNumber: appointment.Patient.PhoneNumber,
		PatientEmail:       appointment.Patient.Email,
	}
}
