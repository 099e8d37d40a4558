package dto

// Request DTOs

type CreateAppointmentRequest struct {
	Time      string `json:"time" validate:"required"` // Format: YYYY-MM-DD HH:mm
	DoctorID  int    `json:"doctorID" validate:"required,min=1"`
	PatientID int    `json:"patientID" validate:"required,min=1"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        int    `json:"id"`
	Time      string `json:"time"`
	DoctorID  int    `json:"doctorID"`
	PatientID int    `json:"patientID"`
}

// AppointmentDetailedResponse is the flattened read view: one record per
// appointment with the joined doctor and patient fields aliased per role.
type AppointmentDetailedResponse struct {
	ID                 int    `json:"id"`
	Time               string `json:"time"`
	DoctorID           int    `json:"doctorID"`
	DoctorName         string `json:"doctorName"`
	DoctorSurname      string `json:"doctorSurname"`
	DoctorSpecialty    string `json:"doctorSpecialty,omitempty"`
	DoctorPhoneNumber  string `json:"doctorPhoneNumber"`
	DoctorEmail        string `json:"doctorEmail,omitempty"`
	PatientID          int    `json:"patientID"`
	PatientName        string `json:"patientName"`
	PatientSurname     string `json:"patientSurname"`
	PatientPhoneNumber string `json:"patientPhoneNumber"`
	PatientEmail       string `json:"patientEmail,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentDetailedResponse `json:"appointments"`
	Total        int                           `json:"total"`
}
