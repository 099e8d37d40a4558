package dto

// Slot statuses for the daily schedule view.
const (
	SlotStatusBooked    = "booked"
	SlotStatusAvailable = "available"
	SlotStatusClosed    = "closed"
)

type SlotResponse struct {
	Time   string `json:"time"` // Format: HH:mm
	Status string `json:"status"`
}

// DoctorDayResponse is one doctor's column in the daily grid.
type DoctorDayResponse struct {
	DoctorID  int            `json:"doctorID"`
	Name      string         `json:"name"`
	Surname   string         `json:"surname"`
	Specialty string         `json:"specialty,omitempty"`
	Slots     []SlotResponse `json:"slots"`
}

type DailyScheduleResponse struct {
	Date    string              `json:"date"`
	Doctors []DoctorDayResponse `json:"doctors"`
}
