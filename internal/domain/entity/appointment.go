package entity

// TimeLayout is the canonical appointment time format (date and time).
// All inputs are validated against it; no other encoding is accepted.
const TimeLayout = "2006-01-02 15:04"

// Appointment represents a scheduled meeting between one doctor and one
// patient at a point in time. Both sides are role-checked before insert.
// Overlapping appointments for the same doctor are not detected.
type Appointment struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Time      string `gorm:"type:varchar(16);not null" json:"time"`
	DoctorID  int    `gorm:"column:doctorID;not null;index" json:"doctorID"`
	PatientID int    `gorm:"column:patientID;not null;index" json:"patientID"`

	// Relationships
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
