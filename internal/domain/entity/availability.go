package entity

const (
	// DateLayout is the canonical availability date format.
	DateLayout = "2006-01-02"
	// ClockLayout is the canonical format for window start and end times.
	ClockLayout = "15:04"
)

// Availability represents a time window in which a doctor accepts
// appointments, with a slot granularity in minutes. Windows are not
// reconciled against existing appointments.
type Availability struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int    `gorm:"column:doctorID;not null;index" json:"doctorID"`
	Date      string `gorm:"type:varchar(10);not null;index" json:"date"`
	StartTime string `gorm:"column:startTime;type:varchar(5);not null" json:"startTime"`
	EndTime   string `gorm:"column:endTime;type:varchar(5);not null" json:"endTime"`
	Duration  int    `gorm:"not null" json:"duration"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Availability) TableName() string {
	return "availabilities"
}
