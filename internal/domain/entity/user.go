package entity

// Role is the fixed category of a user; it constrains which foreign-key
// slots the user may occupy on appointments and availabilities.
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// User represents a doctor or a patient of the office.
// Users are append-only: there is no update or delete operation.
type User struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Surname     string `gorm:"type:varchar(255);not null" json:"surname"`
	Role        Role   `gorm:"type:varchar(10);not null;index" json:"role"`
	Specialty   string `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	PhoneNumber string `gorm:"column:phone_number;type:varchar(30);not null" json:"phone_number"`
	Email       string `gorm:"type:varchar(255)" json:"email,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor reports whether the user holds the doctor role.
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// IsPatient reports whether the user holds the patient role.
func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}
