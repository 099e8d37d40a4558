package dto

// Request DTOs

type CreateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=doctor patient"`
	Specialty   string `json:"specialty" validate:"omitempty,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type UserResponse struct {
	ID           int                   `json:"id"`
	Name         string                `json:"name"`
	Surname      string                `json:"surname"`
	Role         string                `json:"role"`
	Specialty    string                `json:"specialty,omitempty"`
	PhoneNumber  string                `json:"phone_number"`
	Email        string                `json:"email,omitempty"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
