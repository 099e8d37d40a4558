package dto

// Request DTOs

type CreateAvailabilityRequest struct {
	DoctorID  int    `json:"doctorID" validate:"required,min=1"`
	Date      string `json:"date" validate:"required"`      // Format: YYYY-MM-DD
	StartTime string `json:"startTime" validate:"required"` // Format: HH:mm
	EndTime   string `json:"endTime" validate:"required"`   // Format: HH:mm
	Duration  int    `json:"duration" validate:"required,min=1"`
}

// Response DTOs

type AvailabilityResponse struct {
	ID        int    `json:"id"`
	DoctorID  int    `json:"doctorID"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
}

type AvailabilityListResponse struct {
	Availabilities []AvailabilityResponse `json:"availabilities"`
	Total          int                    `json:"total"`
}
