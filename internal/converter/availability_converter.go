package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

// AvailabilityToResponse converts an Availability entity to its DTO form.
func AvailabilityToResponse(availability *entity.Availability) *dto.AvailabilityResponse {
	if availability == nil {
		return nil
	}

	return &dto.AvailabilityResponse{
		ID:        availability.ID,
		DoctorID:  availability.DoctorID,
		Date:      availability.Date,
		StartTime: availability.StartTime,
		EndTime:   availability.EndTime,
		Duration:  availability.Duration,
	}
}
