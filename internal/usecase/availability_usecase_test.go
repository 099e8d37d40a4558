package usecase_test

import (
	"context"
	"testing"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doctor := f.createDoctor(t, "Ana", "Lee", "Cardiology")

	availability, err := f.availabilityUsecase.CreateAvailability(ctx, &dto.CreateAvailabilityRequest{
		DoctorID:  doctor.ID,
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "12:00",
		Duration:  30,
	})
	require.NoError(t, err)

	assert.NotZero(t, availability.ID)
	assert.Equal(t, doctor.ID, availability.DoctorID)
	assert.Equal(t, "2024-06-01", availability.Date)
	assert.Equal(t, "09:00", availability.StartTime)
	assert.Equal(t, "12:00", availability.EndTime)
	assert.Equal(t, 30, availability.Duration)
}

func TestCreateAvailabilityUnknownDoctor(t *testing.T) {
	f := newFixture(t)

	_, err := f.availabilityUsecase.CreateAvailability(context.Background(), &dto.CreateAvailabilityRequest{
		DoctorID:  999,
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "12:00",
		Duration:  30,
	})
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}

func TestCreateAvailabilityPatientRejected(t *testing.T) {
	f := newFixture(t)

	patient := f.createPatient(t, "Sam", "Fox")

	_, err := f.availabilityUsecase.CreateAvailability(context.Background(), &dto.CreateAvailabilityRequest{
		DoctorID:  patient.ID,
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "12:00",
		Duration:  30,
	})
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}

func TestCreateAvailabilityInvalidRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doctor := f.createDoctor(t, "Ana", "Lee", "Cardiology")

	tests := []struct {
		name string
		req  dto.CreateAvailabilityRequest
		want error
	}{
		{
			name: "start equals end",
			req:  dto.CreateAvailabilityRequest{DoctorID: doctor.ID, Date: "2024-06-01", StartTime: "09:00", EndTime: "09:00", Duration: 30},
			want: usecase.ErrInvalidTimeRange,
		},
		{
			name: "start after end",
			req:  dto.CreateAvailabilityRequest{DoctorID: doctor.ID, Date: "2024-06-01", StartTime: "12:00", EndTime: "09:00", Duration: 30},
			want: usecase.ErrInvalidTimeRange,
		},
		{
			name: "duration longer than window",
			req:  dto.CreateAvailabilityRequest{DoctorID: doctor.ID, Date: "2024-06-01", StartTime: "09:00", EndTime: "09:30", Duration: 45},
			want: usecase.ErrInvalidDuration,
		},
		{
			name: "bad date",
			req:  dto.CreateAvailabilityRequest{DoctorID: doctor.ID, Date: "06/01/2024", StartTime: "09:00", EndTime: "12:00", Duration: 30},
			want: usecase.ErrInvalidDateFormat,
		},
		{
			name: "bad clock",
			req:  dto.CreateAvailabilityRequest{DoctorID: doctor.ID, Date: "2024-06-01", StartTime: "9am", EndTime: "12:00", Duration: 30},
			want: usecase.ErrInvalidClockFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.availabilityUsecase.CreateAvailability(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateAvailabilityUnevenDurationAccepted(t *testing.T) {
	f := newFixture(t)

	doctor := f.createDoctor(t, "Ana", "Lee", "Cardiology")

	// 45 does not divide the 09:00-11:00 window evenly; the trailing partial
	// slot is simply never offered.
	_, err := f.availabilityUsecase.CreateAvailability(context.Background(), &dto.CreateAvailabilityRequest{
		DoctorID:  doctor.ID,
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "11:00",
		Duration:  45,
	})
	assert.NoError(t, err)
}

func TestGetAvailabilities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.createDoctor(t, "Ana", "Lee", "Cardiology")
	second := f.createDoctor(t, "Ben", "Kim", "Neurology")

	for _, doctorID := range []int{first.ID, second.ID} {
		_, err := f.availabilityUsecase.CreateAvailability(ctx, &dto.CreateAvailabilityRequest{
			DoctorID:  doctorID,
			Date:      "2024-06-01",
			StartTime: "09:00",
			EndTime:   "12:00",
			Duration:  30,
		})
		require.NoError(t, err)
	}

	list, err := f.availabilityUsecase.GetAvailabilities(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Availabilities, 2)

	byDoctor, err := f.availabilityUsecase.GetAvailabilitiesByDoctor(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, 1, byDoctor.Total)
	assert.Equal(t, first.ID, byDoctor.Availabilities[0].DoctorID)
}

func TestGetAvailabilitiesByDoctorUnknown(t *testing.T) {
	f := newFixture(t)

	_, err := f.availabilityUsecase.GetAvailabilitiesByDoctor(context.Background(), 999)
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}
