package usecase

import (
	"context"
	"testing"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleFixture() (DoctorScheduleUsecase, *fakeScheduleRepo, uuid.UUID) {
	doctorID := uuid.New()
	scheduleRepo := &fakeScheduleRepo{schedules: map[uuid.UUID][]entity.DoctorSchedule{}}
	doctorRepo := &fakeDoctorRepo{doctors: map[uuid.UUID]entity.Doctor{
		doctorID: {ID: doctorID, Name: "Dr. Tanaka"},
	}}
	uc := NewDoctorScheduleUsecase(testDB(), testLogger(), scheduleRepo, doctorRepo)
	return uc, scheduleRepo, doctorID
}

func TestCreateScheduleDefaultsSlotDuration(t *testing.T) {
	uc, _, doctorID := newScheduleFixture()

	result, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  doctorID,
		DayOfWeek: "Monday",
		StartTime: "09:00",
		EndTime:   "17:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 15, result.SlotDuration)
	require.NotNil(t, result.IsActive)
	assert.True(t, *result.IsActive)
}

func TestCreateScheduleUnknownDoctor(t *testing.T) {
	uc, _, _ := newScheduleFixture()

	_, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  uuid.New(),
		DayOfWeek: "Monday",
		StartTime: "09:00",
		EndTime:   "17:00",
	})

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCreateScheduleRejectsBadWindow(t *testing.T) {
	uc, _, doctorID := newScheduleFixture()

	cases := []struct {
		name       string
		start, end string
		want       error
	}{
		{"bad start format", "9am", "17:00", ErrInvalidTimeFormat},
		{"bad end format", "09:00", "late", ErrInvalidTimeFormat},
		{"inverted window", "17:00", "09:00", ErrInvalidTimeRange},
		{"zero-width window", "09:00", "09:00", ErrInvalidTimeRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
				DoctorID:  doctorID,
				DayOfWeek: "Monday",
				StartTime: tc.start,
				EndTime:   tc.end,
			})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUpdateScheduleRevalidatesMergedWindow(t *testing.T) {
	uc, _, doctorID := newScheduleFixture()

	created, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  doctorID,
		DayOfWeek: "Monday",
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	// New start alone would invert the stored window.
	_, err = uc.UpdateSchedule(context.Background(), created.ID, &dto.UpdateScheduleRequest{
		StartTime: "13:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	updated, err := uc.UpdateSchedule(context.Background(), created.ID, &dto.UpdateScheduleRequest{
		StartTime: "13:00",
		EndTime:   "18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "13:00", updated.StartTime)
	assert.Equal(t, "18:00", updated.EndTime)
}

func TestDeleteSchedule(t *testing.T) {
	uc, repo, doctorID := newScheduleFixture()

	created, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  doctorID,
		DayOfWeek: "Friday",
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteSchedule(context.Background(), created.ID))
	assert.Empty(t, repo.schedules[doctorID])

	err = uc.DeleteSchedule(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestGetScheduleNotFound(t *testing.T) {
	uc, _, _ := newScheduleFixture()

	_, err := uc.GetSchedule(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
