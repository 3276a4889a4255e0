package usecase

import (
	"fmt"
	"testing"
	"time"

	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mondaySchedule(duration int) entity.DoctorSchedule {
	return entity.DoctorSchedule{
		ID:           uuid.New(),
		DayOfWeek:    "Monday",
		StartTime:    "09:00",
		EndTime:      "10:00",
		SlotDuration: duration,
	}
}

func TestExpandSchedulesSingleDay(t *testing.T) {
	doctorID := uuid.New()
	monday := date(2025, time.June, 2)

	slots := ExpandSchedules(doctorID, []entity.DoctorSchedule{mondaySchedule(15)}, monday, monday)

	require.Len(t, slots, 4)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:15", slots[0].EndTime)
	assert.Equal(t, "09:15", slots[1].StartTime)
	assert.Equal(t, "09:30", slots[2].StartTime)
	assert.Equal(t, "09:45", slots[3].StartTime)
	assert.Equal(t, "10:00", slots[3].EndTime)

	for _, slot := range slots {
		assert.Equal(t, doctorID, slot.DoctorID)
		assert.Equal(t, monday, slot.Date)
		assert.False(t, slot.IsBooked)
		assert.Nil(t, slot.AppointmentID)
	}
}

func TestExpandSchedulesDiscardsPartialTrailingSlot(t *testing.T) {
	doctorID := uuid.New()
	monday := date(2025, time.June, 2)
	schedule := mondaySchedule(15)
	schedule.EndTime = "09:50"

	slots := ExpandSchedules(doctorID, []entity.DoctorSchedule{schedule}, monday, monday)

	// 09:45 would end at 10:00, past the 09:50 window, so only three fit.
	require.Len(t, slots, 3)
	assert.Equal(t, "09:45", slots[2].EndTime)
}

func TestExpandSchedulesMatchesWeekdayOnly(t *testing.T) {
	doctorID := uuid.New()
	// Monday June 2 through Sunday June 8: exactly one Monday in range.
	slots := ExpandSchedules(doctorID, []entity.DoctorSchedule{mondaySchedule(30)},
		date(2025, time.June, 2), date(2025, time.June, 8))

	require.Len(t, slots, 2)
	for _, slot := range slots {
		assert.Equal(t, time.Monday, slot.Date.Weekday())
	}
}

func TestExpandSchedulesMultipleWeeks(t *testing.T) {
	doctorID := uuid.New()
	// Two Mondays in a two-week range.
	slots := ExpandSchedules(doctorID, []entity.DoctorSchedule{mondaySchedule(15)},
		date(2025, time.June, 2), date(2025, time.June, 15))

	assert.Len(t, slots, 8)
}

func TestExpandSchedulesReversedRangeYieldsNothing(t *testing.T) {
	slots := ExpandSchedules(uuid.New(), []entity.DoctorSchedule{mondaySchedule(15)},
		date(2025, time.June, 8), date(2025, time.June, 2))

	assert.Empty(t, slots)
}

func TestExpandSchedulesSkipsInvalidTemplates(t *testing.T) {
	doctorID := uuid.New()
	monday := date(2025, time.June, 2)

	badDuration := mondaySchedule(0)
	badClock := mondaySchedule(15)
	badClock.StartTime = "9am"

	slots := ExpandSchedules(doctorID, []entity.DoctorSchedule{badDuration, badClock}, monday, monday)

	assert.Empty(t, slots)
}

func TestExpandSchedulesZeroWidthWindow(t *testing.T) {
	doctorID := uuid.New()
	monday := date(2025, time.June, 2)
	schedule := mondaySchedule(15)
	schedule.EndTime = schedule.StartTime

	slots := ExpandSchedules(doctorID, []entity.DoctorSchedule{schedule}, monday, monday)

	assert.Empty(t, slots)
}

func TestBuildAvailabilityIDFormat(t *testing.T) {
	doctorID := uuid.New()
	day := date(2025, time.June, 2)

	id := BuildAvailabilityID(doctorID, day, "09:30")

	assert.Equal(t, fmt.Sprintf("avail-%s-2025-06-02-0930", doctorID), id)
	// Deterministic: same triple, same id.
	assert.Equal(t, id, BuildAvailabilityID(doctorID, day, "09:30"))
}

func TestBuildAvailabilityIDDistinctTriples(t *testing.T) {
	doctorID := uuid.New()
	day := date(2025, time.June, 2)

	ids := []string{
		BuildAvailabilityID(doctorID, day, "09:00"),
		BuildAvailabilityID(doctorID, day, "09:15"),
		BuildAvailabilityID(doctorID, day.AddDate(0, 0, 1), "09:00"),
		BuildAvailabilityID(uuid.New(), day, "09:00"),
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, 4)
}
