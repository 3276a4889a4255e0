package usecase

import (
	"fmt"
	"strings"
	"time"

	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// BuildAvailabilityID derives the slot identifier from its defining triple.
// The format is avail-{doctorId}-{YYYY-MM-DD}-{HHMM}; every component is
// fixed-width or delimiter-free, so distinct inputs can never collide. The
// unique key on this value is what enforces at-most-one-slot-per-triple.
func BuildAvailabilityID(doctorID uuid.UUID, date time.Time, startTime string) string {
	return fmt.Sprintf("avail-%s-%s-%s",
		doctorID.String(),
		date.Format("2006-01-02"),
		strings.ReplaceAll(startTime, ":", ""),
	)
}

// parseClock converts a zero-padded HH:MM string to minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock converts minutes since midnight back to zero-padded HH:MM.
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ExpandSchedules walks every calendar day in [startDate, endDate] inclusive
// and expands each template whose weekday matches into discrete slots.
//
// Slots are emitted at slot-duration steps from the template's start time; a
// trailing candidate that would end past the template's end time is discarded
// rather than truncated. A reversed range (startDate after endDate) yields no
// slots. Templates with unparseable times or a non-positive duration are
// skipped. The function is pure: deduplication against already-persisted
// slots happens at insert time via the unique availability id.
func ExpandSchedules(doctorID uuid.UUID, schedules []entity.DoctorSchedule, startDate, endDate time.Time) []entity.DoctorAvailability {
	var slots []entity.DoctorAvailability

	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		dayName := entity.WeekdayNames[day.Weekday()]

		for _, schedule := range schedules {
			if schedule.DayOfWeek != dayName {
				continue
			}
			if schedule.SlotDuration <= 0 {
				continue
			}

			windowStart, err := parseClock(schedule.StartTime)
			if err != nil {
				continue
			}
			windowEnd, err := parseClock(schedule.EndTime)
			if err != nil {
				continue
			}

			for cursor := windowStart; cursor+schedule.SlotDuration <= windowEnd; cursor += schedule.SlotDuration {
				start := formatClock(cursor)
				slots = append(slots, entity.DoctorAvailability{
					AvailabilityID: BuildAvailabilityID(doctorID, day, start),
					DoctorID:       doctorID,
					Date:           day,
					StartTime:      start,
					EndTime:        formatClock(cursor + schedule.SlotDuration),
					IsBooked:       false,
				})
			}
		}
	}

	return slots
}
