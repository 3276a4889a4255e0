package converter

import (
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleToResponse converts a DoctorSchedule entity to ScheduleResponse DTO
func ScheduleToResponse(schedule *entity.DoctorSchedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	response := &dto.ScheduleResponse{
		ID:           schedule.ID,
		DoctorID:     schedule.DoctorID,
		DayOfWeek:    schedule.DayOfWeek,
		StartTime:    schedule.StartTime,
		EndTime:      schedule.EndTime,
		SlotDuration: schedule.SlotDuration,
		IsActive:     schedule.IsActive,
		CreatedAt:    schedule.CreatedAt,
		UpdatedAt:    schedule.UpdatedAt,
	}

	// Include doctor info if preloaded
	if schedule.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToResponse(&schedule.Doctor)
	}

	return response
}

// SchedulesToResponses converts a slice of DoctorSchedule entities to DTOs
func SchedulesToResponses(schedules []entity.DoctorSchedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = *ScheduleToResponse(&schedule)
	}
	return responses
}
