package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateScheduleRequest struct {
	DoctorID     uuid.UUID `json:"doctor_id" validate:"required"`
	DayOfWeek    string    `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime    string    `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime      string    `json:"end_time" validate:"required"`   // Format: HH:MM
	SlotDuration int       `json:"slot_duration" validate:"omitempty,min=5,max=240"`
}

type UpdateScheduleRequest struct {
	DayOfWeek    string `json:"day_of_week" validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime    string `json:"start_time" validate:"omitempty"` // Format: HH:MM
	EndTime      string `json:"end_time" validate:"omitempty"`   // Format: HH:MM
	SlotDuration *int   `json:"slot_duration" validate:"omitempty,min=5,max=240"`
	IsActive     *bool  `json:"is_active"`
}

// Response DTOs

type ScheduleResponse struct {
	ID           uuid.UUID       `json:"id"`
	DoctorID     uuid.UUID       `json:"doctor_id"`
	Doctor       *DoctorResponse `json:"doctor,omitempty"`
	DayOfWeek    string          `json:"day_of_week"`
	StartTime    string          `json:"start_time"`
	EndTime      string          `json:"end_time"`
	SlotDuration int             `json:"slot_duration"`
	IsActive     *bool           `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
