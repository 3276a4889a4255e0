package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type GenerateAvailabilityRequest struct {
	DoctorID  string `json:"doctorId" validate:"required"`
	StartDate string `json:"startDate" validate:"required"` // Format: YYYY-MM-DD
	EndDate   string `json:"endDate" validate:"required"`   // Format: YYYY-MM-DD
}

type UpdateAvailabilityRequest struct {
	StartTime     string     `json:"start_time" validate:"omitempty"` // Format: HH:MM
	EndTime       string     `json:"end_time" validate:"omitempty"`   // Format: HH:MM
	IsBooked      *bool      `json:"is_booked"`
	AppointmentID *uuid.UUID `json:"appointment_id"`
}

// Response DTOs

type GenerateAvailabilityResponse struct {
	GeneratedSlots int `json:"generatedSlots"`
}

type AvailabilityResponse struct {
	AvailabilityID string     `json:"availability_id"`
	DoctorID       uuid.UUID  `json:"doctor_id"`
	Date           string     `json:"date"` // Format: YYYY-MM-DD
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	IsBooked       bool       `json:"is_booked"`
	AppointmentID  *uuid.UUID `json:"appointment_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type AvailabilityListResponse struct {
	Availabilities      []AvailabilityResponse `json:"availabilities"`
	TotalAvailabilities int                    `json:"totalAvailabilities"`
}
