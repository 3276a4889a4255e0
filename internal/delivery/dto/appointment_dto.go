package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	UserID          uuid.UUID `json:"user_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	HospitalID      uuid.UUID `json:"hospital_id" validate:"required"`
	AvailabilityID  string    `json:"availability_id"`                      // optional, ties the booking to a generated slot
	AppointmentDate string    `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	StartTime       string    `json:"appointment_time" validate:"required"` // Format: HH:MM
	Reason          string    `json:"reason"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"omitempty"` // Format: YYYY-MM-DD
	StartTime       string `json:"appointment_time" validate:"omitempty"` // Format: HH:MM
	Status          string `json:"status" validate:"omitempty,oneof=booked cancelled completed no-show"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
	PaymentStatus   string `json:"payment_status" validate:"omitempty,oneof=pending paid refunded"`
}

type CompleteAppointmentRequest struct {
	Notes string `json:"notes"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	DoctorID        uuid.UUID       `json:"doctor_id"`
	DoctorName      string          `json:"doctor_name,omitempty"`
	HospitalID      uuid.UUID       `json:"hospital_id"`
	HospitalName    string          `json:"hospital_name,omitempty"`
	AvailabilityID  *string         `json:"availability_id,omitempty"`
	AppointmentDate string          `json:"appointment_date"`
	StartTime       string          `json:"start_time"`
	EndTime         string          `json:"end_time,omitempty"`
	Status          string          `json:"status"`
	Reason          string          `json:"reason,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	PaymentStatus   string          `json:"payment_status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments      []AppointmentResponse `json:"appointments"`
	TotalAppointments int                   `json:"totalAppointments"`
}
