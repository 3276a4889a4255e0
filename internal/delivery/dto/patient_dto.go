package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=2"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone" validate:"required"`
	Gender      string    `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth string    `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Address     string    `json:"address"`
}

type UpdatePatientRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Address     string `json:"address"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Gender      string    `json:"gender,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Address     string    `json:"address,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients      []PatientResponse `json:"patients"`
	TotalPatients int               `json:"total_patients"`
}
