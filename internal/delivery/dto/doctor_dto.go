package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name            string          `json:"name" validate:"required,min=2"`
	Specialty       string          `json:"specialty" validate:"required"`
	HospitalID      uuid.UUID       `json:"hospital_id" validate:"required"`
	Qualification   string          `json:"qualification"`
	ExperienceYears int             `json:"experience_years" validate:"gte=0"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email" validate:"omitempty,email"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

type UpdateDoctorRequest struct {
	Name            string           `json:"name" validate:"omitempty,min=2"`
	Specialty       string           `json:"specialty"`
	HospitalID      *uuid.UUID       `json:"hospital_id"`
	Qualification   string           `json:"qualification"`
	ExperienceYears *int             `json:"experience_years" validate:"omitempty,gte=0"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email" validate:"omitempty,email"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee"`
	Rating          *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Specialty       string            `json:"specialty"`
	HospitalID      uuid.UUID         `json:"hospital_id"`
	Hospital        *HospitalResponse `json:"hospital,omitempty"`
	Qualification   string            `json:"qualification,omitempty"`
	ExperienceYears int               `json:"experience_years"`
	Phone           string            `json:"phone,omitempty"`
	Email           string            `json:"email,omitempty"`
	ConsultationFee decimal.Decimal   `json:"consultation_fee"`
	Rating          float64           `json:"rating"`
	IsActive        *bool             `json:"is_active,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors      []DoctorResponse `json:"doctors"`
	TotalDoctors int              `json:"total_doctors"`
}
