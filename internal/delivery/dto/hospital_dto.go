package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateHospitalRequest struct {
	Name              string   `json:"name" validate:"required,min=2"`
	Street            string   `json:"street"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	ZipCode           string   `json:"zip_code"`
	Country           string   `json:"country"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email" validate:"omitempty,email"`
	Specialties       []string `json:"specialties"`
	Rating            float64  `json:"rating" validate:"gte=0,lte=5"`
	TotalBeds         int      `json:"total_beds" validate:"gte=0"`
	AvailableBeds     int      `json:"available_beds" validate:"gte=0"`
	EmergencyServices *bool    `json:"emergency_services"`
}

type UpdateHospitalRequest struct {
	Name              string   `json:"name" validate:"omitempty,min=2"`
	Street            string   `json:"street"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	ZipCode           string   `json:"zip_code"`
	Country           string   `json:"country"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email" validate:"omitempty,email"`
	Specialties       []string `json:"specialties"`
	Rating            *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	TotalBeds         *int     `json:"total_beds" validate:"omitempty,gte=0"`
	AvailableBeds     *int     `json:"available_beds" validate:"omitempty,gte=0"`
	EmergencyServices *bool    `json:"emergency_services"`
}

// Response DTOs

type HospitalResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Street            string    `json:"street,omitempty"`
	City              string    `json:"city,omitempty"`
	State             string    `json:"state,omitempty"`
	ZipCode           string    `json:"zip_code,omitempty"`
	Country           string    `json:"country,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Email             string    `json:"email,omitempty"`
	Specialties       []string  `json:"specialties,omitempty"`
	Rating            float64   `json:"rating"`
	TotalBeds         int       `json:"total_beds"`
	AvailableBeds     int       `json:"available_beds"`
	EmergencyServices bool      `json:"emergency_services"`
	IsActive          *bool     `json:"is_active,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type HospitalListResponse struct {
	Hospitals      []HospitalResponse `json:"hospitals"`
	TotalHospitals int                `json:"total_hospitals"`
}
