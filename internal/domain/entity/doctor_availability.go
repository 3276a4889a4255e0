package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorAvailability is one concrete, dated, bookable slot derived from a
// DoctorSchedule template. AvailabilityID is derived deterministically from
// (doctor, date, start time); the unique index on it is what makes slot
// generation idempotent and safe under concurrent generate calls.
type DoctorAvailability struct {
	AvailabilityID string     `gorm:"type:varchar(100);primaryKey" json:"availability_id"`
	DoctorID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_availabilities_doctor_date" json:"doctor_id"`
	Date           time.Time  `gorm:"type:date;not null;index:idx_availabilities_doctor_date" json:"date"`
	StartTime      string     `gorm:"type:varchar(5);not null" json:"start_time"` // HH:MM
	EndTime        string     `gorm:"type:varchar(5);not null" json:"end_time"`   // HH:MM
	IsBooked       bool       `gorm:"not null;default:false;index" json:"is_booked"`
	AppointmentID  *uuid.UUID `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorAvailability) TableName() string {
	return "doctor_availabilities"
}

// Book marks the slot as taken by the given appointment.
func (a *DoctorAvailability) Book(appointmentID uuid.UUID) {
	a.IsBooked = true
	a.AppointmentID = &appointmentID
}

// Release reverses a booking, making the slot available again.
func (a *DoctorAvailability) Release() {
	a.IsBooked = false
	a.AppointmentID = nil
}

// AvailabilityFilter is a domain-level filter for querying slots.
type AvailabilityFilter struct {
	DoctorID *uuid.UUID
	Date     *time.Time
	IsBooked *bool
}
