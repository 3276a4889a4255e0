package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

// PaymentStatus constants for appointments
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Appointment represents a patient visit booked against a doctor,
// optionally tied to a generated availability slot.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_date" json:"doctor_id"`
	HospitalID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"hospital_id"`
	AvailabilityID  *string           `gorm:"type:varchar(100);index" json:"availability_id,omitempty"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index:idx_appointments_doctor_date" json:"appointment_date"`
	StartTime       string            `gorm:"type:varchar(5);not null" json:"start_time"` // HH:MM
	EndTime         string            `gorm:"type:varchar(5)" json:"end_time,omitempty"`  // HH:MM
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'booked';index" json:"status"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	ConsultationFee decimal.Decimal   `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`
	PaymentStatus   string            `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor   Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// AppointmentFilter is a domain-level filter for querying appointments.
type AppointmentFilter struct {
	UserID     *uuid.UUID
	DoctorID   *uuid.UUID
	HospitalID *uuid.UUID
	Status     string
	Date       *time.Time
}
