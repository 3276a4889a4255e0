package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor represents a practicing doctor attached to a hospital
type Doctor struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	Name            string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Specialty       string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	HospitalID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"hospital_id"`
	Qualification   string          `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	ExperienceYears int             `gorm:"default:0" json:"experience_years"`
	Phone           string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email           string          `gorm:"type:varchar(255)" json:"email,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`
	Rating          float64         `gorm:"type:decimal(2,1);default:0" json:"rating"`
	IsActive        *bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hospital  Hospital         `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Schedules []DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorFilter is a domain-level filter for querying doctors.
type DoctorFilter struct {
	Specialty  string     // ILIKE match
	HospitalID *uuid.UUID //
	Name       string     // ILIKE match
	IsActive   *bool
}
