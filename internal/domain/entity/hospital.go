package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Hospital represents a registered hospital and its facilities
type Hospital struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name              string     `gorm:"type:varchar(255);not null;index" json:"name"`
	Street            string     `gorm:"type:varchar(255)" json:"street,omitempty"`
	City              string     `gorm:"type:varchar(100);index" json:"city,omitempty"`
	State             string     `gorm:"type:varchar(100)" json:"state,omitempty"`
	ZipCode           string     `gorm:"type:varchar(20)" json:"zip_code,omitempty"`
	Country           string     `gorm:"type:varchar(100)" json:"country,omitempty"`
	Phone             string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email             string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Specialties       StringList `gorm:"type:jsonb" json:"specialties,omitempty"`
	Rating            float64    `gorm:"type:decimal(2,1);default:0" json:"rating"`
	TotalBeds         int        `gorm:"default:0" json:"total_beds"`
	AvailableBeds     int        `gorm:"default:0" json:"available_beds"`
	EmergencyServices bool       `gorm:"not null;default:true" json:"emergency_services"`
	IsActive          *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:HospitalID" json:"doctors,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

// StringList type for GORM JSONB-backed string arrays
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (s StringList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := []string{}
	err := json.Unmarshal(bytes, &result)
	*s = StringList(result)
	return err
}

// HospitalFilter is a domain-level filter for querying hospitals.
type HospitalFilter struct {
	City              string // Filter by address city (ILIKE)
	Specialty         string // Filter hospitals carrying this specialty
	EmergencyServices *bool
	IsActive          *bool
}
