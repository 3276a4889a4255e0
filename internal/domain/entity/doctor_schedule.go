package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorSchedule represents a recurring weekly availability template.
// Slots are expanded from templates by the availability generator;
// the template itself holds no dated state.
type DoctorSchedule struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;index:idx_schedules_doctor_day" json:"doctor_id"`
	DayOfWeek    string    `gorm:"type:varchar(10);not null;index:idx_schedules_doctor_day" json:"day_of_week"`
	StartTime    string    `gorm:"type:varchar(5);not null" json:"start_time"` // HH:MM
	EndTime      string    `gorm:"type:varchar(5);not null" json:"end_time"`   // HH:MM
	SlotDuration int       `gorm:"not null;default:15" json:"slot_duration"`   // minutes
	IsActive     *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}

// WeekdayNames is the fixed English weekday table used everywhere a
// calendar date is matched against a template. Indexed by time.Weekday
// so matching never depends on locale-sensitive formatting.
var WeekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// IsValidWeekday reports whether name is one of the seven canonical names.
func IsValidWeekday(name string) bool {
	for _, d := range WeekdayNames {
		if d == name {
			return true
		}
	}
	return false
}

// ScheduleFilter is a domain-level filter for querying schedule templates.
type ScheduleFilter struct {
	DoctorID  *uuid.UUID
	DayOfWeek string
	IsActive  *bool
}
