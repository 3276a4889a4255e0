package repository

import (
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorAvailabilityRepository interface {
	// BulkInsertIgnoreConflicts inserts slots in a single statement, skipping
	// rows whose availability_id already exists. Returns the number of rows
	// actually inserted.
	BulkInsertIgnoreConflicts(db *gorm.DB, slots []entity.DoctorAvailability) (int64, error)
	FindAll(db *gorm.DB, filter *entity.AvailabilityFilter) ([]entity.DoctorAvailability, error)
	FindByAvailabilityID(db *gorm.DB, availabilityID string) (*entity.DoctorAvailability, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.DoctorAvailability, error)
	// Claim marks a slot as booked only if it is still free. Returns false
	// when another appointment claimed it first.
	Claim(db *gorm.DB, availabilityID string, appointmentID uuid.UUID) (bool, error)
	Update(db *gorm.DB, slot *entity.DoctorAvailability) error
	Delete(db *gorm.DB, availabilityID string) (int64, error)
}
