package repository

import (
	"errors"

	"carepoint-backend/internal/domain/entity"
	domainRepo "carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorAvailabilityRepository struct{}

func NewDoctorAvailabilityRepository() domainRepo.DoctorAvailabilityRepository {
	return &doctorAvailabilityRepository{}
}

// BulkInsertIgnoreConflicts relies on the primary key on availability_id:
// rows already present are skipped by ON CONFLICT DO NOTHING, so re-running
// generation for an overlapping range inserts nothing and two concurrent
// generate calls cannot create duplicates. The whole range goes in as one
// statement, so a failure leaves no partial state.
func (r *doctorAvailabilityRepository) BulkInsertIgnoreConflicts(db *gorm.DB, slots []entity.DoctorAvailability) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "availability_id"}},
		DoNothing: true,
	}).Create(&slots)
	return result.RowsAffected, result.Error
}

func (r *doctorAvailabilityRepository) FindAll(db *gorm.DB, filter *entity.AvailabilityFilter) ([]entity.DoctorAvailability, error) {
	var slots []entity.DoctorAvailability
	query := db
	if filter != nil {
		if filter.DoctorID != nil {
			query = query.Where("doctor_id = ?", *filter.DoctorID)
		}
		if filter.Date != nil {
			query = query.Where("date = ?", filter.Date.Format("2006-01-02"))
		}
		if filter.IsBooked != nil {
			query = query.Where("is_booked = ?", *filter.IsBooked)
		}
	}
	err := query.Order("date ASC, start_time ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *doctorAvailabilityRepository) FindByAvailabilityID(db *gorm.DB, availabilityID string) (*entity.DoctorAvailability, error) {
	var slot entity.DoctorAvailability
	err := db.Where("availability_id = ?", availabilityID).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *doctorAvailabilityRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.DoctorAvailability, error) {
	var slot entity.DoctorAvailability
	err := db.Where("appointment_id = ?", appointmentID).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// Claim is a conditional update keyed on is_booked = false, so of two
// concurrent bookings of the same slot exactly one sees RowsAffected = 1.
func (r *doctorAvailabilityRepository) Claim(db *gorm.DB, availabilityID string, appointmentID uuid.UUID) (bool, error) {
	result := db.Model(&entity.DoctorAvailability{}).
		Where("availability_id = ? AND is_booked = ?", availabilityID, false).
		Updates(map[string]interface{}{
			"is_booked":      true,
			"appointment_id": appointmentID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *doctorAvailabilityRepository) Update(db *gorm.DB, slot *entity.DoctorAvailability) error {
	// Explicit column list so is_booked=false and appointment_id=NULL are
	// written instead of being skipped as zero values.
	return db.Model(slot).Select("is_booked", "appointment_id", "start_time", "end_time", "date").Updates(slot).Error
}

func (r *doctorAvailabilityRepository) Delete(db *gorm.DB, availabilityID string) (int64, error) {
	affected := db.Where("availability_id = ?", availabilityID).Delete(&entity.DoctorAvailability{})
	return affected.RowsAffected, affected.Error
}
