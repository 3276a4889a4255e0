package repository

import (
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
