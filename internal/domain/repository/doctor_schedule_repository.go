package repository

import (
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.DoctorSchedule) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorSchedule, error)
	FindAll(db *gorm.DB, filter *entity.ScheduleFilter) ([]entity.DoctorSchedule, error)
	FindActiveByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorSchedule, error)
	Update(db *gorm.DB, schedule *entity.DoctorSchedule) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
