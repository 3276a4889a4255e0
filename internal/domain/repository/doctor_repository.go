package repository

import (
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Deactivate(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
}
