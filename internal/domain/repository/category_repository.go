package repository

import (
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(db *gorm.DB, category *entity.Category) error
	FindAll(db *gorm.DB) ([]entity.Category, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Category, error)
	Update(db *gorm.DB, category *entity.Category) error
	Deactivate(db *gorm.DB, id uuid.UUID) (*entity.Category, error)
}
