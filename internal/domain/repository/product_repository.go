package repository

import (
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(db *gorm.DB, product *entity.Product) error
	FindAll(db *gorm.DB, filter *entity.ProductFilter, limit, offset int) ([]entity.Product, int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Product, error)
	Update(db *gorm.DB, product *entity.Product) error
	Deactivate(db *gorm.DB, id uuid.UUID) (*entity.Product, error)
}
