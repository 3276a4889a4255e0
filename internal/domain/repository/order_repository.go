package repository

import (
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(db *gorm.DB, order *entity.Order) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Order, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Order, error)
	Update(db *gorm.DB, order *entity.Order) error
}
