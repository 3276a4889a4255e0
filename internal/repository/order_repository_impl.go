package repository

import (
	"errors"

	"carepoint-backend/internal/domain/entity"
	domainRepo "carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct{}

func NewOrderRepository() domainRepo.OrderRepository {
	return &orderRepository{}
}

// Create inserts the order and its items in one go; gorm cascades the
// association because OrderItem carries OrderID.
func (r *orderRepository) Create(db *gorm.DB, order *entity.Order) error {
	return db.Create(order).Error
}

func (r *orderRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.Preload("Items").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := db.Preload("Items").Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Update(db *gorm.DB, order *entity.Order) error {
	return db.Omit("Items").Save(order).Error
}
