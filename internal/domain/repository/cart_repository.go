package repository

import (
	"context"

	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository persists carts in Redis: one hash per user, field per
// product id. Methods take a context because every call is a network
// round-trip to Redis.
type CartRepository interface {
	GetItems(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)
	GetItem(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)
	SaveItem(ctx context.Context, userID uuid.UUID, item *entity.CartItem) error
	DeleteItem(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}
