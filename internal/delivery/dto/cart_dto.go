package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type AddCartItemRequest struct {
	UserID      uuid.UUID       `json:"user_id" validate:"required"`
	ProductID   uuid.UUID       `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	ImageURL    string          `json:"image_url"`
	CategoryID  *uuid.UUID      `json:"category_id"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// Response DTOs

type CartItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ImageURL    string          `json:"image_url,omitempty"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	AddedAt     time.Time       `json:"added_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CartSummaryResponse struct {
	TotalItems    int             `json:"total_items"`
	TotalQuantity int             `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

type CartResponse struct {
	UserID  uuid.UUID           `json:"user_id"`
	Items   []CartItemResponse  `json:"items"`
	Summary CartSummaryResponse `json:"summary"`
}

type CartItemMutationResponse struct {
	CartItem CartItemResponse    `json:"cart_item"`
	Summary  CartSummaryResponse `json:"summary"`
}
