package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CheckoutRequest struct {
	UserID        uuid.UUID `json:"user_id" validate:"required"`
	Street        string    `json:"street"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	Country       string    `json:"country"`
	PaymentMethod string    `json:"payment_method" validate:"omitempty,oneof=credit_card debit_card paypal cash_on_delivery"`
}

type UpdateOrderStatusRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending paid failed refunded"`
}

// Response DTOs

type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	UserID        uuid.UUID           `json:"user_id"`
	Status        string              `json:"status"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Items         []OrderItemResponse `json:"items"`
	Street        string              `json:"street,omitempty"`
	City          string              `json:"city,omitempty"`
	State         string              `json:"state,omitempty"`
	ZipCode       string              `json:"zip_code,omitempty"`
	Country       string              `json:"country,omitempty"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type OrderListResponse struct {
	Orders      []OrderResponse `json:"orders"`
	TotalOrders int             `json:"total_orders"`
}
