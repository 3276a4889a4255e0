package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one product line in a user's cart. Carts are kept in Redis
// (one hash per user keyed by product id), not in Postgres.
type CartItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ImageURL    string          `json:"image_url,omitempty"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	AddedAt     time.Time       `json:"added_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CartSummary aggregates a cart's totals. Recomputed from items on every
// read so the stored items are the only source of truth.
type CartSummary struct {
	TotalItems    int             `json:"total_items"`
	TotalQuantity int             `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// Summarize computes cart totals from a list of items.
func Summarize(items []CartItem) CartSummary {
	summary := CartSummary{
		TotalItems: len(items),
		TotalPrice: decimal.Zero,
	}
	for _, item := range items {
		summary.TotalQuantity += item.Quantity
		summary.TotalPrice = summary.TotalPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return summary
}
