package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=2"`
	CategoryID    uuid.UUID       `json:"category_id" validate:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
	ImageURL      string          `json:"image_url"`
}

type UpdateProductRequest struct {
	Name          string           `json:"name" validate:"omitempty,min=2"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	Description   string           `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,gte=0"`
	InStock       *bool            `json:"in_stock"`
	ImageURL      string           `json:"image_url"`
}

// Response DTOs

type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	CategoryID    uuid.UUID       `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	InStock       bool            `json:"in_stock"`
	ImageURL      string          `json:"image_url,omitempty"`
	IsActive      *bool           `json:"is_active,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
