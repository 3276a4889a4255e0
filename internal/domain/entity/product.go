package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a pharmacy catalog item
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null;index" json:"name"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_products_category_stock" json:"category_id"`
	Description   string          `gorm:"type:text" json:"description,omitempty"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int             `gorm:"default:0" json:"stock_quantity"`
	InStock       bool            `gorm:"not null;default:true;index:idx_products_category_stock" json:"in_stock"`
	ImageURL      string          `gorm:"type:text" json:"image_url,omitempty"`
	IsActive      *bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// ProductFilter is a domain-level filter for querying products.
type ProductFilter struct {
	CategoryID *uuid.UUID
	InStock    *bool
	Name       string // ILIKE match
	IsActive   *bool
}
