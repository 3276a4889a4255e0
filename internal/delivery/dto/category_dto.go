package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// Response DTOs

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryListResponse struct {
	Categories      []CategoryResponse `json:"categories"`
	TotalCategories int                `json:"total_categories"`
}
