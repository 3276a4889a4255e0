package converter

import (
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryToResponse converts a Category entity to its DTO
func CategoryToResponse(category *entity.Category) *dto.CategoryResponse {
	if category == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// CategoriesToResponses converts a slice of Category entities to DTOs
func CategoriesToResponses(categories []entity.Category) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToResponse(&category)
	}
	return responses
}

// ProductToResponse converts a Product entity to its DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	response := &dto.ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		CategoryID:    product.CategoryID,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		InStock:       product.InStock,
		ImageURL:      product.ImageURL,
		IsActive:      product.IsActive,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}

	if product.Category.ID != uuid.Nil {
		response.CategoryName = product.Category.Name
	}

	return response
}

// ProductsToResponses converts a slice of Product entities to DTOs
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *ProductToResponse(&product)
	}
	return responses
}
