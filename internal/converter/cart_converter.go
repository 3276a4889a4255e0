package converter

import (
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
)

// CartItemToResponse converts a CartItem entity to its DTO
func CartItemToResponse(item *entity.CartItem) *dto.CartItemResponse {
	if item == nil {
		return nil
	}
	return &dto.CartItemResponse{
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Price:       item.Price,
		Quantity:    item.Quantity,
		ImageURL:    item.ImageURL,
		CategoryID:  item.CategoryID,
		AddedAt:     item.AddedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// CartItemsToResponses converts a slice of CartItem entities to DTOs
func CartItemsToResponses(items []entity.CartItem) []dto.CartItemResponse {
	responses := make([]dto.CartItemResponse, len(items))
	for i, item := range items {
		responses[i] = *CartItemToResponse(&item)
	}
	return responses
}

// CartSummaryToResponse converts a CartSummary to its DTO
func CartSummaryToResponse(summary entity.CartSummary) dto.CartSummaryResponse {
	return dto.CartSummaryResponse{
		TotalItems:    summary.TotalItems,
		TotalQuantity: summary.TotalQuantity,
		TotalPrice:    summary.TotalPrice,
	}
}
