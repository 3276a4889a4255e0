package converter

import (
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
)

// OrderToResponse converts an Order entity (with items) to its DTO
func OrderToResponse(order *entity.Order) *dto.OrderResponse {
	if order == nil {
		return nil
	}

	items := make([]dto.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		}
	}

	return &dto.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Status:        string(order.Status),
		TotalAmount:   order.TotalAmount,
		Items:         items,
		Street:        order.Street,
		City:          order.City,
		State:         order.State,
		ZipCode:       order.ZipCode,
		Country:       order.Country,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

// OrdersToResponses converts a slice of Order entities to DTOs
func OrdersToResponses(orders []entity.Order) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = *OrderToResponse(&order)
	}
	return responses
}
