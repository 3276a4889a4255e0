package handler

import (
	"encoding/json"
	"net/http"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/delivery/http/middleware"
	"carepoint-backend/internal/usecase"
	"carepoint-backend/pkg/response"
	"carepoint-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
	validator    *validator.CustomValidator
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase, validator *validator.CustomValidator) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
	}
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	// Orders are always placed for the authenticated user's cart
	req.UserID = userID

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.Checkout(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrCartEmpty {
			response.Error(w, http.StatusBadRequest, "Cart is empty", nil)
			return
		}
		response.InternalServerError(w, "Failed to checkout")
		return
	}

	response.Success(w, http.StatusCreated, "Order placed successfully", order)
}

func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	orders, err := h.orderUsecase.GetOrders(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get orders")
		return
	}

	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	order, err := h.orderUsecase.GetOrder(r.Context(), orderID)
	if err != nil {
		if err == usecase.ErrOrderNotFound {
			response.NotFound(w, "Order not found")
			return
		}
		response.InternalServerError(w, "Failed to get order")
		return
	}

	response.Success(w, http.StatusOK, "Order retrieved successfully", order)
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.orderUsecase.UpdateOrderStatus(r.Context(), orderID, &req)
	if err != nil {
		if err == usecase.ErrOrderNotFound {
			response.NotFound(w, "Order not found")
			return
		}
		response.InternalServerError(w, "Failed to update order status")
		return
	}

	response.Success(w, http.StatusOK, "Order status updated successfully", order)
}
