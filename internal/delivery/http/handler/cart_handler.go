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

type CartHandler struct {
	cartUsecase usecase.CartUsecase
	validator   *validator.CustomValidator
}

func NewCartHandler(cartUsecase usecase.CartUsecase, validator *validator.CustomValidator) *CartHandler {
	return &CartHandler{
		cartUsecase: cartUsecase,
		validator:   validator,
	}
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	// The cart always belongs to the authenticated user
	req.UserID = userID

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.cartUsecase.AddItem(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrProductNotFound {
			response.NotFound(w, "Product not found")
			return
		}
		response.InternalServerError(w, "Failed to add item to cart")
		return
	}

	response.Success(w, http.StatusCreated, "Item added to cart", result)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	cart, err := h.cartUsecase.GetCart(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get cart")
		return
	}

	response.Success(w, http.StatusOK, "Cart retrieved successfully", cart)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	productID, err := uuid.Parse(vars["productId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	var req dto.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.cartUsecase.UpdateItem(r.Context(), userID, productID, &req)
	if err != nil {
		if err == usecase.ErrCartItemNotFound {
			response.NotFound(w, "Cart item not found")
			return
		}
		response.InternalServerError(w, "Failed to update cart item")
		return
	}

	response.Success(w, http.StatusOK, "Cart item updated successfully", result)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	vars := mux.Vars(r)
	productID, err := uuid.Parse(vars["productId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	summary, err := h.cartUsecase.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		if err == usecase.ErrCartItemNotFound {
			response.NotFound(w, "Cart item not found")
			return
		}
		response.InternalServerError(w, "Failed to remove cart item")
		return
	}

	response.Success(w, http.StatusOK, "Cart item removed successfully", summary)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	if err := h.cartUsecase.ClearCart(r.Context(), userID); err != nil {
		response.InternalServerError(w, "Failed to clear cart")
		return
	}

	response.Success(w, http.StatusOK, "Cart cleared successfully", nil)
}
