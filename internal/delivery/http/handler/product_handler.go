package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
	"carepoint-backend/internal/usecase"
	"carepoint-backend/pkg/response"
	"carepoint-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.CreateProduct(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrCategoryNotFound {
			response.NotFound(w, "Category not found")
			return
		}
		response.InternalServerError(w, "Failed to create product")
		return
	}

	response.Success(w, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	filter := &entity.ProductFilter{}

	query := r.URL.Query()
	if categoryID := query.Get("category_id"); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid category ID", nil)
			return
		}
		filter.CategoryID = &id
	}
	if inStock := query.Get("in_stock"); inStock != "" {
		stock := inStock == "true"
		filter.InStock = &stock
	}
	if name := query.Get("name"); name != "" {
		filter.Name = name
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	products, total, err := h.productUsecase.GetProducts(r.Context(), filter, limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to get products")
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, http.StatusOK, "Products retrieved successfully", products, &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	product, err := h.productUsecase.GetProduct(r.Context(), productID)
	if err != nil {
		if err == usecase.ErrProductNotFound {
			response.NotFound(w, "Product not found")
			return
		}
		response.InternalServerError(w, "Failed to get product")
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.UpdateProduct(r.Context(), productID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.NotFound(w, "Product not found")
		case usecase.ErrCategoryNotFound:
			response.NotFound(w, "Category not found")
		default:
			response.InternalServerError(w, "Failed to update product")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) DeactivateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	product, err := h.productUsecase.DeactivateProduct(r.Context(), productID)
	if err != nil {
		if err == usecase.ErrProductNotFound {
			response.NotFound(w, "Product not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate product")
		return
	}

	response.Success(w, http.StatusOK, "Product deactivated successfully", product)
}
