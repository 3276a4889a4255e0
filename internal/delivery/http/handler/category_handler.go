package handler

import (
	"encoding/json"
	"net/http"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/usecase"
	"carepoint-backend/pkg/response"
	"carepoint-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUsecase
	validator       *validator.CustomValidator
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUsecase, validator *validator.CustomValidator) *CategoryHandler {
	return &CategoryHandler{
		categoryUsecase: categoryUsecase,
		validator:       validator,
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.categoryUsecase.CreateCategory(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrCategoryAlreadyExists {
			response.Conflict(w, "Category already exists")
			return
		}
		response.InternalServerError(w, "Failed to create category")
		return
	}

	response.Success(w, http.StatusCreated, "Category created successfully", category)
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUsecase.GetCategories(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get categories")
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid category ID", nil)
		return
	}

	category, err := h.categoryUsecase.GetCategory(r.Context(), categoryID)
	if err != nil {
		if err == usecase.ErrCategoryNotFound {
			response.NotFound(w, "Category not found")
			return
		}
		response.InternalServerError(w, "Failed to get category")
		return
	}

	response.Success(w, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid category ID", nil)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.categoryUsecase.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCategoryNotFound:
			response.NotFound(w, "Category not found")
		case usecase.ErrCategoryAlreadyExists:
			response.Conflict(w, "Category already exists")
		default:
			response.InternalServerError(w, "Failed to update category")
		}
		return
	}

	response.Success(w, http.StatusOK, "Category updated successfully", category)
}

func (h *CategoryHandler) DeactivateCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid category ID", nil)
		return
	}

	category, err := h.categoryUsecase.DeactivateCategory(r.Context(), categoryID)
	if err != nil {
		if err == usecase.ErrCategoryNotFound {
			response.NotFound(w, "Category not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate category")
		return
	}

	response.Success(w, http.StatusOK, "Category deactivated successfully", category)
}
