package usecase

import (
	"context"
	"errors"

	"carepoint-backend/internal/converter"
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
	"carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

type CategoryUsecase interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategories(ctx context.Context) (*dto.CategoryListResponse, error)
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeactivateCategory(ctx context.Context, categoryID uuid.UUID) (*dto.CategoryResponse, error)
}

type categoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.CategoryRepository
}

func NewCategoryUsecase(db *gorm.DB, log *logrus.Logger, categoryRepo repository.CategoryRepository) CategoryUsecase {
	return &categoryUsecase{
		db:           db,
		log:          log,
		categoryRepo: categoryRepo,
	}
}

func (u *categoryUsecase) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	active := true
	category := &entity.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    &active,
	}

	if err := u.categoryRepo.Create(u.db.WithContext(ctx), category); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrCategoryAlreadyExists
		}
		u.log.Warnf("Failed to create category: %+v", err)
		return nil, err
	}

	return converter.CategoryToResponse(category), nil
}

func (u *categoryUsecase) GetCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := u.categoryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, err
	}

	return &dto.CategoryListResponse{
		Categories:      converter.CategoriesToResponses(categories),
		TotalCategories: len(categories),
	}, nil
}

func (u *categoryUsecase) GetCategory(ctx context.Context, categoryID uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), categoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	return converter.CategoryToResponse(category), nil
}

func (u *categoryUsecase) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	db := u.db.WithContext(ctx)

	category, err := u.categoryRepo.FindByID(db, categoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.IsActive != nil {
		category.IsActive = req.IsActive
	}

	if err := u.categoryRepo.Update(db, category); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrCategoryAlreadyExists
		}
		u.log.Warnf("Failed to update category: %+v", err)
		return nil, err
	}

	return converter.CategoryToResponse(category), nil
}

func (u *categoryUsecase) DeactivateCategory(ctx context.Context, categoryID uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := u.categoryRepo.Deactivate(u.db.WithContext(ctx), categoryID)
	if err != nil {
		u.log.Warnf("Failed to deactivate category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	return converter.CategoryToResponse(category), nil
}
