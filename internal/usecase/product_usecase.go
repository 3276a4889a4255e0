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

var ErrProductNotFound = errors.New("product not found")

type ProductUsecase interface {
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProducts(ctx context.Context, filter *entity.ProductFilter, limit, offset int) (*dto.ProductListResponse, int64, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeactivateProduct(ctx context.Context, productID uuid.UUID) (*dto.ProductResponse, error)
}

type productUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) ProductUsecase {
	return &productUsecase{
		db:           db,
		log:          log,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (u *productUsecase) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	db := u.db.WithContext(ctx)

	// Validate category exists
	category, err := u.categoryRepo.FindByID(db, req.CategoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	active := true
	product := &entity.Product{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		InStock:       req.StockQuantity > 0,
		ImageURL:      req.ImageURL,
		IsActive:      &active,
	}

	if err := u.productRepo.Create(db, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetProducts(ctx context.Context, filter *entity.ProductFilter, limit, offset int) (*dto.ProductListResponse, int64, error) {
	products, total, err := u.productRepo.FindAll(u.db.WithContext(ctx), filter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find products: %+v", err)
		return nil, 0, err
	}

	return &dto.ProductListResponse{
		Products: converter.ProductsToResponses(products),
	}, total, nil
}

func (u *productUsecase) GetProduct(ctx context.Context, productID uuid.UUID) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(u.db.WithContext(ctx), productID)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) UpdateProduct(ctx context.Context, productID uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	db := u.db.WithContext(ctx)

	product, err := u.productRepo.FindByID(db, productID)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.CategoryID != nil {
		category, err := u.categoryRepo.FindByID(db, *req.CategoryID)
		if err != nil {
			u.log.Warnf("Failed to find category: %+v", err)
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
		product.InStock = *req.StockQuantity > 0
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}

	if err := u.productRepo.Update(db, product); err != nil {
		u.log.Warnf("Failed to update product: %+v", err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) DeactivateProduct(ctx context.Context, productID uuid.UUID) (*dto.ProductResponse, error) {
	product, err := u.productRepo.Deactivate(u.db.WithContext(ctx), productID)
	if err != nil {
		u.log.Warnf("Failed to deactivate product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}
