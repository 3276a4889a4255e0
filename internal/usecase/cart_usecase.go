package usecase

import (
	"context"
	"errors"
	"time"

	"carepoint-backend/internal/converter"
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
	"carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartUsecase interface {
	AddItem(ctx context.Context, req *dto.AddCartItemRequest) (*dto.CartItemMutationResponse, error)
	GetCart(ctx context.Context, userID uuid.UUID) (*dto.CartResponse, error)
	UpdateItem(ctx context.Context, userID, productID uuid.UUID, req *dto.UpdateCartItemRequest) (*dto.CartItemMutationResponse, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*dto.CartSummaryResponse, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) CartUsecase {
	return &cartUsecase{
		db:          db,
		log:         log,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts a product in the user's cart. Adding a product that is
// already present merges the quantities instead of duplicating the line.
func (u *cartUsecase) AddItem(ctx context.Context, req *dto.AddCartItemRequest) (*dto.CartItemMutationResponse, error) {
	// Validate product exists in the catalog
	product, err := u.productRepo.FindByID(u.db.WithContext(ctx), req.ProductID)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	now := time.Now()
	item := &entity.CartItem{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		AddedAt:     now,
		UpdatedAt:   now,
	}

	existing, err := u.cartRepo.GetItem(ctx, req.UserID, req.ProductID)
	if err != nil {
		u.log.Warnf("Failed to read cart item: %+v", err)
		return nil, err
	}
	if existing != nil {
		item.Quantity += existing.Quantity
		item.AddedAt = existing.AddedAt
	}

	if err := u.cartRepo.SaveItem(ctx, req.UserID, item); err != nil {
		u.log.Warnf("Failed to save cart item: %+v", err)
		return nil, err
	}

	summary, err := u.summarize(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.CartItemMutationResponse{
		CartItem: *converter.CartItemToResponse(item),
		Summary:  summary,
	}, nil
}

func (u *cartUsecase) GetCart(ctx context.Context, userID uuid.UUID) (*dto.CartResponse, error) {
	items, err := u.cartRepo.GetItems(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to read cart: %+v", err)
		return nil, err
	}

	return &dto.CartResponse{
		UserID:  userID,
		Items:   converter.CartItemsToResponses(items),
		Summary: converter.CartSummaryToResponse(entity.Summarize(items)),
	}, nil
}

func (u *cartUsecase) UpdateItem(ctx context.Context, userID, productID uuid.UUID, req *dto.UpdateCartItemRequest) (*dto.CartItemMutationResponse, error) {
	item, err := u.cartRepo.GetItem(ctx, userID, productID)
	if err != nil {
		u.log.Warnf("Failed to read cart item: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	item.Quantity = req.Quantity
	item.UpdatedAt = time.Now()

	if err := u.cartRepo.SaveItem(ctx, userID, item); err != nil {
		u.log.Warnf("Failed to save cart item: %+v", err)
		return nil, err
	}

	summary, err := u.summarize(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.CartItemMutationResponse{
		CartItem: *converter.CartItemToResponse(item),
		Summary:  summary,
	}, nil
}

func (u *cartUsecase) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*dto.CartSummaryResponse, error) {
	removed, err := u.cartRepo.DeleteItem(ctx, userID, productID)
	if err != nil {
		u.log.Warnf("Failed to delete cart item: %+v", err)
		return nil, err
	}
	if !removed {
		return nil, ErrCartItemNotFound
	}

	summary, err := u.summarize(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

func (u *cartUsecase) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := u.cartRepo.Clear(ctx, userID); err != nil {
		u.log.Warnf("Failed to clear cart: %+v", err)
		return err
	}
	return nil
}

func (u *cartUsecase) summarize(ctx context.Context, userID uuid.UUID) (dto.CartSummaryResponse, error) {
	items, err := u.cartRepo.GetItems(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to read cart: %+v", err)
		return dto.CartSummaryResponse{}, err
	}
	return converter.CartSummaryToResponse(entity.Summarize(items)), nil
}
