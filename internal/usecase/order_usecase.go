package usecase

import (
	"context"
	"errors"

	"carepoint-backend/internal/converter"
	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"
	"carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrCartEmpty     = errors.New("cart is empty")
)

type OrderUsecase interface {
	Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.OrderResponse, error)
	GetOrders(ctx context.Context, userID uuid.UUID) (*dto.OrderListResponse, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*dto.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
}

type orderUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	auditRepo repository.AuditLogRepository
}

func NewOrderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	auditRepo repository.AuditLogRepository,
) OrderUsecase {
	return &orderUsecase{
		db:        db,
		log:       log,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		auditRepo: auditRepo,
	}
}

// Checkout snapshots the user's cart into an order. Line prices are frozen
// at checkout time; later catalog price changes do not affect the order.
// The cart is cleared only after the order commit succeeds.
func (u *orderUsecase) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.OrderResponse, error) {
	items, err := u.cartRepo.GetItems(ctx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to read cart: %+v", err)
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodCreditCard
	}

	totalAmount := decimal.Zero
	orderItems := make([]entity.OrderItem, len(items))
	for i, item := range items {
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		orderItems[i] = entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    subtotal,
		}
		totalAmount = totalAmount.Add(subtotal)
	}

	order := &entity.Order{
		UserID:        req.UserID,
		Status:        entity.OrderStatusPending,
		TotalAmount:   totalAmount,
		Street:        req.Street,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
		PaymentMethod: paymentMethod,
		PaymentStatus: entity.PaymentStatusPending,
		Items:         orderItems,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.orderRepo.Create(tx, order); err != nil {
		u.log.Warnf("Failed to create order: %+v", err)
		return nil, err
	}

	audit := &entity.AuditLog{
		UserID: &req.UserID,
		Action: entity.AuditActionOrderCheckout,
		Metadata: entity.JSON{
			"order_id":     order.ID.String(),
			"total_amount": totalAmount.String(),
			"item_count":   len(orderItems),
		},
	}
	if err := u.auditRepo.Create(tx, audit); err != nil {
		u.log.Warnf("Failed to write audit log: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.cartRepo.Clear(ctx, req.UserID); err != nil {
		// Order is already committed; a stale cart is recoverable.
		u.log.Warnf("Failed to clear cart after checkout: %+v", err)
	}

	return converter.OrderToResponse(order), nil
}

func (u *orderUsecase) GetOrders(ctx context.Context, userID uuid.UUID) (*dto.OrderListResponse, error) {
	orders, err := u.orderRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find orders: %+v", err)
		return nil, err
	}

	return &dto.OrderListResponse{
		Orders:      converter.OrdersToResponses(orders),
		TotalOrders: len(orders),
	}, nil
}

func (u *orderUsecase) GetOrder(ctx context.Context, orderID uuid.UUID) (*dto.OrderResponse, error) {
	order, err := u.orderRepo.FindByID(u.db.WithContext(ctx), orderID)
	if err != nil {
		u.log.Warnf("Failed to find order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	return converter.OrderToResponse(order), nil
}

func (u *orderUsecase) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	db := u.db.WithContext(ctx)

	order, err := u.orderRepo.FindByID(db, orderID)
	if err != nil {
		u.log.Warnf("Failed to find order: %+v", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	order.Status = entity.OrderStatus(req.Status)
	if req.PaymentStatus != "" {
		order.PaymentStatus = req.PaymentStatus
	}

	if err := u.orderRepo.Update(db, order); err != nil {
		u.log.Warnf("Failed to update order: %+v", err)
		return nil, err
	}

	return converter.OrderToResponse(order), nil
}
