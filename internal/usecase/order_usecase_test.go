package usecase

import (
	"context"
	"testing"
	"time"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	orders map[uuid.UUID]entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]entity.Order{}}
}

func (r *fakeOrderRepo) Create(_ *gorm.DB, order *entity.Order) error {
	order.ID = uuid.New()
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) FindByUserID(_ *gorm.DB, userID uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOrderRepo) Update(_ *gorm.DB, order *entity.Order) error {
	r.orders[order.ID] = *order
	return nil
}

func newOrderFixture() (OrderUsecase, *fakeOrderRepo, *fakeCartRepo, *fakeAuditRepo) {
	orderRepo := newFakeOrderRepo()
	cartRepo := newFakeCartRepo()
	auditRepo := &fakeAuditRepo{}
	uc := NewOrderUsecase(txDB(), testLogger(), orderRepo, cartRepo, auditRepo)
	return uc, orderRepo, cartRepo, auditRepo
}

func seedCart(t *testing.T, cartRepo *fakeCartRepo, userID uuid.UUID, items ...entity.CartItem) {
	t.Helper()
	for i := range items {
		require.NoError(t, cartRepo.SaveItem(context.Background(), userID, &items[i]))
	}
}

func TestCheckoutSnapshotsCart(t *testing.T) {
	uc, orderRepo, cartRepo, auditRepo := newOrderFixture()
	userID := uuid.New()
	now := time.Now()

	seedCart(t, cartRepo, userID,
		entity.CartItem{
			ProductID:   uuid.New(),
			ProductName: "Ibuprofen 200mg",
			Price:       decimal.RequireFromString("5.50"),
			Quantity:    2,
			AddedAt:     now,
		},
		entity.CartItem{
			ProductID:   uuid.New(),
			ProductName: "Vitamin C",
			Price:       decimal.RequireFromString("9.00"),
			Quantity:    1,
			AddedAt:     now,
		},
	)

	result, err := uc.Checkout(context.Background(), &dto.CheckoutRequest{
		UserID: userID,
		City:   "Springfield",
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusPending), result.Status)
	assert.Equal(t, entity.PaymentMethodCreditCard, result.PaymentMethod)
	assert.True(t, result.TotalAmount.Equal(decimal.RequireFromString("20.00")))
	require.Len(t, result.Items, 2)

	// Cart is emptied once the order is committed.
	assert.Empty(t, cartRepo.carts[userID])
	assert.Len(t, orderRepo.orders, 1)

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.AuditActionOrderCheckout, auditRepo.entries[0].Action)
}

func TestCheckoutEmptyCart(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()

	_, err := uc.Checkout(context.Background(), &dto.CheckoutRequest{UserID: uuid.New()})

	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Empty(t, orderRepo.orders)
}

func TestCheckoutKeepsRequestedPaymentMethod(t *testing.T) {
	uc, _, cartRepo, _ := newOrderFixture()
	userID := uuid.New()

	seedCart(t, cartRepo, userID, entity.CartItem{
		ProductID:   uuid.New(),
		ProductName: "Bandages",
		Price:       decimal.RequireFromString("3.00"),
		Quantity:    1,
	})

	result, err := uc.Checkout(context.Background(), &dto.CheckoutRequest{
		UserID:        userID,
		PaymentMethod: entity.PaymentMethodPaypal,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodPaypal, result.PaymentMethod)
}

func TestGetOrderNotFound(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.GetOrder(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	uc, orderRepo, cartRepo, _ := newOrderFixture()
	userID := uuid.New()

	seedCart(t, cartRepo, userID, entity.CartItem{
		ProductID:   uuid.New(),
		ProductName: "Thermometer",
		Price:       decimal.RequireFromString("15.00"),
		Quantity:    1,
	})

	created, err := uc.Checkout(context.Background(), &dto.CheckoutRequest{UserID: userID})
	require.NoError(t, err)

	updated, err := uc.UpdateOrderStatus(context.Background(), created.ID, &dto.UpdateOrderStatusRequest{
		Status:        string(entity.OrderStatusShipped),
		PaymentStatus: entity.PaymentStatusPaid,
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.OrderStatusShipped), updated.Status)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
	assert.Equal(t, string(entity.OrderStatusShipped), string(orderRepo.orders[created.ID].Status))
}
