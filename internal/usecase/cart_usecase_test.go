package usecase

import (
	"context"
	"testing"

	"carepoint-backend/internal/delivery/dto"
	"carepoint-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeCartRepo mimics the Redis hash: one map per user, keyed by product id.
type fakeCartRepo struct {
	carts map[uuid.UUID]map[uuid.UUID]entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[uuid.UUID]map[uuid.UUID]entity.CartItem{}}
}

func (r *fakeCartRepo) GetItems(_ context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	items := make([]entity.CartItem, 0, len(r.carts[userID]))
	for _, item := range r.carts[userID] {
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeCartRepo) GetItem(_ context.Context, userID, productID uuid.UUID) (*entity.CartItem, error) {
	item, ok := r.carts[userID][productID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *fakeCartRepo) SaveItem(_ context.Context, userID uuid.UUID, item *entity.CartItem) error {
	if r.carts[userID] == nil {
		r.carts[userID] = map[uuid.UUID]entity.CartItem{}
	}
	r.carts[userID][item.ProductID] = *item
	return nil
}

func (r *fakeCartRepo) DeleteItem(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	if _, ok := r.carts[userID][productID]; !ok {
		return false, nil
	}
	delete(r.carts[userID], productID)
	return true, nil
}

func (r *fakeCartRepo) Clear(_ context.Context, userID uuid.UUID) error {
	delete(r.carts, userID)
	return nil
}

// fakeProductRepo serves a fixed catalog.
type fakeProductRepo struct {
	products map[uuid.UUID]entity.Product
}

func (r *fakeProductRepo) Create(_ *gorm.DB, _ *entity.Product) error { return nil }

func (r *fakeProductRepo) FindAll(_ *gorm.DB, _ *entity.ProductFilter, _, _ int) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *fakeProductRepo) Update(_ *gorm.DB, _ *entity.Product) error { return nil }

func (r *fakeProductRepo) Deactivate(_ *gorm.DB, _ uuid.UUID) (*entity.Product, error) {
	return nil, nil
}

func newCartFixture(products ...entity.Product) (CartUsecase, *fakeCartRepo) {
	catalog := map[uuid.UUID]entity.Product{}
	for _, p := range products {
		catalog[p.ID] = p
	}
	cartRepo := newFakeCartRepo()
	uc := NewCartUsecase(testDB(), testLogger(), cartRepo, &fakeProductRepo{products: catalog})
	return uc, cartRepo
}

func testProduct(price string) entity.Product {
	return entity.Product{
		ID:    uuid.New(),
		Name:  "Paracetamol 500mg",
		Price: decimal.RequireFromString(price),
	}
}

func TestAddItemNewProduct(t *testing.T) {
	product := testProduct("12.50")
	uc, _ := newCartFixture(product)
	userID := uuid.New()

	result, err := uc.AddItem(context.Background(), &dto.AddCartItemRequest{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    2,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.CartItem.Quantity)
	assert.Equal(t, 1, result.Summary.TotalItems)
	assert.Equal(t, 2, result.Summary.TotalQuantity)
	assert.True(t, result.Summary.TotalPrice.Equal(decimal.RequireFromString("25.00")))
}

func TestAddItemMergesQuantities(t *testing.T) {
	product := testProduct("10.00")
	uc, repo := newCartFixture(product)
	userID := uuid.New()

	req := &dto.AddCartItemRequest{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    2,
	}

	first, err := uc.AddItem(context.Background(), req)
	require.NoError(t, err)
	addedAt := first.CartItem.AddedAt

	result, err := uc.AddItem(context.Background(), req)
	require.NoError(t, err)

	// One merged line, not two.
	assert.Equal(t, 4, result.CartItem.Quantity)
	assert.Equal(t, 1, result.Summary.TotalItems)
	assert.Equal(t, 4, result.Summary.TotalQuantity)
	assert.Equal(t, addedAt, result.CartItem.AddedAt)
	assert.Len(t, repo.carts[userID], 1)
}

func TestAddItemUnknownProduct(t *testing.T) {
	uc, _ := newCartFixture()

	_, err := uc.AddItem(context.Background(), &dto.AddCartItemRequest{
		UserID:      uuid.New(),
		ProductID:   uuid.New(),
		ProductName: "Ghost",
		Price:       decimal.NewFromInt(1),
		Quantity:    1,
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateItemReplacesQuantity(t *testing.T) {
	product := testProduct("8.00")
	uc, _ := newCartFixture(product)
	userID := uuid.New()

	_, err := uc.AddItem(context.Background(), &dto.AddCartItemRequest{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    5,
	})
	require.NoError(t, err)

	result, err := uc.UpdateItem(context.Background(), userID, product.ID, &dto.UpdateCartItemRequest{Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, result.CartItem.Quantity)
	assert.True(t, result.Summary.TotalPrice.Equal(decimal.RequireFromString("16.00")))
}

func TestUpdateItemNotInCart(t *testing.T) {
	uc, _ := newCartFixture(testProduct("8.00"))

	_, err := uc.UpdateItem(context.Background(), uuid.New(), uuid.New(), &dto.UpdateCartItemRequest{Quantity: 2})

	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	product := testProduct("3.25")
	uc, repo := newCartFixture(product)
	userID := uuid.New()

	_, err := uc.AddItem(context.Background(), &dto.AddCartItemRequest{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    1,
	})
	require.NoError(t, err)

	summary, err := uc.RemoveItem(context.Background(), userID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalItems)
	assert.Empty(t, repo.carts[userID])

	_, err = uc.RemoveItem(context.Background(), userID, product.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestSummarizeTotals(t *testing.T) {
	items := []entity.CartItem{
		{Price: decimal.RequireFromString("12.50"), Quantity: 2},
		{Price: decimal.RequireFromString("0.99"), Quantity: 3},
	}

	summary := entity.Summarize(items)

	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 5, summary.TotalQuantity)
	assert.True(t, summary.TotalPrice.Equal(decimal.RequireFromString("27.97")))
}
