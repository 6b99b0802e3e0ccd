package impl

import (
	"context"
	"testing"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service      usecase.CartUsecase
	cartRepo     *mockRepo.MockCartRepository
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)

	factory := &stubRepoFactory{
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
	}
	service := NewCartService(CartServiceParams{
		TxManager: &stubTxManager{factory: factory},
		CartRepo:  cartRepo,
		Logger:    newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:      service,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
	}
}

func testCart() *entity.ShoppingCart {
	return &entity.ShoppingCart{
		DateOfPurchase: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
		Status:         entity.StatusUnpaid,
		Customer:       testCustomer(),
	}
}

func TestCartService_AddCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cart := testCart()

	fx.cartRepo.EXPECT().
		Create(ctx, cart).
		Run(func(_ context.Context, c *entity.ShoppingCart) {
			c.ID = 31
		}).
		Return(nil)

	id, err := fx.service.AddCart(ctx, cart)
	require.NoError(t, err)
	assert.Equal(t, int64(31), id)

	// The customer back-reference mirrors the new cart.
	require.Len(t, cart.Customer.Carts, 1)
	assert.Same(t, cart, cart.Customer.Carts[0])
}

func TestCartService_AddCart_NilCart(t *testing.T) {
	fx := createTestCartService(t)

	id, err := fx.service.AddCart(context.Background(), nil)
	assert.Zero(t, id)
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestCartService_AddCart_MissingCustomer(t *testing.T) {
	fx := createTestCartService(t)

	cart := testCart()
	cart.Customer = nil

	id, err := fx.service.AddCart(context.Background(), cart)
	assert.Zero(t, id)
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestCartService_GetCartByID_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	expected := testCart()
	expected.ID = 31

	fx.cartRepo.EXPECT().
		FindByID(ctx, int64(31)).
		Return(expected, nil)

	cart, err := fx.service.GetCartByID(ctx, 31)
	require.NoError(t, err)
	assert.Equal(t, expected, cart)
}

func TestCartService_GetCartByID_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().
		FindByID(ctx, int64(31)).
		Return(nil, repository.ErrCartNotFound)

	cart, err := fx.service.GetCartByID(ctx, 31)
	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, repository.ErrCartNotFound))
}

func TestCartService_RemoveCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cart := testCart()
	cart.ID = 31

	fx.cartRepo.EXPECT().
		FindByID(ctx, int64(31)).
		Return(cart, nil)

	fx.cartRepo.EXPECT().
		Delete(ctx, int64(31)).
		Return(nil)

	err := fx.service.RemoveCart(ctx, 31)
	require.NoError(t, err)
}

func TestCartService_AddProductToCart_AddsDiscountedPrice(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cart := testCart()
	cart.ID = 31

	product := catalogProduct()
	product.ID = 7
	product.PriceBeforeDiscount = 100
	product.PriceAfterDiscount = 90

	fx.cartRepo.EXPECT().
		FindByID(ctx, int64(31)).
		Return(cart, nil)

	fx.cartRepo.EXPECT().
		AddProduct(ctx, int64(31), int64(7)).
		Return(nil)

	fx.cartRepo.EXPECT().
		Save(ctx, cart).
		Return(nil)

	err := fx.service.AddProductToCart(ctx, 31, product)
	require.NoError(t, err)

	assert.Equal(t, 90.0, cart.TotalPrice)
	require.Len(t, cart.Products, 1)
	assert.Same(t, product, cart.Products[0])
	require.Len(t, product.Carts, 1)
	assert.Same(t, cart, product.Carts[0])
}

// Removing subtracts the pre-discount price while adding contributed the
// discounted one, so an add/remove round trip of a discounted product
// leaves a negative residue instead of restoring the previous total.
func TestCartService_RemoveProduct_SubtractsPreDiscountPrice(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := catalogProduct()
	product.ID = 7
	product.PriceBeforeDiscount = 100
	product.PriceAfterDiscount = 90

	cart := testCart()
	cart.ID = 31
	cart.TotalPrice = 90
	cart.Products = []*entity.Product{product}
	product.Carts = []*entity.ShoppingCart{cart}

	fx.cartRepo.EXPECT().
		FindByID(ctx, int64(31)).
		Return(cart, nil)

	fx.cartRepo.EXPECT().
		RemoveProduct(ctx, int64(31), int64(7)).
		Return(nil)

	fx.cartRepo.EXPECT().
		Save(ctx, cart).
		Return(nil)

	err := fx.service.RemoveProductFromCart(ctx, 31, product)
	require.NoError(t, err)

	assert.Equal(t, -10.0, cart.TotalPrice)
	assert.Empty(t, cart.Products)
	assert.Empty(t, product.Carts)
}

func TestCartService_AddProductToCart_NilProduct(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.AddProductToCart(context.Background(), 31, nil)
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestCartService_RemoveProductFromCart_CartNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := catalogProduct()
	product.ID = 7

	fx.cartRepo.EXPECT().
		FindByID(ctx, int64(31)).
		Return(nil, repository.ErrCartNotFound)

	err := fx.service.RemoveProductFromCart(ctx, 31, product)
	assert.True(t, errors.Is(err, repository.ErrCartNotFound))
}

func TestCartService_UpdateCartCustomer_ReusesSingleMatch(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cart := testCart()
	cart.ID = 31

	stored := testCustomer()
	stored.ID = 21
	candidate := testCustomer()

	fx.cartRepo.EXPECT().
		FindByID(ctx, int64(31)).
		Return(cart, nil)

	fx.customerRepo.EXPECT().
		FindByValue(ctx, candidate).
		Return([]*entity.Customer{stored}, nil)

	fx.cartRepo.EXPECT().
		Save(ctx, cart).
		Return(nil)

	err := fx.service.UpdateCartCustomer(ctx, 31, candidate)
	require.NoError(t, err)

	assert.Same(t, stored, cart.Customer)
	assert.Zero(t, candidate.ID)
	require.Len(t, stored.Carts, 1)
	assert.Same(t, cart, stored.Carts[0])
}

func TestCartService_UpdateCartCustomer_InsertsWhenNoMatch(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	cart := testCart()
	cart.ID = 31
	candidate := testCustomer()

	fx.cartRepo.EXPECT().
		FindByID(ctx, int64(31)).
		Return(cart, nil)

	fx.customerRepo.EXPECT().
		FindByValue(ctx, candidate).
		Return(nil, nil)

	fx.customerRepo.EXPECT().
		Create(ctx, candidate).
		Run(func(_ context.Context, c *entity.Customer) {
			c.ID = 22
		}).
		Return(nil)

	fx.cartRepo.EXPECT().
		Save(ctx, cart).
		Return(nil)

	err := fx.service.UpdateCartCustomer(ctx, 31, candidate)
	require.NoError(t, err)
	assert.Same(t, candidate, cart.Customer)
	assert.Equal(t, int64(22), candidate.ID)
}

func TestCartService_UpdateCartCustomer_InvalidScalars(t *testing.T) {
	fx := createTestCartService(t)

	candidate := testCustomer()
	candidate.Email = "missing-at-sign"

	err := fx.service.UpdateCartCustomer(context.Background(), 31, candidate)
	assert.True(t, domainerrors.IsInvalidInput(err))
}
