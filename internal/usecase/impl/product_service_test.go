package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	propertyRepo *mockRepo.MockPropertyRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)

	factory := &stubRepoFactory{
		productRepo:  productRepo,
		propertyRepo: propertyRepo,
	}
	service := NewProductService(ProductServiceParams{
		TxManager:   &stubTxManager{factory: factory},
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		propertyRepo: propertyRepo,
	}
}

func catalogProduct() *entity.Product {
	return &entity.Product{
		Name:                "Leather Tote",
		PriceBeforeDiscount: 120,
		PriceAfterDiscount:  108,
		Quantity:            5,
		Description:         "Full-grain leather tote bag",
		Discount:            0.1,
		ProductType:         entity.ProductTypeBag,
	}
}

func TestProductService_AddProduct_CatalogFields(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := catalogProduct()

	fx.productRepo.EXPECT().
		Create(ctx, product).
		Run(func(_ context.Context, p *entity.Product) {
			p.ID = 7
		}).
		Return(nil)

	id, err := fx.service.AddProduct(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, int64(7), product.ID)
}

func TestProductService_AddProduct_StockFieldsAlone(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	// No name, description or price. The second rule set (type and
	// quantity) carries the candidate on its own.
	product := &entity.Product{
		ProductType: entity.ProductTypeShoes,
		Quantity:    3,
	}

	fx.productRepo.EXPECT().
		Create(ctx, product).
		Return(nil)

	_, err := fx.service.AddProduct(ctx, product)
	require.NoError(t, err)
}

func TestProductService_AddProduct_BothRuleSetsViolated(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := &entity.Product{
		Name:                "Overpriced",
		PriceBeforeDiscount: 15000, // out of range
		Quantity:            20000, // out of range
		Description:         "and no valid product type",
		Discount:            0.5,
	}

	id, err := fx.service.AddProduct(ctx, product)
	assert.Error(t, err)
	assert.True(t, domainerrors.IsInvalidInput(err))
	assert.Zero(t, id)
}

func TestProductService_AddProduct_DiscountOutOfRange(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := catalogProduct()
	product.Discount = 1.5
	product.ProductType = "" // keep the stock rule set from rescuing it

	_, err := fx.service.AddProduct(ctx, product)
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestProductService_GetProductByID_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expected := catalogProduct()
	expected.ID = 42

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(42)).
		Return(expected, nil)

	product, err := fx.service.GetProductByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestProductService_GetProductByID_InvalidID(t *testing.T) {
	fx := createTestProductService(t)

	product, err := fx.service.GetProductByID(context.Background(), 0)
	assert.Nil(t, product)
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestProductService_GetProductByID_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindByID(ctx, int64(9)).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProductByID(ctx, 9)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}

func TestProductService_RemoveProduct_CascadesProperties(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := catalogProduct()
	product.ID = 5

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(product, nil)

	fx.propertyRepo.EXPECT().
		DeleteByProduct(ctx, int64(5)).
		Return(int64(3), nil)

	fx.productRepo.EXPECT().
		Delete(ctx, int64(5)).
		Return(nil)

	err := fx.service.RemoveProduct(ctx, 5)
	require.NoError(t, err)
}

func TestProductService_RemoveProduct_NotFoundSkipsCascade(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.RemoveProduct(ctx, 5)
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}

func TestProductService_BuyProduct_DecrementsStock(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := catalogProduct()
	product.ID = 3
	product.Quantity = 5

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(product, nil)

	fx.productRepo.EXPECT().
		Save(ctx, product).
		Return(nil)

	err := fx.service.BuyProduct(ctx, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Quantity)
}

func TestProductService_BuyProduct_NonPositiveQuantity(t *testing.T) {
	fx := createTestProductService(t)

	err := fx.service.BuyProduct(context.Background(), 3, 0)
	assert.True(t, domainerrors.IsInvalidInput(err))

	err = fx.service.BuyProduct(context.Background(), 3, -1)
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestProductService_BuyProduct_ExceedsStock(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := catalogProduct()
	product.ID = 3
	product.Quantity = 1

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(product, nil)

	err := fx.service.BuyProduct(ctx, 3, 2)
	assert.True(t, domainerrors.IsInvalidInput(err))
	assert.Equal(t, 1, product.Quantity)
}

func TestProductService_AddKeyValueProperty_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := catalogProduct()
	product.ID = 4

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(4)).
		Return(product, nil)

	fx.propertyRepo.EXPECT().
		Create(ctx, &entity.Property{Key: "color", Value: "black", ProductID: 4}).
		Run(func(_ context.Context, p *entity.Property) {
			p.ID = 11
		}).
		Return(nil)

	err := fx.service.AddKeyValueProperty(ctx, 4, "color", "black")
	require.NoError(t, err)
	require.Len(t, product.Properties, 1)
	assert.Equal(t, int64(11), product.Properties[0].ID)
	assert.Equal(t, "color", product.Properties[0].Key)
}

func TestProductService_AddKeyValueProperty_EmptyKey(t *testing.T) {
	fx := createTestProductService(t)

	err := fx.service.AddKeyValueProperty(context.Background(), 4, "", "black")
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestProductService_RemoveKeyValueProperty_RemovesFirstMatch(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	first := &entity.Property{ID: 11, Key: "color", Value: "black", ProductID: 4}
	second := &entity.Property{ID: 12, Key: "color", Value: "black", ProductID: 4}

	product := catalogProduct()
	product.ID = 4
	product.Properties = []*entity.Property{first, second}

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(4)).
		Return(product, nil)

	fx.propertyRepo.EXPECT().
		FindByProductKeyValue(ctx, int64(4), "color", "black").
		Return([]*entity.Property{first, second}, nil)

	fx.propertyRepo.EXPECT().
		Delete(ctx, int64(11)).
		Return(nil)

	err := fx.service.RemoveKeyValueProperty(ctx, 4, "color", "black")
	require.NoError(t, err)
	require.Len(t, product.Properties, 1)
	assert.Equal(t, int64(12), product.Properties[0].ID)
}

func TestProductService_RemoveKeyValueProperty_NoMatch(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := catalogProduct()
	product.ID = 4

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(4)).
		Return(product, nil)

	fx.propertyRepo.EXPECT().
		FindByProductKeyValue(ctx, int64(4), "color", "green").
		Return(nil, nil)

	err := fx.service.RemoveKeyValueProperty(ctx, 4, "color", "green")
	assert.True(t, errors.Is(err, repository.ErrPropertyNotFound))
}

func TestProductService_UpdateName(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := catalogProduct()
	product.ID = 2

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(2)).
		Return(product, nil)

	fx.productRepo.EXPECT().
		Save(ctx, product).
		Return(nil)

	err := fx.service.UpdateName(ctx, 2, "Canvas Tote")
	require.NoError(t, err)
	assert.Equal(t, "Canvas Tote", product.Name)
}

func TestProductService_UpdateDiscount_PersistsWholeEntity(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := catalogProduct()
	product.ID = 2

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(2)).
		Return(product, nil)

	fx.productRepo.EXPECT().
		Save(ctx, product).
		Return(nil)

	err := fx.service.UpdateDiscount(ctx, 2, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, product.Discount)
}

func TestProductService_Update_InvalidID(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	assert.True(t, domainerrors.IsInvalidInput(fx.service.UpdateName(ctx, 0, "x")))
	assert.True(t, domainerrors.IsInvalidInput(fx.service.UpdatePrice(ctx, -1, 10)))
	assert.True(t, domainerrors.IsInvalidInput(fx.service.UpdateQuantity(ctx, 0, 1)))
	assert.True(t, domainerrors.IsInvalidInput(fx.service.UpdateDescription(ctx, 0, "d")))
	assert.True(t, domainerrors.IsInvalidInput(fx.service.UpdateDiscount(ctx, 0, 0.1)))
}
