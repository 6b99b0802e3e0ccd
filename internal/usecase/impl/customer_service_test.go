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

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
	addressRepo  *mockRepo.MockAddressRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	factory := &stubRepoFactory{
		customerRepo: customerRepo,
		addressRepo:  addressRepo,
	}
	service := NewCustomerService(CustomerServiceParams{
		TxManager:    &stubTxManager{factory: factory},
		CustomerRepo: customerRepo,
		Logger:       newDiscardLogger(),
	})

	return customerServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		addressRepo:  addressRepo,
	}
}

func testAddress() *entity.Address {
	return &entity.Address{
		Country:    "Poland",
		ZipCode:    "00-001",
		City:       "Warsaw",
		Street:     "Main",
		HomeNumber: "12a",
	}
}

func testCustomer() *entity.Customer {
	return &entity.Customer{
		Name:        "Anna",
		Surname:     "Kowalska",
		Email:       "anna@example.com",
		DateOfBirth: time.Date(1990, time.April, 2, 0, 0, 0, 0, time.UTC),
		Password:    "secret",
		Address:     testAddress(),
	}
}

func TestCustomerService_AddCustomer_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := testCustomer()

	fx.customerRepo.EXPECT().
		Create(ctx, customer).
		Run(func(_ context.Context, c *entity.Customer) {
			c.ID = 21
			c.Address.ID = 8
		}).
		Return(nil)

	id, err := fx.service.AddCustomer(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, int64(21), id)

	// The address back-reference mirrors the new customer.
	require.Len(t, customer.Address.Customers, 1)
	assert.Same(t, customer, customer.Address.Customers[0])
}

func TestCustomerService_AddCustomer_NilCustomer(t *testing.T) {
	fx := createTestCustomerService(t)

	id, err := fx.service.AddCustomer(context.Background(), nil)
	assert.Zero(t, id)
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestCustomerService_AddCustomer_MissingAddress(t *testing.T) {
	fx := createTestCustomerService(t)

	customer := testCustomer()
	customer.Address = nil

	id, err := fx.service.AddCustomer(context.Background(), customer)
	assert.Zero(t, id)
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestCustomerService_GetCustomerByID_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	expected := testCustomer()
	expected.ID = 21

	fx.customerRepo.EXPECT().
		FindByID(ctx, int64(21)).
		Return(expected, nil)

	customer, err := fx.service.GetCustomerByID(ctx, 21)
	require.NoError(t, err)
	assert.Equal(t, expected, customer)
}

func TestCustomerService_GetCustomerByID_InvalidID(t *testing.T) {
	fx := createTestCustomerService(t)

	customer, err := fx.service.GetCustomerByID(context.Background(), -3)
	assert.Nil(t, customer)
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestCustomerService_RemoveCustomer_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := testCustomer()
	customer.ID = 21

	fx.customerRepo.EXPECT().
		FindByID(ctx, int64(21)).
		Return(customer, nil)

	fx.customerRepo.EXPECT().
		Delete(ctx, int64(21)).
		Return(nil)

	err := fx.service.RemoveCustomer(ctx, 21)
	require.NoError(t, err)
}

func TestCustomerService_RemoveCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrCustomerNotFound)

	err := fx.service.RemoveCustomer(ctx, 99)
	assert.True(t, errors.Is(err, repository.ErrCustomerNotFound))
}

func TestCustomerService_UpdateEmail_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := testCustomer()
	customer.ID = 21

	fx.customerRepo.EXPECT().
		FindByID(ctx, int64(21)).
		Return(customer, nil)

	fx.customerRepo.EXPECT().
		Save(ctx, customer).
		Return(nil)

	err := fx.service.UpdateEmail(ctx, 21, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", customer.Email)
}

func TestCustomerService_UpdateEmail_RejectedBeforeAnyStoreAccess(t *testing.T) {
	fx := createTestCustomerService(t)

	// No repository expectations: a candidate without '@' must fail the
	// precondition and leave the stored state untouched.
	err := fx.service.UpdateEmail(context.Background(), 21, "not-an-email")
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestCustomerService_UpdatePassword_Empty(t *testing.T) {
	fx := createTestCustomerService(t)

	err := fx.service.UpdatePassword(context.Background(), 21, "")
	assert.True(t, domainerrors.IsInvalidInput(err))
}

func TestCustomerService_UpdatePassword_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := testCustomer()
	customer.ID = 21

	fx.customerRepo.EXPECT().
		FindByID(ctx, int64(21)).
		Return(customer, nil)

	fx.customerRepo.EXPECT().
		Save(ctx, customer).
		Return(nil)

	err := fx.service.UpdatePassword(ctx, 21, "stronger")
	require.NoError(t, err)
	assert.Equal(t, "stronger", customer.Password)
}

func TestCustomerService_UpdateIsAdmin(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := testCustomer()
	customer.ID = 21

	fx.customerRepo.EXPECT().
		FindByID(ctx, int64(21)).
		Return(customer, nil)

	fx.customerRepo.EXPECT().
		Save(ctx, customer).
		Return(nil)

	err := fx.service.UpdateIsAdmin(ctx, 21, true)
	require.NoError(t, err)
	assert.True(t, customer.IsAdmin)
}

func TestCustomerService_UpdateAddress_ReusesSingleMatch(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := testCustomer()
	customer.ID = 21

	stored := testAddress()
	stored.ID = 8
	candidate := testAddress()

	fx.customerRepo.EXPECT().
		FindByID(ctx, int64(21)).
		Return(customer, nil)

	fx.addressRepo.EXPECT().
		FindByFields(ctx, candidate).
		Return([]*entity.Address{stored}, nil)

	fx.customerRepo.EXPECT().
		Save(ctx, customer).
		Return(nil)

	err := fx.service.UpdateAddress(ctx, 21, candidate)
	require.NoError(t, err)

	// The stored row is reused; the candidate gains no identity.
	assert.Same(t, stored, customer.Address)
	assert.Zero(t, candidate.ID)
	require.Len(t, stored.Customers, 1)
	assert.Same(t, customer, stored.Customers[0])
}

func TestCustomerService_UpdateAddress_InsertsWhenNoMatch(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := testCustomer()
	customer.ID = 21
	candidate := testAddress()

	fx.customerRepo.EXPECT().
		FindByID(ctx, int64(21)).
		Return(customer, nil)

	fx.addressRepo.EXPECT().
		FindByFields(ctx, candidate).
		Return(nil, nil)

	fx.addressRepo.EXPECT().
		Create(ctx, candidate).
		Run(func(_ context.Context, a *entity.Address) {
			a.ID = 9
		}).
		Return(nil)

	fx.customerRepo.EXPECT().
		Save(ctx, customer).
		Return(nil)

	err := fx.service.UpdateAddress(ctx, 21, candidate)
	require.NoError(t, err)
	assert.Same(t, candidate, customer.Address)
	assert.Equal(t, int64(9), candidate.ID)
}

func TestCustomerService_UpdateAddress_MultipleMatchesFallThroughToInsert(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := testCustomer()
	customer.ID = 21
	candidate := testAddress()

	first := testAddress()
	first.ID = 8
	second := testAddress()
	second.ID = 9

	fx.customerRepo.EXPECT().
		FindByID(ctx, int64(21)).
		Return(customer, nil)

	fx.addressRepo.EXPECT().
		FindByFields(ctx, candidate).
		Return([]*entity.Address{first, second}, nil)

	fx.addressRepo.EXPECT().
		Create(ctx, candidate).
		Run(func(_ context.Context, a *entity.Address) {
			a.ID = 10
		}).
		Return(nil)

	fx.customerRepo.EXPECT().
		Save(ctx, customer).
		Return(nil)

	err := fx.service.UpdateAddress(ctx, 21, candidate)
	require.NoError(t, err)
	assert.Same(t, candidate, customer.Address)
}

func TestCustomerService_UpdateAddress_InvalidCandidate(t *testing.T) {
	fx := createTestCustomerService(t)

	candidate := testAddress()
	candidate.City = ""

	err := fx.service.UpdateAddress(context.Background(), 21, candidate)
	assert.True(t, domainerrors.IsInvalidInput(err))
}
