package impl

import (
	"context"
	"log/slog"

	"shop/internal/domain/repository"
)

// newDiscardLogger returns a logger that drops every record.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// stubTxManager stands in for a real database transaction: it runs the
// callback against a fixed repository factory and propagates its error.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

// stubRepoFactory hands out the prepared repository mocks.
type stubRepoFactory struct {
	addressRepo  repository.AddressRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	propertyRepo repository.PropertyRepository
	cartRepo     repository.CartRepository
}

func (f *stubRepoFactory) AddressRepo() repository.AddressRepository {
	return f.addressRepo
}

func (f *stubRepoFactory) CustomerRepo() repository.CustomerRepository {
	return f.customerRepo
}

func (f *stubRepoFactory) ProductRepo() repository.ProductRepository {
	return f.productRepo
}

func (f *stubRepoFactory) PropertyRepo() repository.PropertyRepository {
	return f.propertyRepo
}

func (f *stubRepoFactory) CartRepo() repository.CartRepository {
	return f.cartRepo
}
