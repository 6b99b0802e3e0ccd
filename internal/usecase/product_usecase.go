// Package usecase declares the application service interfaces. Each
// operation opens exactly one transaction against the store; operations
// performing a read-modify-write (BuyProduct, the cart price updates)
// are atomic within that transaction but offer no cross-transaction
// arbitration, so two concurrent callers can still lose one update.
package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// ProductUsecase owns the Product and Property lifecycle.
type ProductUsecase interface {
	// AddProduct validates the candidate against the catalog acceptance
	// predicate, persists it and returns the assigned identity.
	AddProduct(ctx context.Context, product *entity.Product) (int64, error)

	// GetProductByID returns the product with the given identity.
	GetProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// RemoveProduct deletes the product after cascading away every
	// property it owns, all within one transaction.
	RemoveProduct(ctx context.Context, id int64) error

	// BuyProduct decrements stock by qty. qty must be positive and not
	// exceed the current stock.
	BuyProduct(ctx context.Context, id int64, qty int) error

	// AddKeyValueProperty attaches a key/value property to the product
	// and syncs the product's in-memory property collection.
	AddKeyValueProperty(ctx context.Context, productID int64, key, value string) error

	// RemoveKeyValueProperty detaches the first property of the product
	// matching the key/value pair.
	RemoveKeyValueProperty(ctx context.Context, productID int64, key, value string) error

	// UpdateName replaces the product name.
	UpdateName(ctx context.Context, id int64, name string) error

	// UpdatePrice replaces the pre-discount price.
	UpdatePrice(ctx context.Context, id int64, price float64) error

	// UpdateQuantity replaces the stock quantity.
	UpdateQuantity(ctx context.Context, id int64, quantity int) error

	// UpdateDescription replaces the description.
	UpdateDescription(ctx context.Context, id int64, description string) error

	// UpdateDiscount replaces the discount fraction.
	UpdateDiscount(ctx context.Context, id int64, discount float64) error
}
