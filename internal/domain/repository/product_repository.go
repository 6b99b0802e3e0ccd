package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines product-related database operations.
type ProductRepository interface {
	// Create persists a new product and fills in its assigned identity.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID, with its properties loaded.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// Save updates an existing product record.
	Save(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID. Its properties must already be
	// gone; the cascade is the product service's responsibility.
	Delete(ctx context.Context, id int64) error
}
