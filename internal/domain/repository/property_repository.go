package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"
)

// ErrPropertyNotFound is returned when no property matches a lookup.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository defines property-related database operations.
type PropertyRepository interface {
	// Create persists a new property and fills in its assigned identity.
	Create(ctx context.Context, property *entity.Property) error

	// FindByProduct retrieves all properties owned by a product.
	FindByProduct(ctx context.Context, productID int64) ([]*entity.Property, error)

	// FindByProductKeyValue retrieves the properties of a product matching
	// the exact key/value pair, in insertion order. Duplicates are
	// possible; callers pick which match to act on.
	FindByProductKeyValue(ctx context.Context, productID int64, key, value string) ([]*entity.Property, error)

	// Delete removes a single property by its ID.
	Delete(ctx context.Context, id int64) error

	// DeleteByProduct removes every property owned by a product and
	// returns the number of removed rows.
	DeleteByProduct(ctx context.Context, productID int64) (int64, error)
}
