package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"
)

// ErrCartNotFound is returned when a shopping cart is not found.
var ErrCartNotFound = errors.New("shopping cart not found")

// CartRepository defines shopping-cart-related database operations,
// including the many-to-many join with products.
type CartRepository interface {
	// Create persists a new cart and fills in its assigned identity.
	Create(ctx context.Context, cart *entity.ShoppingCart) error

	// FindByID retrieves a cart by its unique ID, with its customer and
	// product set loaded.
	FindByID(ctx context.Context, id int64) (*entity.ShoppingCart, error)

	// Save updates an existing cart record (scalar fields and customer
	// reference; the product join is maintained via AddProduct/RemoveProduct).
	Save(ctx context.Context, cart *entity.ShoppingCart) error

	// Delete removes a cart by its ID; its join rows cascade.
	Delete(ctx context.Context, id int64) error

	// AddProduct inserts a join row linking the cart and the product.
	AddProduct(ctx context.Context, cartID, productID int64) error

	// RemoveProduct deletes the join row linking the cart and the product.
	RemoveProduct(ctx context.Context, cartID, productID int64) error
}
