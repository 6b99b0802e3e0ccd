package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// CartUsecase owns the ShoppingCart lifecycle, its many-to-many
// association with products and its association with a customer.
type CartUsecase interface {
	// AddCart persists the cart, syncs the customer back-reference and
	// returns the assigned identity.
	AddCart(ctx context.Context, cart *entity.ShoppingCart) (int64, error)

	// GetCartByID returns the cart with the given identity.
	GetCartByID(ctx context.Context, id int64) (*entity.ShoppingCart, error)

	// RemoveCart deletes the cart; its product join rows cascade.
	RemoveCart(ctx context.Context, id int64) error

	// AddProductToCart links the product to the cart on both sides of the
	// relation and raises TotalPrice by the product's discounted price.
	AddProductToCart(ctx context.Context, cartID int64, product *entity.Product) error

	// RemoveProductFromCart unlinks the product and lowers TotalPrice by
	// the product's pre-discount price. The delta deliberately differs
	// from the one used by AddProductToCart.
	RemoveProductFromCart(ctx context.Context, cartID int64, product *entity.Product) error

	// UpdateCartCustomer reassigns the cart's customer using the same
	// match-or-create dedup as address reassignment, matching on all
	// scalar customer fields plus the address identity.
	UpdateCartCustomer(ctx context.Context, cartID int64, customer *entity.Customer) error
}
