package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines customer-related database operations.
type CustomerRepository interface {
	// Create persists a new customer (and, when the referenced address has
	// no identity yet, the address with it) and fills in assigned IDs.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by its unique ID, with its address loaded.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindByValue retrieves every customer matching all scalar fields
	// (name, surname, email, date of birth, password, admin flag) plus the
	// address identity of the candidate. Used by the cart-customer dedup.
	FindByValue(ctx context.Context, customer *entity.Customer) ([]*entity.Customer, error)

	// Save updates an existing customer record.
	Save(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer by its ID.
	Delete(ctx context.Context, id int64) error
}
