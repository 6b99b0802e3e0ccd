package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// CustomerUsecase owns the Customer lifecycle and its association with
// a deduplicated Address.
type CustomerUsecase interface {
	// AddCustomer persists the customer, syncs the address back-reference
	// and returns the assigned identity.
	AddCustomer(ctx context.Context, customer *entity.Customer) (int64, error)

	// GetCustomerByID returns the customer with the given identity.
	GetCustomerByID(ctx context.Context, id int64) (*entity.Customer, error)

	// RemoveCustomer deletes the customer. The address back-reference is
	// recomputed by the store relation and needs no explicit touch.
	RemoveCustomer(ctx context.Context, id int64) error

	// UpdateEmail replaces the email; the candidate must contain "@".
	UpdateEmail(ctx context.Context, id int64, email string) error

	// UpdatePassword replaces the password; must be non-empty.
	UpdatePassword(ctx context.Context, id int64, password string) error

	// UpdateIsAdmin replaces the admin flag.
	UpdateIsAdmin(ctx context.Context, id int64, isAdmin bool) error

	// UpdateAddress reassigns the customer's address using match-or-create
	// dedup: an existing row field-equal on the full natural key is
	// reused, otherwise the candidate is inserted.
	UpdateAddress(ctx context.Context, customerID int64, address *entity.Address) error
}
