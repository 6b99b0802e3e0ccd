// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application
// layers and the infrastructure layer.
package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines address-related database operations.
type AddressRepository interface {
	// Create persists a new address and fills in its assigned identity.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Address, error)

	// FindByFields retrieves every address matching the full natural key
	// (country, zip code, city, street, home number) of the candidate.
	// This is the equality scan behind the match-or-create dedup.
	FindByFields(ctx context.Context, address *entity.Address) ([]*entity.Address, error)
}
