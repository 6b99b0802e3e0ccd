// Package entity contains the core business objects of the project.
package entity

import "time"

// Customer is a registered shop account. Every customer references
// exactly one Address (owning, mandatory); the address itself may be
// shared between customers through dedup-by-value.
type Customer struct {
	ID          int64
	Name        string    `validate:"required"`
	Surname     string    `validate:"required"`
	Email       string    `validate:"required,contains=@"`
	DateOfBirth time.Time `validate:"required"`
	Password    string    `validate:"required"`
	IsAdmin     bool

	// Address is the owning side of the customer/address relation.
	Address *Address `validate:"required"`

	// Carts is the back-reference side of ShoppingCart -> Customer.
	Carts []*ShoppingCart
}

// AddressID returns the identity of the referenced address, or zero when
// the reference is unset.
func (c *Customer) AddressID() int64 {
	if c.Address == nil {
		return 0
	}

	return c.Address.ID
}
