package entity

import "time"

// ShoppingCart groups products picked by a customer. TotalPrice is a
// derived aggregate: it is adjusted incrementally on every product
// add/remove rather than recomputed from the product set.
//
// Adding a product raises the total by its discounted price while
// removing one lowers it by the pre-discount price. The asymmetry is
// long-standing behavior and is kept on purpose; callers relying on the
// total returning to zero after add+remove of the same product will be
// surprised.
type ShoppingCart struct {
	ID             int64
	DateOfPurchase time.Time
	TotalPrice     float64
	Status         Status

	// Customer is the owning side of the cart/customer relation.
	Customer *Customer `validate:"required"`

	// Products is the cart side of the many-to-many join with Product.
	Products []*Product
}

// CustomerID returns the identity of the owning customer, or zero when
// the reference is unset.
func (sc *ShoppingCart) CustomerID() int64 {
	if sc.Customer == nil {
		return 0
	}

	return sc.Customer.ID
}

// ContainsProduct reports whether the cart currently holds the product
// with the given identity.
func (sc *ShoppingCart) ContainsProduct(productID int64) bool {
	for _, p := range sc.Products {
		if p.ID == productID {
			return true
		}
	}

	return false
}
