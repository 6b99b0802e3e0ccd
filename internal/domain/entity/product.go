// Package entity contains the core business objects of the project.
package entity

// Product is a catalog item. It owns its Properties (they cannot outlive
// it) and shares an unowned many-to-many relation with shopping carts.
//
// The validation tags encode the two partial rule sets of the catalog
// acceptance predicate; see Validate for how they combine.
type Product struct {
	ID                  int64
	Name                string      `validate:"required"`
	PriceBeforeDiscount float64     `validate:"gt=0,lt=10000"`
	PriceAfterDiscount  float64
	Quantity            int         `validate:"gte=0,lt=10000"`
	Description         string      `validate:"required"`
	Discount            float64     `validate:"gte=0,lte=1"` // Fraction in [0,1].
	ProductType         ProductType `validate:"required"`

	// Properties is the owned key/value metadata of this product.
	// Duplicate (key, value) pairs are permitted.
	Properties []*Property

	// Carts is the back-reference side of the cart/product join.
	Carts []*ShoppingCart
}

// InStock reports whether at least qty units are available.
func (p *Product) InStock(qty int) bool {
	return qty <= p.Quantity
}
