// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Address is a physical postal address shared by any number of customers.
// Two addresses with the same five fields are considered the same logical
// address; services deduplicate on that natural key instead of inserting
// value-equal rows.
type Address struct {
	ID         int64  // Store-assigned identity, stable once assigned.
	Country    string `validate:"required"`
	ZipCode    string `validate:"required"`
	City       string `validate:"required"`
	Street     string `validate:"required"`
	HomeNumber string `validate:"required"`

	// Customers is the non-owning back-reference side of the
	// Customer -> Address relation. It never drives lifecycle.
	Customers []*Customer
}

// SameLocation reports whether both addresses share the full natural key.
func (a *Address) SameLocation(other *Address) bool {
	if other == nil {
		return false
	}

	return a.Country == other.Country &&
		a.ZipCode == other.ZipCode &&
		a.City == other.City &&
		a.Street == other.Street &&
		a.HomeNumber == other.HomeNumber
}
