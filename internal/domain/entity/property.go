package entity

// Property is a single key/value attribute owned by a product.
// The (product, key, value) triple is not unique; the same pair can be
// attached to a product several times.
type Property struct {
	ID        int64
	Key       string `validate:"required"`
	Value     string `validate:"required"`
	ProductID int64
}
