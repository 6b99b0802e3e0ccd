package entity

// ProductType is the fixed category enumeration for catalog items.
type ProductType string

const (
	// ProductTypeBag covers bags and luggage.
	ProductTypeBag ProductType = "BAG"
	// ProductTypeShoes covers footwear.
	ProductTypeShoes ProductType = "SHOES"
	// ProductTypeClothing covers apparel.
	ProductTypeClothing ProductType = "CLOTHING"
	// ProductTypeAccessory covers accessories.
	ProductTypeAccessory ProductType = "ACCESSORY"
	// ProductTypeElectronics covers consumer electronics.
	ProductTypeElectronics ProductType = "ELECTRONICS"
)

// String returns the string representation of the ProductType.
func (t ProductType) String() string {
	return string(t)
}

// IsValid checks if the ProductType is a valid value.
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeBag, ProductTypeShoes, ProductTypeClothing,
		ProductTypeAccessory, ProductTypeElectronics:
		return true
	default:
		return false
	}
}
