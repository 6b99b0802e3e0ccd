package model

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID                  int64   `gorm:"primaryKey;autoIncrement"`
	Name                string  `gorm:"type:varchar(200);not null"`
	PriceBeforeDiscount float64 `gorm:"not null"`
	PriceAfterDiscount  float64 `gorm:"not null"`
	Quantity            int     `gorm:"not null;default:0"`
	Description         string  `gorm:"type:text"`
	Discount            float64 `gorm:"not null;default:1"`
	ProductType         string  `gorm:"type:varchar(50);not null"`

	Properties []PropertyModel `gorm:"foreignKey:ProductID"`

	Carts []ShoppingCartModel `gorm:"many2many:cart_products;joinForeignKey:ProductID;joinReferences:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
