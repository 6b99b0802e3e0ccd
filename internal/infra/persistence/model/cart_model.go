package model

import "time"

// ShoppingCartModel is the GORM-specific struct for the 'shopping_carts'
// table. TotalPrice is stored as-is; the services maintain it
// incrementally rather than recomputing from the join.
type ShoppingCartModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	DateOfPurchase time.Time `gorm:"not null"`
	TotalPrice     float64   `gorm:"not null;default:0"`
	Status         string    `gorm:"type:varchar(50);not null"`

	CustomerID int64          `gorm:"not null;index"`
	Customer   *CustomerModel `gorm:"foreignKey:CustomerID"`

	Products []ProductModel `gorm:"many2many:cart_products;joinForeignKey:CartID;joinReferences:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShoppingCartModel) TableName() string {
	return "shopping_carts"
}
