package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
// The address foreign key is mandatory; the address row itself may be
// shared between customers.
type CustomerModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Surname     string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	DateOfBirth time.Time `gorm:"not null"`
	Password    string    `gorm:"type:varchar(255);not null"`
	IsAdmin     bool      `gorm:"not null;default:false"`

	AddressID int64         `gorm:"not null;index"`
	Address   *AddressModel `gorm:"foreignKey:AddressID"`

	Carts []ShoppingCartModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
