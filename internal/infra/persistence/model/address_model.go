// Package model holds the GORM-specific persistence structs. They stay
// separate from the domain entities; each repository maps between the two.
package model

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Country    string `gorm:"type:varchar(100);not null"`
	ZipCode    string `gorm:"type:varchar(20);not null"`
	City       string `gorm:"type:varchar(100);not null"`
	Street     string `gorm:"type:varchar(200);not null"`
	HomeNumber string `gorm:"type:varchar(20);not null"`

	Customers []CustomerModel `gorm:"foreignKey:AddressID"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
