package model

// PropertyModel is the GORM-specific struct for the 'properties' table.
// No uniqueness constraint on (product_id, key, value): duplicate pairs
// are allowed by the business rules.
type PropertyModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Key       string `gorm:"column:key;type:varchar(200);not null"`
	Value     string `gorm:"column:value;type:varchar(500);not null"`
	ProductID int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
