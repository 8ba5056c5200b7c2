package model

// Category represents the database model for categories
type Category struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"not null;size:255"`
	Type   string `gorm:"not null;size:50;default:expense"`
	UserID uint64 `gorm:"not null;index"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
