package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions. Both foreign
// keys are nullable with SET NULL: deleting a category or a user orphans the
// rows instead of cascading.
type Transaction struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	Venue      string          `gorm:"not null;size:255"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Comments   string          `gorm:"type:text"`
	CategoryID *uint64         `gorm:"index"`
	UserID     *uint64         `gorm:"index"`
	Date       time.Time       `gorm:"not null"`
	CreatedAt  time.Time       `gorm:"not null"`

	// Define relationships
	Category *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	User     *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
