package model

// Credential represents the database model for stored login credentials
type Credential struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Email    string `gorm:"uniqueIndex;not null;size:255"`
	Password string `gorm:"not null;size:255"` // bcrypt hash, never the plaintext
}

// TableName specifies the table name for Credential
func (Credential) TableName() string {
	return "login"
}
