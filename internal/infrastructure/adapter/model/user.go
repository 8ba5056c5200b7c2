package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID     uint64    `gorm:"primaryKey;autoIncrement"`
	Name   string    `gorm:"not null;size:255"`
	Email  string    `gorm:"uniqueIndex;not null;size:255"`
	Joined time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
