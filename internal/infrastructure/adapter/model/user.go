package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"not null;size:255"`
	Email        string    `gorm:"not null;size:255;uniqueIndex:idx_users_email"`
	PasswordHash string    `gorm:"column:password_hash;not null;size:255"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
