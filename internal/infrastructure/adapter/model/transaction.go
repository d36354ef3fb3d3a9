package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for swaps
type Transaction struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	UserID       uint64          `gorm:"not null;index"`
	FromCurrency string          `gorm:"not null;size:64"`
	ToCurrency   string          `gorm:"not null;size:64"`
	Amount       decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(38,18);not null"`
	ResultAmount decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	Status       string          `gorm:"not null;size:50;default:completed"`
	CreatedAt    time.Time       `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
