package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"index" json:"user_id"`
	Name          string          `json:"name"`
	AccountType   string          `json:"account_type"` // checking, savings, credit, cash
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
