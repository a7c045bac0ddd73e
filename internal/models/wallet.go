package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a user's single aggregate cash balance, distinct from named
// accounts. Created lazily with balance 0.00 on first profile or wallet fetch.
type Wallet struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"uniqueIndex" json:"user_id"`
	Balance   decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
