package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Transaction records a single financial event. Amount is always positive;
// direction is carried by TransactionType. AccountID is nil for wallet-scoped
// transactions (wallet_topup, bill_payment, transfer).
type Transaction struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	UserID               uint            `gorm:"index" json:"user_id"`
	AccountID            *uint           `gorm:"index" json:"account_id,omitempty"`
	CategoryID           *uint           `json:"category_id,omitempty"`
	Merchant             string          `json:"merchant"`
	Description          string          `json:"description"`
	Amount               decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	TransactionType      string          `json:"transaction_type"`
	Status               string          `gorm:"default:completed" json:"status"`
	TransactionDate      string          `json:"transaction_date"` // YYYY-MM-DD
	MLCategoryConfidence *float64        `json:"ml_category_confidence,omitempty"`
	RecipientName        string          `json:"recipient_name,omitempty"`
	RecipientAccount     string          `json:"recipient_account,omitempty"`
	PaymentGatewayID     string          `json:"payment_gateway_id,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
