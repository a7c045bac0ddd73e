package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SavingsGoal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"index" json:"user_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(12,2)" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"current_amount"`
	TargetDate    *string         `json:"target_date,omitempty"` // YYYY-MM-DD
	GoalType      string          `gorm:"default:savings" json:"goal_type"`
	Emoji         string          `json:"emoji"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
