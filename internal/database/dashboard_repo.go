package database

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"financial-saver-go/internal/dashboard"
	"financial-saver-go/internal/models"
)

type DashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) SumAmountByType(ctx context.Context, userID uint, txType string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND transaction_type = ?", userID, txType).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *DashboardRepo) GoalsByUser(ctx context.Context, userID uint) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&goals).Error
	return goals, err
}

func (r *DashboardRepo) RecentTransactions(ctx context.Context, userID uint, limit int) ([]dashboard.TransactionSummary, error) {
	var rows []struct {
		ID              uint
		Amount          decimal.Decimal
		Description     string
		TransactionType string
		TransactionDate string
		CategoryName    *string
	}
	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("transactions.id, transactions.amount, transactions.description, transactions.transaction_type, transactions.transaction_date, categories.name AS category_name").
		Joins("LEFT JOIN categories ON transactions.category_id = categories.id").
		Where("transactions.user_id = ?", userID).
		Order("transactions.transaction_date DESC, transactions.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dashboard.TransactionSummary, 0, len(rows))
	for _, row := range rows {
		category := "Uncategorized"
		if row.CategoryName != nil && *row.CategoryName != "" {
			category = *row.CategoryName
		}
		out = append(out, dashboard.TransactionSummary{
			ID:          row.ID,
			Amount:      row.Amount,
			Description: row.Description,
			Type:        row.TransactionType,
			Category:    category,
			Date:        row.TransactionDate,
		})
	}
	return out, nil
}

func (r *DashboardRepo) RecentGoals(ctx context.Context, userID uint, limit int) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&goals).Error
	return goals, err
}
