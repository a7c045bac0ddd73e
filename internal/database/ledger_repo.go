package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"financial-saver-go/internal/ledger"
	"financial-saver-go/internal/models"
)

// LedgerRepo persists transactions and applies balance deltas. Every
// row-plus-balance write runs inside one database transaction so a failure
// partway leaves neither changed.
type LedgerRepo struct {
	db *gorm.DB
}

func NewLedgerRepo(db *gorm.DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

func (r *LedgerRepo) AccountByID(ctx context.Context, id, userID uint) (*models.Account, error) {
	var acc models.Account
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledger.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *LedgerRepo) EnsureWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w = models.Wallet{UserID: userID, Balance: decimal.Zero}
		if err := r.db.WithContext(ctx).Create(&w).Error; err != nil {
			return nil, err
		}
		return &w, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *LedgerRepo) TransactionByID(ctx context.Context, id, userID uint) (*models.Transaction, error) {
	var t models.Transaction
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *LedgerRepo) CreateWithDelta(ctx context.Context, t *models.Transaction, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		return applyDelta(tx, t, delta)
	})
}

func (r *LedgerRepo) SaveWithDelta(ctx context.Context, t *models.Transaction, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(t).Error; err != nil {
			return err
		}
		return applyDelta(tx, t, delta)
	})
}

// applyDelta adjusts the owning balance relative to its current value. An
// account-scoped transaction targets its account row; a wallet-scoped one
// targets the user's wallet.
func applyDelta(tx *gorm.DB, t *models.Transaction, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	var res *gorm.DB
	if t.AccountID != nil {
		res = tx.Model(&models.Account{}).
			Where("id = ? AND user_id = ?", *t.AccountID, t.UserID).
			Update("balance", gorm.Expr("balance + ?", delta))
	} else {
		res = tx.Model(&models.Wallet{}).
			Where("user_id = ?", t.UserID).
			Update("balance", gorm.Expr("balance + ?", delta))
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("balance row not found for transaction %d", t.ID)
	}
	return nil
}

func (r *LedgerRepo) List(ctx context.Context, userID uint, f ledger.ListFilter) ([]models.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID)

	if f.Type != "" {
		query = query.Where("transaction_type = ?", f.Type)
	}
	if f.Category != "" {
		query = query.Where("category_id IN (SELECT id FROM categories WHERE name = ?)", f.Category)
	}
	if f.StartDate != "" {
		query = query.Where("transaction_date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		query = query.Where("transaction_date <= ?", f.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ts []models.Transaction
	err := query.Order("transaction_date DESC, created_at DESC").
		Limit(f.Limit).Offset(f.Offset).Find(&ts).Error
	if err != nil {
		return nil, 0, err
	}
	return ts, total, nil
}
