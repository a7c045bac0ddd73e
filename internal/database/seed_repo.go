package database

import (
	"context"

	"gorm.io/gorm"

	"financial-saver-go/internal/models"
)

type SeedRepo struct {
	db *gorm.DB
	*CategoryRepo
}

func NewSeedRepo(db *gorm.DB) *SeedRepo {
	return &SeedRepo{db: db, CategoryRepo: NewCategoryRepo(db)}
}

func (r *SeedRepo) CountTransactions(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *SeedRepo) CreateTransactions(ctx context.Context, ts []models.Transaction) error {
	if len(ts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ts).Error
}

func (r *SeedRepo) CreateGoals(ctx context.Context, gs []models.SavingsGoal) error {
	if len(gs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&gs).Error
}
