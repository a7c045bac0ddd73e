package database

import (
	"context"

	"gorm.io/gorm"

	"financial-saver-go/internal/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) ExpenseCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := r.db.WithContext(ctx).Where("type = ?", "expense").Order("name").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepo) Categories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := r.db.WithContext(ctx).Order("name").Find(&cats).Error
	return cats, err
}
