package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"financial-saver-go/internal/models"
)

type OTPRepo struct {
	db *gorm.DB
}

func NewOTPRepo(db *gorm.DB) *OTPRepo {
	return &OTPRepo{db: db}
}

func (r *OTPRepo) InvalidateUnused(ctx context.Context, userID uint, otpType string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND otp_type = ? AND is_used = ?", userID, otpType, false).
		Delete(&models.OTPVerification{}).Error
}

func (r *OTPRepo) Create(ctx context.Context, rec *models.OTPVerification) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *OTPRepo) FindActive(ctx context.Context, userID uint, otpType, code string) (*models.OTPVerification, error) {
	var rec models.OTPVerification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND otp_type = ? AND otp_code = ? AND is_used = ?", userID, otpType, code, false).
		Order("created_at DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *OTPRepo) MarkUsed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.OTPVerification{}).
		Where("id = ?", id).
		Update("is_used", true).Error
}

func (r *OTPRepo) MarkUserVerified(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_verified", true).Error
}
