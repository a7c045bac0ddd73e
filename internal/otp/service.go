package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"financial-saver-go/internal/models"
)

var (
	ErrInvalidDeliveryMethod = errors.New("invalid delivery method")
	ErrPhoneRequired         = errors.New("phone number required for SMS delivery")
	ErrSMSNotImplemented     = errors.New("SMS service not yet implemented")
	ErrInvalidCode           = errors.New("invalid OTP code")
	ErrExpired               = errors.New("OTP code has expired")
)

const (
	DeliveryEmail = "email"
	DeliverySMS   = "sms"

	// TypeLogin flips the user's verified flag on successful verification.
	TypeLogin = "login"
)

// Repository persists OTP verification records.
type Repository interface {
	// InvalidateUnused removes any unused records for (user, otpType) so that
	// at most one active code exists per purpose.
	InvalidateUnused(ctx context.Context, userID uint, otpType string) error
	Create(ctx context.Context, rec *models.OTPVerification) error
	// FindActive returns the newest unused record matching the code, or nil.
	FindActive(ctx context.Context, userID uint, otpType, code string) (*models.OTPVerification, error)
	MarkUsed(ctx context.Context, id uint) error
	MarkUserVerified(ctx context.Context, userID uint) error
}

// Mailer delivers a message to an address and fails loudly when it cannot.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

type IssueResult struct {
	DeliveryMethod   string `json:"delivery_method"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

type VerifyResult struct {
	OTPType        string `json:"otp_type"`
	DeliveryMethod string `json:"delivery_method"`
}

type Service struct {
	repo   Repository
	mailer Mailer
	ttl    time.Duration
	now    func() time.Time
}

func NewService(repo Repository, mailer Mailer, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Service{repo: repo, mailer: mailer, ttl: ttl, now: time.Now}
}

// generateCode returns a uniformly random 6-digit code, left-zero-padded.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue generates and dispatches a fresh code for (user, otpType). Any prior
// unused code for the same purpose is invalidated first.
func (s *Service) Issue(ctx context.Context, user *models.User, otpType, deliveryMethod string) (*IssueResult, error) {
	if deliveryMethod != DeliveryEmail && deliveryMethod != DeliverySMS {
		return nil, ErrInvalidDeliveryMethod
	}
	if deliveryMethod == DeliverySMS && user.Phone == "" {
		return nil, ErrPhoneRequired
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	if err := s.repo.InvalidateUnused(ctx, user.ID, otpType); err != nil {
		return nil, err
	}

	rec := &models.OTPVerification{
		UserID:         user.ID,
		OTPCode:        code,
		OTPType:        otpType,
		DeliveryMethod: deliveryMethod,
		ExpiresAt:      s.now().Add(s.ttl),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	if deliveryMethod == DeliverySMS {
		return nil, ErrSMSNotImplemented
	}

	minutes := int(s.ttl / time.Minute)
	subject := "Financial Saver - Your OTP Code"
	text := fmt.Sprintf("Your OTP code is: %s\n\nThis code will expire in %d minutes.\n\nIf you didn't request this code, please ignore this email.", code, minutes)
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Your OTP Code</h2>
  <div style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">%s</div>
  <p>This code will expire in <strong>%d minutes</strong>.</p>
  <p>If you didn't request this code, please ignore this email.</p>
</div>`, code, minutes)

	if err := s.mailer.Send(ctx, user.Email, subject, text, html); err != nil {
		return nil, fmt.Errorf("send otp email: %w", err)
	}

	return &IssueResult{DeliveryMethod: deliveryMethod, ExpiresInMinutes: minutes}, nil
}

// Verify consumes a presented code exactly once. A wrong code and an
// already-used code fail identically with ErrInvalidCode; an expired code is
// marked used on the first attempt and fails ErrExpired.
func (s *Service) Verify(ctx context.Context, user *models.User, otpType, code string) (*VerifyResult, error) {
	rec, err := s.repo.FindActive(ctx, user.ID, otpType, code)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrInvalidCode
	}

	if s.now().After(rec.ExpiresAt) {
		// Burn the record so the code cannot be retried.
		if err := s.repo.MarkUsed(ctx, rec.ID); err != nil {
			return nil, err
		}
		return nil, ErrExpired
	}

	if err := s.repo.MarkUsed(ctx, rec.ID); err != nil {
		return nil, err
	}

	if otpType == TypeLogin {
		if err := s.repo.MarkUserVerified(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	return &VerifyResult{OTPType: otpType, DeliveryMethod: rec.DeliveryMethod}, nil
}
