package models

import "time"

// OTPVerification is a short-lived numeric credential tied to a user and a
// purpose. At most one unused record exists per (user, otp_type); a record
// marked used is never reactivated.
type OTPVerification struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	OTPCode        string    `json:"-"` // 6 digits, never echoed back
	OTPType        string    `json:"otp_type"` // login, test, ...
	DeliveryMethod string    `json:"delivery_method"` // email, sms
	ExpiresAt      time.Time `json:"expires_at"`
	IsUsed         bool      `gorm:"default:false" json:"is_used"`
	CreatedAt      time.Time `json:"created_at"`
}
