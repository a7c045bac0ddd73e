package models

import (
	"time"
)

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UUID               string    `gorm:"uniqueIndex" json:"uuid"` // Public ID carried in session tokens
	Email              string    `gorm:"uniqueIndex" json:"email"`
	Phone              string    `json:"phone"`
	Name               string    `json:"name"`
	PasswordHash       string    `json:"-"` // Bcrypt hash, hidden from JSON
	IsVerified         bool      `gorm:"default:false" json:"is_verified"`
	PreferredOTPMethod string    `gorm:"default:email" json:"preferred_otp_method"` // email, sms
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
