package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"financial-saver-go/internal/database"
	"financial-saver-go/internal/models"
)

// GET /profile
func (s *Server) getProfile(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	// First profile fetch also provisions the wallet.
	if _, err := s.ledger.Wallet(c.Request.Context(), user.ID); err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, gin.H{"user": user})
}

// PUT /profile
func (s *Server) updateProfile(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	var input struct {
		Phone              *string `json:"phone"`
		PreferredOTPMethod *string `json:"preferred_otp_method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	updated := false
	if input.Phone != nil && strings.TrimSpace(*input.Phone) != "" {
		user.Phone = strings.TrimSpace(*input.Phone)
		updated = true
	}
	if input.PreferredOTPMethod != nil {
		method := *input.PreferredOTPMethod
		if method != "email" && method != "sms" {
			c.JSON(400, gin.H{"error": "Invalid delivery method. Must be 'email' or 'sms'"})
			return
		}
		user.PreferredOTPMethod = method
		updated = true
	}

	if !updated {
		c.JSON(400, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := database.DB.Save(user).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"user": user})
}
