package http

import (
	"github.com/gin-gonic/gin"

	"financial-saver-go/internal/models"
)

// POST /otp/send
func (s *Server) sendOTP(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	var input struct {
		OTPType        string `json:"otp_type"`
		DeliveryMethod string `json:"delivery_method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.OTPType == "" || input.DeliveryMethod == "" {
		c.JSON(400, gin.H{"error": "Missing required fields: otp_type, delivery_method"})
		return
	}

	result, err := s.otp.Issue(c.Request.Context(), user, input.OTPType, input.DeliveryMethod)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success":            true,
		"message":            "OTP sent successfully via " + result.DeliveryMethod,
		"delivery_method":    result.DeliveryMethod,
		"expires_in_minutes": result.ExpiresInMinutes,
	})
}

// POST /otp/verify
func (s *Server) verifyOTP(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	var input struct {
		OTPCode string `json:"otp_code"`
		OTPType string `json:"otp_type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.OTPCode == "" || input.OTPType == "" {
		c.JSON(400, gin.H{"error": "Missing required fields: otp_code, otp_type"})
		return
	}

	result, err := s.otp.Verify(c.Request.Context(), user, input.OTPType, input.OTPCode)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success":         true,
		"message":         "OTP verified successfully",
		"otp_type":        result.OTPType,
		"delivery_method": result.DeliveryMethod,
	})
}
