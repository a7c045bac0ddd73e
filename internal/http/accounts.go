package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"financial-saver-go/internal/database"
	"financial-saver-go/internal/models"
)

// GET /accounts
func (s *Server) listAccounts(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var accounts []models.Account
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&accounts).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"accounts": accounts})
}

// POST /accounts
func (s *Server) createAccount(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		Name          string           `json:"name" binding:"required"`
		AccountType   string           `json:"account_type" binding:"required"`
		AccountNumber string           `json:"account_number"`
		Balance       *decimal.Decimal `json:"balance"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "Name and account type are required"})
		return
	}

	account := models.Account{
		UserID:        userID,
		Name:          input.Name,
		AccountType:   input.AccountType,
		AccountNumber: input.AccountNumber,
		Balance:       decimal.Zero,
	}
	if input.Balance != nil {
		account.Balance = *input.Balance
	}

	if err := database.DB.Create(&account).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(201, gin.H{"account": account})
}

// PUT /accounts
func (s *Server) updateAccount(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		ID            *uint            `json:"id"`
		Name          *string          `json:"name"`
		AccountType   *string          `json:"account_type"`
		AccountNumber *string          `json:"account_number"`
		Balance       *decimal.Decimal `json:"balance"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if input.ID == nil {
		c.JSON(400, gin.H{"error": "Account ID is required"})
		return
	}

	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", *input.ID, userID).First(&account).Error; err != nil {
		c.JSON(404, gin.H{"error": "Account not found"})
		return
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.AccountType != nil {
		account.AccountType = *input.AccountType
	}
	if input.AccountNumber != nil {
		account.AccountNumber = *input.AccountNumber
	}
	if input.Balance != nil {
		account.Balance = *input.Balance
	}

	if err := database.DB.Save(&account).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"account": account})
}
