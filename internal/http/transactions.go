package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"financial-saver-go/internal/ledger"
)

// GET /transactions
func (s *Server) listTransactions(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ledger.ListFilter{
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Limit:     limit,
		Offset:    offset,
	}

	transactions, total, err := s.ledger.ListTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, gin.H{
		"transactions": transactions,
		"pagination": gin.H{
			"total":   total,
			"limit":   limit,
			"offset":  offset,
			"hasMore": int64(offset+limit) < total,
		},
	})
}

// POST /transactions
func (s *Server) createTransaction(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		AccountID        *uint           `json:"account_id"`
		CategoryID       *uint           `json:"category_id"`
		Merchant         string          `json:"merchant"`
		Description      string          `json:"description"`
		Amount           decimal.Decimal `json:"amount"`
		TransactionType  string          `json:"transaction_type" binding:"required"`
		TransactionDate  string          `json:"transaction_date"`
		RecipientName    string          `json:"recipient_name"`
		RecipientAccount string          `json:"recipient_account"`
		PaymentGatewayID string          `json:"payment_gateway_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	// income/expense post against a named account, everything else against
	// the wallet.
	if input.TransactionType == ledger.TypeIncome || input.TransactionType == ledger.TypeExpense {
		if input.AccountID == nil {
			c.JSON(400, gin.H{"error": "Account ID is required"})
			return
		}
		t, err := s.ledger.CreateAccountTransaction(c.Request.Context(), userID, ledger.AccountTransactionParams{
			AccountID:       *input.AccountID,
			CategoryID:      input.CategoryID,
			Merchant:        input.Merchant,
			Description:     input.Description,
			Amount:          input.Amount,
			TransactionType: input.TransactionType,
			TransactionDate: input.TransactionDate,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(201, gin.H{"transaction": t})
		return
	}

	t, err := s.ledger.CreateWalletTransaction(c.Request.Context(), userID, ledger.WalletTransactionParams{
		Amount:           input.Amount,
		TransactionType:  input.TransactionType,
		Description:      input.Description,
		RecipientName:    input.RecipientName,
		RecipientAccount: input.RecipientAccount,
		PaymentGatewayID: input.PaymentGatewayID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(201, gin.H{"transaction": t})
}

// PUT /transactions
func (s *Server) updateTransaction(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		ID              *uint            `json:"id"`
		Merchant        *string          `json:"merchant"`
		Description     *string          `json:"description"`
		Amount          *decimal.Decimal `json:"amount"`
		TransactionType *string          `json:"transaction_type"`
		TransactionDate *string          `json:"transaction_date"`
		CategoryID      *uint            `json:"category_id"`
		Status          *string          `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if input.ID == nil {
		c.JSON(400, gin.H{"error": "Transaction ID is required"})
		return
	}

	t, err := s.ledger.UpdateTransaction(c.Request.Context(), userID, *input.ID, ledger.Patch{
		Merchant:        input.Merchant,
		Description:     input.Description,
		Amount:          input.Amount,
		TransactionType: input.TransactionType,
		TransactionDate: input.TransactionDate,
		CategoryID:      input.CategoryID,
		Status:          input.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"transaction": t})
}

// POST /transactions/categorize
func (s *Server) categorizeTransaction(c *gin.Context) {
	var input struct {
		Merchant    string          `json:"merchant"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if input.Merchant == "" && input.Description == "" {
		c.JSON(400, gin.H{"error": "Merchant or description is required"})
		return
	}

	result, err := s.classifier.Categorize(c.Request.Context(), input.Merchant, input.Description, input.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, result)
}
