package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"financial-saver-go/internal/ledger"
)

// GET /wallet
func (s *Server) getWallet(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	wallet, err := s.ledger.Wallet(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"wallet": wallet})
}

// PUT /wallet
func (s *Server) topUpWallet(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		Amount           decimal.Decimal `json:"amount"`
		TransactionType  string          `json:"transaction_type"`
		PaymentGatewayID string          `json:"payment_gateway_id"`
		Description      string          `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if input.TransactionType == "" {
		input.TransactionType = ledger.TypeWalletTopup
	}

	t, err := s.ledger.CreateWalletTransaction(c.Request.Context(), userID, ledger.WalletTransactionParams{
		Amount:           input.Amount,
		TransactionType:  input.TransactionType,
		Description:      input.Description,
		PaymentGatewayID: input.PaymentGatewayID,
	})
	if err != nil {
		fail(c, err)
		return
	}

	wallet, err := s.ledger.Wallet(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, gin.H{"wallet": wallet, "transaction": t})
}
