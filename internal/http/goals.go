package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"financial-saver-go/internal/database"
	"financial-saver-go/internal/models"
)

// GET /goals
func (s *Server) listGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var goals []models.SavingsGoal
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"goals": goals})
}

// POST /goals
func (s *Server) createGoal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		Name          string           `json:"name" binding:"required"`
		Description   string           `json:"description"`
		TargetAmount  decimal.Decimal  `json:"target_amount"`
		CurrentAmount *decimal.Decimal `json:"current_amount"`
		TargetDate    *string          `json:"target_date"`
		GoalType      string           `json:"goal_type"`
		Emoji         string           `json:"emoji"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "Name and target amount are required"})
		return
	}
	if !input.TargetAmount.GreaterThan(decimal.Zero) {
		c.JSON(400, gin.H{"error": "Name and target amount are required"})
		return
	}

	goal := models.SavingsGoal{
		UserID:       userID,
		Name:         input.Name,
		Description:  input.Description,
		TargetAmount: input.TargetAmount,
		TargetDate:   input.TargetDate,
		GoalType:     "savings",
		Emoji:        "🎯",
	}
	if input.CurrentAmount != nil {
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.GoalType != "" {
		goal.GoalType = input.GoalType
	}
	if input.Emoji != "" {
		goal.Emoji = input.Emoji
	}

	if err := database.DB.Create(&goal).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(201, gin.H{"goal": goal})
}

// PUT /goals
func (s *Server) updateGoal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		ID            *uint            `json:"id"`
		Name          *string          `json:"name"`
		Description   *string          `json:"description"`
		TargetAmount  *decimal.Decimal `json:"target_amount"`
		CurrentAmount *decimal.Decimal `json:"current_amount"`
		TargetDate    *string          `json:"target_date"`
		GoalType      *string          `json:"goal_type"`
		Emoji         *string          `json:"emoji"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if input.ID == nil {
		c.JSON(400, gin.H{"error": "Goal ID is required"})
		return
	}

	var goal models.SavingsGoal
	if err := database.DB.Where("id = ? AND user_id = ?", *input.ID, userID).First(&goal).Error; err != nil {
		c.JSON(404, gin.H{"error": "Goal not found"})
		return
	}

	if input.Name != nil {
		goal.Name = *input.Name
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetAmount != nil {
		goal.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}
	if input.GoalType != nil {
		goal.GoalType = *input.GoalType
	}
	if input.Emoji != nil {
		goal.Emoji = *input.Emoji
	}

	if err := database.DB.Save(&goal).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"goal": goal})
}
