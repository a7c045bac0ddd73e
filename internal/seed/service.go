package seed

import (
	"context"

	"github.com/shopspring/decimal"

	"financial-saver-go/internal/models"
)

type Repository interface {
	CountTransactions(ctx context.Context, userID uint) (int64, error)
	Categories(ctx context.Context) ([]models.Category, error)
	CreateTransactions(ctx context.Context, ts []models.Transaction) error
	CreateGoals(ctx context.Context, gs []models.SavingsGoal) error
}

type Result struct {
	Message      string `json:"message"`
	Seeded       bool   `json:"seeded"`
	Transactions int    `json:"transactions,omitempty"`
	Goals        int    `json:"goals,omitempty"`
}

// Service populates sample data for a fresh user. Guarded to be idempotent:
// a user who already has transactions gets a no-op.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type sampleTransaction struct {
	category    string
	amount      string
	description string
	txType      string
	date        string
}

var sampleTransactions = []sampleTransaction{
	{"Salary", "5000.00", "Monthly Salary - October", "income", "2025-10-01"},
	{"Freelance", "750.00", "Website Design Project", "income", "2025-10-15"},
	{"Investments", "120.50", "Dividend Payment", "income", "2025-10-20"},
	{"Food & Dining", "85.20", "Grocery Shopping", "expense", "2025-10-28"},
	{"Transportation", "60.00", "Gas Station Fill-up", "expense", "2025-10-27"},
	{"Bills & Utilities", "120.00", "Electricity Bill", "expense", "2025-10-25"},
	{"Shopping", "200.00", "New Clothes for Winter", "expense", "2025-10-24"},
	{"Entertainment", "45.00", "Movie Night", "expense", "2025-10-22"},
	{"Healthcare", "75.00", "Doctor Visit Co-pay", "expense", "2025-10-20"},
	{"Food & Dining", "35.50", "Lunch at Downtown Café", "expense", "2025-10-19"},
}

type sampleGoal struct {
	name        string
	description string
	target      string
	current     string
	targetDate  string
}

var sampleGoals = []sampleGoal{
	{"Emergency Fund", "6 months of living expenses for financial security", "15000.00", "8500.00", "2025-12-31"},
	{"Vacation to Europe", "Dream trip to visit Paris, Rome, and Barcelona", "5000.00", "2100.00", "2025-06-01"},
	{"New Laptop", "MacBook Pro for work and personal projects", "2500.00", "1800.00", "2025-02-14"},
}

func (s *Service) Seed(ctx context.Context, userID uint) (*Result, error) {
	count, err := s.repo.CountTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &Result{Message: "User already has transaction data", Seeded: false}, nil
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	var txs []models.Transaction
	for _, st := range sampleTransactions {
		catID, ok := byName[st.category]
		if !ok {
			continue
		}
		id := catID
		txs = append(txs, models.Transaction{
			UserID:          userID,
			CategoryID:      &id,
			Amount:          decimal.RequireFromString(st.amount),
			Description:     st.description,
			TransactionType: st.txType,
			Status:          models.StatusCompleted,
			TransactionDate: st.date,
		})
	}
	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, err
	}

	var goals []models.SavingsGoal
	for _, sg := range sampleGoals {
		date := sg.targetDate
		goals = append(goals, models.SavingsGoal{
			UserID:        userID,
			Name:          sg.name,
			Description:   sg.description,
			TargetAmount:  decimal.RequireFromString(sg.target),
			CurrentAmount: decimal.RequireFromString(sg.current),
			TargetDate:    &date,
			GoalType:      "savings",
			Emoji:         "🎯",
		})
	}
	if err := s.repo.CreateGoals(ctx, goals); err != nil {
		return nil, err
	}

	return &Result{
		Message:      "Sample data created successfully!",
		Seeded:       true,
		Transactions: len(txs),
		Goals:        len(goals),
	}, nil
}
