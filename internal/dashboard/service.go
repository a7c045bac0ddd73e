package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"financial-saver-go/internal/models"
)

const (
	recentTransactionLimit = 10
	recentGoalLimit        = 5
)

// TransactionSummary is a recent transaction annotated with its resolved
// category name for display.
type TransactionSummary struct {
	ID          uint            `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

type Stats struct {
	TotalIncome         decimal.Decimal `json:"totalIncome"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	Savings             decimal.Decimal `json:"savings"`
	SavingsGoalProgress int             `json:"savingsGoalProgress"`
}

type Summary struct {
	Stats              Stats                `json:"stats"`
	RecentTransactions []TransactionSummary `json:"recentTransactions"`
	SavingsGoals       []models.SavingsGoal `json:"savingsGoals"`
}

type Repository interface {
	SumAmountByType(ctx context.Context, userID uint, txType string) (decimal.Decimal, error)
	GoalsByUser(ctx context.Context, userID uint) ([]models.SavingsGoal, error)
	RecentTransactions(ctx context.Context, userID uint, limit int) ([]TransactionSummary, error)
	RecentGoals(ctx context.Context, userID uint, limit int) ([]models.SavingsGoal, error)
}

// Service computes read-only rollups for the dashboard. Reads are
// point-in-time and may lag concurrent writes; the dashboard is advisory.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context, userID uint) (*Summary, error) {
	income, err := s.repo.SumAmountByType(ctx, userID, "income")
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.SumAmountByType(ctx, userID, "expense")
	if err != nil {
		return nil, err
	}

	goals, err := s.repo.GoalsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.RecentTransactions(ctx, userID, recentTransactionLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []TransactionSummary{}
	}

	recentGoals, err := s.repo.RecentGoals(ctx, userID, recentGoalLimit)
	if err != nil {
		return nil, err
	}
	if recentGoals == nil {
		recentGoals = []models.SavingsGoal{}
	}

	return &Summary{
		Stats: Stats{
			TotalIncome:         income,
			TotalExpenses:       expenses,
			Savings:             income.Sub(expenses),
			SavingsGoalProgress: goalProgressAverage(goals),
		},
		RecentTransactions: recent,
		SavingsGoals:       recentGoals,
	}, nil
}

// goalProgressAverage is the mean of min(current/target, 1) * 100 over all
// goals, rounded to the nearest percent. A zero target counts as 0%.
func goalProgressAverage(goals []models.SavingsGoal) int {
	if len(goals) == 0 {
		return 0
	}
	hundred := decimal.NewFromInt(100)
	total := decimal.Zero
	for _, g := range goals {
		if !g.TargetAmount.GreaterThan(decimal.Zero) {
			continue
		}
		progress := g.CurrentAmount.Div(g.TargetAmount)
		if progress.GreaterThan(decimal.NewFromInt(1)) {
			progress = decimal.NewFromInt(1)
		}
		total = total.Add(progress.Mul(hundred))
	}
	avg := total.Div(decimal.NewFromInt(int64(len(goals))))
	return int(avg.Round(0).IntPart())
}
