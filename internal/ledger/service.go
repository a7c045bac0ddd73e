package ledger

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"financial-saver-go/internal/models"
)

var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrAccountNotFound   = errors.New("account not found")
	ErrNotFound          = errors.New("transaction not found")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

// Account-scoped transaction types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Wallet-scoped transaction types.
const (
	TypeWalletTopup = "wallet_topup"
	TypeBillPayment = "bill_payment"
	TypeTransfer    = "transfer"
)

// Categorization is the result of the best-effort expense classifier.
type Categorization struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
}

// Classifier assigns a category to an uncategorized expense. Failures must
// never block transaction creation.
type Classifier interface {
	Categorize(ctx context.Context, merchant, description string, amount decimal.Decimal) (*Categorization, error)
}

// Repository persists transactions and applies balance deltas. The WithDelta
// methods must write the row and the balance as one atomic unit: both succeed
// or neither does.
type Repository interface {
	AccountByID(ctx context.Context, id, userID uint) (*models.Account, error)
	EnsureWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	TransactionByID(ctx context.Context, id, userID uint) (*models.Transaction, error)
	CreateWithDelta(ctx context.Context, t *models.Transaction, delta decimal.Decimal) error
	SaveWithDelta(ctx context.Context, t *models.Transaction, delta decimal.Decimal) error
	List(ctx context.Context, userID uint, f ListFilter) ([]models.Transaction, int64, error)
}

// ListFilter narrows a transaction listing. Zero values mean "no filter".
type ListFilter struct {
	Type      string
	Category  string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

type AccountTransactionParams struct {
	AccountID       uint
	CategoryID      *uint
	Merchant        string
	Description     string
	Amount          decimal.Decimal
	TransactionType string
	TransactionDate string
}

type WalletTransactionParams struct {
	Amount           decimal.Decimal
	TransactionType  string
	Description      string
	RecipientName    string
	RecipientAccount string
	PaymentGatewayID string
}

// Patch carries a partial transaction update. Nil fields are left untouched;
// the repository translates set fields into a parameterized update.
type Patch struct {
	Merchant        *string
	Description     *string
	Amount          *decimal.Decimal
	TransactionType *string
	TransactionDate *string
	CategoryID      *uint
	Status          *string
}

// Service records financial events and keeps the owning balance equal to the
// sum of signed effects of the transactions on record.
type Service struct {
	repo       Repository
	classifier Classifier
}

func NewService(repo Repository, classifier Classifier) *Service {
	return &Service{repo: repo, classifier: classifier}
}

// effect is the signed balance impact of a transaction. Amounts are stored
// positive; direction comes from the type alone.
func effect(txType string, amount decimal.Decimal) decimal.Decimal {
	switch txType {
	case TypeIncome, TypeWalletTopup:
		return amount
	default:
		return amount.Neg()
	}
}

func isAccountType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

func isWalletType(t string) bool {
	return t == TypeWalletTopup || t == TypeBillPayment || t == TypeTransfer
}

func (s *Service) CreateAccountTransaction(ctx context.Context, userID uint, p AccountTransactionParams) (*models.Transaction, error) {
	if !p.Amount.GreaterThan(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if !isAccountType(p.TransactionType) {
		return nil, ErrInvalidType
	}
	if _, err := s.repo.AccountByID(ctx, p.AccountID, userID); err != nil {
		return nil, err
	}

	t := &models.Transaction{
		UserID:          userID,
		AccountID:       &p.AccountID,
		CategoryID:      p.CategoryID,
		Merchant:        p.Merchant,
		Description:     p.Description,
		Amount:          p.Amount,
		TransactionType: p.TransactionType,
		Status:          models.StatusCompleted,
		TransactionDate: defaultDate(p.TransactionDate),
	}

	if t.CategoryID == nil && p.TransactionType == TypeExpense && s.classifier != nil {
		if cat, err := s.classifier.Categorize(ctx, p.Merchant, p.Description, p.Amount); err != nil {
			log.Printf("auto-categorization failed: %v", err)
		} else if cat != nil {
			t.CategoryID = &cat.CategoryID
			t.MLCategoryConfidence = &cat.Confidence
		}
	}

	if err := s.repo.CreateWithDelta(ctx, t, effect(t.TransactionType, t.Amount)); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) CreateWalletTransaction(ctx context.Context, userID uint, p WalletTransactionParams) (*models.Transaction, error) {
	if !p.Amount.GreaterThan(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if !isWalletType(p.TransactionType) {
		return nil, ErrInvalidType
	}

	wallet, err := s.repo.EnsureWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p.TransactionType != TypeWalletTopup && wallet.Balance.LessThan(p.Amount) {
		return nil, ErrInsufficientFunds
	}

	status := models.StatusPending
	description := p.Description
	if p.TransactionType == TypeWalletTopup {
		status = models.StatusCompleted
		if description == "" {
			description = "Wallet top-up"
		}
	}

	t := &models.Transaction{
		UserID:           userID,
		Description:      description,
		Amount:           p.Amount,
		TransactionType:  p.TransactionType,
		Status:           status,
		TransactionDate:  defaultDate(""),
		RecipientName:    p.RecipientName,
		RecipientAccount: p.RecipientAccount,
		PaymentGatewayID: p.PaymentGatewayID,
	}

	if err := s.repo.CreateWithDelta(ctx, t, effect(t.TransactionType, t.Amount)); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTransaction applies a partial update. When amount or type change, the
// original effect is reversed and the new one applied as a single net delta,
// so the end balance equals what a fresh insert of the new values would give.
func (s *Service) UpdateTransaction(ctx context.Context, userID, id uint, patch Patch) (*models.Transaction, error) {
	t, err := s.repo.TransactionByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	origEffect := effect(t.TransactionType, t.Amount)

	if patch.Amount != nil {
		if !patch.Amount.GreaterThan(decimal.Zero) {
			return nil, ErrInvalidAmount
		}
		t.Amount = *patch.Amount
	}
	if patch.TransactionType != nil {
		newType := *patch.TransactionType
		// A transaction cannot move between wallet and account scope.
		sameScope := (isAccountType(t.TransactionType) && isAccountType(newType)) ||
			(isWalletType(t.TransactionType) && isWalletType(newType))
		if !sameScope {
			return nil, ErrInvalidType
		}
		t.TransactionType = newType
	}
	if patch.Merchant != nil {
		t.Merchant = *patch.Merchant
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.TransactionDate != nil {
		t.TransactionDate = *patch.TransactionDate
	}
	if patch.CategoryID != nil {
		t.CategoryID = patch.CategoryID
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}

	delta := effect(t.TransactionType, t.Amount).Sub(origEffect)
	if err := s.repo.SaveWithDelta(ctx, t, delta); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID uint, f ListFilter) ([]models.Transaction, int64, error) {
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.repo.List(ctx, userID, f)
}

// Wallet returns the user's wallet, creating it on first fetch.
func (s *Service) Wallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	return s.repo.EnsureWallet(ctx, userID)
}

func defaultDate(d string) string {
	if d != "" {
		return d
	}
	return time.Now().Format("2006-01-02")
}
