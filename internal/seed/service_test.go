package seed

import (
	"context"
	"testing"

	"financial-saver-go/internal/models"
)

type fakeRepo struct {
	txCount      int64
	categories   []models.Category
	transactions []models.Transaction
	goals        []models.SavingsGoal
}

func (r *fakeRepo) CountTransactions(ctx context.Context, userID uint) (int64, error) {
	return r.txCount + int64(len(r.transactions)), nil
}

func (r *fakeRepo) Categories(ctx context.Context) ([]models.Category, error) {
	return r.categories, nil
}

func (r *fakeRepo) CreateTransactions(ctx context.Context, ts []models.Transaction) error {
	r.transactions = append(r.transactions, ts...)
	return nil
}

func (r *fakeRepo) CreateGoals(ctx context.Context, gs []models.SavingsGoal) error {
	r.goals = append(r.goals, gs...)
	return nil
}

func allCategories() []models.Category {
	names := []struct {
		name   string
		ctType string
	}{
		{"Salary", "income"}, {"Freelance", "income"}, {"Investments", "income"},
		{"Food & Dining", "expense"}, {"Transportation", "expense"}, {"Shopping", "expense"},
		{"Entertainment", "expense"}, {"Bills & Utilities", "expense"}, {"Healthcare", "expense"},
	}
	var cats []models.Category
	for i, n := range names {
		cats = append(cats, models.Category{ID: uint(i + 1), Name: n.name, Type: n.ctType})
	}
	return cats
}

func TestSeedFreshUser(t *testing.T) {
	repo := &fakeRepo{categories: allCategories()}
	svc := NewService(repo)

	res, err := svc.Seed(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Seeded {
		t.Fatal("fresh user should be seeded")
	}
	if res.Transactions != 10 || len(repo.transactions) != 10 {
		t.Errorf("transactions seeded = %d, want 10", len(repo.transactions))
	}
	if res.Goals != 3 || len(repo.goals) != 3 {
		t.Errorf("goals seeded = %d, want 3", len(repo.goals))
	}
	for _, tx := range repo.transactions {
		if tx.CategoryID == nil {
			t.Error("every sample transaction should be categorized")
		}
		if tx.UserID != 1 {
			t.Error("sample transaction not scoped to user")
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := &fakeRepo{categories: allCategories()}
	svc := NewService(repo)

	first, err := svc.Seed(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Seeded {
		t.Fatal("first call should seed")
	}

	second, err := svc.Seed(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if second.Seeded {
		t.Error("second call must be a no-op")
	}
	if len(repo.transactions) != 10 || len(repo.goals) != 3 {
		t.Error("second call changed data")
	}
}

func TestSeedSkipsUnknownCategories(t *testing.T) {
	// Only one category known: rows referencing others are skipped, not
	// inserted uncategorized.
	repo := &fakeRepo{categories: []models.Category{{ID: 1, Name: "Salary", Type: "income"}}}
	svc := NewService(repo)

	res, err := svc.Seed(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Transactions != 1 {
		t.Errorf("transactions = %d, want 1", res.Transactions)
	}
}
