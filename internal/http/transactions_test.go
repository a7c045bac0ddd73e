package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"financial-saver-go/internal/ledger"
	"financial-saver-go/internal/models"
	"financial-saver-go/internal/otp"
)

// memLedgerRepo is an in-memory ledger.Repository tracking one wallet.
type memLedgerRepo struct {
	walletBalance decimal.Decimal
	accounts      map[uint]*models.Account
	transactions  map[uint]*models.Transaction
	nextID        uint
}

func newMemLedgerRepo(balance string) *memLedgerRepo {
	return &memLedgerRepo{
		walletBalance: decimal.RequireFromString(balance),
		accounts:      map[uint]*models.Account{},
		transactions:  map[uint]*models.Transaction{},
		nextID:        1,
	}
}

func (r *memLedgerRepo) AccountByID(ctx context.Context, id, userID uint) (*models.Account, error) {
	acc, ok := r.accounts[id]
	if !ok || acc.UserID != userID {
		return nil, ledger.ErrAccountNotFound
	}
	return acc, nil
}

func (r *memLedgerRepo) EnsureWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	return &models.Wallet{ID: 1, UserID: userID, Balance: r.walletBalance}, nil
}

func (r *memLedgerRepo) TransactionByID(ctx context.Context, id, userID uint) (*models.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok || t.UserID != userID {
		return nil, ledger.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memLedgerRepo) CreateWithDelta(ctx context.Context, t *models.Transaction, delta decimal.Decimal) error {
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.transactions[t.ID] = &cp
	r.apply(t, delta)
	return nil
}

func (r *memLedgerRepo) SaveWithDelta(ctx context.Context, t *models.Transaction, delta decimal.Decimal) error {
	cp := *t
	r.transactions[t.ID] = &cp
	r.apply(t, delta)
	return nil
}

func (r *memLedgerRepo) apply(t *models.Transaction, delta decimal.Decimal) {
	if t.AccountID != nil {
		acc := r.accounts[*t.AccountID]
		acc.Balance = acc.Balance.Add(delta)
		return
	}
	r.walletBalance = r.walletBalance.Add(delta)
}

func (r *memLedgerRepo) List(ctx context.Context, userID uint, f ledger.ListFilter) ([]models.Transaction, int64, error) {
	var out []models.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, int64(len(out)), nil
}

type memOTPRepo struct{}

func (memOTPRepo) InvalidateUnused(ctx context.Context, userID uint, otpType string) error { return nil }
func (memOTPRepo) Create(ctx context.Context, rec *models.OTPVerification) error          { return nil }
func (memOTPRepo) FindActive(ctx context.Context, userID uint, otpType, code string) (*models.OTPVerification, error) {
	return nil, nil
}
func (memOTPRepo) MarkUsed(ctx context.Context, id uint) error            { return nil }
func (memOTPRepo) MarkUserVerified(ctx context.Context, userID uint) error { return nil }

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, to, subject, text, html string) error { return nil }

func testRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	user := &models.User{ID: 1, Email: "amy@example.com", Phone: "555-0101"}
	auth := func(c *gin.Context) {
		c.Set("user", user)
		c.Set("userID", user.ID)
	}

	r := gin.New()
	r.POST("/transactions", auth, s.createTransaction)
	r.PUT("/transactions", auth, s.updateTransaction)
	r.GET("/wallet", auth, s.getWallet)
	r.PUT("/wallet", auth, s.topUpWallet)
	r.POST("/otp/send", auth, s.sendOTP)
	r.POST("/otp/verify", auth, s.verifyOTP)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestServer(repo ledger.Repository) *Server {
	return &Server{
		ledger: ledger.NewService(repo, nil),
		otp:    otp.NewService(memOTPRepo{}, noopMailer{}, 10*time.Minute),
	}
}

func TestCreateWalletTransactionHandler(t *testing.T) {
	t.Run("insufficient funds leaves balance unchanged", func(t *testing.T) {
		repo := newMemLedgerRepo("100.00")
		r := testRouter(newTestServer(repo))

		w := doJSON(t, r, "POST", "/transactions", gin.H{
			"transaction_type": "bill_payment",
			"amount":           150,
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400: %s", w.Code, w.Body)
		}
		if !repo.walletBalance.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("balance changed to %s", repo.walletBalance)
		}
	})

	t.Run("topup credits the wallet", func(t *testing.T) {
		repo := newMemLedgerRepo("100.00")
		r := testRouter(newTestServer(repo))

		w := doJSON(t, r, "POST", "/transactions", gin.H{
			"transaction_type": "wallet_topup",
			"amount":           50,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body)
		}
		if !repo.walletBalance.Equal(decimal.RequireFromString("150.00")) {
			t.Errorf("balance = %s, want 150.00", repo.walletBalance)
		}
	})

	t.Run("account type requires account id", func(t *testing.T) {
		r := testRouter(newTestServer(newMemLedgerRepo("0")))

		w := doJSON(t, r, "POST", "/transactions", gin.H{
			"transaction_type": "income",
			"amount":           50,
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestUpdateTransactionHandler(t *testing.T) {
	t.Run("unknown id is 404", func(t *testing.T) {
		r := testRouter(newTestServer(newMemLedgerRepo("0")))

		w := doJSON(t, r, "PUT", "/transactions", gin.H{"id": 99, "amount": 10})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("amount edit re-derives account balance", func(t *testing.T) {
		repo := newMemLedgerRepo("0")
		repo.accounts[5] = &models.Account{ID: 5, UserID: 1, Balance: decimal.RequireFromString("200.00")}
		r := testRouter(newTestServer(repo))

		w := doJSON(t, r, "POST", "/transactions", gin.H{
			"account_id":       5,
			"transaction_type": "expense",
			"amount":           20,
			"merchant":         "Downtown Café",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create status = %d: %s", w.Code, w.Body)
		}
		if !repo.accounts[5].Balance.Equal(decimal.RequireFromString("180.00")) {
			t.Fatalf("balance after create = %s, want 180.00", repo.accounts[5].Balance)
		}

		w = doJSON(t, r, "PUT", "/transactions", gin.H{"id": 1, "amount": 35})
		if w.Code != http.StatusOK {
			t.Fatalf("update status = %d: %s", w.Code, w.Body)
		}
		if !repo.accounts[5].Balance.Equal(decimal.RequireFromString("165.00")) {
			t.Errorf("balance after update = %s, want 165.00", repo.accounts[5].Balance)
		}
	})
}

func TestWalletHandler(t *testing.T) {
	repo := newMemLedgerRepo("25.50")
	r := testRouter(newTestServer(repo))

	req := httptest.NewRequest("GET", "/wallet", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	w = doJSON(t, r, "PUT", "/wallet", gin.H{"amount": 74.50})
	if w.Code != http.StatusOK {
		t.Fatalf("topup status = %d: %s", w.Code, w.Body)
	}
	if !repo.walletBalance.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("balance = %s, want 100.00", repo.walletBalance)
	}
}

func TestOTPHandlers(t *testing.T) {
	r := testRouter(newTestServer(newMemLedgerRepo("0")))

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/otp/send", gin.H{"otp_type": "login"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("sms is 501", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/otp/send", gin.H{"otp_type": "login", "delivery_method": "sms"})
		if w.Code != http.StatusNotImplemented {
			t.Fatalf("status = %d, want 501: %s", w.Code, w.Body)
		}
	})

	t.Run("wrong code is 400 with generic message", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/otp/verify", gin.H{"otp_type": "login", "otp_code": "123456"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["error"] != "Invalid or expired OTP code" {
			t.Errorf("message = %q", body["error"])
		}
	})
}
