package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"financial-saver-go/internal/ai"
	"financial-saver-go/internal/config"
	"financial-saver-go/internal/dashboard"
	"financial-saver-go/internal/database"
	"financial-saver-go/internal/ledger"
	"financial-saver-go/internal/mail"
	"financial-saver-go/internal/otp"
	"financial-saver-go/internal/seed"
)

type Server struct {
	cfg        *config.Config
	otp        *otp.Service
	ledger     *ledger.Service
	dash       *dashboard.Service
	seeder     *seed.Service
	classifier ledger.Classifier
}

func NewServer(cfg *config.Config) *gin.Engine {
	categoryRepo := database.NewCategoryRepo(database.DB)
	classifier, err := ai.NewClassifier(cfg, categoryRepo)
	if err != nil {
		panic(err)
	}
	mailer := mail.NewSendGridClient(cfg)

	s := &Server{
		cfg:        cfg,
		otp:        otp.NewService(database.NewOTPRepo(database.DB), mailer, time.Duration(cfg.OTPTTLMinutes)*time.Minute),
		ledger:     ledger.NewService(database.NewLedgerRepo(database.DB), classifier),
		dash:       dashboard.NewService(database.NewDashboardRepo(database.DB)),
		seeder:     seed.NewService(database.NewSeedRepo(database.DB)),
		classifier: classifier,
	}
	return s.routes()
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(s.cfg))
	r.Use(logging())

	r.POST("/auth/register", s.authRegister)
	r.POST("/auth/login", s.authLogin)
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authorized := r.Group("/")
	authorized.Use(AuthMiddleware())
	{
		authorized.GET("/dashboard", s.getDashboard)

		authorized.GET("/accounts", s.listAccounts)
		authorized.POST("/accounts", s.createAccount)
		authorized.PUT("/accounts", s.updateAccount)

		authorized.GET("/transactions", s.listTransactions)
		authorized.POST("/transactions", s.createTransaction)
		authorized.PUT("/transactions", s.updateTransaction)
		authorized.POST("/transactions/categorize", s.categorizeTransaction)

		authorized.GET("/goals", s.listGoals)
		authorized.POST("/goals", s.createGoal)
		authorized.PUT("/goals", s.updateGoal)

		authorized.GET("/wallet", s.getWallet)
		authorized.PUT("/wallet", s.topUpWallet)

		authorized.GET("/profile", s.getProfile)
		authorized.PUT("/profile", s.updateProfile)

		authorized.POST("/otp/send", s.sendOTP)
		authorized.POST("/otp/verify", s.verifyOTP)

		authorized.POST("/seed-data", s.seedData)
	}

	return r
}

// fail maps domain errors to HTTP statuses. Unexpected errors are logged and
// surfaced as a generic message without leaking internals. Wrong and
// already-used OTP codes share one message on purpose.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		c.JSON(400, gin.H{"error": "Invalid amount"})
	case errors.Is(err, ledger.ErrInvalidType):
		c.JSON(400, gin.H{"error": "Invalid transaction type"})
	case errors.Is(err, ledger.ErrInsufficientFunds):
		c.JSON(400, gin.H{"error": "Insufficient wallet balance"})
	case errors.Is(err, ledger.ErrAccountNotFound):
		c.JSON(404, gin.H{"error": "Account not found"})
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(404, gin.H{"error": "Transaction not found"})
	case errors.Is(err, otp.ErrInvalidDeliveryMethod):
		c.JSON(400, gin.H{"error": "Invalid delivery method. Must be 'email' or 'sms'"})
	case errors.Is(err, otp.ErrPhoneRequired):
		c.JSON(400, gin.H{"error": "Phone number required for SMS delivery"})
	case errors.Is(err, otp.ErrSMSNotImplemented):
		c.JSON(501, gin.H{"error": "SMS service not yet implemented. Please use email delivery."})
	case errors.Is(err, otp.ErrInvalidCode):
		c.JSON(400, gin.H{"error": "Invalid or expired OTP code"})
	case errors.Is(err, otp.ErrExpired):
		c.JSON(400, gin.H{"error": "OTP code has expired"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(500, gin.H{"error": "Internal Server Error"})
	}
}

func cors(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, PUT, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
