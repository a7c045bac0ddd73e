package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"financial-saver-go/internal/models"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, dbname, sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to PostgreSQL:", err)
	}

	log.Println("connected to PostgreSQL")
	DB = db
}

func Migrate() {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
		&models.SavingsGoal{},
		&models.OTPVerification{},
	); err != nil {
		log.Fatal("migration failed:", err)
	}
	seedCategories()
}

// Categories are static reference data; insert them once.
func seedCategories() {
	defaults := []models.Category{
		{Name: "Salary", Type: "income", Color: "#22C55E", Icon: "briefcase"},
		{Name: "Freelance", Type: "income", Color: "#10B981", Icon: "laptop"},
		{Name: "Investments", Type: "income", Color: "#14B8A6", Icon: "trending-up"},
		{Name: "Food & Dining", Type: "expense", Color: "#F97316", Icon: "utensils"},
		{Name: "Transportation", Type: "expense", Color: "#3B82F6", Icon: "car"},
		{Name: "Shopping", Type: "expense", Color: "#A855F7", Icon: "shopping-bag"},
		{Name: "Entertainment", Type: "expense", Color: "#EC4899", Icon: "film"},
		{Name: "Bills & Utilities", Type: "expense", Color: "#EAB308", Icon: "zap"},
		{Name: "Healthcare", Type: "expense", Color: "#EF4444", Icon: "heart-pulse"},
		{Name: "Other", Type: "expense", Color: "#6B7280", Icon: "circle-dot"},
	}
	for _, cat := range defaults {
		var existing models.Category
		if err := DB.Where("name = ?", cat.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := DB.Create(&cat).Error; err != nil {
				log.Printf("seed category %q: %v", cat.Name, err)
			}
		}
	}
}
