package main

import (
	"log"

	"github.com/joho/godotenv"

	"financial-saver-go/internal/config"
	"financial-saver-go/internal/database"
	httpserver "financial-saver-go/internal/http"
)

func main() {
	_ = godotenv.Load(".env")

	database.Connect()
	database.Migrate()

	cfg := config.Load()
	r := httpserver.NewServer(cfg)
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
