package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           string
	AllowOrigins   string
	OpenAIKey      string
	OpenAIBaseURL  string
	OpenAILlmModel string
	SendGridKey    string
	SendGridFrom   string
	SendGridName   string
	OTPTTLMinutes  int
	ReqTimeoutSec  int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:           getenv("PORT", "8080"),
		AllowOrigins:   getenv("ALLOW_ORIGINS", "*"),
		OpenAIKey:      getenv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:  getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAILlmModel: getenv("OPENAI_LLM_MODEL", "gpt-4o-mini"),
		SendGridKey:    getenv("SENDGRID_API_KEY", ""),
		SendGridFrom:   getenv("SENDGRID_FROM_EMAIL", "noreply@financialsaver.app"),
		SendGridName:   getenv("SENDGRID_FROM_NAME", "Financial Saver"),
		OTPTTLMinutes:  atoi("OTP_TTL_MINUTES", 10),
		ReqTimeoutSec:  atoi("REQUEST_TIMEOUT_SECONDS", 30),
	}
}
