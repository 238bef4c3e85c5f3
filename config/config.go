package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Email delivery (Resend)
	ResendAPIKey     string
	ContactEmailFrom string
	ContactEmailTo   string
	// Client configuration (cmd/form)
	RelayURL string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		// Trim trailing slash so origin comparison does not depend on it
		FrontendURL:      strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		ContactEmailFrom: getEnv("CONTACT_EMAIL_FROM", "noreply@example.com"),
		ContactEmailTo:   getEnv("CONTACT_EMAIL_TO", "info@example.com"),
		RelayURL:         strings.TrimRight(getEnv("RELAY_URL", "http://localhost:8080"), "/"),
	}

	// A missing API key is handled per request so the server still boots,
	// but it is worth flagging early.
	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Contact form delivery will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
