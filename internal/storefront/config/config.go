// Package config derives the service configuration from environment
// variables, with defaults suitable for local development.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// CheckoutLogPath is the SQLite file for the checkout audit log.
	// Empty disables persistence (transitions are still logged via slog).
	CheckoutLogPath string

	// RedisAddr enables the catalog cache when non-empty.
	RedisAddr string

	// StripeSecretKey selects the real gateway; when empty the in-process
	// fake is used so the service runs without credentials.
	StripeSecretKey string

	// SMTP transport for the notification dispatcher.
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// FromEmail is the sender of both order emails; OperatorEmail receives
	// the operator notification.
	FromEmail     string
	OperatorEmail string

	ShutdownTimeout time.Duration
}

func Load() Config {
	return Config{
		Addr:            ":" + getEnv("PORT", "8080"),
		CheckoutLogPath: getEnv("CHECKOUT_LOG_PATH", "./data/checkout.db"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		SMTPHost:        getEnv("SMTP_HOST", "smtp.ethereal.email"),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		FromEmail:       getEnv("FROM_EMAIL", "noreply@luxecuffs.com"),
		OperatorEmail:   getEnv("ADMIN_EMAIL", "admin@luxecuffs.com"),
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
