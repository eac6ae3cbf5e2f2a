package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	DBDSN             string
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	// ShopTimezone is the IANA timezone the shop operates in.
	// Business hours and slot labels are interpreted in this zone.
	ShopTimezone *time.Location

	// BookingLimit is the maximum number of outstanding future confirmed
	// appointments a single customer (keyed by phone) may hold.
	BookingLimit int

	// NotifyWebhookURL is the endpoint customer notifications are posted to.
	// Empty disables outbound delivery (messages are logged instead).
	NotifyWebhookURL   string
	NotifyWebhookToken string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// JWT secret is required for signing staff tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	ttlStr := getEnv("JWT_ACCESS_TOKEN_TTL", "8h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.JWTAccessTokenTTL = ttl

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// Shop timezone (default: America/Sao_Paulo)
	tzStr := getEnv("SHOP_TIMEZONE", "America/Sao_Paulo")
	loc, err := time.LoadLocation(tzStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SHOP_TIMEZONE: %w", err)
	}
	cfg.ShopTimezone = loc

	// Outstanding-appointment limit per customer phone (default: 1)
	cfg.BookingLimit, err = getEnvAsInt("BOOKING_LIMIT", 1)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_LIMIT: %w", err)
	}
	if cfg.BookingLimit < 1 {
		return nil, fmt.Errorf("BOOKING_LIMIT must be at least 1")
	}

	// Notification webhook (optional)
	cfg.NotifyWebhookURL = getEnv("NOTIFY_WEBHOOK_URL", "")
	cfg.NotifyWebhookToken = getEnv("NOTIFY_WEBHOOK_TOKEN", "")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
