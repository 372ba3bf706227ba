package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string
	BaseURL     string

	// Database (optional, in-memory order store when empty)
	DatabaseURL string

	// RabbitMQ (optional, order events are only logged when empty)
	RabbitMQURL string

	// Supabase (optional, built-in catalog and plain image URLs when empty)
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseStorageBucket  string

	// Staff and kitchen integrations
	StaffJWTSecret      string
	KitchenWebhookToken string

	// Orders and build sessions
	SubmitTimeout    time.Duration
	BuildSessionTTL  time.Duration
	MaxBuildSessions int

	// Logging
	LogFile  string
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	submitTimeout, err := time.ParseDuration(getEnv("SUBMIT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUBMIT_TIMEOUT: %w", err)
	}

	sessionTTL, err := time.ParseDuration(getEnv("BUILD_SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid BUILD_SESSION_TTL: %w", err)
	}

	maxSessions, err := strconv.Atoi(getEnv("MAX_BUILD_SESSIONS", "10000"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_BUILD_SESSIONS: %w", err)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RabbitMQURL: getEnv("RABBITMQ_URL", ""),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "ingredient-images"),

		StaffJWTSecret:      getEnv("STAFF_JWT_SECRET", ""),
		KitchenWebhookToken: getEnv("KITCHEN_WEBHOOK_TOKEN", ""),

		SubmitTimeout:    submitTimeout,
		BuildSessionTTL:  sessionTTL,
		MaxBuildSessions: maxSessions,

		LogFile:  getEnv("LOG_FILE", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.SupabaseURL != "" && c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required when SUPABASE_URL is set")
	}
	if c.SubmitTimeout <= 0 {
		return fmt.Errorf("SUBMIT_TIMEOUT must be positive")
	}
	if c.BuildSessionTTL < 0 {
		return fmt.Errorf("BUILD_SESSION_TTL must not be negative")
	}
	if c.MaxBuildSessions < 0 {
		return fmt.Errorf("MAX_BUILD_SESSIONS must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SupabaseEnabled reports whether catalog loading and image storage should
// go through Supabase.
func (c *Config) SupabaseEnabled() bool {
	return c.SupabaseURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
