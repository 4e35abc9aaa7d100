// Package config loads server and CLI settings from the environment.
//
// A .env file in the working directory is read first; variables already set
// in the environment take precedence over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/profitshare/internal/storage"
)

// Supported DB_DRIVER values.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds every runtime setting.
type Config struct {
	Addr        string
	DBDriver    string
	DBPath      string
	DatabaseURL string

	// Location is the time zone used to derive period keys from dates.
	Location *time.Location

	JWTSecret string
	TokenTTL  time.Duration

	LogLevel  string
	LogFormat string

	Currency     string
	SeedDefaults bool

	Retry storage.RetryPolicy
}

// AuthEnabled reports whether mutations require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:        getEnv("ADDR", ":8080"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBPath:      getEnv("DB_PATH", "./data/profitshare.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Currency:    strings.ToUpper(getEnv("CURRENCY", "USD")),
	}

	switch cfg.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when DB_DRIVER=%s", DriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	loc, err := time.LoadLocation(getEnv("LEDGER_TZ", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TZ: %w", err)
	}
	cfg.Location = loc

	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	if cfg.SeedDefaults, err = strconv.ParseBool(getEnv("SEED_DEFAULTS", "true")); err != nil {
		return nil, fmt.Errorf("invalid SEED_DEFAULTS: %w", err)
	}

	cfg.Retry = storage.DefaultRetryPolicy
	if v := os.Getenv("STORE_RETRY_DELAY"); v != "" {
		if cfg.Retry.Delay, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid STORE_RETRY_DELAY: %w", err)
		}
	}
	if v := os.Getenv("STORE_RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid STORE_RETRY_ATTEMPTS %q", v)
		}
		cfg.Retry.Attempts = n
	}

	return cfg, nil
}
