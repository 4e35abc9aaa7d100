package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_DRIVER", "DB_PATH", "DATABASE_URL", "LEDGER_TZ",
		"JWT_SECRET", "TOKEN_TTL", "LOG_LEVEL", "LOG_FORMAT", "CURRENCY", "SEED_DEFAULTS",
		"STORE_RETRY_DELAY", "STORE_RETRY_ATTEMPTS"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.DBDriver != DriverSQLite {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if !cfg.SeedDefaults {
		t.Error("SeedDefaults should default to true")
	}
	if cfg.Retry.Attempts != 2 || cfg.Retry.Delay != 500*time.Millisecond {
		t.Errorf("Retry = %+v", cfg.Retry)
	}
	if cfg.AuthEnabled() {
		t.Error("auth should be disabled without JWT_SECRET")
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q", cfg.Currency)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/profitshare")
	t.Setenv("LEDGER_TZ", "America/New_York")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CURRENCY", "eur")
	t.Setenv("SEED_DEFAULTS", "false")
	t.Setenv("STORE_RETRY_DELAY", "10ms")
	t.Setenv("STORE_RETRY_ATTEMPTS", "4")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.DBDriver != DriverPostgres {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.Location.String() != "America/New_York" {
		t.Errorf("Location = %v", cfg.Location)
	}
	if !cfg.AuthEnabled() {
		t.Error("auth should be enabled")
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q", cfg.Currency)
	}
	if cfg.SeedDefaults {
		t.Error("SeedDefaults should be false")
	}
	if cfg.Retry.Attempts != 4 || cfg.Retry.Delay != 10*time.Millisecond {
		t.Errorf("Retry = %+v", cfg.Retry)
	}
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}},
		{"postgres without url", map[string]string{"DB_DRIVER": "postgres", "DATABASE_URL": ""}},
		{"bad time zone", map[string]string{"LEDGER_TZ": "Mars/Olympus"}},
		{"bad ttl", map[string]string{"TOKEN_TTL": "forever"}},
		{"bad seed flag", map[string]string{"SEED_DEFAULTS": "maybe"}},
		{"zero attempts", map[string]string{"STORE_RETRY_ATTEMPTS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := FromEnv(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
