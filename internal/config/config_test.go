package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

var envVars = []string{
	"SERVER_HOST",
	"SERVER_PORT",
	"API_PREFIX",
	"APP_ENV",
	"DATABASE_URL",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSL_MODE",
	"DB_MAX_CONNS",
	"DB_MIN_CONNS",
	"STORE_PING_INTERVAL",
	"CORS_ORIGINS",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"TRUSTED_PROXIES",
	"LOG_LEVEL",
}

// clearEnv unsets every config variable and restores the original values
// when the test finishes.
func clearEnv(t *testing.T) {
	t.Helper()
	originalEnv := make(map[string]string)
	for _, env := range envVars {
		if val, ok := os.LookupEnv(env); ok {
			originalEnv[env] = val
		}
		os.Unsetenv(env)
	}
	t.Cleanup(func() {
		for _, env := range envVars {
			if val, ok := originalEnv[env]; ok {
				os.Setenv(env, val)
			} else {
				os.Unsetenv(env)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != 5000 {
			t.Errorf("ServerPort = %v, want 5000", cfg.ServerPort)
		}
		if cfg.APIPrefix != "/api" {
			t.Errorf("APIPrefix = %v, want /api", cfg.APIPrefix)
		}
		if cfg.Env != "development" {
			t.Errorf("Env = %v, want development", cfg.Env)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBMaxConns != 10 {
			t.Errorf("DBMaxConns = %v, want 10", cfg.DBMaxConns)
		}
		if cfg.StorePingInterval != 10*time.Second {
			t.Errorf("StorePingInterval = %v, want 10s", cfg.StorePingInterval)
		}
		if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
			t.Errorf("CORSOrigins = %v, want [http://localhost:3000]", cfg.CORSOrigins)
		}
		if cfg.RateLimitBurst != 100 {
			t.Errorf("RateLimitBurst = %v, want 100", cfg.RateLimitBurst)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
		if cfg.IsProduction() {
			t.Error("IsProduction() = true, want false")
		}
		if len(cfg.TrustedProxies) != 0 {
			t.Errorf("TrustedProxies = %v, want none", cfg.TrustedProxies)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("SERVER_HOST", "127.0.0.1")
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("API_PREFIX", "v1/")
		os.Setenv("APP_ENV", "production")
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_MAX_CONNS", "50")
		os.Setenv("DB_MIN_CONNS", "10")
		os.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
		os.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.0.0/16")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerAddr() != "127.0.0.1:9090" {
			t.Errorf("ServerAddr() = %v, want 127.0.0.1:9090", cfg.ServerAddr())
		}
		if cfg.APIPrefix != "/v1" {
			t.Errorf("APIPrefix = %v, want /v1", cfg.APIPrefix)
		}
		if !cfg.IsProduction() {
			t.Error("IsProduction() = false, want true")
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.DBMaxConns != 50 || cfg.DBMinConns != 10 {
			t.Errorf("DBMaxConns/DBMinConns = %v/%v, want 50/10", cfg.DBMaxConns, cfg.DBMinConns)
		}
		if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
			t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
		}
		if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[0] != "10.0.0.0/8" {
			t.Errorf("TrustedProxies = %v", cfg.TrustedProxies)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			key   string
			value string
		}{
			{"SERVER_PORT", "0"},
			{"SERVER_PORT", "abc"},
			{"DB_MAX_CONNS", "0"},
			{"STORE_PING_INTERVAL", "0s"},
			{"RATE_LIMIT_BURST", "0"},
		}

		for _, tt := range tests {
			t.Run(tt.key+"="+tt.value, func(t *testing.T) {
				clearEnv(t)
				os.Setenv(tt.key, tt.value)

				if _, err := Load(); err == nil {
					t.Errorf("Load() expected error for %s=%s", tt.key, tt.value)
				}
			})
		}
	})
}

func TestDatabaseDSN(t *testing.T) {
	t.Run("built from parts", func(t *testing.T) {
		cfg := &Config{
			DBHost:     "db",
			DBPort:     5432,
			DBUser:     "app",
			DBPassword: "p@ss",
			DBName:     "content",
			DBSSLMode:  "disable",
		}

		dsn := cfg.DatabaseDSN()
		if !strings.HasPrefix(dsn, "postgres://app:p%40ss@db:5432/content") {
			t.Errorf("DatabaseDSN() = %v", dsn)
		}
		if !strings.HasSuffix(dsn, "sslmode=disable") {
			t.Errorf("DatabaseDSN() = %v, want sslmode=disable suffix", dsn)
		}
	})

	t.Run("url takes precedence", func(t *testing.T) {
		cfg := &Config{DatabaseURL: "postgres://u:p@h/db", DBHost: "ignored"}
		if cfg.DatabaseDSN() != "postgres://u:p@h/db" {
			t.Errorf("DatabaseDSN() = %v", cfg.DatabaseDSN())
		}
	})
}
