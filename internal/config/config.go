package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost   string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	ServerPort   int           `env:"SERVER_PORT" envDefault:"5000"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	APIPrefix    string        `env:"API_PREFIX" envDefault:"/api"`
	Env          string        `env:"APP_ENV" envDefault:"development"`

	// Database configuration. DatabaseURL wins over the individual parts.
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBHost              string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort              int           `env:"DB_PORT" envDefault:"5432"`
	DBUser              string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword          string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName              string        `env:"DB_NAME" envDefault:"content"`
	DBSSLMode           string        `env:"DB_SSL_MODE" envDefault:"disable"`
	DBMaxConns          int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns          int32         `env:"DB_MIN_CONNS" envDefault:"0"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectTimeout    time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	StorePingInterval   time.Duration `env:"STORE_PING_INTERVAL" envDefault:"10s"`

	// HTTP middleware configuration
	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS" envDefault:"1.67"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST" envDefault:"100"`
	// TrustedProxies lists proxy CIDRs whose forwarding headers are honored
	// for client IPs. Empty trusts none.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.APIPrefix = "/" + strings.Trim(cfg.APIPrefix, "/")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ServerAddr returns the listen address in host:port format.
func (c *Config) ServerAddr() string {
	return net.JoinHostPort(c.ServerHost, strconv.Itoa(c.ServerPort))
}

// DatabaseDSN returns a postgres:// URL usable by both pgx and golang-migrate.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	if c.DatabaseURL == "" {
		if c.DBHost == "" {
			return errors.New("DB_HOST is required when DATABASE_URL is not set")
		}
		if c.DBUser == "" {
			return errors.New("DB_USER is required when DATABASE_URL is not set")
		}
		if c.DBName == "" {
			return errors.New("DB_NAME is required when DATABASE_URL is not set")
		}
	}
	if c.DBMaxConns < 1 {
		return errors.New("DB_MAX_CONNS must be at least 1")
	}
	if c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return errors.New("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
	}
	if c.StorePingInterval <= 0 {
		return errors.New("STORE_PING_INTERVAL must be positive")
	}
	if c.RateLimitRPS <= 0 {
		return errors.New("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimitBurst < 1 {
		return errors.New("RATE_LIMIT_BURST must be at least 1")
	}
	return nil
}
