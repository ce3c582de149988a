// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection string. May be empty: the server then runs in
	// storage-unavailable mode, where reads return empty defaults and
	// mutations fail explicitly.
	DatabaseURL string

	// DegradedReads keeps read endpoints answering with empty results when
	// the database is unreachable instead of returning errors.
	DegradedReads bool

	// Identity settings
	JWTSecret   string // HS256 secret shared with the login gateway
	OwnerOpenID string // open id auto-promoted to admin on sign-in

	// Valkey (Redis-compatible) — optional, used for API rate limiting
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Rate limit for public API requests, per client IP
	RateLimit  int
	RateWindow time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DegradedReads: envBool("INKWELL_DEGRADED_READS", true),

		JWTSecret:   envOrDefault("JWT_SECRET", "devsecret"),
		OwnerOpenID: os.Getenv("OWNER_OPEN_ID"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		RateLimit:  envInt("RATE_LIMIT", 120),
		RateWindow: time.Minute,
	}

	if cfg.Env == "production" {
		if cfg.JWTSecret == "devsecret" {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address, or an empty string when Valkey is
// not configured.
func (c *Config) ValkeyAddr() string {
	if c.ValkeyHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envBool reads a boolean environment variable ("true"/"false", "1"/"0").
func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// envInt reads an integer environment variable.
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
