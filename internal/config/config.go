// Package config provides configuration loading and validation for the
// huntboard server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds runtime configuration, read from the environment. A .env
// file, when present, is loaded by main before this runs.
type Config struct {
	Port        int
	DatabaseURL string

	// Auth
	JWTSecret          string
	JWTExpirationHours int
	BcryptCost         int
	PasswordPepper     string // optional global secret mixed into hashes
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile reads configuration from the environment, using an optional
// JSON config file to fill in values the environment leaves unset.
// Environment variables win over file values; file values win over defaults.
func LoadWithFile(path string) (*Config, error) {
	var file FileConfig
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		file = *loaded
	}

	cfg := &Config{
		Port:               envInt("PORT", intOr(file.Port, 8080)),
		DatabaseURL:        envStr("DATABASE_URL", file.DatabaseURL),
		JWTSecret:          envStr("JWT_SECRET", file.JWTSecret),
		JWTExpirationHours: envInt("JWT_EXPIRATION_HOURS", intOr(file.JWTExpirationHours, 24)),
		BcryptCost:         envInt("BCRYPT_COST", intOr(file.BcryptCost, 12)),
		PasswordPepper:     envStr("PASSWORD_PEPPER", file.PasswordPepper),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config error: JWT_SECRET is required")
	}
	if c.JWTExpirationHours < 1 {
		return fmt.Errorf("config error: JWT_EXPIRATION_HOURS must be at least 1, got %d", c.JWTExpirationHours)
	}
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("config error: BCRYPT_COST out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// envInt reads an integer environment variable, falling back to def when the
// variable is unset or malformed. Validate catches genuinely unusable
// configurations.
func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// envStr reads a string environment variable, falling back to def when the
// variable is unset.
func envStr(key, def string) string {
	if raw := os.Getenv(key); raw != "" {
		return raw
	}
	return def
}

// intOr returns n unless it is zero, then def.
func intOr(n, def int) int {
	if n != 0 {
		return n
	}
	return def
}
