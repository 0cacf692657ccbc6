package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileConfig represents the optional JSON config file for the CLI.
// All fields are defaults; environment variables and explicit CLI flags win.
type FileConfig struct {
	// Server
	Port               int    `json:"port,omitempty"`                 // HTTP port
	DatabaseURL        string `json:"database_url,omitempty"`         // PostgreSQL connection URL
	JWTSecret          string `json:"jwt_secret,omitempty"`           // Token signing secret
	JWTExpirationHours int    `json:"jwt_expiration_hours,omitempty"` // Token lifetime in hours
	BcryptCost         int    `json:"bcrypt_cost,omitempty"`          // Password hashing cost (10-14)
	PasswordPepper     string `json:"password_pepper,omitempty"`      // Optional global password pepper

	// Score command defaults
	Skills           string `json:"skills,omitempty"`             // Comma-separated skill names
	DesiredTitles    string `json:"desired_titles,omitempty"`     // Comma-separated desired titles
	DesiredWorkModes string `json:"desired_work_modes,omitempty"` // Comma-separated desired work modes
}

// LoadFile loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadFile(path string) (*FileConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the values the file actually sets. Missing required fields
// are not checked here; they are validated after merging with the
// environment and CLI flags.
func (c *FileConfig) Validate() error {
	if c.Port != 0 && (c.Port < 1 || c.Port > 65535) {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.BcryptCost != 0 && (c.BcryptCost < 10 || c.BcryptCost > 14) {
		return fmt.Errorf("config error: 'bcrypt_cost' out of range: %d (must be 10-14)", c.BcryptCost)
	}
	if c.JWTExpirationHours < 0 {
		return fmt.Errorf("config error: 'jwt_expiration_hours' must be non-negative")
	}
	return nil
}
