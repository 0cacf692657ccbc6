package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies user passwords with bcrypt, mixing in
// an optional global pepper before hashing.
type PasswordHasher struct {
	cost   int
	pepper string
}

// NewPasswordHasher creates a hasher from the loaded configuration.
func NewPasswordHasher(cfg *Config) *PasswordHasher {
	return &PasswordHasher{cost: cfg.BcryptCost, pepper: cfg.PasswordPepper}
}

// Hash hashes a plain-text password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password+h.pepper), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the plain-text password matches the stored hash.
func (h *PasswordHasher) Verify(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password+h.pepper)) == nil
}
