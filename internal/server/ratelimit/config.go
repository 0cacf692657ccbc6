package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Defaults for the limiter configuration.
const (
	defaultRequestsPerMinute = 60
	defaultBurst             = 20
	defaultMaxClients        = 10000
	defaultStaleAfter        = 10 * time.Minute
)

// Config holds rate limiter settings.
type Config struct {
	RequestsPerMinute int
	Burst             int
	MaxClients        int
	StaleAfter        time.Duration
}

// LoadConfig reads limiter settings from the environment, falling back to
// defaults for unset or malformed values.
func LoadConfig() Config {
	return Config{
		RequestsPerMinute: envInt("RATE_LIMIT_RPM", defaultRequestsPerMinute),
		Burst:             envInt("RATE_LIMIT_BURST", defaultBurst),
		MaxClients:        defaultMaxClients,
		StaleAfter:        defaultStaleAfter,
	}
}

func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
