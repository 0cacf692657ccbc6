package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLimiterConfig() Config {
	return Config{
		RequestsPerMinute: 60,
		Burst:             3,
		MaxClients:        100,
		StaleAfter:        time.Minute,
	}
}

func TestLimiter_AllowsUpToBurst(t *testing.T) {
	l := NewLimiter(testLimiterConfig())

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("client-a")
		require.True(t, allowed, "request %d within burst should be allowed", i+1)
	}

	allowed, status := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Equal(t, 0, status.Remaining)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testLimiterConfig())

	for i := 0; i < 3; i++ {
		l.Allow("client-a")
	}
	allowed, _ := l.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed)
}

func TestLimiter_StatusHeaderFields(t *testing.T) {
	l := NewLimiter(testLimiterConfig())

	allowed, status := l.Allow("client-a")
	require.True(t, allowed)
	assert.Equal(t, 3, status.Limit)
	assert.Equal(t, 2, status.Remaining)
	assert.False(t, status.Reset.Before(time.Now().Add(-time.Second)))
}

func TestLimiter_TokensRefill(t *testing.T) {
	cfg := testLimiterConfig()
	cfg.RequestsPerMinute = 60000 // 1000/s so the test does not sleep long
	l := NewLimiter(cfg)

	for i := 0; i < 3; i++ {
		l.Allow("client-a")
	}
	allowed, _ := l.Allow("client-a")
	require.False(t, allowed)

	time.Sleep(5 * time.Millisecond)

	allowed, _ = l.Allow("client-a")
	assert.True(t, allowed)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPM", "")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, defaultRequestsPerMinute, cfg.RequestsPerMinute)
	assert.Equal(t, defaultBurst, cfg.Burst)
	assert.Equal(t, defaultMaxClients, cfg.MaxClients)
	assert.Equal(t, defaultStaleAfter, cfg.StaleAfter)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPM", "120")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg := LoadConfig()
	assert.Equal(t, 120, cfg.RequestsPerMinute)
	assert.Equal(t, 5, cfg.Burst)
}
