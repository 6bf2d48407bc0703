package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 120, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.Equal(t, 5*time.Minute, cfg.CleanupInterval)
	assert.Empty(t, cfg.Whitelist)
	assert.Equal(t, DefaultEndpointConfigs(), cfg.EndpointConfigs)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "30")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "10s")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2,")
	t.Setenv("RATE_LIMIT_BLACKLIST", "6.6.6.6")
	t.Setenv("RATE_LIMIT_API_LIMIT", "50")

	cfg := LoadConfig()

	assert.Equal(t, 30, cfg.DefaultLimit)
	assert.Equal(t, 10*time.Second, cfg.DefaultWindow)
	assert.Equal(t, map[string]bool{"10.0.0.1": true, "10.0.0.2": true}, cfg.Whitelist)
	assert.True(t, cfg.Blacklist["6.6.6.6"])
	assert.Equal(t, 50, cfg.EndpointConfigs[0].Limit)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.Equal(t, &Config{Enabled: false}, LoadConfig())
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "lots")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "forever")

	cfg := LoadConfig()
	assert.Equal(t, 120, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
}

func TestMatchEndpoint_HealthReturnsFreshConfig(t *testing.T) {
	first := MatchEndpoint("/health", "GET", nil)
	require.NotNil(t, first)
	assert.Equal(t, 0, first.Limit)

	first.Limit = 1
	second := MatchEndpoint("/health", "HEAD", nil)
	require.NotNil(t, second)
	assert.Equal(t, 0, second.Limit)
	assert.NotSame(t, first, second)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/", Method: "GET", Limit: 300},
		{Path: "/api/timeline/", Method: "GET", Limit: 100},
		{Path: "/api/resume", Method: "GET", Limit: 50},
	}

	tests := []struct {
		name     string
		path     string
		method   string
		expected int
		found    bool
	}{
		{"exact", "/api/resume", "GET", 50, true},
		{"longest prefix", "/api/timeline/education", "GET", 100, true},
		{"short prefix", "/api/timeline", "GET", 300, true},
		{"head maps to get", "/api/resume", "HEAD", 50, true},
		{"method mismatch", "/api/resume", "POST", 0, false},
		{"no match", "/", "GET", 0, false},
		{"health unlimited", "/health", "GET", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if !tt.found {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.expected, got.Limit)
			}
		})
	}
}
