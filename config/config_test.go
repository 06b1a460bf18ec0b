package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, pattern, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", pattern)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestLoadConfig(t *testing.T) {
	path := writeTempFile(t, "config-*.yaml", `
api_key: "test-pro-key"
max_retries: 5
initial_retry_delay: 250ms
cache_duration: 30s
request_timeout: 15s
rate_limits:
  pro:
    rate_limit_per_minute: 500
    burst: 10
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test-pro-key", cfg.APIKey)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.InitialRetryDelay)
	assert.Equal(t, 30*time.Second, cfg.CacheDuration)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 500, cfg.RateLimits.Pro.RateLimitPerMinute)

	// Defaults survive for fields not present in the file
	assert.Equal(t, 10*time.Second, cfg.ConnectionTimeout)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10, cfg.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.InitialRetryDelay)
	assert.Equal(t, 10*time.Second, cfg.CacheDuration)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_TokensFile(t *testing.T) {
	tokensPath := writeTempFile(t, "tokens-*.json", `{"api_tokens": ["pro-key-1", "pro-key-2"]}`)
	cfgPath := writeTempFile(t, "config-*.yaml", "tokens_file: \""+tokensPath+"\"\n")

	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "pro-key-1", cfg.APIKey)
	assert.Equal(t, []string{"pro-key-1", "pro-key-2"}, cfg.APITokens.Tokens)
}

func TestLoadAPITokens_MissingFile(t *testing.T) {
	tokens, err := LoadAPITokens("does-not-exist.json")
	require.NoError(t, err)
	assert.Empty(t, tokens.Tokens)
}

func TestTierDetection(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		baseURL string
		isPro   bool
		isDemo  bool
		wantURL string
	}{
		{
			name:    "no key uses public api",
			wantURL: COINGECKO_PUBLIC_URL,
		},
		{
			name:    "pro key uses pro api",
			apiKey:  "f4f21ac2-1dd2-4a45-9651-6b11eef7a6e1",
			isPro:   true,
			wantURL: COINGECKO_PRO_URL,
		},
		{
			name:    "demo key uses public api",
			apiKey:  "CG-12345",
			isDemo:  true,
			wantURL: COINGECKO_PUBLIC_URL,
		},
		{
			name:    "override wins over key type",
			apiKey:  "f4f21ac2-1dd2-4a45-9651-6b11eef7a6e1",
			baseURL: "http://localhost:8080",
			wantURL: "http://localhost:8080",
		},
		{
			name:    "pro override is detected as pro",
			baseURL: "https://pro-api.example.com/api/v3",
			isPro:   true,
			wantURL: "https://pro-api.example.com/api/v3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.APIKey = tt.apiKey
			cfg.BaseURL = tt.baseURL

			assert.Equal(t, tt.wantURL, cfg.ApiBaseURL())
			assert.Equal(t, tt.isPro, cfg.IsPro())
			assert.Equal(t, tt.isDemo, cfg.IsDemoKey())
		})
	}
}
