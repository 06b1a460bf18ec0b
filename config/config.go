package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Base URL for the public API
	COINGECKO_PUBLIC_URL = "https://api.coingecko.com/api/v3"
	// Base URL for the Pro API
	COINGECKO_PRO_URL = "https://pro-api.coingecko.com/api/v3"
)

// Config represents the full client configuration
type Config struct {
	// BaseURL overrides the CoinGecko API base URL.
	// If empty, the URL is derived from the API key type.
	BaseURL string `yaml:"base_url"`

	// APIKey is the CoinGecko API key. Keys starting with "CG-" or
	// containing "demo" are treated as demo keys and routed to the public API
	APIKey string `yaml:"api_key"`

	// TokensFile optionally points to a JSON file with API keys,
	// used when APIKey is not set inline
	TokensFile string `yaml:"tokens_file"`

	// UserAgent overrides the User-Agent header sent with every request
	UserAgent string `yaml:"user_agent"`

	// MaxRetries is the maximum number of retry attempts per request
	MaxRetries int `yaml:"max_retries"`

	// InitialRetryDelay is the median delay before the first retry
	InitialRetryDelay time.Duration `yaml:"initial_retry_delay"`

	// CacheDuration is how long successful GET responses are cached
	CacheDuration time.Duration `yaml:"cache_duration"`

	// RequestTimeout is the total per-request timeout including response read
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// ConnectionTimeout is the timeout for establishing a connection
	ConnectionTimeout time.Duration `yaml:"connection_timeout"`

	// RateLimits configures requests-per-minute budgets per key type
	RateLimits APIKeyConfig `yaml:"rate_limits"`

	// Cache configures the cache backends
	Cache CacheConfig `yaml:"cache"`

	APITokens *APITokens
}

// DefaultConfig returns the configuration used when no file is provided
func DefaultConfig() *Config {
	return &Config{
		MaxRetries:        10,
		InitialRetryDelay: 100 * time.Millisecond,
		CacheDuration:     10 * time.Second,
		RequestTimeout:    10 * time.Second,
		ConnectionTimeout: 10 * time.Second,
		Cache:             DefaultCacheConfig(),
		APITokens:         &APITokens{},
	}
}

// LoadConfig reads configuration from a yaml file and applies defaults
// for any omitted values
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}

	if config.APIKey == "" && config.TokensFile != "" {
		apiTokens, err := LoadAPITokens(config.TokensFile)
		if err != nil {
			return nil, fmt.Errorf("error loading API tokens from %s: %w", config.TokensFile, err)
		}
		config.APITokens = apiTokens
		if len(apiTokens.Tokens) > 0 {
			config.APIKey = apiTokens.Tokens[0]
		} else if len(apiTokens.DemoTokens) > 0 {
			config.APIKey = apiTokens.DemoTokens[0]
		}
	}

	return config, nil
}

// IsPro reports whether the effective base URL points at the paid tier
func (c *Config) IsPro() bool {
	return strings.Contains(strings.ToLower(c.ApiBaseURL()), "pro-api")
}

// IsDemoKey reports whether the configured key is a demo key
func (c *Config) IsDemoKey() bool {
	if c.APIKey == "" {
		return false
	}
	return strings.HasPrefix(c.APIKey, "CG-") ||
		strings.HasPrefix(c.APIKey, "demo_") ||
		strings.Contains(strings.ToLower(c.APIKey), "demo")
}

// ApiBaseURL returns the API base URL to use for requests.
// Pro keys go to the pro host, demo keys and keyless access to the public host
func (c *Config) ApiBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.APIKey != "" && !c.IsDemoKey() {
		return COINGECKO_PRO_URL
	}
	return COINGECKO_PUBLIC_URL
}
