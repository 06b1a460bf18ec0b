package config

import (
	"encoding/json"
	"os"
)

// APITokens represents the structure of the tokens file
type APITokens struct {
	// Tokens contains Pro API keys
	Tokens []string `json:"api_tokens"`
	// DemoTokens contains demo API keys used against the public API
	DemoTokens []string `json:"demo_api_tokens"`
}

// LoadAPITokens loads API keys from a JSON file.
// A missing file is not an error, it just means keyless access
func LoadAPITokens(filename string) (*APITokens, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return &APITokens{Tokens: []string{}}, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var tokens APITokens
	err = json.Unmarshal(data, &tokens)
	return &tokens, err
}
