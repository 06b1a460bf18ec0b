package coingecko

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trakx/coingecko-go/config"
	"github.com/trakx/coingecko-go/httpclient"
)

// baseClient carries the plumbing shared by the per-resource clients
type baseClient struct {
	config *config.Config
	doer   httpclient.Doer
}

func newBaseClient(cfg *config.Config, doer httpclient.Doer) baseClient {
	return baseClient{config: cfg, doer: doer}
}

// newBuilder creates a request builder for apiPath with the base URL and
// API key already applied
func (c *baseClient) newBuilder(apiPath string) *RequestBuilder {
	rb := NewRequestBuilder(c.config.ApiBaseURL(), apiPath)

	if c.config.UserAgent != "" {
		rb.WithUserAgent(c.config.UserAgent)
	}

	if c.config.APIKey != "" {
		keyType := httpclient.ProKey
		if c.config.IsDemoKey() {
			keyType = httpclient.DemoKey
		}
		rb.WithApiKey(c.config.APIKey, keyType)
	}

	return rb
}

// getJSON executes the built request and decodes a successful response
// into out. Non-2xx responses become an *APIError.
func (c *baseClient) getJSON(ctx context.Context, rb *RequestBuilder, out interface{}) error {
	req, err := rb.Build(ctx)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
			Header:     resp.Header,
		}
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("error parsing response from %s: %w", req.URL.Path, err)
	}

	return nil
}
