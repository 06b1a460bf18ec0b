package coingecko

import (
	"fmt"
	"net/http"
)

const maxErrorBodyLen = 200

// APIError describes a completed CoinGecko exchange that came back with a
// non-2xx status after retries were exhausted
type APIError struct {
	StatusCode int
	Body       string
	Header     http.Header
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen] + "..."
	}
	return fmt.Sprintf("coingecko: request failed with status %d: %s", e.StatusCode, body)
}

// IsRateLimited reports whether the API rejected the request with 429
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsNotFound reports whether the resource does not exist
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
