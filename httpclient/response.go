package httpclient

import "net/http"

// Response is an immutable snapshot of a completed HTTP exchange.
// Carrying status, headers and body as plain data lets the retry and
// caching layers make decisions without inspecting exceptions, and the
// body can be re-read any number of times.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the response carries a 2xx status
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RetryAfterHeader returns the Retry-After header value, if any
func (r *Response) RetryAfterHeader() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get("Retry-After")
}
