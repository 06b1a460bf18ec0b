package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/trakx/coingecko-go/cache"
	"github.com/trakx/coingecko-go/metrics"
)

// Doer executes a request and returns a completed response
type Doer interface {
	Do(req *http.Request) (*Response, error)
}

// CachedResponse is the serialized snapshot of a response stored in the cache
type CachedResponse struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

// Failed responses are kept for a single tick so an immediate retry goes
// back to the transport instead of replaying the failure, while a tight
// burst of calls still cannot hammer the upstream
const failureCacheTTL = time.Nanosecond

// CachingTransport caches GET responses in front of a Doer.
// The goal is to avoid unnecessary requests to the external CoinGecko API:
// identical GET requests within the cache window are answered from the
// cache, and concurrent misses on one key result in a single outbound call.
type CachingTransport struct {
	next          Doer
	cache         cache.Cache
	cacheDuration time.Duration

	// sleep is swapped out in tests
	sleep func(ctx context.Context, d time.Duration) error
}

// NewCachingTransport creates a caching layer over next.
// Successful responses are cached for cacheDuration.
func NewCachingTransport(next Doer, c cache.Cache, cacheDuration time.Duration) *CachingTransport {
	return &CachingTransport{
		next:          next,
		cache:         c,
		cacheDuration: cacheDuration,
		sleep:         sleepContext,
	}
}

// Do returns a response for the request, consulting and updating the cache.
// Only GET requests participate in caching; anything else passes straight
// through to the underlying transport.
func (t *CachingTransport) Do(req *http.Request) (*Response, error) {
	if req.Method != http.MethodGet {
		return t.next.Do(req)
	}

	key, err := requestCacheKey(req)
	if err != nil {
		return nil, err
	}

	var fresh *Response
	data, err := t.cache.GetOrLoad(key, func() ([]byte, time.Duration, error) {
		metrics.RecordCacheMiss()

		resp, err := t.next.Do(req)
		if err != nil {
			return nil, 0, err
		}
		fresh = resp

		ttl := t.cacheDuration
		if !resp.IsSuccess() {
			ttl = failureCacheTTL
		}

		blob, err := json.Marshal(CachedResponse{StatusCode: resp.StatusCode, Body: string(resp.Body)})
		if err != nil {
			return nil, 0, err
		}
		return blob, ttl, nil
	})
	if err != nil {
		return nil, err
	}

	if fresh == nil {
		metrics.RecordCacheHit()
		log.Printf("CachingTransport: reusing cached response for %s", key)
	}

	var cached CachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("corrupt cache entry for %s: %w", key, err)
	}

	resp := &Response{
		StatusCode: cached.StatusCode,
		Body:       []byte(cached.Body),
	}

	// A fresh rate-limit response with a Retry-After instruction throttles
	// this caller before the failure is handed back, so follow-up calls
	// don't immediately run into the same limit
	if fresh != nil {
		resp.Header = fresh.Header
		if fresh.StatusCode == http.StatusTooManyRequests {
			if wait, ok := ParseRetryAfter(fresh.RetryAfterHeader(), time.Now()); ok && wait > 0 {
				log.Printf("CachingTransport: rate limited, honoring Retry-After of %.2fs", wait.Seconds())
				if err := t.sleep(req.Context(), wait); err != nil {
					return nil, err
				}
			}
		}
	}

	return resp, nil
}

// requestCacheKey derives the cache key from method, URI and request body.
// Identical logical requests map to the same key so repeated queries are
// deduplicated; the body is included for the rare GET carrying one.
func requestCacheKey(req *http.Request) (string, error) {
	payload := ""
	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		body, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		payload = string(body)
	}

	return fmt.Sprintf("[%s]%s|%s", req.Method, req.URL.String(), payload), nil
}
