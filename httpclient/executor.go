package httpclient

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"
)

// RetryOptions configures retry behavior for HTTP requests
type RetryOptions struct {
	// MaxRetries is the number of retries after the initial attempt,
	// so a request is tried at most MaxRetries+1 times
	MaxRetries int

	// InitialDelay is the median delay before the first retry; later
	// retries back off exponentially from it
	InitialDelay time.Duration

	// PolicyKey identifies this retry policy in logs and metrics
	PolicyKey string

	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultRetryOptions returns default retry options
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries:        10,
		InitialDelay:      100 * time.Millisecond,
		PolicyKey:         "coingecko",
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    10 * time.Second,
	}
}

// Executor performs HTTP requests with rate limiting and bounded retry.
// Network errors and transient statuses (408, 429, 5xx) are retried with
// decorrelated-jitter backoff; a server-supplied Retry-After always wins
// over the computed backoff when it demands a longer wait.
type Executor struct {
	Client        *http.Client
	Opts          RetryOptions
	StatusHandler StatusHandler
	Limiters      *RateLimiterManager

	delays []time.Duration

	// sleep is swapped out in tests
	sleep func(ctx context.Context, d time.Duration) error
}

// NewExecutor creates a new executor with the given retry options.
// handler and limiters may be nil.
func NewExecutor(opts RetryOptions, handler StatusHandler, limiters *RateLimiterManager) *Executor {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &Executor{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
		Limiters:      limiters,
		delays:        decorrelatedJitterDelays(opts.InitialDelay, opts.MaxRetries),
		sleep:         sleepContext,
	}
}

// Do executes a request with retry and returns the final response.
// A completed HTTP exchange is always returned as a Response value, even
// for a non-2xx status; a non-nil error means no response was obtained
// (network failure on every attempt, or cancellation).
func (e *Executor) Do(req *http.Request) (*Response, error) {
	var lastResp *Response
	var lastErr error

	for attempt := 0; attempt <= e.Opts.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := e.retryDelay(attempt, lastResp)
			e.logRetry(attempt, wait, lastResp, lastErr)

			if e.StatusHandler != nil {
				e.StatusHandler.OnRetry()
			}

			if err := e.sleep(req.Context(), wait); err != nil {
				return nil, err
			}
		}

		if err := e.waitForRateLimiter(req); err != nil {
			return nil, err
		}

		resp, err := e.attempt(req)
		if err != nil {
			if req.Context().Err() != nil {
				return nil, req.Context().Err()
			}
			lastErr = err
			lastResp = nil
			if e.StatusHandler != nil {
				e.StatusHandler.OnRequest("error")
			}
			continue
		}

		if isRetryableStatus(resp.StatusCode) {
			lastResp = resp
			lastErr = nil
			if e.StatusHandler != nil {
				e.StatusHandler.OnRequest(statusLabel(resp.StatusCode))
			}
			continue
		}

		if e.StatusHandler != nil {
			e.StatusHandler.OnRequest(statusLabel(resp.StatusCode))
		}
		return resp, nil
	}

	// All attempts used up: surface the last completed response, or the
	// last error when no attempt produced one
	if lastResp != nil {
		return lastResp, nil
	}
	return nil, fmt.Errorf("%s: all %d attempts failed, last error: %w",
		e.Opts.PolicyKey, e.Opts.MaxRetries+1, lastErr)
}

// attempt performs a single request/response exchange
func (e *Executor) attempt(req *http.Request) (*Response, error) {
	outReq := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		outReq.Body = body
	}

	start := time.Now()
	resp, err := e.Client.Do(outReq)
	duration := time.Since(start)

	if err != nil {
		return nil, fmt.Errorf("request failed after %.2fs: %w", duration.Seconds(), err)
	}
	defer resp.Body.Close()

	if e.StatusHandler != nil {
		e.StatusHandler.RecordRequestDuration(duration)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// retryDelay computes the wait before the given retry attempt: the
// pre-computed jittered backoff, unless the server asked for longer
func (e *Executor) retryDelay(attempt int, lastResp *Response) time.Duration {
	backoff := e.delays[attempt-1]

	if lastResp != nil {
		serverWait, ok := ParseRetryAfter(lastResp.RetryAfterHeader(), time.Now())
		if ok && serverWait > backoff {
			return serverWait
		}
	}

	return backoff
}

func (e *Executor) waitForRateLimiter(req *http.Request) error {
	if e.Limiters == nil {
		return nil
	}
	limiter := e.Limiters.GetLimiterForRequest(req)
	if limiter == nil {
		return nil
	}
	if err := limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}
	return nil
}

func (e *Executor) logRetry(attempt int, wait time.Duration, lastResp *Response, lastErr error) {
	if lastErr != nil {
		log.Printf("%s: retry %d/%d in %.2fs after error: %v",
			e.Opts.PolicyKey, attempt, e.Opts.MaxRetries, wait.Seconds(), lastErr)
		return
	}
	log.Printf("%s: retry %d/%d in %.2fs after status %d: %s",
		e.Opts.PolicyKey, attempt, e.Opts.MaxRetries, wait.Seconds(),
		lastResp.StatusCode, truncateBody(lastResp.Body))
}

func statusLabel(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "success"
	case statusCode == http.StatusTooManyRequests:
		return "rate_limited"
	case statusCode == http.StatusRequestTimeout:
		return "timeout"
	default:
		return "error"
	}
}

func truncateBody(body []byte) string {
	const maxLogged = 200
	if len(body) > maxLogged {
		return string(body[:maxLogged]) + "..."
	}
	return string(body)
}

// sleepContext waits for d or until ctx is cancelled
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
