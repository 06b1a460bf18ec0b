package httpclient

import (
	"math/rand"
	"net/http"
	"time"
)

// decorrelatedJitterDelays pre-computes the retry delay table.
// Entry i is the delay before retry i+1: the median grows exponentially
// from initialDelay and each entry is randomized by up to half the median,
// so simultaneous failures across many callers don't retry in lockstep.
func decorrelatedJitterDelays(initialDelay time.Duration, count int) []time.Duration {
	delays := make([]time.Duration, count)
	for attempt := 1; attempt <= count; attempt++ {
		delays[attempt-1] = calculateBackoffWithJitter(initialDelay, attempt)
	}
	return delays
}

// maxBackoffShift caps the exponential growth so oversized retry counts
// saturate at a long delay instead of wrapping the shift to zero
const maxBackoffShift = 20

// calculateBackoffWithJitter calculates backoff duration with jitter for retries
func calculateBackoffWithJitter(baseBackoff time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return baseBackoff
	}

	shift := uint(attempt - 1)
	if shift > maxBackoffShift {
		shift = maxBackoffShift
	}
	backoff := time.Duration(float64(baseBackoff) * float64(uint64(1)<<shift))
	jitter := time.Duration(rand.Int63n(int64(backoff/2) + 1))
	return backoff + jitter
}

// isRetryableStatus determines if a given HTTP status code should trigger a retry
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout || // 408 Request Timeout
		statusCode == http.StatusTooManyRequests || // 429 Too Many Requests
		statusCode >= http.StatusInternalServerError // 5xx
}
