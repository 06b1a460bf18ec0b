package httpclient

import (
	"net/http"
	"strconv"
	"time"
)

// ParseRetryAfter parses a Retry-After header value per RFC 7231: either
// delta-seconds or an HTTP-date. Returns the wait duration relative to now
// and whether the header was understood. Dates in the past yield a zero wait.
func ParseRetryAfter(value string, now time.Time) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0, false
		}
		return time.Duration(seconds) * time.Second, true
	}

	if date, err := http.ParseTime(value); err == nil {
		wait := date.Sub(now)
		if wait < 0 {
			wait = 0
		}
		return wait, true
	}

	return 0, false
}
