package httpclient

import "time"

// StatusHandler is an interface for handling HTTP request statuses
type StatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnRetry handles retry events
	OnRetry()
	// RecordRequestDuration handles the latency of a completed exchange
	RecordRequestDuration(duration time.Duration)
}
