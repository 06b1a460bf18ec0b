package scheduler

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs a task repeatedly at a fixed interval until stopped.
// The task runs once as soon as the scheduler starts, then on every tick.
type Scheduler struct {
	interval time.Duration
	task     func(context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a scheduler for the given task and interval
func New(interval time.Duration, task func(context.Context)) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
	}
}

// Start launches the periodic execution. Calling Start on a scheduler
// that is already running is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	s.task(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.task(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Stop cancels the periodic execution and waits for an in-flight run to
// finish. Stopping a scheduler that was never started is a no-op, and a
// stopped scheduler can be started again.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done == nil {
		return
	}

	s.cancel()
	<-s.done
	s.cancel, s.done = nil, nil
}
