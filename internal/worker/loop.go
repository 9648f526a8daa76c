package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ticket-marketplace/internal/pkg/errs"
)

// loop runs tick on a fixed interval until stopped. A tick that fails is logged and the
// loop keeps going; the next tick retries.
type loop struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context) error
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func newLoop(name string, interval time.Duration, tick func(ctx context.Context) error, logger *slog.Logger) *loop {
	return &loop{
		name:     name,
		interval: interval,
		tick:     tick,
		logger:   logger,
	}
}

func (l *loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return errs.Newf("%s is already running", l.name)
	}
	if l.interval <= 0 {
		return errs.Newf("%s interval must be positive", l.name)
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.running = true

	l.wg.Add(1)
	go l.run(ctx)

	l.logger.Info("worker started", "worker", l.name, "interval", l.interval)
	return nil
}

// Stop cancels the loop and waits for an in-flight tick, bounded by ctx.
func (l *loop) Stop(ctx context.Context) error {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return nil
	}
	l.running = false
	l.cancel()
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		l.logger.Info("worker stopped", "worker", l.name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *loop) run(ctx context.Context) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.tick(ctx); err != nil && !errs.Is(err, context.Canceled) {
				l.logger.Error("worker tick failed", "worker", l.name, "error", err)
			}
		}
	}
}
