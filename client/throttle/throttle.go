package throttle

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// NewRoundTripper returns an http.RoundTripper that spaces outbound requests
// with a token bucket of cfg.Burst tokens refilled at cfg.RPS per second.
// logFn is resolved per request so the logger may be set after the transport
// is built; it may return nil to disable logging.
func NewRoundTripper(cfg Config, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if next == nil {
		next = http.DefaultTransport
	}
	if logFn == nil {
		logFn = func() *slog.Logger { return nil }
	}

	t := &throttle{
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		cfg:     cfg,
		next:    next,
		logFn:   logFn,
	}

	return t, nil
}

// RoundTrip takes exactly one token per request, waiting for it when the
// bucket is empty. A request whose context ends first is never sent and
// its reservation is returned to the bucket.
func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	res := t.limiter.Reserve()
	if !res.OK() {
		return nil, fmt.Errorf("%w: burst %d cannot cover one request", ErrWaitingFailed, t.cfg.Burst)
	}

	delay := res.Delay()
	if delay <= 0 {
		return t.next.RoundTrip(r)
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < delay {
		res.Cancel()
		return nil, fmt.Errorf("%w: wait of %v exceeds deadline: %w", ErrWaitingFailed, delay, context.DeadlineExceeded)
	}

	logger := t.logFn()
	if logger != nil {
		logger.Info("throttle tokens exhausted", "rate", t.cfg.RPS, "burst", t.cfg.Burst, "path", r.URL.Path, "delay", delay.String())
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		res.Cancel()
		return nil, fmt.Errorf("%w while waiting: %w", ErrContextEnded, ctx.Err())
	}

	if logger != nil {
		logger.Debug("throttle wait complete", "waited", delay.String(), "path", r.URL.Path)
	}

	return t.next.RoundTrip(r)
}
