package throttle

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"gecko_says":"(V3) To the Moon!"}`))
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}

func get(ctx context.Context, c *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}

	return resp.Body.Close()
}

func TestNewRoundTripper_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{RPS: 10, Burst: 5}},
		{name: "burst below rps", cfg: Config{RPS: 30, Burst: 1}},
		{name: "zero rps", cfg: Config{RPS: 0, Burst: 5}, wantErr: true},
		{name: "zero burst", cfg: Config{RPS: 10, Burst: 0}, wantErr: true},
		{name: "negative", cfg: Config{RPS: -1, Burst: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := NewRoundTripper(tt.cfg, nil, nil)
			if tt.wantErr {
				if !errors.Is(err, ErrMustNotBeZero) {
					t.Fatalf("expected ErrMustNotBeZero, got: %v", err)
				}
				if rt != nil {
					t.Error("expected nil transport on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
		})
	}
}

func TestRoundTrip_BurstIsImmediate(t *testing.T) {
	srv, hits := newServer(t)

	rt, err := NewRoundTripper(Config{RPS: 1, Burst: 5}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := &http.Client{Transport: rt}

	start := time.Now()
	for i := range 5 {
		if err := get(t.Context(), c, srv.URL+"/ping"); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}

	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("expected burst to pass without waiting, took %v", elapsed)
	}
	if got := hits.Load(); got != 5 {
		t.Errorf("expected 5 requests served, got %d", got)
	}
}

func TestRoundTrip_SpacesBeyondBurst(t *testing.T) {
	srv, _ := newServer(t)

	rt, err := NewRoundTripper(Config{RPS: 20, Burst: 1}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := &http.Client{Transport: rt}

	// One token up front, then one every 50ms.
	start := time.Now()
	for i := range 4 {
		if err := get(t.Context(), c, srv.URL+"/ping"); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}

	if elapsed := time.Since(start); elapsed < 140*time.Millisecond {
		t.Errorf("expected requests to be spaced by the limiter, took %v", elapsed)
	}
}

func TestRoundTrip_ConcurrentCallersShareBucket(t *testing.T) {
	srv, hits := newServer(t)

	rt, err := NewRoundTripper(Config{RPS: 50, Burst: 2}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := &http.Client{Transport: rt}

	const n = 10

	var wg sync.WaitGroup
	errs := make(chan error, n)
	start := time.Now()
	for range n {
		wg.Go(func() {
			errs <- get(t.Context(), c, srv.URL+"/coins/markets")
		})
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if got := hits.Load(); got != n {
		t.Errorf("expected %d requests served, got %d", n, got)
	}
	// 2 from the burst, 8 more at 20ms each.
	if elapsed := time.Since(start); elapsed < 140*time.Millisecond {
		t.Errorf("expected shared bucket to pace callers, took %v", elapsed)
	}
}

func TestRoundTrip_ContextEnded(t *testing.T) {
	srv, hits := newServer(t)

	t.Run("cancelled before send", func(t *testing.T) {
		rt, err := NewRoundTripper(Config{RPS: 100, Burst: 1}, nil, nil)
		if err != nil {
			t.Fatal(err)
		}

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/ping", nil)
		if err != nil {
			t.Fatal(err)
		}

		_, err = rt.RoundTrip(req)
		if !errors.Is(err, ErrContextEnded) || !errors.Is(err, context.Canceled) {
			t.Errorf("expected ErrContextEnded wrapping context.Canceled, got: %v", err)
		}
	})

	t.Run("deadline shorter than wait", func(t *testing.T) {
		rt, err := NewRoundTripper(Config{RPS: 1, Burst: 1}, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		c := &http.Client{Transport: rt}

		if err := get(t.Context(), c, srv.URL+"/ping"); err != nil {
			t.Fatalf("first request: %v", err)
		}

		ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		err = get(ctx, c, srv.URL+"/ping")
		if !errors.Is(err, ErrWaitingFailed) || !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected ErrWaitingFailed wrapping context.DeadlineExceeded, got: %v", err)
		}
		if elapsed := time.Since(start); elapsed > 40*time.Millisecond {
			t.Errorf("expected an immediate failure, took %v", elapsed)
		}
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		rt, err := NewRoundTripper(Config{RPS: 1, Burst: 1}, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		c := &http.Client{Transport: rt}

		if err := get(t.Context(), c, srv.URL+"/ping"); err != nil {
			t.Fatalf("first request: %v", err)
		}

		ctx, cancel := context.WithCancel(t.Context())
		time.AfterFunc(30*time.Millisecond, cancel)

		err = get(ctx, c, srv.URL+"/ping")
		if !errors.Is(err, ErrContextEnded) || !errors.Is(err, context.Canceled) {
			t.Errorf("expected ErrContextEnded wrapping context.Canceled, got: %v", err)
		}
	})

	if got := hits.Load(); got != 2 {
		t.Errorf("expected only the two priming requests to reach the server, got %d", got)
	}
}

func TestRoundTrip_LogsExhaustion(t *testing.T) {
	srv, _ := newServer(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rt, err := NewRoundTripper(Config{RPS: 50, Burst: 1}, func() *slog.Logger { return logger }, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := &http.Client{Transport: rt}

	for i := range 3 {
		if err := get(t.Context(), c, srv.URL+"/coins/markets"); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}

	out := buf.String()
	if got := strings.Count(out, "throttle tokens exhausted"); got != 2 {
		t.Errorf("expected 2 exhaustion logs, got %d: %s", got, out)
	}
	if !strings.Contains(out, "path=/coins/markets") {
		t.Errorf("expected request path in log, got: %s", out)
	}
}
