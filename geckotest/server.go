package geckotest

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Request is what the fake recorded about one incoming call.
type Request struct {
	Route    string
	Path     string
	RawQuery string
	Header   http.Header
}

// Server is a running fake API. The zero value is not usable; call
// NewServer.
type Server struct {
	// URL is the base URL to pass to client.WithBaseURL.
	URL string

	srv      *httptest.Server
	served   atomic.Int64
	mu       sync.Mutex
	requests []Request
}

// Option configures a Server.
type Option func(*options)

type fixture struct {
	status int
	body   string
}

type options struct {
	logger       *slog.Logger
	tracer       trace.Tracer
	apiKeyHeader string
	apiKey       string
	limit        int64
	fixtures     map[string]fixture
	handlers     map[string]http.HandlerFunc
}

// WithLogger sets the logger used for request and error logs.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithTracer injects the given tracer into the handlers.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithAPIKey requires every request to carry key under header, in the
// request headers or the query string.
func WithAPIKey(header, key string) Option {
	return func(o *options) {
		o.apiKeyHeader = header
		o.apiKey = key
	}
}

// WithRateLimit answers 429 to every request after the first n.
func WithRateLimit(n int) Option {
	return func(o *options) {
		o.limit = int64(n)
	}
}

// WithFixture replaces the response for route, one of Routes or any
// other http.ServeMux pattern path. A status outside 2xx answers with the
// error envelope, using body as the message.
func WithFixture(route string, status int, body string) Option {
	return func(o *options) {
		if o.fixtures == nil {
			o.fixtures = make(map[string]fixture)
		}
		o.fixtures[route] = fixture{status: status, body: body}
	}
}

// WithHandler serves route with h instead of a fixture. h still runs
// behind the recording, API key and rate limit checks, and a panic in h
// is answered with a 500 error envelope.
func WithHandler(route string, h http.HandlerFunc) Option {
	return func(o *options) {
		if o.handlers == nil {
			o.handlers = make(map[string]http.HandlerFunc)
		}
		o.handlers[route] = h
	}
}

// NewServer starts a fake API. Callers should Close it when finished.
func NewServer(optFns ...Option) *Server {
	var opts options
	for _, opt := range optFns {
		opt(&opts)
	}
	if opts.logger == nil {
		opts.logger = slog.New(slog.DiscardHandler)
	}
	if opts.tracer == nil {
		opts.tracer = noop.NewTracerProvider().Tracer("no-op tracer")
	}

	s := &Server{}

	mw := []Middleware{logger(opts.logger), errs(opts.logger), s.record}
	if opts.apiKeyHeader != "" {
		mw = append(mw, apiKey(opts.apiKeyHeader, opts.apiKey))
	}
	if opts.limit > 0 {
		mw = append(mw, rateLimit(opts.limit, &s.served))
	}
	mw = append(mw, panics())

	a := newApp(opts.logger, opts.tracer, mw...)

	fixtures := make(map[string]fixture, len(defaultFixtures)+len(opts.fixtures))
	for route, body := range defaultFixtures {
		fixtures[route] = fixture{status: http.StatusOK, body: body}
	}
	for route, f := range opts.fixtures {
		fixtures[route] = f
	}

	for route, f := range fixtures {
		if _, ok := opts.handlers[route]; ok {
			continue
		}
		a.get(route, serveFixture(f))
	}
	for route, h := range opts.handlers {
		a.get(route, serveHandler(h))
	}
	_, fixed := fixtures["/"]
	_, handled := opts.handlers["/"]
	if !fixed && !handled {
		a.get("/", func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			return NewError(http.StatusNotFound, "Not Found")
		})
	}

	s.srv = httptest.NewServer(a)
	s.URL = s.srv.URL

	return s
}

// Close shuts down the server.
func (s *Server) Close() {
	s.srv.Close()
}

// Requests returns a copy of the requests received so far, rejected ones
// included.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)

	return out
}

func (s *Server) record(handler Handler) Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Route:    getValues(ctx).route,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
		})
		s.mu.Unlock()

		return handler(ctx, w, r)
	}
}

func serveFixture(f fixture) Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if f.status < http.StatusOK || f.status >= http.StatusMultipleChoices {
			return NewError(f.status, "%s", strings.TrimSpace(f.body))
		}

		body := strings.NewReplacer(
			"$id", r.PathValue("id"),
			"$platform", r.PathValue("platform"),
		).Replace(f.body)

		return respondJSON(ctx, w, f.status, []byte(body))
	}
}

func serveHandler(hf http.HandlerFunc) Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		hf(&statusWriter{ResponseWriter: w, ctx: ctx}, r)
		return nil
	}
}

// statusWriter records the status a custom handler writes for the logger
// middleware.
type statusWriter struct {
	http.ResponseWriter
	ctx context.Context
}

func (w *statusWriter) WriteHeader(statusCode int) {
	setStatusCode(w.ctx, statusCode)
	w.ResponseWriter.WriteHeader(statusCode)
}
