package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/gecko/client/throttle"
)

// Client holds the immutable transport configuration shared by every call:
// base URL, default headers and the underlying *http.Client.
type Client struct {
	c       *http.Client
	baseURL string
	headers http.Header
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics
}

// Build instantiates a new *Client with the provided options.
// If not specified, a copy of http.DefaultClient with http.DefaultTransport
// is used and requests go to DefaultBaseURL.
func Build(optFns ...Option) (*Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	base := http.DefaultClient
	if opts.client != nil {
		base = opts.client
	}
	hc := *base

	client := &Client{
		c:       &hc,
		baseURL: DefaultBaseURL,
		headers: http.Header{"Accept": {"application/json"}},
		logger:  slog.Default(),
		tracer:  noop.NewTracerProvider().Tracer("no-op tracer"),
	}

	if opts.baseURL != "" {
		client.baseURL = opts.baseURL
	}
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	for k, v := range opts.headers {
		client.headers[k] = slices.Clone(v)
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.tracer != nil {
		client.tracer = opts.tracer
	}

	if opts.registerer != nil {
		m, err := newMetrics(opts.registerer)
		if err != nil {
			return nil, fmt.Errorf("configuring metrics: %w", err)
		}
		client.metrics = m
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case hc.Transport != nil:
		transport = hc.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(*opts.throttle, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}

// BaseURL returns the normalized URL prefix, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch runs q against c and decodes the successful response body into T.
// The returned error is a *TransportError, *HTTPStatusError or *DecodeError,
// or wraps ErrInvalidPath / ErrInvalidQuery when q itself is malformed.
func Fetch[T any](ctx context.Context, c *Client, q Query) (T, error) {
	var out T

	if err := validateQuery(q); err != nil {
		return out, err
	}

	target, err := c.endpoint(q.Endpoint(), q.Params())
	if err != nil {
		return out, err
	}

	route := q.Endpoint()
	if r, ok := q.(Router); ok {
		route = r.Route()
	}
	requestID := uuid.NewString()

	ctx, span := c.tracer.Start(ctx, "gecko.fetch", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", http.MethodGet),
		attribute.String("http.route", route),
		attribute.String("gecko.request_id", requestID),
	)

	start := time.Now()
	err = c.exec(ctx, target, requestID, func(body []byte) error {
		v, err := decode[T](body)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	c.metrics.observe(route, outcome(err), time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome(err))
		return out, err
	}

	return out, nil
}

// endpoint joins the base URL, path and encoded query.
func (c *Client) endpoint(path string, params Params) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	target := c.baseURL + path
	if query := params.Encode(); query != "" {
		target += "?" + query
	}

	return target, nil
}

// exec issues a GET for target and runs fn on the body of a 2xx response.
// Any other status yields an *HTTPStatusError without invoking fn.
func (c *Client) exec(ctx context.Context, target, requestID string, fn execFn) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("instantiating request: %w", err)
	}
	for k, v := range c.headers {
		req.Header[k] = slices.Clone(v)
	}

	c.logger.Debug("gecko request", "method", req.Method, "url", target, "request_id", requestID)

	resp, err := c.c.Do(req)
	if err != nil {
		return &TransportError{Method: req.Method, URL: target, Err: err}
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			c.logger.Error("failed to discard unused body", "error", err, "request_id", requestID)
		}
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err, "request_id", requestID)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		c.logger.Debug("gecko request rejected", "status", resp.StatusCode, "body", string(b), "request_id", requestID)

		return &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
			Message:    apiMessage(b),
			Err:        statusSentinel(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: req.Method, URL: target, Err: fmt.Errorf("reading body: %w", err)}
	}

	return fn(body)
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimited, ErrUnexpectedStatusCode)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrAuthFailure, ErrUnexpectedStatusCode)
	default:
		return ErrUnexpectedStatusCode
	}
}

// apiMessage extracts the error text from either of the API's error
// bodies: {"status":{"error_message":"..."}} or {"error":"..."}.
func apiMessage(body []byte) string {
	var env struct {
		Status struct {
			ErrorMessage string `json:"error_message"`
		} `json:"status"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}

	if env.Status.ErrorMessage != "" {
		return env.Status.ErrorMessage
	}

	return env.Error
}

// outcome classifies err into a low-cardinality label.
func outcome(err error) string {
	var (
		transportErr *TransportError
		statusErr    *HTTPStatusError
		decodeErr    *DecodeError
	)

	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &transportErr):
		return "transport_error"
	case errors.As(err, &statusErr):
		return "status_error"
	case errors.As(err, &decodeErr):
		return "decode_error"
	default:
		return "error"
	}
}
