package geckotest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Handler is a http.Handler that returns an error.
type Handler func(ctx context.Context, w http.ResponseWriter, r *http.Request) error

// Middleware defines a signature to chain Handler together.
type Middleware func(handler Handler) Handler

// app routes requests through the middleware stack to fixture handlers.
type app struct {
	mux    *http.ServeMux
	mw     []Middleware
	logger *slog.Logger
	tracer trace.Tracer
}

func newApp(logger *slog.Logger, tracer trace.Tracer, mw ...Middleware) *app {
	return &app{
		mux:    http.NewServeMux(),
		mw:     mw,
		logger: logger,
		tracer: tracer,
	}
}

// ServeHTTP implements http.Handler.
func (a *app) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// get registers handler for GET requests matching pattern, which may hold
// {wildcards} as understood by http.ServeMux.
func (a *app) get(pattern string, handler Handler) {
	handler = wrap(a.mw, handler)

	h := func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "geckotest.handler")
		defer span.End()
		span.SetAttributes(attribute.String("http.route", pattern))

		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(w.Header()))

		v := values{
			requestID: uuid.NewString(),
			now:       time.Now().UTC(),
			route:     pattern,
		}

		r = r.WithContext(setValues(ctx, &v))

		if err := handler(r.Context(), w, r); err != nil {
			a.logger.Error("geckotest", "handle", err)
		}
	}

	a.mux.HandleFunc(fmt.Sprintf("%s %s", http.MethodGet, pattern), h)
}

// wrap middleware around the handler and execute in order given.
func wrap(mw []Middleware, handler Handler) Handler {
	for _, mwFn := range slices.Backward(mw) {
		if mwFn != nil {
			handler = mwFn(handler)
		}
	}

	return handler
}

type ctxKey int

const valuesKey ctxKey = 1

// values are shared by the middleware of one request.
type values struct {
	requestID  string
	now        time.Time
	route      string
	statusCode int
}

func setValues(ctx context.Context, v *values) context.Context {
	return context.WithValue(ctx, valuesKey, v)
}

func getValues(ctx context.Context) *values {
	v, ok := ctx.Value(valuesKey).(*values)
	if !ok {
		return &values{requestID: uuid.Nil.String(), now: time.Now()}
	}

	return v
}

func setStatusCode(ctx context.Context, statusCode int) {
	getValues(ctx).statusCode = statusCode
}
