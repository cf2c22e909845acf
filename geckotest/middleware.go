package geckotest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync/atomic"
	"time"
)

func logger(log *slog.Logger) Middleware {
	m := func(handler Handler) Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			v := getValues(ctx)

			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path = fmt.Sprintf("%s?%s", path, r.URL.RawQuery)
			}

			log.Debug("request started", "method", r.Method, "path", path, "request_id", v.requestID)

			err := handler(ctx, w, r)

			log.Debug("request completed", "method", r.Method, "path", path, "request_id", v.requestID, "statusCode", v.statusCode, "since", time.Since(v.now).String())

			return err
		}

		return h
	}

	return m
}

// errs renders errors coming out of the call chain. An *Error keeps its
// code and message; anything else is obscured as a 500.
func errs(log *slog.Logger) Middleware {
	m := func(handler Handler) Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			err := handler(ctx, w, r)
			if err == nil {
				return nil
			}

			apiErr, ok := errors.AsType[*Error](err)
			if !ok {
				args := []any{"request_id", getValues(ctx).requestID}
				if pe, ok := errors.AsType[*panicError](err); ok {
					args = append(args, "stack", string(pe.stack))
				}
				log.Error(err.Error(), args...)
				apiErr = NewError(http.StatusInternalServerError, "%s", http.StatusText(http.StatusInternalServerError))
			}

			b, err := json.Marshal(apiErr)
			if err != nil {
				return err
			}

			return respondJSON(ctx, w, apiErr.Code, b)
		}

		return h
	}

	return m
}

// panicError is a recovered handler panic.
type panicError struct {
	route string
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic serving %s: %v", e.route, e.value)
}

// panics turns a handler panic into a *panicError, which errs answers
// with a 500.
func panics() Middleware {
	m := func(handler Handler) Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = &panicError{route: getValues(ctx).route, value: rec, stack: debug.Stack()}
				}
			}()

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}

// apiKey rejects requests that do not carry key in header. The live API
// accepts the key as a query parameter too, named like the header.
func apiKey(header, key string) Middleware {
	m := func(handler Handler) Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			got := r.Header.Get(header)
			if got == "" {
				got = r.URL.Query().Get(header)
			}

			switch got {
			case "":
				return errMissingKey
			case key:
				return handler(ctx, w, r)
			default:
				return errWrongKey
			}
		}

		return h
	}

	return m
}

// rateLimit answers 429 once more than limit requests have been served.
func rateLimit(limit int64, served *atomic.Int64) Middleware {
	m := func(handler Handler) Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			if served.Add(1) > limit {
				w.Header().Set("Retry-After", "60")
				return errRateLimited
			}

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}
