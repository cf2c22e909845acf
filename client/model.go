package client

import (
	"errors"
	"fmt"
)

// DefaultBaseURL is the public v3 API root used when [WithBaseURL] is not set.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// maxErrBodySize caps the amount of response body read when
// building an error for an unexpected status code. This prevents
// unbounded memory usage when a large response arrives with a
// wrong status.
const maxErrBodySize = 4 << 10 // 4KB

// fragmentSize is how many bytes either side of a decode failure
// are copied into DecodeError.Fragment.
const fragmentSize = 32

// execFn represents a func to operate on a successful response body.
type execFn func(body []byte) error

// Query is a single remote operation: the endpoint path to request
// and the query parameters to send with it.
// Endpoint must start with "/" and have any path segments escaped.
type Query interface {
	Endpoint() string
	Params() Params
}

// Router is optionally implemented by a [Query] to report a low-cardinality
// route template (e.g. "/coins/{id}") for metrics and tracing.
type Router interface {
	Route() string
}

var (
	// ErrTransport is wrapped by [TransportError].
	ErrTransport = errors.New("transport failure")
	// ErrUnexpectedStatusCode is the sentinel error wrapped by [HTTPStatusError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	// ErrRateLimited is wrapped alongside [ErrUnexpectedStatusCode] when the
	// server responds with 429 Too Many Requests.
	ErrRateLimited = errors.New("rate limited")
	// ErrAuthFailure is wrapped alongside [ErrUnexpectedStatusCode] when the
	// server responds with 401 Unauthorized or 403 Forbidden.
	ErrAuthFailure = errors.New("auth failure")
	// ErrDecode is wrapped by [DecodeError].
	ErrDecode = errors.New("response does not match schema")
	// ErrInvalidPath is returned when a query endpoint does not start with "/".
	ErrInvalidPath = errors.New("endpoint path must start with '/'")
	// ErrInvalidQuery is returned when a query fails its own field validation.
	ErrInvalidQuery = errors.New("invalid query")
)

// TransportError is returned when no HTTP response was received:
// DNS, dial, TLS, timeout, or context cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrTransport, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// HTTPStatusError is returned when the HTTP response status code
// is outside the 2xx range. Body holds at most 4KB of the response.
// Message is the API's own error text when the body carried one.
type HTTPStatusError struct {
	StatusCode int
	Body       string
	Message    string
	Err        error
}

func (e *HTTPStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v: %d: %s", e.Err, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a successful response body does not match
// the target type. Path is the dotted route to the offending element
// ("" for the document root), Expected and Found describe the mismatch,
// and Offset is the byte position in the body where it was detected
// (-1 when the mismatch was found after parsing, e.g. a missing field).
type DecodeError struct {
	Path     string
	Offset   int64
	Expected string
	Found    string
	Fragment string
	Err      error
}

func (e *DecodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "(root)"
	}

	msg := fmt.Sprintf("%v at %s: expected %s, found %s", ErrDecode, path, e.Expected, e.Found)
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}

	return msg
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDecode}
	}

	return []error{ErrDecode, e.Err}
}
