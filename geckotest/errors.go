package geckotest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is an API failure rendered in the live API's error envelope.
type Error struct {
	Code    int
	Message string
}

// NewError constructs an *Error with the given status code.
func NewError(code int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

type envelope struct {
	Status struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
}

// MarshalJSON renders the {"status":{...}} envelope.
func (e *Error) MarshalJSON() ([]byte, error) {
	var env envelope
	env.Status.ErrorCode = e.Code
	env.Status.ErrorMessage = e.Message

	return json.Marshal(env)
}

var (
	errRateLimited = &Error{
		Code:    http.StatusTooManyRequests,
		Message: "You've exceeded the Rate Limit. Please visit https://www.coingecko.com/en/api/pricing to subscribe to our API plans for higher rate limits.",
	}
	errMissingKey = &Error{
		Code:    http.StatusUnauthorized,
		Message: "API Key Missing",
	}
	errWrongKey = &Error{
		Code:    http.StatusUnauthorized,
		Message: "Invalid API Key",
	}
)

// respondJSON writes data with statusCode, recording the code for the
// logger middleware.
func respondJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data []byte) error {
	setStatusCode(ctx, statusCode)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err := w.Write(data); err != nil {
		return err
	}

	return nil
}
