package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// decode parses body into a T. Fields absent from T are ignored; a present
// field of the wrong kind, invalid JSON, or a missing required field fails
// with a *DecodeError.
func decode[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, decodeError(body, err)
	}

	if err := checkRequired(&v); err != nil {
		return v, err
	}

	return v, nil
}

func decodeError(body []byte, err error) *DecodeError {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &syntaxErr):
		return &DecodeError{
			Offset:   syntaxErr.Offset,
			Expected: "valid JSON",
			Found:    syntaxErr.Error(),
			Fragment: fragment(body, syntaxErr.Offset),
			Err:      err,
		}

	case errors.As(err, &typeErr):
		expected := "value"
		if typeErr.Type != nil {
			expected = typeErr.Type.String()
		}

		// Field carries struct names only; the offset locates map keys and
		// slice indices too. Errors raised inside an Unmarshaler have no
		// usable offset.
		path, offset := typeErr.Field, typeErr.Offset
		if offset < 0 {
			offset = -1
		} else if p, ok := pathAt(body, offset); ok {
			path = p
		}

		return &DecodeError{
			Path:     path,
			Offset:   offset,
			Expected: expected,
			Found:    fmt.Sprintf("JSON %s", typeErr.Value),
			Fragment: fragment(body, offset),
			Err:      err,
		}

	default:
		return &DecodeError{
			Offset:   -1,
			Expected: "decodable value",
			Found:    err.Error(),
			Err:      err,
		}
	}
}

// fragment copies the bytes surrounding offset for diagnostics.
func fragment(body []byte, offset int64) string {
	if offset < 0 || len(body) == 0 {
		return ""
	}

	end := min(int(offset)+fragmentSize, len(body))
	start := max(min(int(offset), len(body))-fragmentSize, 0)

	return string(body[start:end])
}

// pathFrame is one open object or array on the way to a value.
type pathFrame struct {
	array   bool
	index   int
	key     string
	wantKey bool
}

// pathAt walks the tokens of body and renders the route to the value
// that ends at offset, e.g. "tickers[1].last". It reports false when
// body cannot be tokenized up to offset.
func pathAt(body []byte, offset int64) (string, bool) {
	var stack []pathFrame
	next := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.array {
			top.index++
			return
		}
		top.wantKey = true
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	for {
		tok, err := dec.Token()
		if err != nil {
			return "", false
		}
		end := dec.InputOffset()

		if n := len(stack); n > 0 && stack[n-1].wantKey {
			if key, ok := tok.(string); ok {
				stack[n-1].key = key
				stack[n-1].wantKey = false
				continue
			}
		}

		switch tok {
		case json.Delim('{'), json.Delim('['):
			if end >= offset {
				return renderPath(stack), true
			}
			open := tok == json.Delim('{')
			stack = append(stack, pathFrame{array: !open, wantKey: open})

		case json.Delim('}'), json.Delim(']'):
			stack = stack[:len(stack)-1]
			next()

		default:
			if end >= offset {
				return renderPath(stack), true
			}
			next()
		}
	}
}

func renderPath(stack []pathFrame) string {
	var b strings.Builder
	for _, f := range stack {
		if f.array {
			fmt.Fprintf(&b, "[%d]", f.index)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(f.key)
	}

	return b.String()
}
