package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Value holds a JSON value whose kind the API does not keep stable: a field
// may arrive as a number, a numeric string, null or an object depending on
// market conditions. Value accepts any of them and defers narrowing to the
// caller. The zero Value means the field was absent.
type Value struct {
	raw json.RawMessage
}

// NewValue wraps raw JSON. It does not validate raw.
func NewValue(raw []byte) Value {
	return Value{raw: bytes.Clone(raw)}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(b []byte) error {
	v.raw = bytes.Clone(b)
	return nil
}

// MarshalJSON implements json.Marshaler. An absent Value marshals as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}

	return v.raw, nil
}

// Raw returns the undecoded JSON, or nil when absent.
func (v Value) Raw() json.RawMessage {
	return v.raw
}

// IsAbsent reports whether the field was missing from the document.
func (v Value) IsAbsent() bool {
	return len(v.raw) == 0
}

// IsNull reports whether the field was missing or an explicit null.
func (v Value) IsNull() bool {
	return v.IsAbsent() || string(v.raw) == "null"
}

// Float64 narrows a JSON number or numeric string.
func (v Value) Float64() (float64, bool) {
	s, ok := v.numeric()
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// Int64 narrows a JSON number or numeric string holding an integer.
func (v Value) Int64() (int64, bool) {
	s, ok := v.numeric()
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// Decimal narrows a JSON number or numeric string without float rounding.
func (v Value) Decimal() (decimal.Decimal, bool) {
	s, ok := v.numeric()
	if !ok {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}

// Str narrows a JSON string.
func (v Value) Str() (string, bool) {
	var s string
	if len(v.raw) == 0 || v.raw[0] != '"' {
		return "", false
	}
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return "", false
	}

	return s, true
}

// Object narrows a JSON object into its members.
func (v Value) Object() (map[string]Value, bool) {
	if len(v.raw) == 0 || v.raw[0] != '{' {
		return nil, false
	}

	var m map[string]Value
	if err := json.Unmarshal(v.raw, &m); err != nil {
		return nil, false
	}

	return m, true
}

// String returns the raw JSON text, or "null" when absent.
func (v Value) String() string {
	if len(v.raw) == 0 {
		return "null"
	}

	return string(v.raw)
}

// numeric returns the literal text of a number or a numeric string.
func (v Value) numeric() (string, bool) {
	raw := bytes.TrimSpace(v.raw)
	if len(raw) == 0 {
		return "", false
	}

	switch c := raw[0]; {
	case c == '"':
		s, ok := v.Str()
		return s, ok && s != ""
	case c == '-' || (c >= '0' && c <= '9'):
		return string(raw), true
	default:
		return "", false
	}
}
