package client

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the dd-mm-yyyy layout the API expects for date parameters.
const DateLayout = "02-01-2006"

// Param is a single rendered query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered set of query parameters with unique keys.
// Setting an existing key replaces its value without moving it.
// Every SetOptional* method omits the parameter entirely when the
// value is absent; nothing is ever sent as an empty string.
// The zero value is ready to use.
type Params struct {
	list []Param
}

// Set renders value as-is.
func (p *Params) Set(key, value string) {
	for i := range p.list {
		if p.list[i].Key == key {
			p.list[i].Value = value
			return
		}
	}

	p.list = append(p.list, Param{Key: key, Value: value})
}

// SetOptional sets key unless value is empty.
func (p *Params) SetOptional(key, value string) {
	if value == "" {
		return
	}

	p.Set(key, value)
}

// SetBool renders v as "true" or "false".
func (p *Params) SetBool(key string, v bool) {
	p.Set(key, strconv.FormatBool(v))
}

// SetOptionalBool sets key unless v is nil.
func (p *Params) SetOptionalBool(key string, v *bool) {
	if v == nil {
		return
	}

	p.SetBool(key, *v)
}

// SetInt renders v in base 10.
func (p *Params) SetInt(key string, v int) {
	p.Set(key, strconv.Itoa(v))
}

// SetOptionalInt sets key unless v <= 0.
func (p *Params) SetOptionalInt(key string, v int) {
	if v <= 0 {
		return
	}

	p.SetInt(key, v)
}

// SetInt64 renders v in base 10.
func (p *Params) SetInt64(key string, v int64) {
	p.Set(key, strconv.FormatInt(v, 10))
}

// SetList joins values with a literal comma. An empty list is omitted.
func (p *Params) SetList(key string, values []string) {
	if len(values) == 0 {
		return
	}

	p.Set(key, strings.Join(values, ","))
}

// SetToken renders an enumerated value through its String method.
// A nil token or one rendering to "" is omitted.
func (p *Params) SetToken(key string, token fmt.Stringer) {
	if token == nil {
		return
	}

	p.SetOptional(key, token.String())
}

// SetDate renders t as dd-mm-yyyy. The zero time is omitted.
func (p *Params) SetDate(key string, t time.Time) {
	if t.IsZero() {
		return
	}

	p.Set(key, FormatDate(t))
}

// Get returns the rendered value for key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p.list {
		if param.Key == key {
			return param.Value, true
		}
	}

	return "", false
}

// Len reports the number of parameters.
func (p Params) Len() int {
	return len(p.list)
}

// All returns a copy of the parameters in insertion order.
func (p Params) All() []Param {
	out := make([]Param, len(p.list))
	copy(out, p.list)

	return out
}

// Encode renders the parameters as a query string in insertion order.
// Commas are left unescaped so list values read naturally.
func (p Params) Encode() string {
	var b strings.Builder
	for i, param := range p.list {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(queryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(queryEscape(param.Value))
	}

	return b.String()
}

// FormatDate renders t as dd-mm-yyyy, e.g. 30-12-2017.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%2C", ",")
}
