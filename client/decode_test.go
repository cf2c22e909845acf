package client

import (
	"reflect"
	"strings"
	"testing"
)

func TestFragment(t *testing.T) {
	body := []byte(strings.Repeat("a", 40) + "X" + strings.Repeat("b", 40))

	tests := []struct {
		name     string
		body     []byte
		offset   int64
		expected string
	}{
		{name: "no offset", body: body, offset: -1, expected: ""},
		{name: "empty body", body: nil, offset: 3, expected: ""},
		{name: "middle", body: body, offset: 40, expected: strings.Repeat("a", 32) + "X" + strings.Repeat("b", 31)},
		{name: "start", body: []byte(`{"id":`), offset: 0, expected: `{"id":`},
		{name: "past end", body: []byte(`{"id":`), offset: 99, expected: `{"id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fragment(tt.body, tt.offset); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAPIMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "status envelope", body: `{"status":{"error_code":429,"error_message":"You've exceeded the Rate Limit."}}`, expected: "You've exceeded the Rate Limit."},
		{name: "error field", body: `{"error":"coin not found"}`, expected: "coin not found"},
		{name: "not json", body: `<html>502</html>`, expected: ""},
		{name: "other json", body: `{"message":"nope"}`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apiMessage([]byte(tt.body)); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		root      reflect.Kind
		expected  string
	}{
		{namespace: "CoinsItem.tickers[0].market.name", root: reflect.Struct, expected: "tickers[0].market.name"},
		{namespace: "Ping.gecko_says", root: reflect.Struct, expected: "gecko_says"},
		{namespace: "[3].id", root: reflect.Slice, expected: "[3].id"},
		{namespace: "[usd].name", root: reflect.Map, expected: "usd.name"},
		{namespace: "ExchangeRates.rates[usd].value", root: reflect.Struct, expected: "rates.usd.value"},
		{namespace: "CoinsItem.tickers[10].market[binance-us].name", root: reflect.Struct, expected: "tickers[10].market.binance-us.name"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			if got := fieldPath(tt.namespace, tt.root); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{err: nil, expected: "ok"},
		{err: &TransportError{Err: ErrTransport}, expected: "transport_error"},
		{err: &HTTPStatusError{StatusCode: 500, Err: ErrUnexpectedStatusCode}, expected: "status_error"},
		{err: &DecodeError{Offset: -1}, expected: "decode_error"},
		{err: ErrInvalidQuery, expected: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := outcome(tt.err); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPathAt(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		offset   int64
		expected string
	}{
		{name: "root", body: `[1,2]`, offset: 1, expected: ""},
		{name: "field", body: `{"id":"x","price":"cheap"}`, offset: 25, expected: "price"},
		{name: "map key", body: `{"q":{"eur":1,"usd":"n/a"}}`, offset: 25, expected: "q.usd"},
		{name: "slice index", body: `{"t":[{"a":1},{"a":"2"}]}`, offset: 22, expected: "t[1].a"},
		{name: "nested array", body: `[[1,2],[3,"x"]]`, offset: 13, expected: "[1][1]"},
		{name: "object after empty", body: `{"a":{},"b":{"c":true}}`, offset: 21, expected: "b.c"},
		{name: "opening brace", body: `{"a":[1],"b":{"c":1}}`, offset: 14, expected: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pathAt([]byte(tt.body), tt.offset)
			if !ok {
				t.Fatalf("expected %q to reach offset %d", tt.body, tt.offset)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}

	if _, ok := pathAt([]byte(`{"a":`), 10); ok {
		t.Error("expected a truncated body not to resolve")
	}
}
