package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"
)

// MarketChart is the /coins/{id}/market_chart and market_chart/range
// response.
type MarketChart struct {
	Prices       []ChartPoint `json:"prices" validate:"required"`
	MarketCaps   []ChartPoint `json:"market_caps" validate:"required"`
	TotalVolumes []ChartPoint `json:"total_volumes" validate:"required"`
}

// ChartPoint is a single [unix-millis, value] sample. Value is nil when
// the API has no sample for that instant.
type ChartPoint struct {
	Time  time.Time
	Value *float64
}

// UnmarshalJSON decodes the two element array form. null is a no-op.
func (p *ChartPoint) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return nil
	}

	vals, err := unmarshalTuple(b, 2, reflect.TypeFor[ChartPoint]())
	if err != nil {
		return err
	}

	p.Time = time.UnixMilli(int64(deref(vals[0]))).UTC()
	p.Value = vals[1]

	return nil
}

// MarshalJSON encodes the point back into its array form.
func (p ChartPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Time.UnixMilli(), p.Value})
}

// Candle is a single [unix-millis, open, high, low, close] sample from
// /coins/{id}/ohlc. Time is the close of the candle.
type Candle struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// UnmarshalJSON decodes the five element array form. null is a no-op.
func (c *Candle) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return nil
	}

	vals, err := unmarshalTuple(b, 5, reflect.TypeFor[Candle]())
	if err != nil {
		return err
	}

	c.Time = time.UnixMilli(int64(deref(vals[0]))).UTC()
	c.Open, c.High, c.Low, c.Close = deref(vals[1]), deref(vals[2]), deref(vals[3]), deref(vals[4])

	return nil
}

// MarshalJSON encodes the candle back into its array form.
func (c Candle) MarshalJSON() ([]byte, error) {
	return json.Marshal([5]any{c.Time.UnixMilli(), c.Open, c.High, c.Low, c.Close})
}

// unmarshalTuple decodes a fixed length numeric array. Type errors are
// reported as *json.UnmarshalTypeError so the decoder can attach the
// enclosing field path. Their Offset is -1: an offset into b would not
// locate anything in the enclosing document.
func unmarshalTuple(b []byte, n int, typ reflect.Type) ([]*float64, error) {
	var vals []*float64
	if err := json.Unmarshal(b, &vals); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &json.UnmarshalTypeError{Value: typeErr.Value, Type: typ, Offset: -1}
		}
		return nil, err
	}
	if len(vals) != n {
		return nil, &json.UnmarshalTypeError{
			Value:  fmt.Sprintf("array of %d elements", len(vals)),
			Type:   typ,
			Offset: -1,
		}
	}

	return vals, nil
}

// deref reads a null element as zero.
func deref(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}
