package model_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/adamwoolhether/gecko/model"
	"github.com/google/go-cmp/cmp"
)

func TestMarketChart_Unmarshal(t *testing.T) {
	body := `{
		"prices": [[1711843200000, 69702.3], [1711929600000, null]],
		"market_caps": [[1711843200000, 1370247487960.09]],
		"total_volumes": []
	}`

	var got model.MarketChart
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := model.MarketChart{
		Prices: []model.ChartPoint{
			{Time: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Value: ptr(69702.3)},
			{Time: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		},
		MarketCaps: []model.ChartPoint{
			{Time: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Value: ptr(1370247487960.09)},
		},
		TotalVolumes: []model.ChartPoint{},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("chart mismatch (-want +got):\n%s", diff)
	}
}

func TestChartPoint_WrongArity(t *testing.T) {
	var got model.MarketChart
	err := json.Unmarshal([]byte(`{"prices":[[1711843200000]]}`), &got)

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected *json.UnmarshalTypeError, got %T: %v", err, err)
	}
	if typeErr.Field != "prices" {
		t.Errorf("expected field %q, got %q", "prices", typeErr.Field)
	}
	if typeErr.Offset != -1 {
		t.Errorf("expected offset -1, got %d", typeErr.Offset)
	}
}

func TestCandle_RoundTrip(t *testing.T) {
	raw := `[[1711843200000,69702.3,70000,69000.5,69900]]`

	var candles []model.Candle
	if err := json.Unmarshal([]byte(raw), &candles); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.Candle{{
		Time:  time.UnixMilli(1711843200000).UTC(),
		Open:  69702.3,
		High:  70000,
		Low:   69000.5,
		Close: 69900,
	}}
	if diff := cmp.Diff(want, candles); diff != "" {
		t.Errorf("candle mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(candles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != raw {
		t.Errorf("expected %s, got %s", raw, out)
	}
}

func TestCandle_TextElement(t *testing.T) {
	var candles []model.Candle
	err := json.Unmarshal([]byte(`[[1711843200000,"high",1,1,1]]`), &candles)

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected *json.UnmarshalTypeError, got %T: %v", err, err)
	}
	if typeErr.Type.Name() != "Candle" {
		t.Errorf("expected type Candle, got %s", typeErr.Type)
	}
}

func ptr[T any](v T) *T { return &v }
