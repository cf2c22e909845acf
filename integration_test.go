//go:build integration

package gecko_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/adamwoolhether/gecko"
	"github.com/adamwoolhether/gecko/client"
)

// These tests call the public API. Set GECKO_API_KEY to a demo key to
// avoid the anonymous rate limit.

func newLiveClient(t *testing.T) *gecko.Client {
	t.Helper()

	opts := []client.Option{
		client.WithTimeout(30 * time.Second),
		client.WithThrottle(1, 1),
	}
	if key := os.Getenv("GECKO_API_KEY"); key != "" {
		opts = append(opts, client.WithHeader("x-cg-demo-api-key", key))
	}

	c, err := gecko.NewClient(opts...)
	if err != nil {
		t.Fatalf("building client: %v", err)
	}

	return c
}

func skipIfLimited(t *testing.T, err error) {
	t.Helper()

	if errors.Is(err, client.ErrRateLimited) {
		t.Skipf("rate limited: %v", err)
	}
}

func TestLive_Ping(t *testing.T) {
	c := newLiveClient(t)

	pong, err := c.Ping(t.Context())
	skipIfLimited(t, err)
	if err != nil {
		t.Fatalf("ping: %v", err)
	}
	if pong.GeckoSays == "" {
		t.Error("expected gecko_says")
	}
}

func TestLive_SimplePrice(t *testing.T) {
	c := newLiveClient(t)

	prices, err := c.SimplePriceShort(t.Context(), []string{"bitcoin"}, []string{"usd"})
	skipIfLimited(t, err)
	if err != nil {
		t.Fatalf("simple price: %v", err)
	}
	if usd, ok := prices["bitcoin"].Get("usd"); !ok || usd <= 0 {
		t.Errorf("expected a positive bitcoin price, got %v", prices["bitcoin"])
	}
}

func TestLive_CoinsMarkets(t *testing.T) {
	c := newLiveClient(t)

	items, err := c.CoinsMarkets(t.Context(), gecko.CoinsMarketsRequest{
		VsCurrency:  "usd",
		Order:       gecko.MarketCapDesc,
		PerPage:     5,
		Page:        1,
		PriceChange: gecko.PriceChanges{gecko.Hours24, gecko.Days7},
	})
	skipIfLimited(t, err)
	if err != nil {
		t.Fatalf("markets: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	if rank, ok := items[0].MarketCapRank.Int64(); !ok || rank != 1 {
		t.Errorf("expected first item ranked 1, got %v", items[0].MarketCapRank)
	}
}
