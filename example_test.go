package gecko_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/adamwoolhether/gecko"
	"github.com/adamwoolhether/gecko/client"
)

func ExampleNewClient() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bitcoin":{"usd":69702.3}}`)
	}))
	defer ts.Close()

	c, err := gecko.NewClient(
		client.WithBaseURL(ts.URL),
		client.WithTimeout(5*time.Second),
	)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	prices, err := c.SimplePrice(context.Background(), gecko.SimplePriceRequest{
		IDs:          []string{"bitcoin"},
		VsCurrencies: []string{"usd"},
	})
	if err != nil {
		fmt.Println("fetch error:", err)
		return
	}

	usd, _ := prices["bitcoin"].Get("usd")
	fmt.Println(usd)
	// Output: 69702.3
}

func ExampleClient_CoinsMarkets() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Println(r.URL.RequestURI())
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()

	c, err := gecko.NewClient(client.WithBaseURL(ts.URL))
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	_, err = c.CoinsMarkets(context.Background(), gecko.CoinsMarketsRequest{
		VsCurrency:  "usd",
		IDs:         []string{"bitcoin", "ethereum"},
		Order:       gecko.VolumeDesc,
		PriceChange: gecko.PriceChanges{gecko.Hours24, gecko.Days30},
	})
	if err != nil {
		fmt.Println("fetch error:", err)
	}
	// Output: /coins/markets?vs_currency=usd&ids=bitcoin,ethereum&order=volume_desc&price_change=24h,30d
}

func ExampleClient_Ping_rateLimited() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c, err := gecko.NewClient(client.WithBaseURL(ts.URL))
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	_, err = c.Ping(context.Background())
	fmt.Println(errors.Is(err, client.ErrRateLimited))
	// Output: true
}
