package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/adamwoolhether/gecko/client"
)

type pingQuery struct{}

func (pingQuery) Endpoint() string      { return "/ping" }
func (pingQuery) Params() client.Params { return client.Params{} }

func ExampleBuild() {
	c, err := client.Build(
		client.WithBaseURL("https://pro-api.coingecko.com/api/v3/"),
		client.WithHeader("x-cg-pro-api-key", "CG-example"),
		client.WithTimeout(10*time.Second),
		client.WithUserAgent("example/1.0"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(c.BaseURL())
	// Output: https://pro-api.coingecko.com/api/v3
}

func ExampleFetch() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"gecko_says":"(V3) To the Moon!"}`)
	}))
	defer ts.Close()

	c, err := client.Build(client.WithBaseURL(ts.URL))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pong, err := client.Fetch[map[string]string](context.Background(), c, pingQuery{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(pong["gecko_says"])
	// Output: (V3) To the Moon!
}

func ExampleDecodeError() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"gecko_says":42}`)
	}))
	defer ts.Close()

	c, err := client.Build(client.WithBaseURL(ts.URL))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	type ping struct {
		GeckoSays string `json:"gecko_says"`
	}

	_, err = client.Fetch[ping](context.Background(), c, pingQuery{})

	var decodeErr *client.DecodeError
	if errors.As(err, &decodeErr) {
		fmt.Println(decodeErr.Path, decodeErr.Expected)
	}
	// Output: gecko_says string
}
