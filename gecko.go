// Package gecko is a typed client for the CoinGecko v3 REST API.
//
// Each method builds a request for one resource and hands it to
// [client.Fetch], which encodes the query, performs the GET and decodes
// the body into the model type. Failures are one of *client.TransportError,
// *client.HTTPStatusError or *client.DecodeError.
//
//	c, err := gecko.NewClient(
//		client.WithHeader("x-cg-demo-api-key", key),
//		client.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		return err
//	}
//
//	prices, err := c.SimplePrice(ctx, gecko.SimplePriceRequest{
//		IDs:          []string{"bitcoin"},
//		VsCurrencies: []string{"usd"},
//	})
package gecko

import (
	"context"

	"github.com/adamwoolhether/gecko/client"
	"github.com/adamwoolhether/gecko/model"
)

// Client exposes one method per API resource. It is safe for concurrent use.
type Client struct {
	core *client.Client
}

// NewClient instantiates a new *Client with the provided options.
// If not specified, the public API base URL and a copy of
// http.DefaultClient are used.
func NewClient(opts ...client.Option) (*Client, error) {
	core, err := client.Build(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{core: core}, nil
}

// Core returns the underlying pipeline, for resources this package does
// not wrap:
//
//	v, err := client.Fetch[MyShape](ctx, c.Core(), myQuery)
func (c *Client) Core() *client.Client {
	return c.core
}

// Ping checks API server status.
func (c *Client) Ping(ctx context.Context) (model.Ping, error) {
	return client.Fetch[model.Ping](ctx, c.core, resource("/ping"))
}

// SimplePrice returns the price of one or more coins in one or more
// currencies, keyed by coin id.
func (c *Client) SimplePrice(ctx context.Context, req SimplePriceRequest) (model.SimplePrices, error) {
	return client.Fetch[model.SimplePrices](ctx, c.core, req)
}

// SimplePriceShort is SimplePrice with every include flag set and maximum
// precision.
func (c *Client) SimplePriceShort(ctx context.Context, ids, vsCurrencies []string) (model.SimplePrices, error) {
	return c.SimplePrice(ctx, SimplePriceRequest{
		IDs:                  ids,
		VsCurrencies:         vsCurrencies,
		IncludeMarketCap:     true,
		Include24hrVol:       true,
		Include24hrChange:    true,
		IncludeLastUpdatedAt: true,
		Precision:            "full",
	})
}

// SimpleTokenPrice returns token prices keyed by contract address.
func (c *Client) SimpleTokenPrice(ctx context.Context, req SimpleTokenPriceRequest) (model.SimplePrices, error) {
	return client.Fetch[model.SimplePrices](ctx, c.core, req)
}

// SupportedVsCurrencies lists the currency codes accepted as vs_currency.
func (c *Client) SupportedVsCurrencies(ctx context.Context) ([]string, error) {
	return client.Fetch[[]string](ctx, c.core, resource("/simple/supported_vs_currencies"))
}

// CoinsList lists every supported coin id, name and symbol.
func (c *Client) CoinsList(ctx context.Context, req CoinsListRequest) ([]model.CoinListing, error) {
	return client.Fetch[[]model.CoinListing](ctx, c.core, req)
}

// CoinsMarkets lists coins with price, market cap and volume.
func (c *Client) CoinsMarkets(ctx context.Context, req CoinsMarketsRequest) ([]model.CoinsMarketItem, error) {
	return client.Fetch[[]model.CoinsMarketItem](ctx, c.core, req)
}

// Coin returns current data for a coin, including up to 100 tickers.
func (c *Client) Coin(ctx context.Context, req CoinRequest) (model.CoinsItem, error) {
	return client.Fetch[model.CoinsItem](ctx, c.core, req)
}

// CoinShort is Coin with every section enabled.
func (c *Client) CoinShort(ctx context.Context, id string) (model.CoinsItem, error) {
	return c.Coin(ctx, CoinRequest{
		ID:            id,
		Localization:  Bool(true),
		Tickers:       Bool(true),
		MarketData:    Bool(true),
		CommunityData: Bool(true),
		DeveloperData: Bool(true),
		Sparkline:     Bool(true),
	})
}

// CoinTickers returns one page of a coin's tickers.
func (c *Client) CoinTickers(ctx context.Context, req CoinTickersRequest) (model.TickerPage, error) {
	return client.Fetch[model.TickerPage](ctx, c.core, req)
}

// CoinHistory returns a coin's snapshot at a past date.
func (c *Client) CoinHistory(ctx context.Context, req CoinHistoryRequest) (model.CoinHistoryItem, error) {
	return client.Fetch[model.CoinHistoryItem](ctx, c.core, req)
}

// CoinMarketChart returns price, market cap and volume series over the
// last N days.
func (c *Client) CoinMarketChart(ctx context.Context, req MarketChartRequest) (model.MarketChart, error) {
	return client.Fetch[model.MarketChart](ctx, c.core, req)
}

// CoinMarketChartRange returns the series between two instants.
func (c *Client) CoinMarketChartRange(ctx context.Context, req MarketChartRangeRequest) (model.MarketChart, error) {
	return client.Fetch[model.MarketChart](ctx, c.core, req)
}

// CoinOHLC returns candles over the last N days.
func (c *Client) CoinOHLC(ctx context.Context, req OHLCRequest) ([]model.Candle, error) {
	return client.Fetch[[]model.Candle](ctx, c.core, req)
}

// AssetPlatforms lists the blockchain networks tokens are issued on.
func (c *Client) AssetPlatforms(ctx context.Context, req AssetPlatformsRequest) ([]model.AssetPlatform, error) {
	return client.Fetch[[]model.AssetPlatform](ctx, c.core, req)
}

// ExchangeRates returns BTC-to-currency exchange rates.
func (c *Client) ExchangeRates(ctx context.Context) (model.ExchangeRates, error) {
	return client.Fetch[model.ExchangeRates](ctx, c.core, resource("/exchange_rates"))
}

// Global returns aggregate market statistics.
func (c *Client) Global(ctx context.Context) (model.GlobalData, error) {
	return client.Fetch[model.GlobalData](ctx, c.core, resource("/global"))
}
