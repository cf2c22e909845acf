package gecko

import (
	"net/url"
	"time"

	"github.com/adamwoolhether/gecko/client"
)

// Bool returns a pointer to v, for the optional toggles of a request.
func Bool(v bool) *bool {
	return &v
}

// FormatDate renders t as the dd-mm-yyyy form the API expects.
func FormatDate(t time.Time) string {
	return client.FormatDate(t)
}

// resource is a parameterless endpoint.
type resource string

func (r resource) Endpoint() string      { return string(r) }
func (r resource) Params() client.Params { return client.Params{} }
func (r resource) Route() string         { return string(r) }

// SimplePriceRequest queries /simple/price.
type SimplePriceRequest struct {
	IDs                  []string `validate:"required,min=1"`
	VsCurrencies         []string `validate:"required,min=1"`
	IncludeMarketCap     bool
	Include24hrVol       bool
	Include24hrChange    bool
	IncludeLastUpdatedAt bool
	// Precision is "full" or a number of decimal places. Empty leaves the
	// API default.
	Precision string
}

func (r SimplePriceRequest) Endpoint() string { return "/simple/price" }

func (r SimplePriceRequest) Params() client.Params {
	var p client.Params
	p.SetList("ids", r.IDs)
	p.SetList("vs_currencies", r.VsCurrencies)
	p.SetBool("include_market_cap", r.IncludeMarketCap)
	p.SetBool("include_24hr_vol", r.Include24hrVol)
	p.SetBool("include_24hr_change", r.Include24hrChange)
	p.SetBool("include_last_updated_at", r.IncludeLastUpdatedAt)
	p.SetOptional("precision", r.Precision)

	return p
}

// SimpleTokenPriceRequest queries /simple/token_price/{platform} by
// contract address.
type SimpleTokenPriceRequest struct {
	Platform             string   `validate:"required"`
	ContractAddresses    []string `validate:"required,min=1"`
	VsCurrencies         []string `validate:"required,min=1"`
	IncludeMarketCap     bool
	Include24hrVol       bool
	Include24hrChange    bool
	IncludeLastUpdatedAt bool
	Precision            string
}

func (r SimpleTokenPriceRequest) Endpoint() string {
	return "/simple/token_price/" + url.PathEscape(r.Platform)
}

func (r SimpleTokenPriceRequest) Route() string { return "/simple/token_price/{platform}" }

func (r SimpleTokenPriceRequest) Params() client.Params {
	var p client.Params
	p.SetList("contract_addresses", r.ContractAddresses)
	p.SetList("vs_currencies", r.VsCurrencies)
	p.SetBool("include_market_cap", r.IncludeMarketCap)
	p.SetBool("include_24hr_vol", r.Include24hrVol)
	p.SetBool("include_24hr_change", r.Include24hrChange)
	p.SetBool("include_last_updated_at", r.IncludeLastUpdatedAt)
	p.SetOptional("precision", r.Precision)

	return p
}

// CoinsListRequest queries /coins/list.
type CoinsListRequest struct {
	IncludePlatform *bool
}

func (r CoinsListRequest) Endpoint() string { return "/coins/list" }

func (r CoinsListRequest) Params() client.Params {
	var p client.Params
	p.SetOptionalBool("include_platform", r.IncludePlatform)

	return p
}

// CoinsMarketsRequest queries /coins/markets. Page and PerPage are omitted
// when zero.
type CoinsMarketsRequest struct {
	VsCurrency  string `validate:"required"`
	IDs         []string
	Order       MarketOrder
	Page        int `validate:"gte=0"`
	PerPage     int `validate:"gte=0,lte=250"`
	PriceChange PriceChanges
	Sparkline   *bool
}

func (r CoinsMarketsRequest) Endpoint() string { return "/coins/markets" }

func (r CoinsMarketsRequest) Params() client.Params {
	var p client.Params
	p.Set("vs_currency", r.VsCurrency)
	p.SetList("ids", r.IDs)
	p.SetToken("order", r.Order)
	p.SetOptionalInt("page", r.Page)
	p.SetOptionalInt("per_page", r.PerPage)
	p.SetList("price_change", r.PriceChange.Tokens())
	p.SetOptionalBool("sparkline", r.Sparkline)

	return p
}

// CoinRequest queries /coins/{id}. A nil toggle leaves the section at the
// API default, which includes it.
type CoinRequest struct {
	ID            string `validate:"required"`
	Localization  *bool
	Tickers       *bool
	MarketData    *bool
	CommunityData *bool
	DeveloperData *bool
	Sparkline     *bool
}

func (r CoinRequest) Endpoint() string { return "/coins/" + url.PathEscape(r.ID) }
func (r CoinRequest) Route() string    { return "/coins/{id}" }

func (r CoinRequest) Params() client.Params {
	var p client.Params
	p.SetOptionalBool("localization", r.Localization)
	p.SetOptionalBool("tickers", r.Tickers)
	p.SetOptionalBool("market_data", r.MarketData)
	p.SetOptionalBool("community_data", r.CommunityData)
	p.SetOptionalBool("developer_data", r.DeveloperData)
	p.SetOptionalBool("sparkline", r.Sparkline)

	return p
}

// CoinTickersRequest queries /coins/{id}/tickers. The API returns at most
// 100 tickers per page.
type CoinTickersRequest struct {
	ID                  string `validate:"required"`
	ExchangeIDs         []string
	IncludeExchangeLogo *bool
	Page                int `validate:"gte=0"`
	Order               TrustOrder
}

func (r CoinTickersRequest) Endpoint() string {
	return "/coins/" + url.PathEscape(r.ID) + "/tickers"
}

func (r CoinTickersRequest) Route() string { return "/coins/{id}/tickers" }

func (r CoinTickersRequest) Params() client.Params {
	var p client.Params
	p.SetList("exchange_ids", r.ExchangeIDs)
	p.SetOptionalBool("include_exchange_logo", r.IncludeExchangeLogo)
	p.SetOptionalInt("page", r.Page)
	p.SetToken("order", r.Order)

	return p
}

// CoinHistoryRequest queries /coins/{id}/history for the snapshot taken at
// 00:00 UTC on Date. Only the calendar date of Date is sent.
type CoinHistoryRequest struct {
	ID           string    `validate:"required"`
	Date         time.Time `validate:"required"`
	Localization *bool
}

func (r CoinHistoryRequest) Endpoint() string {
	return "/coins/" + url.PathEscape(r.ID) + "/history"
}

func (r CoinHistoryRequest) Route() string { return "/coins/{id}/history" }

func (r CoinHistoryRequest) Params() client.Params {
	var p client.Params
	p.SetDate("date", r.Date)
	p.SetOptionalBool("localization", r.Localization)

	return p
}

// MarketChartRequest queries /coins/{id}/market_chart. Days is a number of
// days or "max". Interval may be "daily"; empty lets the API choose.
type MarketChartRequest struct {
	ID         string `validate:"required"`
	VsCurrency string `validate:"required"`
	Days       string `validate:"required"`
	Interval   string
}

func (r MarketChartRequest) Endpoint() string {
	return "/coins/" + url.PathEscape(r.ID) + "/market_chart"
}

func (r MarketChartRequest) Route() string { return "/coins/{id}/market_chart" }

func (r MarketChartRequest) Params() client.Params {
	var p client.Params
	p.Set("vs_currency", r.VsCurrency)
	p.Set("days", r.Days)
	p.SetOptional("interval", r.Interval)

	return p
}

// MarketChartRangeRequest queries /coins/{id}/market_chart/range between
// two instants, sent as unix seconds.
type MarketChartRangeRequest struct {
	ID         string    `validate:"required"`
	VsCurrency string    `validate:"required"`
	From       time.Time `validate:"required"`
	To         time.Time `validate:"required,gtfield=From"`
}

func (r MarketChartRangeRequest) Endpoint() string {
	return "/coins/" + url.PathEscape(r.ID) + "/market_chart/range"
}

func (r MarketChartRangeRequest) Route() string { return "/coins/{id}/market_chart/range" }

func (r MarketChartRangeRequest) Params() client.Params {
	var p client.Params
	p.Set("vs_currency", r.VsCurrency)
	p.SetInt64("from", r.From.Unix())
	p.SetInt64("to", r.To.Unix())

	return p
}

// OHLCRequest queries /coins/{id}/ohlc.
type OHLCRequest struct {
	ID         string `validate:"required"`
	VsCurrency string `validate:"required"`
	Days       string `validate:"required,oneof=1 7 14 30 90 180 365 max"`
}

func (r OHLCRequest) Endpoint() string {
	return "/coins/" + url.PathEscape(r.ID) + "/ohlc"
}

func (r OHLCRequest) Route() string { return "/coins/{id}/ohlc" }

func (r OHLCRequest) Params() client.Params {
	var p client.Params
	p.Set("vs_currency", r.VsCurrency)
	p.Set("days", r.Days)

	return p
}

// AssetPlatformsRequest queries /asset_platforms. Filter may be "nft".
type AssetPlatformsRequest struct {
	Filter string
}

func (r AssetPlatformsRequest) Endpoint() string { return "/asset_platforms" }

func (r AssetPlatformsRequest) Params() client.Params {
	var p client.Params
	p.SetOptional("filter", r.Filter)

	return p
}
