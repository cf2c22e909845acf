package model

// Ping is the /ping response.
type Ping struct {
	GeckoSays string `json:"gecko_says" validate:"required"`
}

// Price maps a quote currency, or a derived key such as "usd_market_cap"
// or "usd_24h_change", to its value. last_updated_at is reported as a
// unix timestamp under the same map. A nil value is a key the API sent
// as null.
type Price map[string]*float64

// Get returns the value under key when it is present and not null.
func (p Price) Get(key string) (float64, bool) {
	v := p[key]
	if v == nil {
		return 0, false
	}

	return *v, true
}

// SimplePrices maps a coin id (or contract address) to its prices.
type SimplePrices map[string]Price

// CoinListing is one entry of /coins/list. The symbol is lowercase.
type CoinListing struct {
	ID        string             `json:"id" validate:"required"`
	Symbol    string             `json:"symbol" validate:"required"`
	Name      string             `json:"name" validate:"required"`
	Platforms map[string]*string `json:"platforms,omitempty"`
}

// AssetPlatform is one entry of /asset_platforms.
type AssetPlatform struct {
	ID              string `json:"id" validate:"required"`
	ChainIdentifier *int64 `json:"chain_identifier"`
	Name            string `json:"name" validate:"required"`
	ShortName       string `json:"shortname"`
}
