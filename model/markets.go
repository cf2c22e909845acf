package model

// CoinsMarketItem is one row of /coins/markets.
type CoinsMarketItem struct {
	ID                           string     `json:"id" validate:"required"`
	Symbol                       string     `json:"symbol" validate:"required"`
	Name                         string     `json:"name" validate:"required"`
	Image                        string     `json:"image"`
	CurrentPrice                 *float64   `json:"current_price"`
	MarketCap                    *float64   `json:"market_cap"`
	MarketCapRank                Value      `json:"market_cap_rank"`
	FullyDilutedValuation        Value      `json:"fully_diluted_valuation"`
	TotalVolume                  *float64   `json:"total_volume"`
	High24h                      *float64   `json:"high_24h"`
	Low24h                       *float64   `json:"low_24h"`
	PriceChange24h               *float64   `json:"price_change_24h"`
	PriceChangePercentage24h     *float64   `json:"price_change_percentage_24h"`
	MarketCapChange24h           *float64   `json:"market_cap_change_24h"`
	MarketCapChangePercentage24h *float64   `json:"market_cap_change_percentage_24h"`
	CirculatingSupply            *float64   `json:"circulating_supply"`
	TotalSupply                  *float64   `json:"total_supply"`
	MaxSupply                    *float64   `json:"max_supply"`
	ATH                          *float64   `json:"ath"`
	ATHChangePercentage          *float64   `json:"ath_change_percentage"`
	ATHDate                      *string    `json:"ath_date"`
	ATL                          *float64   `json:"atl"`
	ATLChangePercentage          *float64   `json:"atl_change_percentage"`
	ATLDate                      *string    `json:"atl_date"`
	ROI                          *ROI       `json:"roi"`
	LastUpdated                  *string    `json:"last_updated"`
	SparklineIn7d                *Sparkline `json:"sparkline_in_7d"`

	PriceChangePercentage1hInCurrency   *float64 `json:"price_change_percentage_1h_in_currency"`
	PriceChangePercentage24hInCurrency  *float64 `json:"price_change_percentage_24h_in_currency"`
	PriceChangePercentage7dInCurrency   *float64 `json:"price_change_percentage_7d_in_currency"`
	PriceChangePercentage14dInCurrency  *float64 `json:"price_change_percentage_14d_in_currency"`
	PriceChangePercentage30dInCurrency  *float64 `json:"price_change_percentage_30d_in_currency"`
	PriceChangePercentage200dInCurrency *float64 `json:"price_change_percentage_200d_in_currency"`
	PriceChangePercentage1yInCurrency   *float64 `json:"price_change_percentage_1y_in_currency"`
}

// ROI is the return on investment since the coin's initial offering.
type ROI struct {
	Times      *float64 `json:"times"`
	Currency   string   `json:"currency"`
	Percentage *float64 `json:"percentage"`
}

// Sparkline holds seven days of hourly prices.
type Sparkline struct {
	Price []float64 `json:"price"`
}
