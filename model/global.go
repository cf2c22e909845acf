package model

// GlobalData is the /global response envelope.
type GlobalData struct {
	Data *Global `json:"data" validate:"required"`
}

// Global summarizes the whole market. Counters are pointers so that a
// reported 0 is told apart from a missing field.
type Global struct {
	ActiveCryptocurrencies          *int64        `json:"active_cryptocurrencies" validate:"required"`
	UpcomingICOs                    *int64        `json:"upcoming_icos" validate:"required"`
	OngoingICOs                     *int64        `json:"ongoing_icos" validate:"required"`
	EndedICOs                       *int64        `json:"ended_icos" validate:"required"`
	Markets                         *int64        `json:"markets" validate:"required"`
	TotalMarketCap                  AllCurrencies `json:"total_market_cap" validate:"required"`
	TotalVolume                     AllCurrencies `json:"total_volume" validate:"required"`
	MarketCapPercentage             AllCurrencies `json:"market_cap_percentage" validate:"required"`
	MarketCapChangePercentage24hUSD *float64      `json:"market_cap_change_percentage_24h_usd" validate:"required"`
	UpdatedAt                       *int64        `json:"updated_at" validate:"required"`
}

// ExchangeRates is the /exchange_rates response, keyed by currency code.
type ExchangeRates struct {
	Rates map[string]Rate `json:"rates" validate:"required,dive"`
}

// Rate is the BTC-relative value of one currency. Type is "crypto",
// "fiat" or "commodity" and may be absent.
type Rate struct {
	Name  string   `json:"name" validate:"required"`
	Unit  string   `json:"unit" validate:"required"`
	Value *float64 `json:"value" validate:"required"`
	Type  string   `json:"type,omitempty"`
}
