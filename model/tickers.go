package model

// Ticker is a trading pair of a coin on one market.
type Ticker struct {
	Base                   string        `json:"base" validate:"required"`
	Target                 string        `json:"target" validate:"required"`
	Market                 Market        `json:"market"`
	Last                   *float64      `json:"last"`
	Volume                 *float64      `json:"volume"`
	ConvertedLast          AllCurrencies `json:"converted_last"`
	ConvertedVolume        AllCurrencies `json:"converted_volume"`
	TrustScore             *string       `json:"trust_score"`
	BidAskSpreadPercentage *float64      `json:"bid_ask_spread_percentage"`
	Timestamp              *string       `json:"timestamp"`
	LastTradedAt           *string       `json:"last_traded_at"`
	LastFetchAt            *string       `json:"last_fetch_at"`
	IsAnomaly              bool          `json:"is_anomaly"`
	IsStale                bool          `json:"is_stale"`
	TradeURL               *string       `json:"trade_url"`
	TokenInfoURL           *string       `json:"token_info_url"`
	CoinID                 string        `json:"coin_id"`
	TargetCoinID           string        `json:"target_coin_id"`
}

// Market identifies the exchange a ticker trades on.
type Market struct {
	Name                string  `json:"name" validate:"required"`
	Identifier          string  `json:"identifier"`
	HasTradingIncentive bool    `json:"has_trading_incentive"`
	Logo                *string `json:"logo"`
}

// TickerPage is the /coins/{id}/tickers response.
type TickerPage struct {
	Name    string   `json:"name" validate:"required"`
	Tickers []Ticker `json:"tickers" validate:"dive"`
}
