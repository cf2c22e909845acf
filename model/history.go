package model

// CoinHistoryItem is the /coins/{id}/history response: a snapshot of the
// coin at 00:00 UTC on the requested date.
type CoinHistoryItem struct {
	ID                  string               `json:"id" validate:"required"`
	Symbol              string               `json:"symbol" validate:"required"`
	Name                string               `json:"name" validate:"required"`
	Localization        map[string]string    `json:"localization"`
	Image               *Image               `json:"image"`
	MarketData          *HistoryMarketData   `json:"market_data"`
	CommunityData       *CommunityData       `json:"community_data"`
	DeveloperData       *DeveloperData       `json:"developer_data"`
	PublicInterestStats *PublicInterestStats `json:"public_interest_stats"`
}

// HistoryMarketData is the reduced market section of a history snapshot.
type HistoryMarketData struct {
	CurrentPrice AllCurrencies `json:"current_price"`
	MarketCap    AllCurrencies `json:"market_cap"`
	TotalVolume  AllCurrencies `json:"total_volume"`
}
