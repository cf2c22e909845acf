package model

// CoinsItem is the /coins/{id} response. Sections disabled through the
// request toggles are absent and decode as nil or empty.
type CoinsItem struct {
	ID                           string               `json:"id" validate:"required"`
	Symbol                       string               `json:"symbol" validate:"required"`
	Name                         string               `json:"name" validate:"required"`
	AssetPlatformID              *string              `json:"asset_platform_id"`
	Platforms                    map[string]*string   `json:"platforms"`
	BlockTimeInMinutes           *float64             `json:"block_time_in_minutes"`
	HashingAlgorithm             *string              `json:"hashing_algorithm"`
	Categories                   []*string            `json:"categories"`
	PublicNotice                 *string              `json:"public_notice"`
	AdditionalNotices            []string             `json:"additional_notices"`
	Localization                 map[string]string    `json:"localization"`
	Description                  map[string]string    `json:"description"`
	Links                        *Links               `json:"links"`
	Image                        *Image               `json:"image"`
	CountryOrigin                string               `json:"country_origin"`
	GenesisDate                  *string              `json:"genesis_date"`
	SentimentVotesUpPercentage   *float64             `json:"sentiment_votes_up_percentage"`
	SentimentVotesDownPercentage *float64             `json:"sentiment_votes_down_percentage"`
	MarketCapRank                Value                `json:"market_cap_rank"`
	CoinGeckoRank                Value                `json:"coingecko_rank"`
	CoinGeckoScore               *float64             `json:"coingecko_score"`
	DeveloperScore               *float64             `json:"developer_score"`
	CommunityScore               *float64             `json:"community_score"`
	LiquidityScore               *float64             `json:"liquidity_score"`
	PublicInterestScore          *float64             `json:"public_interest_score"`
	MarketData                   *MarketData          `json:"market_data"`
	CommunityData                *CommunityData       `json:"community_data"`
	DeveloperData                *DeveloperData       `json:"developer_data"`
	PublicInterestStats          *PublicInterestStats `json:"public_interest_stats"`
	StatusUpdates                []Value              `json:"status_updates"`
	LastUpdated                  *string              `json:"last_updated"`
	Tickers                      []Ticker             `json:"tickers" validate:"dive"`
}

// Links lists the project's web presence.
type Links struct {
	Homepage                    []string            `json:"homepage"`
	BlockchainSite              []string            `json:"blockchain_site"`
	OfficialForumURL            []string            `json:"official_forum_url"`
	ChatURL                     []string            `json:"chat_url"`
	AnnouncementURL             []string            `json:"announcement_url"`
	TwitterScreenName           *string             `json:"twitter_screen_name"`
	FacebookUsername            *string             `json:"facebook_username"`
	BitcointalkThreadIdentifier Value               `json:"bitcointalk_thread_identifier"`
	TelegramChannelIdentifier   *string             `json:"telegram_channel_identifier"`
	SubredditURL                *string             `json:"subreddit_url"`
	ReposURL                    map[string][]string `json:"repos_url"`
}

// Image holds logo URLs by size.
type Image struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// AllCurrencies maps a quote currency to a value. The API reports null
// for currencies it has no quote in, kept here as a nil value.
type AllCurrencies map[string]*float64

// Get returns the value quoted in currency when present and not null.
func (a AllCurrencies) Get(currency string) (float64, bool) {
	v := a[currency]
	if v == nil {
		return 0, false
	}

	return *v, true
}

// MarketData is the market section of a coin, quoted in every supported
// currency.
type MarketData struct {
	CurrentPrice                           AllCurrencies     `json:"current_price"`
	TotalValueLocked                       Value             `json:"total_value_locked"`
	MCapToTVLRatio                         Value             `json:"mcap_to_tvl_ratio"`
	FDVToTVLRatio                          Value             `json:"fdv_to_tvl_ratio"`
	ROI                                    *ROI              `json:"roi"`
	ATH                                    AllCurrencies     `json:"ath"`
	ATHChangePercentage                    AllCurrencies     `json:"ath_change_percentage"`
	ATHDate                                map[string]string `json:"ath_date"`
	ATL                                    AllCurrencies     `json:"atl"`
	ATLChangePercentage                    AllCurrencies     `json:"atl_change_percentage"`
	ATLDate                                map[string]string `json:"atl_date"`
	MarketCap                              AllCurrencies     `json:"market_cap"`
	MarketCapRank                          Value             `json:"market_cap_rank"`
	FullyDilutedValuation                  AllCurrencies     `json:"fully_diluted_valuation"`
	TotalVolume                            AllCurrencies     `json:"total_volume"`
	High24h                                AllCurrencies     `json:"high_24h"`
	Low24h                                 AllCurrencies     `json:"low_24h"`
	PriceChange24h                         *float64          `json:"price_change_24h"`
	PriceChangePercentage24h               *float64          `json:"price_change_percentage_24h"`
	PriceChangePercentage7d                *float64          `json:"price_change_percentage_7d"`
	PriceChangePercentage14d               *float64          `json:"price_change_percentage_14d"`
	PriceChangePercentage30d               *float64          `json:"price_change_percentage_30d"`
	PriceChangePercentage60d               *float64          `json:"price_change_percentage_60d"`
	PriceChangePercentage200d              *float64          `json:"price_change_percentage_200d"`
	PriceChangePercentage1y                *float64          `json:"price_change_percentage_1y"`
	MarketCapChange24h                     *float64          `json:"market_cap_change_24h"`
	MarketCapChangePercentage24h           *float64          `json:"market_cap_change_percentage_24h"`
	PriceChange24hInCurrency               AllCurrencies     `json:"price_change_24h_in_currency"`
	PriceChangePercentage1hInCurrency      AllCurrencies     `json:"price_change_percentage_1h_in_currency"`
	PriceChangePercentage24hInCurrency     AllCurrencies     `json:"price_change_percentage_24h_in_currency"`
	PriceChangePercentage7dInCurrency      AllCurrencies     `json:"price_change_percentage_7d_in_currency"`
	PriceChangePercentage14dInCurrency     AllCurrencies     `json:"price_change_percentage_14d_in_currency"`
	PriceChangePercentage30dInCurrency     AllCurrencies     `json:"price_change_percentage_30d_in_currency"`
	PriceChangePercentage60dInCurrency     AllCurrencies     `json:"price_change_percentage_60d_in_currency"`
	PriceChangePercentage200dInCurrency    AllCurrencies     `json:"price_change_percentage_200d_in_currency"`
	PriceChangePercentage1yInCurrency      AllCurrencies     `json:"price_change_percentage_1y_in_currency"`
	MarketCapChange24hInCurrency           AllCurrencies     `json:"market_cap_change_24h_in_currency"`
	MarketCapChangePercentage24hInCurrency AllCurrencies     `json:"market_cap_change_percentage_24h_in_currency"`
	TotalSupply                            *float64          `json:"total_supply"`
	MaxSupply                              *float64          `json:"max_supply"`
	CirculatingSupply                      *float64          `json:"circulating_supply"`
	Sparkline7d                            *Sparkline        `json:"sparkline_7d"`
	LastUpdated                            *string           `json:"last_updated"`
}

// CommunityData holds social media statistics.
type CommunityData struct {
	FacebookLikes            *int64   `json:"facebook_likes"`
	TwitterFollowers         *int64   `json:"twitter_followers"`
	RedditAveragePosts48h    *float64 `json:"reddit_average_posts_48h"`
	RedditAverageComments48h *float64 `json:"reddit_average_comments_48h"`
	RedditSubscribers        *int64   `json:"reddit_subscribers"`
	RedditAccountsActive48h  Value    `json:"reddit_accounts_active_48h"`
	TelegramChannelUserCount *int64   `json:"telegram_channel_user_count"`
}

// DeveloperData holds repository statistics.
type DeveloperData struct {
	Forks                          *int64            `json:"forks"`
	Stars                          *int64            `json:"stars"`
	Subscribers                    *int64            `json:"subscribers"`
	TotalIssues                    *int64            `json:"total_issues"`
	ClosedIssues                   *int64            `json:"closed_issues"`
	PullRequestsMerged             *int64            `json:"pull_requests_merged"`
	PullRequestContributors        *int64            `json:"pull_request_contributors"`
	CodeAdditionsDeletions4Weeks   map[string]*int64 `json:"code_additions_deletions_4_weeks"`
	CommitCount4Weeks              *int64            `json:"commit_count_4_weeks"`
	Last4WeeksCommitActivitySeries []int64           `json:"last_4_weeks_commit_activity_series"`
}

// PublicInterestStats holds web traffic statistics.
type PublicInterestStats struct {
	AlexaRank   *int64 `json:"alexa_rank"`
	BingMatches *int64 `json:"bing_matches"`
}
