package geckotest

// Routes lists every route the fake answers by default. "$id" and
// "$platform" in a fixture body are replaced with the matching path
// segment of the request, when the route has one.
var Routes = []string{
	"/ping",
	"/simple/price",
	"/simple/token_price/{platform}",
	"/simple/supported_vs_currencies",
	"/coins/list",
	"/coins/markets",
	"/coins/{id}",
	"/coins/{id}/tickers",
	"/coins/{id}/history",
	"/coins/{id}/market_chart",
	"/coins/{id}/market_chart/range",
	"/coins/{id}/ohlc",
	"/asset_platforms",
	"/exchange_rates",
	"/global",
}

var defaultFixtures = map[string]string{
	"/ping": `{"gecko_says":"(V3) To the Moon!"}`,

	"/simple/price": `{"bitcoin":{"usd":69702.31,"usd_market_cap":1370247487960.09,"usd_24h_vol":16945554224.65,"usd_24h_change":1.47,"last_updated_at":1711843200}}`,

	"/simple/token_price/{platform}": `{"0x2260fac5e5542a773aa44fbcfedf7c193bc2c599":{"usd":69655.12}}`,

	"/simple/supported_vs_currencies": `["btc","eth","usd","eur","jpy"]`,

	"/coins/list": `[
		{"id":"bitcoin","symbol":"btc","name":"Bitcoin","platforms":{}},
		{"id":"wrapped-bitcoin","symbol":"wbtc","name":"Wrapped Bitcoin","platforms":{"ethereum":"0x2260fac5e5542a773aa44fbcfedf7c193bc2c599"}}
	]`,

	"/coins/markets": `[
		{"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://assets.coingecko.com/coins/images/1/large/bitcoin.png","current_price":69702.31,"market_cap":1370247487960,"market_cap_rank":1,"fully_diluted_valuation":1463684815722,"total_volume":16945554224,"high_24h":70355,"low_24h":68938,"price_change_24h":1011.57,"price_change_percentage_24h":1.47,"circulating_supply":19666987,"total_supply":21000000,"max_supply":21000000,"ath":73738,"ath_change_percentage":-5.47,"ath_date":"2024-03-14T07:10:36.635Z","atl":67.81,"atl_change_percentage":102693.28,"atl_date":"2013-07-06T00:00:00.000Z","roi":null,"last_updated":"2024-03-31T00:00:00.000Z"},
		{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3647.66,"market_cap":438144302127,"market_cap_rank":2,"fully_diluted_valuation":null,"roi":{"times":66.14,"currency":"btc","percentage":6614.34},"last_updated":"2024-03-31T00:00:00.000Z"}
	]`,

	"/coins/{id}": `{"id":"$id","symbol":"btc","name":"Bitcoin","asset_platform_id":null,"platforms":{"":""},"block_time_in_minutes":10,"hashing_algorithm":"SHA-256","categories":["Cryptocurrency"],"description":{"en":"Bitcoin is the first successful internet money."},"links":{"homepage":["http://www.bitcoin.org"],"repos_url":{"github":["https://github.com/bitcoin/bitcoin"],"bitbucket":[]}},"image":{"thumb":"https://assets.coingecko.com/coins/images/1/thumb/bitcoin.png","small":"https://assets.coingecko.com/coins/images/1/small/bitcoin.png","large":"https://assets.coingecko.com/coins/images/1/large/bitcoin.png"},"genesis_date":"2009-01-03","market_cap_rank":1,"market_data":{"current_price":{"usd":69702.31,"eur":64560.12},"market_cap":{"usd":1370247487960},"market_cap_rank":1,"total_volume":{"usd":16945554224},"price_change_percentage_24h":1.47,"circulating_supply":19666987,"total_supply":21000000,"max_supply":21000000},"community_data":{"twitter_followers":6500000,"reddit_subscribers":5600000},"developer_data":{"forks":36000,"stars":73000,"code_additions_deletions_4_weeks":{"additions":1570,"deletions":-1948}},"last_updated":"2024-03-31T00:00:00.000Z","tickers":[{"base":"BTC","target":"USDT","market":{"name":"Binance","identifier":"binance","has_trading_incentive":false},"last":69714.01,"volume":21549.93,"trust_score":"green","is_anomaly":false,"is_stale":false,"coin_id":"bitcoin","target_coin_id":"tether"}]}`,

	"/coins/{id}/tickers": `{"name":"Bitcoin","tickers":[
		{"base":"BTC","target":"USDT","market":{"name":"Binance","identifier":"binance","has_trading_incentive":false},"last":69714.01,"volume":21549.93,"converted_last":{"usd":69721.4},"trust_score":"green","bid_ask_spread_percentage":0.010014,"timestamp":"2024-03-31T00:00:00+00:00","is_anomaly":false,"is_stale":false,"trade_url":"https://www.binance.com/en/trade/BTC_USDT","token_info_url":null,"coin_id":"$id","target_coin_id":"tether"},
		{"base":"BTC","target":"USD","market":{"name":"Coinbase Exchange","identifier":"gdax","has_trading_incentive":false},"last":69702,"volume":6785.12,"trust_score":"green","is_anomaly":false,"is_stale":false,"coin_id":"$id"}
	]}`,

	"/coins/{id}/history": `{"id":"$id","symbol":"btc","name":"Bitcoin","image":{"thumb":"https://assets.coingecko.com/coins/images/1/thumb/bitcoin.png","small":"https://assets.coingecko.com/coins/images/1/small/bitcoin.png"},"market_data":{"current_price":{"usd":14112.1},"market_cap":{"usd":236367112599},"total_volume":{"usd":12810349178}}}`,

	"/coins/{id}/market_chart": `{"prices":[[1711756800000,69893.45],[1711843200000,69702.31]],"market_caps":[[1711756800000,1375311258563.6],[1711843200000,1370247487960.09]],"total_volumes":[[1711756800000,18293127419.3],[1711843200000,16945554224.65]]}`,

	"/coins/{id}/market_chart/range": `{"prices":[[1392577232000,645.14],[1392663632000,623.47]],"market_caps":[[1392577232000,7967415712.3],[1392663632000,7710201416.5]],"total_volumes":[[1392577232000,30513476.1],[1392663632000,40170912.7]]}`,

	"/coins/{id}/ohlc": `[[1711756800000,69893.45,70117.3,69512.02,69638.93],[1711843200000,69638.93,70355.44,68938.5,69702.31]]`,

	"/asset_platforms": `[
		{"id":"ethereum","chain_identifier":1,"name":"Ethereum","shortname":"Ethereum"},
		{"id":"polygon-pos","chain_identifier":137,"name":"Polygon POS","shortname":"MATIC"}
	]`,

	"/exchange_rates": `{"rates":{"btc":{"name":"Bitcoin","unit":"BTC","value":1,"type":"crypto"},"usd":{"name":"US Dollar","unit":"$","value":69702.31,"type":"fiat"}}}`,

	"/global": `{"data":{"active_cryptocurrencies":14231,"upcoming_icos":0,"ongoing_icos":49,"ended_icos":3376,"markets":1093,"total_market_cap":{"usd":2706587393843},"total_volume":{"usd":64398714425},"market_cap_percentage":{"btc":50.63,"eth":16.19},"market_cap_change_percentage_24h_usd":1.25,"updated_at":1711843200}}`,
}
