package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/gecko"
)

func (a *app) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check API server status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.gecko.Ping(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
}

func (a *app) currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List supported quote currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.gecko.SupportedVsCurrencies(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
}

func (a *app) priceCmd() *cobra.Command {
	var (
		vs        []string
		full      bool
		precision string
	)

	cmd := &cobra.Command{
		Use:   "price ID...",
		Short: "Show current prices of coins",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if full {
				v, err := a.gecko.SimplePriceShort(cmd.Context(), args, vs)
				if err != nil {
					return err
				}
				return printJSON(cmd, v)
			}

			v, err := a.gecko.SimplePrice(cmd.Context(), gecko.SimplePriceRequest{
				IDs:          args,
				VsCurrencies: vs,
				Precision:    precision,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().StringSliceVar(&vs, "vs", []string{"usd"}, "quote currencies")
	cmd.Flags().BoolVar(&full, "full", false, "include market cap, volume, change and update time")
	cmd.Flags().StringVar(&precision, "precision", "", `decimal places, or "full"`)

	return cmd
}

func (a *app) tokenPriceCmd() *cobra.Command {
	var vs []string

	cmd := &cobra.Command{
		Use:   "token-price PLATFORM ADDRESS...",
		Short: "Show current prices of tokens by contract address",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.gecko.SimpleTokenPrice(cmd.Context(), gecko.SimpleTokenPriceRequest{
				Platform:          args[0],
				ContractAddresses: args[1:],
				VsCurrencies:      vs,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().StringSliceVar(&vs, "vs", []string{"usd"}, "quote currencies")

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	var platforms bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every supported coin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.gecko.CoinsList(cmd.Context(), gecko.CoinsListRequest{IncludePlatform: gecko.Bool(platforms)})
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().BoolVar(&platforms, "platforms", false, "include contract addresses per platform")

	return cmd
}

func (a *app) marketsCmd() *cobra.Command {
	var (
		req         gecko.CoinsMarketsRequest
		order       string
		priceChange []string
		sparkline   bool
	)

	cmd := &cobra.Command{
		Use:   "markets",
		Short: "List coins with market data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if order != "" {
				o, err := gecko.ParseMarketOrder(order)
				if err != nil {
					return fmt.Errorf("--order: %w", err)
				}
				req.Order = o
			}

			for _, s := range priceChange {
				p, err := gecko.ParsePriceChange(s)
				if err != nil {
					return fmt.Errorf("--price-change: %w", err)
				}
				req.PriceChange = append(req.PriceChange, p)
			}

			if cmd.Flags().Changed("sparkline") {
				req.Sparkline = gecko.Bool(sparkline)
			}

			v, err := a.gecko.CoinsMarkets(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().StringVar(&req.VsCurrency, "vs", "usd", "quote currency")
	cmd.Flags().StringSliceVar(&req.IDs, "ids", nil, "restrict to these coin ids")
	cmd.Flags().StringVar(&order, "order", "", "sort order, e.g. market_cap_desc or volume_desc")
	cmd.Flags().IntVar(&req.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&req.PerPage, "per-page", 0, "results per page, up to 250")
	cmd.Flags().StringSliceVar(&priceChange, "price-change", nil, "price change windows: 1h, 24h, 7d, 14d, 30d, 200d, 1y")
	cmd.Flags().BoolVar(&sparkline, "sparkline", false, "include 7 day sparkline")

	return cmd
}

func (a *app) coinCmd() *cobra.Command {
	var toggles struct {
		localization, tickers, marketData, communityData, developerData, sparkline bool
	}

	cmd := &cobra.Command{
		Use:   "coin ID",
		Short: "Show current data for a coin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.gecko.Coin(cmd.Context(), gecko.CoinRequest{
				ID:            args[0],
				Localization:  gecko.Bool(toggles.localization),
				Tickers:       gecko.Bool(toggles.tickers),
				MarketData:    gecko.Bool(toggles.marketData),
				CommunityData: gecko.Bool(toggles.communityData),
				DeveloperData: gecko.Bool(toggles.developerData),
				Sparkline:     gecko.Bool(toggles.sparkline),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().BoolVar(&toggles.localization, "localization", true, "include localized names")
	cmd.Flags().BoolVar(&toggles.tickers, "tickers", true, "include up to 100 tickers")
	cmd.Flags().BoolVar(&toggles.marketData, "market-data", true, "include market data")
	cmd.Flags().BoolVar(&toggles.communityData, "community-data", true, "include community data")
	cmd.Flags().BoolVar(&toggles.developerData, "developer-data", true, "include developer data")
	cmd.Flags().BoolVar(&toggles.sparkline, "sparkline", false, "include 7 day sparkline")

	return cmd
}

func (a *app) tickersCmd() *cobra.Command {
	var (
		req   gecko.CoinTickersRequest
		order string
		logo  bool
	)

	cmd := &cobra.Command{
		Use:   "tickers ID",
		Short: "List a coin's tickers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ID = args[0]
			if order != "" {
				o, err := gecko.ParseTrustOrder(order)
				if err != nil {
					return fmt.Errorf("--order: %w", err)
				}
				req.Order = o
			}
			if cmd.Flags().Changed("logo") {
				req.IncludeExchangeLogo = gecko.Bool(logo)
			}

			v, err := a.gecko.CoinTickers(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().StringSliceVar(&req.ExchangeIDs, "exchanges", nil, "restrict to these exchange ids")
	cmd.Flags().IntVar(&req.Page, "page", 0, "page number")
	cmd.Flags().StringVar(&order, "order", "", "trust_score_desc, trust_score_asc or volume_desc")
	cmd.Flags().BoolVar(&logo, "logo", false, "include exchange logos")

	return cmd
}

func (a *app) historyCmd() *cobra.Command {
	var localization bool

	cmd := &cobra.Command{
		Use:   "history ID YYYY-MM-DD",
		Short: "Show a coin's snapshot at 00:00 UTC on a past date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseTime(args[1])
			if err != nil {
				return err
			}

			v, err := a.gecko.CoinHistory(cmd.Context(), gecko.CoinHistoryRequest{
				ID:           args[0],
				Date:         date,
				Localization: gecko.Bool(localization),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().BoolVar(&localization, "localization", false, "include localized names")

	return cmd
}

func (a *app) chartCmd() *cobra.Command {
	var req gecko.MarketChartRequest

	cmd := &cobra.Command{
		Use:   "chart ID",
		Short: "Show price, market cap and volume series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ID = args[0]

			v, err := a.gecko.CoinMarketChart(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().StringVar(&req.VsCurrency, "vs", "usd", "quote currency")
	cmd.Flags().StringVar(&req.Days, "days", "1", `number of days back, or "max"`)
	cmd.Flags().StringVar(&req.Interval, "interval", "", `"daily" or empty for automatic`)

	return cmd
}

func (a *app) chartRangeCmd() *cobra.Command {
	var (
		vs       string
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "chart-range ID",
		Short: "Show price, market cap and volume series between two times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseTime(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := parseTime(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			v, err := a.gecko.CoinMarketChartRange(cmd.Context(), gecko.MarketChartRangeRequest{
				ID:         args[0],
				VsCurrency: vs,
				From:       start,
				To:         end,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().StringVar(&vs, "vs", "usd", "quote currency")
	cmd.Flags().StringVar(&from, "from", "", "start, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&to, "to", "", "end, YYYY-MM-DD or RFC 3339")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) ohlcCmd() *cobra.Command {
	var req gecko.OHLCRequest

	cmd := &cobra.Command{
		Use:   "ohlc ID",
		Short: "Show OHLC candles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ID = args[0]

			v, err := a.gecko.CoinOHLC(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().StringVar(&req.VsCurrency, "vs", "usd", "quote currency")
	cmd.Flags().StringVar(&req.Days, "days", "1", "1, 7, 14, 30, 90, 180, 365 or max")

	return cmd
}

func (a *app) platformsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List asset platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.gecko.AssetPlatforms(cmd.Context(), gecko.AssetPlatformsRequest{Filter: filter})
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", `"nft" to list NFT platforms only`)

	return cmd
}

func (a *app) ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show BTC exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.gecko.ExchangeRates(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
}

func (a *app) globalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "global",
		Short: "Show global market statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.gecko.Global(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
}

// parseTime accepts a calendar date or an RFC 3339 timestamp, in UTC.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: want YYYY-MM-DD or RFC 3339", s)
	}

	return t.UTC(), nil
}
