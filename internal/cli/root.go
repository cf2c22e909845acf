// Package cli implements the gecko command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/adamwoolhether/gecko"
	"github.com/adamwoolhether/gecko/client"
	"github.com/adamwoolhether/gecko/internal/config"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the version info reported by --version.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgFile     string
	envFile     string
	logLevel    string
	showMetrics bool

	cfg      *config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	gecko    *gecko.Client
}

// Execute runs the command tree with os.Args and returns the process
// exit code.
func Execute(ctx context.Context) int {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gecko",
		Short: "Query the CoinGecko market data API",
		Long: `gecko queries the CoinGecko v3 REST API and prints the typed
responses as JSON.

Configuration is read from gecko.yaml, GECKO_* environment variables and
an optional .env file, for example:

  GECKO_API_KEY=CG-xxxx gecko price bitcoin ethereum --vs usd,eur`,
		Version:           fmt.Sprintf("%s (built %s)", version, buildTime),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup(stderr) },
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.showMetrics {
				return nil
			}
			return writeMetrics(stderr, a.registry)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./gecko.yaml)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.showMetrics, "metrics", false, "print request metrics to stderr on exit")

	root.AddCommand(
		a.pingCmd(),
		a.currenciesCmd(),
		a.priceCmd(),
		a.tokenPriceCmd(),
		a.listCmd(),
		a.marketsCmd(),
		a.coinCmd(),
		a.tickersCmd(),
		a.historyCmd(),
		a.chartCmd(),
		a.chartRangeCmd(),
		a.ohlcCmd(),
		a.platformsCmd(),
		a.ratesCmd(),
		a.globalCmd(),
	)

	return root
}

// setup loads configuration and builds the logger and API client.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.cfgFile, a.envFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	a.cfg = cfg

	a.log = newLogger(stderr, cfg.Log)
	a.registry = prometheus.NewRegistry()

	opts := append(cfg.ClientOptions(a.log), client.WithMetrics(a.registry))

	a.gecko, err = gecko.NewClient(opts...)
	if err != nil {
		return fmt.Errorf("building client: %w", err)
	}

	a.log.Debug("client ready", "base_url", a.gecko.Core().BaseURL(), "throttle_rps", cfg.Throttle.RPS)

	return nil
}

func newLogger(w io.Writer, cfg config.Log) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
