package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"chartrisk/internal/api/binance"
	"chartrisk/internal/api/coingecko"
	"chartrisk/internal/api/twelvedata"
	"chartrisk/internal/api/yahoo"
	"chartrisk/internal/config"
	"chartrisk/internal/models"
	"chartrisk/internal/quote"
)

var rootCmd = &cobra.Command{
	Use:   "chartrisk",
	Short: "Chart-driven trade decisions and leveraged-risk sizing",
	Long: `Chartrisk supports discretionary trading decisions from the terminal.

It provides tools for:
  - Scanning a chart screenshot for Fibonacci retracement levels and issuing
    a Go / No Go verdict
  - Fetching live prices for a fixed catalog of crypto, stock and commodity
    assets from pluggable providers
  - Computing position size, stop and reward distances, risk-reward ratio and
    a risk-compliance verdict for a leveraged trade`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration and wires the global logger.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	return cfg, nil
}

// newResolver builds the quote resolver from configuration: catalog, one
// crypto source and one listed-market source shared by equities and
// commodities.
func newResolver(cfg *config.Config) (*quote.Resolver, error) {
	catalog := quote.DefaultCatalog()
	if cfg.CatalogPath != "" {
		var err error
		catalog, err = quote.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
	}

	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	retries := uint64(cfg.MaxRetries)

	var crypto models.QuoteSource
	switch cfg.CryptoProvider {
	case "binance":
		crypto = binance.NewClient(binance.ClientOptions{
			BaseURL:        cfg.BinanceBaseURL,
			RequestTimeout: timeout,
			RequestsPerSec: cfg.RequestsPerSec,
			MaxRetries:     retries,
		})
	case "coingecko":
		crypto = coingecko.NewClient(coingecko.ClientOptions{
			BaseURL:        cfg.CoinGeckoBaseURL,
			RequestTimeout: timeout,
			RequestsPerSec: cfg.RequestsPerSec,
			MaxRetries:     retries,
		})
	default:
		return nil, fmt.Errorf("unknown crypto provider %q", cfg.CryptoProvider)
	}

	var listed models.QuoteSource
	switch cfg.EquityProvider {
	case "twelvedata":
		listed = twelvedata.NewClient(twelvedata.ClientOptions{
			APIKey:         cfg.TwelveAPIKey,
			BaseURL:        cfg.TwelveDataBaseURL,
			RequestTimeout: timeout,
			RequestsPerSec: cfg.RequestsPerSec,
			MaxRetries:     retries,
		})
	case "yahoo":
		listed = yahoo.NewClient(yahoo.ClientOptions{
			BaseURL:        cfg.YahooBaseURL,
			RequestTimeout: timeout,
			RequestsPerSec: cfg.RequestsPerSec,
			MaxRetries:     retries,
		})
	default:
		return nil, fmt.Errorf("unknown equity provider %q", cfg.EquityProvider)
	}

	sources := map[models.Category]models.QuoteSource{
		models.CategoryCrypto:    crypto,
		models.CategoryEquity:    listed,
		models.CategoryCommodity: listed,
	}

	return quote.NewResolver(catalog, sources, timeout), nil
}
