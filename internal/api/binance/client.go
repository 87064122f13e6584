// Package binance implements the crypto quote source backed by the Binance
// spot ticker endpoint. Interchangeable with the CoinGecko aggregator.
package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	platform "chartrisk/internal/platform/http"
)

// DefaultBaseURL is the public Binance spot API host.
const DefaultBaseURL = "https://api.binance.com"

// Client is the Binance spot API client.
type Client struct {
	baseURL    string
	httpClient *platform.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new Binance client.
type ClientOptions struct {
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	MaxRetries     uint64
}

// NewClient creates a new Binance API client.
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: opts.BaseURL,
		httpClient: platform.NewClient(platform.ClientOptions{
			Timeout:        opts.RequestTimeout,
			RequestsPerSec: opts.RequestsPerSec,
			MaxRetries:     opts.MaxRetries,
		}),
		logger: log.With().Str("component", "binance_client").Logger(),
	}
}

// Name identifies this source inside the asset catalog.
func (c *Client) Name() string { return "binance" }

// tickerPrice is the /api/v3/ticker/price payload; the price arrives as a
// JSON string.
type tickerPrice struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// Price fetches the last traded price for a Binance spot symbol.
func (c *Client) Price(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", c.baseURL, symbol)

	c.logger.Debug().Str("url", url).Msg("Fetching ticker price")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	var ticker tickerPrice
	if err := json.NewDecoder(resp.Body).Decode(&ticker); err != nil {
		c.logger.Error().Err(err).Str("symbol", symbol).Msg("Error parsing JSON")
		return 0, fmt.Errorf("parsing JSON: %w", err)
	}

	price, err := strconv.ParseFloat(ticker.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing price %q: %w", ticker.Price, err)
	}

	c.logger.Debug().Str("symbol", symbol).Float64("price", price).Msg("Fetched ticker price")
	return price, nil
}
