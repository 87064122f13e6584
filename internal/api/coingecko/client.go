// Package coingecko implements the crypto quote source backed by the
// CoinGecko simple-price aggregator.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	platform "chartrisk/internal/platform/http"
)

// DefaultBaseURL is the public CoinGecko API host.
const DefaultBaseURL = "https://api.coingecko.com"

// Client is the CoinGecko API client.
type Client struct {
	baseURL    string
	httpClient *platform.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new CoinGecko client.
type ClientOptions struct {
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	MaxRetries     uint64
}

// NewClient creates a new CoinGecko API client.
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
		logger: log.With().Str("component", "coingecko_client").Logger(),
	}
}

// Name identifies this source inside the asset catalog.
func (c *Client) Name() string { return "coingecko" }

// Price fetches the current USD price for a CoinGecko coin id.
func (c *Client) Price(ctx context.Context, coinID string) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=usd", c.baseURL, coinID)

	c.logger.Debug().Str("url", url).Msg("Fetching crypto price")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("reading response body: %w", err)
	}

	var data map[string]map[string]float64
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return 0, fmt.Errorf("parsing JSON: %w", err)
	}

	usd, ok := data[coinID]["usd"]
	if !ok {
		c.logger.Warn().Str("coin_id", coinID).Str("response", string(body)).Msg("No price in response")
		return 0, fmt.Errorf("no usd price returned for %q", coinID)
	}

	c.logger.Debug().Str("coin_id", coinID).Float64("price", usd).Msg("Fetched crypto price")
	return usd, nil
}
