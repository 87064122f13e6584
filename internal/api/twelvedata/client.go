// Package twelvedata implements an alternate equity and commodity quote
// source backed by the Twelve Data time-series API. It requires an API key
// and is selected over Yahoo via configuration.
package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	platform "chartrisk/internal/platform/http"
)

// DefaultBaseURL is the public Twelve Data API host.
const DefaultBaseURL = "https://api.twelvedata.com"

// Client is the Twelve Data API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *platform.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new Twelve Data client.
type ClientOptions struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	MaxRetries     uint64
}

// NewClient creates a new Twelve Data API client.
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:  opts.APIKey,
		baseURL: opts.BaseURL,
		httpClient: platform.NewClient(platform.ClientOptions{
			Timeout:        opts.RequestTimeout,
			RequestsPerSec: opts.RequestsPerSec,
			MaxRetries:     opts.MaxRetries,
		}),
		logger: log.With().Str("component", "twelvedata_client").Logger(),
	}
}

// Name identifies this source inside the asset catalog.
func (c *Client) Name() string { return "twelvedata" }

// timeSeriesResponse is the /time_series payload trimmed to the latest bar.
type timeSeriesResponse struct {
	Values []struct {
		Datetime string  `json:"datetime"`
		Close    float64 `json:"close,string"`
	} `json:"values"`
	Status string `json:"status"`
}

// Price fetches the most recent daily closing price for a ticker.
func (c *Client) Price(ctx context.Context, symbol string) (float64, error) {
	u := fmt.Sprintf(
		"%s/time_series?symbol=%s&interval=1day&outputsize=1&apikey=%s",
		c.baseURL, url.QueryEscape(symbol), c.apiKey,
	)

	c.logger.Debug().Str("symbol", symbol).Msg("Fetching daily close")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
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

	// Twelve Data reports errors inside a 200 response.
	if strings.Contains(string(body), `"status":"error"`) {
		c.logger.Error().Str("response", string(body)).Msg("Twelve Data API error")
		return 0, fmt.Errorf("Twelve Data API error: %s", string(body))
	}

	var data timeSeriesResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return 0, fmt.Errorf("parsing JSON: %w", err)
	}

	if len(data.Values) == 0 {
		c.logger.Warn().Str("symbol", symbol).Msg("No bars in response")
		return 0, fmt.Errorf("no trading data for %q in period", symbol)
	}

	price := data.Values[0].Close
	c.logger.Debug().Str("symbol", symbol).Float64("price", price).Msg("Fetched daily close")
	return price, nil
}
