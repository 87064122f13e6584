// Package ocr is the boundary to the external text-recognition engine. The
// engine itself is a black box reached over HTTP; the core only consumes its
// ordered text output.
package ocr

import (
	"bytes"
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

// ServiceClient implements models.Recognizer against an OCR sidecar service
// that accepts a raw image and answers with the recognized text fragments.
type ServiceClient struct {
	baseURL    string
	httpClient *platform.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new ServiceClient.
type ClientOptions struct {
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	MaxRetries     uint64
}

// NewServiceClient creates a client for the OCR sidecar.
func NewServiceClient(opts ClientOptions) *ServiceClient {
	return &ServiceClient{
		baseURL: opts.BaseURL,
		httpClient: platform.NewClient(platform.ClientOptions{
			Timeout:        opts.RequestTimeout,
			RequestsPerSec: opts.RequestsPerSec,
			MaxRetries:     opts.MaxRetries,
		}),
		logger: log.With().Str("component", "ocr_client").Logger(),
	}
}

// recognizeResponse carries the ordered text fragments found on the image.
type recognizeResponse struct {
	Text []string `json:"text"`
}

// Recognize posts the image and returns the recognized strings in reading
// order. Output is treated as noisy; no parsing happens here.
func (c *ServiceClient) Recognize(ctx context.Context, image []byte) ([]string, error) {
	url := fmt.Sprintf("%s/recognize?detail=text", c.baseURL)

	c.logger.Debug().Int("image_bytes", len(image)).Msg("Submitting image for recognition")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var data recognizeResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	c.logger.Debug().Int("fragments", len(data.Text)).Msg("Recognition complete")
	return data.Text, nil
}
