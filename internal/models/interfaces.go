package models

import "context"

// QuoteSource fetches the current price for a provider-specific symbol.
type QuoteSource interface {
	Price(ctx context.Context, symbol string) (float64, error)
	Name() string
}

// Recognizer turns a chart image into the ordered text fragments found on it.
// The engine behind it is a black box; output is treated as noisy input.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) ([]string, error)
}
