// Package quote resolves catalog assets to live market prices through
// pluggable per-category sources.
package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chartrisk/internal/models"
)

// DefaultTimeout bounds a single quote resolution.
const DefaultTimeout = 5 * time.Second

// Resolver dispatches quote requests to the source registered for the
// asset's category. It holds no mutable state; catalog and sources are fixed
// at construction.
type Resolver struct {
	catalog Catalog
	sources map[models.Category]models.QuoteSource
	timeout time.Duration
	logger  zerolog.Logger
}

// NewResolver creates a resolver over an immutable catalog and one source
// per category. A zero timeout falls back to DefaultTimeout.
func NewResolver(catalog Catalog, sources map[models.Category]models.QuoteSource, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{
		catalog: catalog,
		sources: sources,
		timeout: timeout,
		logger:  log.With().Str("component", "quote_resolver").Logger(),
	}
}

// Catalog exposes the resolver's asset catalog for listing.
func (r *Resolver) Catalog() Catalog { return r.catalog }

// Resolve looks up the asset and fetches its price with exactly one provider
// call, bounded by the resolver timeout. It always returns a usable quote:
// failures populate Error instead of escaping as raw errors or panics.
func (r *Resolver) Resolve(ctx context.Context, assetName string) models.AssetQuote {
	q := models.AssetQuote{Asset: assetName}

	asset, ok := r.catalog.Lookup(assetName)
	if !ok {
		q.Error = fmt.Sprintf("unknown asset %q", assetName)
		return q
	}
	q.Category = asset.Category

	source, ok := r.sources[asset.Category]
	if !ok {
		q.Error = fmt.Sprintf("no quote source for category %q", asset.Category)
		return q
	}

	symbol, ok := asset.Symbol(source.Name())
	if !ok {
		q.Error = fmt.Sprintf("asset %q has no %s symbol", assetName, source.Name())
		return q
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	price, err := source.Price(ctx, symbol)
	if err != nil {
		r.logger.Warn().Err(err).
			Str("asset", assetName).
			Str("source", source.Name()).
			Msg("Quote fetch failed")
		q.Error = err.Error()
		return q
	}
	if price <= 0 {
		q.Error = fmt.Sprintf("source %s returned non-positive price %v", source.Name(), price)
		return q
	}

	q.Price = &price
	return q
}
