package quote

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chartrisk/internal/models"
)

// Asset maps a display name to provider-specific symbols. A crypto asset can
// carry both an aggregator id and an exchange ticker, so the catalog never
// changes when the configured source does.
type Asset struct {
	Name     string            `yaml:"name"`
	Category models.Category   `yaml:"category"`
	Symbols  map[string]string `yaml:"symbols"`
}

// Symbol returns the asset's symbol for a named provider.
func (a Asset) Symbol(provider string) (string, bool) {
	s, ok := a.Symbols[provider]
	return s, ok
}

// Catalog is an immutable set of quotable assets, built once and passed into
// the resolver at construction.
type Catalog struct {
	byName map[string]Asset
	names  []string
}

// NewCatalog builds a catalog from a list of assets, preserving order for
// listing. Later duplicates of a display name win.
func NewCatalog(assets []Asset) Catalog {
	c := Catalog{byName: make(map[string]Asset, len(assets))}
	for _, a := range assets {
		if _, exists := c.byName[a.Name]; !exists {
			c.names = append(c.names, a.Name)
		}
		c.byName[a.Name] = a
	}
	return c
}

// Lookup finds an asset by display name.
func (c Catalog) Lookup(name string) (Asset, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// Names lists the catalog's display names in insertion order.
func (c Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len reports the number of assets in the catalog.
func (c Catalog) Len() int { return len(c.names) }

// LoadCatalog reads a catalog from a YAML file:
//
//	assets:
//	  - name: Bitcoin (BTC)
//	    category: crypto
//	    symbols:
//	      coingecko: bitcoin
//	      binance: BTCUSDT
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog file: %w", err)
	}

	var file struct {
		Assets []Asset `yaml:"assets"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog file: %w", err)
	}
	if len(file.Assets) == 0 {
		return Catalog{}, fmt.Errorf("catalog file %q contains no assets", path)
	}

	for _, a := range file.Assets {
		switch a.Category {
		case models.CategoryCrypto, models.CategoryEquity, models.CategoryCommodity:
		default:
			return Catalog{}, fmt.Errorf("asset %q: unknown category %q", a.Name, a.Category)
		}
		if len(a.Symbols) == 0 {
			return Catalog{}, fmt.Errorf("asset %q: no provider symbols", a.Name)
		}
	}

	return NewCatalog(file.Assets), nil
}

func crypto(name, coinID, ticker string) Asset {
	return Asset{
		Name:     name,
		Category: models.CategoryCrypto,
		Symbols:  map[string]string{"coingecko": coinID, "binance": ticker},
	}
}

func listed(name string, category models.Category, ticker string) Asset {
	return Asset{
		Name:     name,
		Category: category,
		Symbols:  map[string]string{"yahoo": ticker, "twelvedata": ticker},
	}
}

// DefaultCatalog returns the built-in asset set, used when no catalog file is
// configured.
func DefaultCatalog() Catalog {
	return NewCatalog([]Asset{
		crypto("Bitcoin (BTC)", "bitcoin", "BTCUSDT"),
		crypto("Ethereum (ETH)", "ethereum", "ETHUSDT"),
		crypto("XRP", "ripple", "XRPUSDT"),
		crypto("Solana (SOL)", "solana", "SOLUSDT"),
		crypto("Cardano (ADA)", "cardano", "ADAUSDT"),
		crypto("Chainlink (LINK)", "chainlink", "LINKUSDT"),
		crypto("Curve (CRV)", "curve-dao-token", "CRVUSDT"),
		crypto("Convex (CVX)", "convex-finance", "CVXUSDT"),
		crypto("Sui (SUI)", "sui", "SUIUSDT"),
		crypto("Fartcoin", "fartcoin", "FARTCOINUSDT"),
		crypto("Ondo (ONDO)", "ondo-finance", "ONDOUSDT"),
		listed("Tesla (TSLA)", models.CategoryEquity, "TSLA"),
		listed("NVIDIA (NVDA)", models.CategoryEquity, "NVDA"),
		listed("Gold (XAU)", models.CategoryCommodity, "GLD"),
	})
}
