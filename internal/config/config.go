// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Quote resolution
	RequestTimeout int    `env:"REQUEST_TIMEOUT" envDefault:"5"` // seconds
	RequestsPerSec int    `env:"REQUESTS_PER_SEC" envDefault:"5"`
	MaxRetries     int    `env:"MAX_RETRIES" envDefault:"0"`
	CryptoProvider string `env:"CRYPTO_PROVIDER" envDefault:"coingecko"` // coingecko|binance
	EquityProvider string `env:"EQUITY_PROVIDER" envDefault:"yahoo"`     // yahoo|twelvedata
	TwelveAPIKey   string `env:"TWELVE_API_KEY" envDefault:"-"`

	// Provider base URLs, overridable for self-hosted proxies and tests.
	CoinGeckoBaseURL  string `env:"COINGECKO_BASE_URL"`
	BinanceBaseURL    string `env:"BINANCE_BASE_URL"`
	YahooBaseURL      string `env:"YAHOO_BASE_URL"`
	TwelveDataBaseURL string `env:"TWELVEDATA_BASE_URL"`

	// Collaborators
	OCRServiceURL string `env:"OCR_SERVICE_URL"`
	CatalogPath   string `env:"CATALOG_PATH"`
}

// Load initializes configuration from environment variables.
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 5)
	cfg.RequestsPerSec = getEnvIntWithDefault("REQUESTS_PER_SEC", 5)
	cfg.MaxRetries = getEnvIntWithDefault("MAX_RETRIES", 0)
	cfg.CryptoProvider = getEnvWithDefault("CRYPTO_PROVIDER", "coingecko")
	cfg.EquityProvider = getEnvWithDefault("EQUITY_PROVIDER", "yahoo")
	cfg.TwelveAPIKey = os.Getenv("TWELVE_API_KEY")
	cfg.CoinGeckoBaseURL = os.Getenv("COINGECKO_BASE_URL")
	cfg.BinanceBaseURL = os.Getenv("BINANCE_BASE_URL")
	cfg.YahooBaseURL = os.Getenv("YAHOO_BASE_URL")
	cfg.TwelveDataBaseURL = os.Getenv("TWELVEDATA_BASE_URL")
	cfg.OCRServiceURL = os.Getenv("OCR_SERVICE_URL")
	cfg.CatalogPath = os.Getenv("CATALOG_PATH")

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
