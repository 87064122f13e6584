package binance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/ticker/price", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))

		w.Write([]byte(`{"symbol":"BTCUSDT","price":"64250.51000000"}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	price, err := client.Price(context.Background(), "BTCUSDT")
	require.NoError(t, err)
	assert.InDelta(t, 64250.51, price, 1e-9)
}

func TestPrice_UnparsablePrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbol":"BTCUSDT","price":"not-a-number"}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	_, err := client.Price(context.Background(), "BTCUSDT")
	assert.ErrorContains(t, err, "parsing price")
}

func TestPrice_UnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Binance answers 400 for unknown symbols.
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	_, err := client.Price(context.Background(), "NOPEUSDT")
	assert.ErrorContains(t, err, "400")
}

func TestName(t *testing.T) {
	assert.Equal(t, "binance", NewClient(ClientOptions{}).Name())
}
