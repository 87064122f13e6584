package coingecko

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
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"usd":64250.51}}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	price, err := client.Price(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.InDelta(t, 64250.51, price, 1e-9)
}

func TestPrice_UnknownID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CoinGecko answers 200 with an empty object for unknown ids.
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	_, err := client.Price(context.Background(), "not-a-coin")
	assert.ErrorContains(t, err, "no usd price")
}

func TestPrice_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	_, err := client.Price(context.Background(), "bitcoin")
	assert.ErrorContains(t, err, "parsing JSON")
}

func TestPrice_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	_, err := client.Price(context.Background(), "bitcoin")
	assert.ErrorContains(t, err, "429")
}

func TestName(t *testing.T) {
	assert.Equal(t, "coingecko", NewClient(ClientOptions{}).Name())
}
