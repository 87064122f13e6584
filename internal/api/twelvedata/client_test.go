package twelvedata

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
		assert.Equal(t, "/time_series", r.URL.Path)
		assert.Equal(t, "NVDA", r.URL.Query().Get("symbol"))
		assert.Equal(t, "1day", r.URL.Query().Get("interval"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Write([]byte(`{"meta":{"symbol":"NVDA"},"values":[{"datetime":"2026-08-26","close":"181.25"}],"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, APIKey: "test-key"})

	price, err := client.Price(context.Background(), "NVDA")
	require.NoError(t, err)
	assert.InDelta(t, 181.25, price, 1e-9)
}

func TestPrice_APIErrorInBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Twelve Data reports failures inside a 200 response.
		w.Write([]byte(`{"code":401,"message":"invalid api key","status":"error"}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, APIKey: "bad"})

	_, err := client.Price(context.Background(), "NVDA")
	assert.ErrorContains(t, err, "Twelve Data API error")
}

func TestPrice_NoBars(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values":[],"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, APIKey: "test-key"})

	_, err := client.Price(context.Background(), "NVDA")
	assert.ErrorContains(t, err, "no trading data")
}

func TestName(t *testing.T) {
	assert.Equal(t, "twelvedata", NewClient(ClientOptions{}).Name())
}
