package yahoo

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
		assert.Equal(t, "/v8/finance/chart/TSLA", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Write([]byte(`{"chart":{"result":[{"timestamp":[1719700000,1719786400],
			"indicators":{"quote":[{"close":[248.5,251.25]}]}}]}}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	price, err := client.Price(context.Background(), "TSLA")
	require.NoError(t, err)
	assert.InDelta(t, 251.25, price, 1e-9)
}

func TestPrice_SkipsNullBars(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[{"timestamp":[1,2,3],
			"indicators":{"quote":[{"close":[248.5,null,null]}]}}]}}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	price, err := client.Price(context.Background(), "GLD")
	require.NoError(t, err)
	assert.InDelta(t, 248.5, price, 1e-9)
}

func TestPrice_NoTradingData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty result", `{"chart":{"result":[]}}`},
		{"all closes null", `{"chart":{"result":[{"timestamp":[1],"indicators":{"quote":[{"close":[null]}]}}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(ClientOptions{BaseURL: server.URL})

			_, err := client.Price(context.Background(), "XXXX")
			assert.ErrorContains(t, err, "no trading data")
		})
	}
}

func TestPrice_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})

	_, err := client.Price(context.Background(), "DELISTED")
	assert.ErrorContains(t, err, "delisted")
}

func TestName(t *testing.T) {
	assert.Equal(t, "yahoo", NewClient(ClientOptions{}).Name())
}
