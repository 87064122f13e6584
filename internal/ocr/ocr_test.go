package ocr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognize_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recognize", r.URL.Path)
		assert.Equal(t, "text", r.URL.Query().Get("detail"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, body)

		w.Write([]byte(`{"text":["BTC/USD","0.618 retracement","Price 0.5"]}`))
	}))
	defer server.Close()

	client := NewServiceClient(ClientOptions{BaseURL: server.URL})

	lines, err := client.Recognize(context.Background(), []byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC/USD", "0.618 retracement", "Price 0.5"}, lines)
}

func TestRecognize_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewServiceClient(ClientOptions{BaseURL: server.URL})

	_, err := client.Recognize(context.Background(), []byte("img"))
	assert.Error(t, err)
}

func TestRecognize_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewServiceClient(ClientOptions{BaseURL: server.URL})

	_, err := client.Recognize(context.Background(), []byte("img"))
	assert.ErrorContains(t, err, "parsing JSON")
}
