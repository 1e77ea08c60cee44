package unsplash_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"naijawalls/internal/imagegen/unsplash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hc = &http.Client{Timeout: time.Second}

func TestClient_Random(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photos/random", r.URL.Path)
		assert.Equal(t, "talking drum", r.URL.Query().Get("query"))
		assert.Equal(t, "squarish", r.URL.Query().Get("orientation"))
		assert.Equal(t, "Client-ID demo-key", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"urls":{"regular":"https://images.example.com/raw?ixid=abc"}}`))
	}))
	defer server.Close()

	c := &unsplash.Client{BaseURL: server.URL, AccessKey: "demo-key", HC: hc}

	url, err := c.Random(context.Background(), "talking drum")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/raw?ixid=abc&w=1024&h=1024&fit=crop&q=80", url)
}

func TestClient_Random_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := &unsplash.Client{BaseURL: server.URL, AccessKey: "", HC: hc}

	_, err := c.Random(context.Background(), "talking drum")
	assert.Error(t, err)
}

func TestClient_Random_EmptyURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"urls":{}}`))
	}))
	defer server.Close()

	c := &unsplash.Client{BaseURL: server.URL, AccessKey: "demo-key", HC: hc}

	_, err := c.Random(context.Background(), "talking drum")
	assert.Error(t, err)
}
