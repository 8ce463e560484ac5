package sitemap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"breachwatch/internal/common"
	"breachwatch/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_Success(t *testing.T) {
	body := `<?xml version="1.0"?><urlset></urlset>`
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	cfg := config.NewDefaultSitemapConfig()
	fetcher := NewFetcher(&cfg, zerolog.Nop())

	data, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
	assert.Equal(t, cfg.UserAgent, gotUserAgent)
}

func TestFetcher_Fetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := config.NewDefaultSitemapConfig()
	fetcher := NewFetcher(&cfg, zerolog.Nop())

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var httpErr *common.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestFetcher_Fetch_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	cfg := config.NewDefaultSitemapConfig()
	fetcher := NewFetcher(&cfg, zerolog.Nop())

	_, err := fetcher.Fetch(context.Background(), url)
	require.Error(t, err)

	var netErr *common.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestFetcher_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	cfg := config.NewDefaultSitemapConfig()
	fetcher := NewFetcher(&cfg, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.Fetch(ctx, server.URL)
	require.Error(t, err)
}
