package sitemap

import (
	"context"
	"io"
	"net/http"
	"time"

	"breachwatch/internal/common"
	"breachwatch/internal/config"

	"github.com/rs/zerolog"
)

// Fetcher issues the single sitemap GET. Any transport failure or non-2xx
// status is fatal for the run; there are no retries.
type Fetcher struct {
	client    *http.Client
	userAgent string
	logger    zerolog.Logger
}

// NewFetcher creates a new Fetcher instance
func NewFetcher(cfg *config.SitemapConfig, logger zerolog.Logger) *Fetcher {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if cfg.TimeoutSecs <= 0 {
		timeout = time.Duration(config.DefaultSitemapTimeoutSecs) * time.Second
	}

	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: cfg.UserAgent,
		logger:    logger.With().Str("component", "SitemapFetcher").Logger(),
	}
}

// Fetch performs one HTTP GET against the sitemap URL and returns the raw
// response body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, common.NewNetworkError(url, "failed to build request", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error().Err(err).Str("url", url).Msg("Sitemap request failed")
		return nil, common.NewNetworkError(url, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.logger.Error().Int("status", resp.StatusCode).Str("url", url).Msg("Sitemap returned non-success status")
		return nil, common.NewHTTPErrorWithURL(resp.StatusCode, "unexpected status fetching sitemap", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewNetworkError(url, "failed to read response body", err)
	}

	f.logger.Debug().Str("url", url).Int("bytes", len(data)).Msg("Sitemap fetched")
	return data, nil
}
