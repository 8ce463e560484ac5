package config

// SitemapConfig defines configuration for fetching and filtering the sitemap
type SitemapConfig struct {
	SitemapURL  string `json:"sitemap_url,omitempty" yaml:"sitemap_url,omitempty" validate:"required,url"`
	PathPrefix  string `json:"path_prefix,omitempty" yaml:"path_prefix,omitempty" validate:"required,url"`
	UserAgent   string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	TimeoutSecs int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultSitemapConfig creates default sitemap configuration
func NewDefaultSitemapConfig() SitemapConfig {
	return SitemapConfig{
		SitemapURL:  DefaultSitemapURL,
		PathPrefix:  DefaultPathPrefix,
		UserAgent:   DefaultSitemapUserAgent,
		TimeoutSecs: DefaultSitemapTimeoutSecs,
	}
}
