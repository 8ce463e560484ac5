package models

// SitemapEntry is a single <url> element read from the remote sitemap.
// Entries are rebuilt from scratch on every run and never persisted.
type SitemapEntry struct {
	URL     string
	LastMod string
}
