package sitemap

import (
	"encoding/xml"
	"strings"

	"breachwatch/internal/common"
	"breachwatch/internal/config"
	"breachwatch/internal/models"

	"github.com/rs/zerolog"
)

// urlSet represents the standard sitemap structure
type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	URLs    []urlEntry `xml:"url"`
}

// urlEntry represents a single URL entry in XML
type urlEntry struct {
	Location string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
}

// Parser turns raw sitemap XML into SitemapEntry records, keeping only
// entries under the configured path prefix. The prefix match is
// case-sensitive and performs no normalization.
type Parser struct {
	prefix string
	logger zerolog.Logger
}

// NewParser creates a new Parser instance
func NewParser(cfg *config.SitemapConfig, logger zerolog.Logger) *Parser {
	return &Parser{
		prefix: cfg.PathPrefix,
		logger: logger.With().Str("component", "SitemapParser").Logger(),
	}
}

// Parse decodes the sitemap document and returns matching entries in
// document order. Entries with a missing or empty <loc> are skipped. A
// document that is not a well-formed <urlset> is a ParseError; there is no
// partial recovery.
func (p *Parser) Parse(data []byte) ([]models.SitemapEntry, error) {
	var set urlSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, common.NewParseError("failed to decode sitemap XML", err)
	}

	entries := make([]models.SitemapEntry, 0, len(set.URLs))
	skipped := 0
	for _, u := range set.URLs {
		loc := strings.TrimSpace(u.Location)
		if loc == "" {
			skipped++
			continue
		}
		if !strings.HasPrefix(loc, p.prefix) {
			continue
		}
		entries = append(entries, models.SitemapEntry{
			URL:     loc,
			LastMod: strings.TrimSpace(u.LastMod),
		})
	}

	p.logger.Debug().
		Int("total_urls", len(set.URLs)).
		Int("matched", len(entries)).
		Int("skipped_empty_loc", skipped).
		Msg("Sitemap parsed")

	return entries, nil
}
