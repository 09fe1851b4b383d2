package config

import (
	"os"
	"time"

	"vemabot/types"
)

// Scrape Target Constants
const (
	// BaseURL is the blog origin; relative hrefs resolve against it
	BaseURL = "https://www.vema.cz"

	// ListingPath is the landing page with article tiles
	ListingPath = "/cs-cz/svet-vema"

	// TileSelector matches one article preview on a listing page
	TileSelector = "div.blog__item"

	// LinkSelector matches the headline link inside a tile
	LinkSelector = "a.blog__link"

	// TitleSelector matches the headline text inside a tile
	TitleSelector = ".blog__title"

	// DateSelector matches the list entry holding "16. 5. 2025"
	DateSelector = ".blog__info ul li:nth-of-type(2)"

	// BlurbSelector matches the optional lead text inside a tile
	BlurbSelector = ".blog__perex"
)

// Pagination Constants
const (
	// PageParam is the query parameter for pages beyond the first
	PageParam = "p"

	// MaxPages is a defensive ceiling on pagination, not a correctness
	// requirement
	MaxPages = 50
)

// HTTP Constants
const (
	// PageTimeout bounds every listing page request
	PageTimeout = 20 * time.Second

	// ArticleTimeout bounds summary and webhook requests
	ArticleTimeout = 10 * time.Second

	// UserAgent identifies the scraper politely to the site
	UserAgent = "Mozilla/5.0 (compatible; VemaScraper/1.0; +https://github.com/)"
)

// Summary Constants
const (
	// MinParagraphLength filters out boilerplate snippets when scanning
	// article pages for a summary paragraph
	MinParagraphLength = 20

	// MaxSummaryLength caps summary text in runes
	MaxSummaryLength = 500
)

// Cutoff is the earliest accepted publication date; older articles are
// discarded and stop the pagination walk.
var Cutoff = types.NewDate(2024, time.January, 1)

// WebhookEnvVar names the environment variable holding the default
// delivery destination.
const WebhookEnvVar = "WEBHOOK_URL"

// DefaultWebhookURL returns the env-sourced delivery destination, which
// may be empty when unconfigured.
func DefaultWebhookURL() string {
	return os.Getenv(WebhookEnvVar)
}
