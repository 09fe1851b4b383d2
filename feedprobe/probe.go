// Package feedprobe is a diagnostic for feed discovery: it checks
// whether the blog advertises an RSS/Atom feed that could replace HTML
// scraping, and reports what each advertised feed actually serves.
package feedprobe

import (
	"context"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"vemabot/config"
	"vemabot/scraper"
)

// Result is the diagnostic outcome for one advertised feed.
type Result struct {
	FeedURL   string    `json:"feed_url"`
	Title     string    `json:"title,omitempty"`
	ItemCount int       `json:"item_count"`
	Latest    time.Time `json:"latest,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// feedLinkSelector matches advertised feed links in the page head.
const feedLinkSelector = `link[rel="alternate"][type="application/rss+xml"], link[rel="alternate"][type="application/atom+xml"]`

// DiscoverFeeds fetches pageURL and returns the absolute URLs of every
// feed it advertises.
func DiscoverFeeds(ctx context.Context, pageURL string) ([]string, error) {
	fetcher := scraper.NewFetcher(config.PageTimeout)
	doc, err := fetcher.FetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}

	var feeds []string
	doc.Find(feedLinkSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		u, err := url.Parse(href)
		if err != nil {
			return
		}
		feeds = append(feeds, base.ResolveReference(u).String())
	})
	return feeds, nil
}

// Probe parses one feed and summarizes what it serves. Parse failures
// land in Result.Error rather than aborting the diagnostic.
func Probe(ctx context.Context, feedURL string) Result {
	result := Result{FeedURL: feedURL}

	parser := gofeed.NewParser()
	parser.UserAgent = config.UserAgent

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Title = feed.Title
	result.ItemCount = len(feed.Items)
	for _, item := range feed.Items {
		when := item.PublishedParsed
		if when == nil {
			when = item.UpdatedParsed
		}
		if when != nil && when.After(result.Latest) {
			result.Latest = *when
		}
	}
	return result
}

// ProbeAll discovers and probes every feed advertised by pageURL.
func ProbeAll(ctx context.Context, pageURL string) ([]Result, error) {
	feeds, err := DiscoverFeeds(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(feeds))
	for _, feedURL := range feeds {
		results = append(results, Probe(ctx, feedURL))
	}
	return results, nil
}
