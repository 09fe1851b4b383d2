package scraper

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"vemabot/config"
	"vemabot/types"
)

// ProgressEvent describes one processed listing page.
type ProgressEvent struct {
	Page  int // 1-based page number
	Found int // records surviving from this page
	Total int // records accumulated so far
}

// ProgressFunc receives per-page progress during a walk. Passed in
// explicitly by the caller; the scraper holds no ambient UI state.
type ProgressFunc func(ProgressEvent)

// Options configures a Scraper. Zero values fall back to the compiled
// defaults in config.
type Options struct {
	BaseURL     string
	ListingPath string
	Cutoff      types.Date
	MaxPages    int
	Progress    ProgressFunc
}

// Scraper walks the paginated blog listing and accumulates article
// records. One Scraper owns one traversal at a time; it keeps no state
// between runs.
type Scraper struct {
	base      *url.URL
	listing   string
	cutoff    types.Date
	maxPages  int
	progress  ProgressFunc
	fetcher   *Fetcher
	summaries *SummaryResolver
}

// New creates a Scraper from opts.
func New(opts Options) (*Scraper, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = config.BaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	listing := opts.ListingPath
	if listing == "" {
		listing = config.ListingPath
	}
	cutoff := opts.Cutoff
	if cutoff.IsZero() {
		cutoff = config.Cutoff
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = config.MaxPages
	}

	return &Scraper{
		base:      base,
		listing:   listing,
		cutoff:    cutoff,
		maxPages:  maxPages,
		progress:  opts.Progress,
		fetcher:   NewFetcher(config.PageTimeout),
		summaries: NewSummaryResolver(),
	}, nil
}

// pageURL addresses one listing page: page 1 is the bare listing path,
// later pages append the page-number query parameter.
func (s *Scraper) pageURL(page int) string {
	u := *s.base
	u.Path = s.listing
	if page > 1 {
		q := u.Query()
		q.Set(config.PageParam, fmt.Sprintf("%d", page))
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// ScrapeAll walks the listing from page 1 and returns every record on
// or after the cutoff, in listing order. The walk stops at the first
// page that yields zero tiles, at the first page whose oldest parsed
// date precedes the cutoff (the listing is date-descending, so later
// pages are older still), or at the defensive page ceiling. A transport
// failure aborts the whole run with a FetchError; there is no retry and
// no partial result.
func (s *Scraper) ScrapeAll(ctx context.Context) ([]types.Article, error) {
	var results []types.Article

	for page := 1; page <= s.maxPages; page++ {
		doc, err := s.fetcher.FetchDocument(ctx, s.pageURL(page))
		if err != nil {
			return nil, err
		}

		tiles := doc.Find(config.TileSelector)
		if tiles.Length() == 0 {
			break
		}

		var (
			found   int
			oldest  types.Date
			sawDate bool
		)
		tiles.Each(func(_ int, tile *goquery.Selection) {
			article, date, dated := parseTile(tile, s.base, s.cutoff)
			if dated {
				if !sawDate || date.Before(oldest) {
					oldest = date
					sawDate = true
				}
			}
			if article == nil {
				return
			}
			article.Summary = s.summaries.Resolve(ctx, article.URL, article.Summary)
			results = append(results, *article)
			found++
		})

		if s.progress != nil {
			s.progress(ProgressEvent{Page: page, Found: found, Total: len(results)})
		}

		// No parseable date on a non-empty page means the template has
		// shifted under us; stop rather than walk junk to the ceiling.
		if !sawDate || oldest.Before(s.cutoff) {
			break
		}
	}

	return results, nil
}
