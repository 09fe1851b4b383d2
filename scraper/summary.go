package scraper

import (
	"bytes"
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"vemabot/config"
)

// mainContentSelectors lists the regions scanned for a summary
// paragraph, most specific first.
const mainContentSelectors = ".blog__content, .blog__detail, article, main, .entry-content"

// metaDescriptionSelectors lists page-level description fields,
// engagement descriptions before the generic one.
var metaDescriptionSelectors = []string{
	`meta[property="og:description"]`,
	`meta[name="twitter:description"]`,
	`meta[name="description"]`,
}

// SummaryResolver produces best-effort summary text for an article.
// Every failure degrades to an empty summary; it never returns an
// error to the caller.
type SummaryResolver struct {
	fetcher *Fetcher
}

// NewSummaryResolver creates a resolver with its own article-timeout
// fetcher.
func NewSummaryResolver() *SummaryResolver {
	return &SummaryResolver{fetcher: NewFetcher(config.ArticleTimeout)}
}

// Resolve returns summary text for the article at articleURL. The
// fallback chain, first non-empty wins:
//
//  1. the listing blurb passed by the caller (no network cost)
//  2. the first substantial paragraph inside the page's main content
//  3. the readability excerpt of the page
//  4. a page-level description meta field
//
// Costs one fetch per call unless the blurb already settles it.
func (r *SummaryResolver) Resolve(ctx context.Context, articleURL, blurb string) string {
	if blurb = normalizeSpace(blurb); blurb != "" {
		return truncate(blurb, config.MaxSummaryLength)
	}

	body, err := r.fetcher.FetchBytes(ctx, articleURL)
	if err != nil {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	if p := firstParagraph(doc); p != "" {
		return truncate(p, config.MaxSummaryLength)
	}
	if e := readabilityExcerpt(body, articleURL); e != "" {
		return truncate(e, config.MaxSummaryLength)
	}
	if m := metaDescription(doc); m != "" {
		return truncate(m, config.MaxSummaryLength)
	}
	return ""
}

// firstParagraph scans the main content regions for the first
// paragraph long enough to be prose rather than boilerplate.
func firstParagraph(doc *goquery.Document) string {
	var found string
	doc.Find(mainContentSelectors).Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := normalizeSpace(s.Text())
		if len(text) >= config.MinParagraphLength {
			found = text
			return false
		}
		return true
	})
	return found
}

// readabilityExcerpt runs the readability parser over the page and
// returns its excerpt, if any.
func readabilityExcerpt(body []byte, articleURL string) string {
	u, err := url.Parse(articleURL)
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		return ""
	}
	return normalizeSpace(article.Excerpt)
}

// metaDescription returns the page description, preferring engagement
// descriptions over the generic meta tag.
func metaDescription(doc *goquery.Document) string {
	for _, sel := range metaDescriptionSelectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if text := normalizeSpace(content); text != "" {
				return text
			}
		}
	}
	return ""
}

// truncate caps s at limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
