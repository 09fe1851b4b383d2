package scraper

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vemabot/config"
	"vemabot/types"
)

// styleImageRe pulls the target out of a CSS url(...) token, quoted or
// bare.
var styleImageRe = regexp.MustCompile(`url\(\s*['"]?([^'")]+?)['"]?\s*\)`)

// parseTile extracts an article candidate from one listing tile.
//
// A nil article is the common case, not an error: the tile was
// malformed (missing link, title, or date) or its date precedes the
// cutoff. The parsed date is returned separately whenever it could be
// read at all, so the walker can see dates of discarded tiles when
// deciding whether to stop.
func parseTile(tile *goquery.Selection, base *url.URL, cutoff types.Date) (*types.Article, types.Date, bool) {
	href, ok := tile.Find(config.LinkSelector).First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return nil, types.Date{}, false
	}
	link := resolveURL(base, href)
	if link == "" {
		return nil, types.Date{}, false
	}

	title := normalizeSpace(tile.Find(config.TitleSelector).First().Text())
	if title == "" {
		return nil, types.Date{}, false
	}

	dateText := strings.TrimSpace(tile.Find(config.DateSelector).First().Text())
	if dateText == "" {
		return nil, types.Date{}, false
	}
	date, err := ParseDate(dateText)
	if err != nil {
		return nil, types.Date{}, false
	}
	if date.Before(cutoff) {
		return nil, date, true
	}

	article := &types.Article{
		Title:   title,
		URL:     link,
		Image:   extractImage(tile, base),
		Date:    date,
		Summary: normalizeSpace(tile.Find(config.BlurbSelector).First().Text()),
	}
	return article, date, true
}

// extractImage finds the decorative tile image. Listing tiles usually
// carry it as a background-image style token; a plain img tag is the
// fallback. Returns "" when neither is present.
func extractImage(tile *goquery.Selection, base *url.URL) string {
	var raw string
	if style, ok := tile.Attr("style"); ok {
		if m := styleImageRe.FindStringSubmatch(style); m != nil {
			raw = m[1]
		}
	}
	if raw == "" {
		tile.Find("[style]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			style, _ := s.Attr("style")
			if m := styleImageRe.FindStringSubmatch(style); m != nil {
				raw = m[1]
				return false
			}
			return true
		})
	}
	if raw == "" {
		if src, ok := tile.Find("img").First().Attr("src"); ok {
			raw = src
		}
	}
	if raw == "" {
		return ""
	}
	return resolveURL(base, raw)
}

// resolveURL makes href absolute against base. Targets that already
// carry a scheme or host pass through untouched, so absolute style
// tokens never get double-prefixed.
func resolveURL(base *url.URL, href string) string {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if u.Scheme != "" || u.Host != "" {
		return u.String()
	}
	if base == nil {
		return u.String()
	}
	return base.ResolveReference(u).String()
}

// normalizeSpace collapses runs of whitespace into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
