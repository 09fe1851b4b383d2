package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryServer(t *testing.T, html string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func TestResolveBlurbShortCircuits(t *testing.T) {
	server, requests := summaryServer(t, "<html><body><p>never fetched</p></body></html>")

	r := NewSummaryResolver()
	got := r.Resolve(context.Background(), server.URL, "  Krátký   úvod  z výpisu. ")

	assert.Equal(t, "Krátký úvod z výpisu.", got)
	assert.Equal(t, int64(0), requests.Load(), "a listing blurb must not cost a fetch")
}

func TestResolveFirstParagraph(t *testing.T) {
	html := `<html><body>
<div class="blog__content">
  <p>krátké</p>
  <p>První dostatečně dlouhý odstavec článku, který se stane souhrnem.</p>
  <p>Druhý odstavec, který už nikoho nezajímá.</p>
</div>
</body></html>`
	server, requests := summaryServer(t, html)

	r := NewSummaryResolver()
	got := r.Resolve(context.Background(), server.URL, "")

	assert.Equal(t, "První dostatečně dlouhý odstavec článku, který se stane souhrnem.", got)
	assert.Equal(t, int64(1), requests.Load())
}

func TestResolveParagraphInsideArticleElement(t *testing.T) {
	html := `<html><body>
<article><p>Odstavec uvnitř article elementu, dost dlouhý na souhrn.</p></article>
</body></html>`
	server, _ := summaryServer(t, html)

	r := NewSummaryResolver()
	got := r.Resolve(context.Background(), server.URL, "")
	assert.Equal(t, "Odstavec uvnitř article elementu, dost dlouhý na souhrn.", got)
}

func TestResolveMetaDescriptionFallback(t *testing.T) {
	html := `<html><head>
<meta name="description" content="Obyčejný popis stránky.">
<meta property="og:description" content="Poutavý popis pro sociální sítě.">
</head><body><div>žádné odstavce</div></body></html>`
	server, _ := summaryServer(t, html)

	r := NewSummaryResolver()
	got := r.Resolve(context.Background(), server.URL, "")

	// Engagement description outranks the generic one.
	assert.Equal(t, "Poutavý popis pro sociální sítě.", got)
}

func TestResolveGenericMetaDescription(t *testing.T) {
	html := `<html><head>
<meta name="description" content="Jediný dostupný popis.">
</head><body><div>nic</div></body></html>`
	server, _ := summaryServer(t, html)

	r := NewSummaryResolver()
	got := r.Resolve(context.Background(), server.URL, "")
	assert.Equal(t, "Jediný dostupný popis.", got)
}

func TestResolveFailureDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	r := NewSummaryResolver()
	assert.Equal(t, "", r.Resolve(context.Background(), server.URL, ""))

	// Unreachable host degrades the same way.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()
	assert.Equal(t, "", r.Resolve(context.Background(), dead.URL, ""))
}

func TestResolveTruncatesLongSummaries(t *testing.T) {
	long := strings.Repeat("ř", 600)
	r := NewSummaryResolver()
	got := r.Resolve(context.Background(), "http://unused.invalid", long)

	require.Equal(t, 500, len([]rune(got)))
	assert.True(t, strings.HasPrefix(long, got))
}
