package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"vemabot/types"
)

func init() {
	// Deterministic plain-text rendering regardless of the test terminal.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func completeModel(articles []types.Article) Model {
	m := NewModel("https://hook.example.com/x")
	m.State = StateComplete
	m.Articles = articles
	return m
}

func TestViewShowsCollectedArticles(t *testing.T) {
	m := completeModel([]types.Article{
		{Title: "První článek", URL: "https://www.vema.cz/a", Date: types.NewDate(2025, time.May, 1)},
		{Title: "Druhý článek", URL: "https://www.vema.cz/b", Date: types.NewDate(2025, time.April, 15)},
	})

	out := m.View()
	assert.Contains(t, out, "Found 2 articles")
	assert.Contains(t, out, "2025-05-01")
	assert.Contains(t, out, "První článek")
	assert.Contains(t, out, "2025-04-15")
	assert.Contains(t, out, "Druhý článek")
}

func TestViewTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("ž", 70)
	m := completeModel([]types.Article{
		{Title: long, URL: "https://www.vema.cz/a", Date: types.NewDate(2025, time.May, 1)},
	})

	out := m.View()
	assert.Contains(t, out, strings.Repeat("ž", 57)+"...")
	assert.NotContains(t, out, long)
}

func TestViewCapsVisibleRows(t *testing.T) {
	var articles []types.Article
	for i := 0; i < maxVisibleArticles+3; i++ {
		articles = append(articles, types.Article{
			Title: fmt.Sprintf("Článek %d", i),
			URL:   fmt.Sprintf("https://www.vema.cz/%d", i),
			Date:  types.NewDate(2025, time.May, 1),
		})
	}

	out := completeModel(articles).View()
	assert.Contains(t, out, fmt.Sprintf("Článek %d", maxVisibleArticles-1))
	assert.NotContains(t, out, fmt.Sprintf("Článek %d", maxVisibleArticles))
	assert.Contains(t, out, "... and 3 more")
}

func TestViewSendSummary(t *testing.T) {
	m := completeModel(nil)
	m.delivered = true
	m.Sent = 2
	m.Failed = 1

	out := m.View()
	assert.Contains(t, out, "Sent 2 articles")
	assert.Contains(t, out, "1 failed")

	m.Failed = 0
	assert.NotContains(t, m.View(), "failed")
}

func TestViewErrorState(t *testing.T) {
	m := NewModel("")
	m.State = StateError
	m.Err = errors.New("fetch https://www.vema.cz/cs-cz/svet-vema: connection refused")

	assert.Contains(t, m.View(), "connection refused")
}

func TestViewHelpFollowsInputFocus(t *testing.T) {
	m := NewModel("")
	assert.Contains(t, m.View(), "Press 's' to scrape & show")

	m.HookInput.Focus()
	assert.Contains(t, m.View(), "Editing webhook URL")
}
