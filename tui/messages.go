package tui

import (
	"vemabot/scraper"
	"vemabot/types"
)

// ScrapeCompleteMsg is sent when a scrape-and-show traversal finishes.
type ScrapeCompleteMsg struct {
	Articles []types.Article
	Err      error
}

// SendCompleteMsg is sent when a scrape-and-send run finishes.
type SendCompleteMsg struct {
	Articles []types.Article
	Sent     int
	Failed   int
	Err      error
}

// ProgressMsg carries one per-page progress event.
type ProgressMsg struct {
	Event scraper.ProgressEvent
}

// progressDoneMsg signals that the progress channel has drained.
type progressDoneMsg struct{}
