package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"vemabot/config"
	"vemabot/scraper"
	"vemabot/webhook"
)

// newScraper builds a traversal that reports per-page progress into ch.
func newScraper(ch chan scraper.ProgressEvent) (*scraper.Scraper, error) {
	return scraper.New(scraper.Options{
		Progress: func(ev scraper.ProgressEvent) { ch <- ev },
	})
}

// startScrape runs a full traversal and reports the collected records.
func startScrape(ch chan scraper.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		defer close(ch)
		s, err := newScraper(ch)
		if err != nil {
			return ScrapeCompleteMsg{Err: err}
		}
		articles, err := s.ScrapeAll(context.Background())
		return ScrapeCompleteMsg{Articles: articles, Err: err}
	}
}

// startScrapeAndSend runs one traversal, then delivers the records
// per-record to hookURL. The same slice is used for delivery and for
// the reported counts.
func startScrapeAndSend(ch chan scraper.ProgressEvent, hookURL string) tea.Cmd {
	return func() tea.Msg {
		defer close(ch)
		s, err := newScraper(ch)
		if err != nil {
			return SendCompleteMsg{Err: err}
		}
		articles, err := s.ScrapeAll(context.Background())
		if err != nil {
			return SendCompleteMsg{Err: err}
		}
		sender := webhook.NewSender(hookURL, config.ArticleTimeout)
		sent, failed := sender.SendEach(context.Background(), articles)
		return SendCompleteMsg{Articles: articles, Sent: sent, Failed: failed}
	}
}

// waitForProgress relays the next per-page event from the traversal.
func waitForProgress(ch chan scraper.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return progressDoneMsg{}
		}
		return ProgressMsg{Event: ev}
	}
}
