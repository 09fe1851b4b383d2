package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"vemabot/scraper"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case ProgressMsg:
		return m.handleProgress(msg)
	case progressDoneMsg:
		return m, nil
	case ScrapeCompleteMsg:
		return m.handleScrapeComplete(msg)
	case SendCompleteMsg:
		return m.handleSendComplete(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input. While the webhook input is
// focused, keys go to the input; esc blurs it first.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if !m.HookInput.Focused() || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case "esc":
		m.HookInput.Blur()
		return m, nil
	case "tab":
		if m.HookInput.Focused() {
			m.HookInput.Blur()
		} else {
			m.HookInput.Focus()
		}
		return m, nil
	}

	if m.HookInput.Focused() {
		var cmd tea.Cmd
		m.HookInput, cmd = m.HookInput.Update(msg)
		return m, cmd
	}

	if m.State == StateScraping || m.State == StateSending {
		return m, nil
	}

	switch msg.String() {
	case "s", "S":
		m.State = StateScraping
		m.delivered = false
		m.Articles = nil
		m.Err = nil
		m = m.AddLog("Scraping blog listing...")
		m.progress = make(chan scraper.ProgressEvent)
		return m, tea.Batch(startScrape(m.progress), waitForProgress(m.progress))
	case "w", "W":
		hook := m.HookInput.Value()
		if hook == "" {
			m = m.AddLog("No webhook URL configured")
			return m, nil
		}
		m.State = StateSending
		m.delivered = true
		m.Articles = nil
		m.Err = nil
		m = m.AddLog("Scraping, then sending to webhook...")
		m.progress = make(chan scraper.ProgressEvent)
		return m, tea.Batch(startScrapeAndSend(m.progress, hook), waitForProgress(m.progress))
	}
	return m, nil
}

// handleProgress logs one processed page and keeps listening.
func (m Model) handleProgress(msg ProgressMsg) (tea.Model, tea.Cmd) {
	ev := msg.Event
	m = m.AddLog(fmt.Sprintf("Page %d: %d articles (%d total)", ev.Page, ev.Found, ev.Total))
	return m, waitForProgress(m.progress)
}

// handleScrapeComplete processes the end of a scrape-and-show run.
func (m Model) handleScrapeComplete(msg ScrapeCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Articles = msg.Articles
	m.State = StateComplete
	m = m.AddLog(fmt.Sprintf("Found %d articles", len(msg.Articles)))
	return m, nil
}

// handleSendComplete processes the end of a scrape-and-send run.
func (m Model) handleSendComplete(msg SendCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Articles = msg.Articles
	m.Sent = msg.Sent
	m.Failed = msg.Failed
	m.State = StateComplete
	m = m.AddLog(fmt.Sprintf("Sent %d articles, %d failed", msg.Sent, msg.Failed))
	return m, nil
}
