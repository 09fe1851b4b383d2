package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("📰 Vema Blog → Webhook"))
	b.WriteString("\n\n")

	// Webhook destination
	b.WriteString(m.HookInput.View())
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Results
	if m.State == StateComplete && len(m.Articles) > 0 {
		b.WriteString(resultBoxStyle.Render(m.formatArticles()))
		b.WriteString("\n\n")
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(chromeStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, line := range m.Logs {
			b.WriteString(chromeStyle.Render("   " + line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Help text
	if m.HookInput.Focused() {
		b.WriteString(chromeStyle.Render("Editing webhook URL | tab/esc to leave the field"))
	} else {
		b.WriteString(chromeStyle.Render("Press 's' to scrape & show | 'w' to scrape & send | tab to edit webhook | 'q' to quit"))
	}

	return b.String()
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateIdle:
		return bannerStyle.Render("👋 Ready to scrape!")
	case StateScraping:
		return workingStyle.Render("⏳ Scraping blog listing...")
	case StateSending:
		return workingStyle.Render("📤 Scraping and sending to webhook...")
	case StateComplete:
		if m.delivered {
			summary := bannerStyle.Render(fmt.Sprintf("✅ Sent %d articles", m.Sent))
			if m.Failed > 0 {
				summary += "  " + failStyle.Render(fmt.Sprintf("❌ %d failed", m.Failed))
			}
			return summary
		}
		return bannerStyle.Render(fmt.Sprintf("✅ Found %d articles", len(m.Articles)))
	case StateError:
		return failStyle.Render(fmt.Sprintf("❌ Error: %v", m.Err))
	default:
		return ""
	}
}

// formatArticles renders the collected records as a compact table.
func (m Model) formatArticles() string {
	var b strings.Builder

	b.WriteString(bannerStyle.Render("Collected Articles"))
	b.WriteString("\n\n")

	shown := m.Articles
	if len(shown) > maxVisibleArticles {
		shown = shown[:maxVisibleArticles]
	}
	for _, a := range shown {
		title := a.Title
		if r := []rune(title); len(r) > 60 {
			title = string(r[:57]) + "..."
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", dateStyle.Render(a.Date.String()), title))
	}
	if hidden := len(m.Articles) - len(shown); hidden > 0 {
		b.WriteString(chromeStyle.Render(fmt.Sprintf("... and %d more", hidden)))
		b.WriteString("\n")
	}

	return b.String()
}
