// Package tui is the interactive control surface: scrape-and-show or
// scrape-and-send, driven by single keypresses.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vemabot/scraper"
	"vemabot/types"
)

// State represents the application state machine
type State string

const (
	StateIdle     State = "idle"
	StateScraping State = "scraping"
	StateSending  State = "sending"
	StateComplete State = "complete"
	StateError    State = "error"
)

// maxVisibleArticles bounds the result table so long runs stay on
// screen.
const maxVisibleArticles = 15

// Model represents the TUI state. All scrape progress arrives as
// messages; the model owns no ambient globals.
type Model struct {
	HookInput textinput.Model

	State    State
	Articles []types.Article
	Sent     int
	Failed   int
	Logs     []string
	Err      error

	// progress carries per-page events from the running traversal
	progress chan scraper.ProgressEvent

	// delivered is true when the finished run was a send, not a show
	delivered bool
}

// NewModel creates a TUI model with the webhook input pre-filled from
// defaultHook.
func NewModel(defaultHook string) Model {
	input := textinput.New()
	input.Placeholder = "https://hook.make.com/..."
	input.Prompt = "Webhook URL: "
	input.SetValue(defaultHook)
	input.CharLimit = 512
	input.Width = 60

	return Model{
		HookInput: input,
		State:     StateIdle,
		Logs:      make([]string, 0),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// AddLog appends a log line, keeping only the most recent entries.
func (m Model) AddLog(line string) Model {
	m.Logs = append(m.Logs, line)
	if len(m.Logs) > 8 {
		m.Logs = m.Logs[len(m.Logs)-8:]
	}
	return m
}
