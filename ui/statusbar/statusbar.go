// Package statusbar provides the bottom status bar model for the remise TUI.
// It renders the loaded/total row counts for the active dataset, the feed
// fetch state, and the last error if any.
package statusbar

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/officine/remise-tui/style"
)

// Model is the status bar state. Drive it via setter methods; it has no
// Update loop.
type Model struct {
	dataset  string
	loaded   int
	total    int
	totalSet bool
	state    string
	errText  string
	hint     string
}

// New returns a zero-value Model.
func New() Model {
	return Model{}
}

// SetDataset stores the active dataset name shown on the left.
func (m *Model) SetDataset(name string) {
	m.dataset = name
}

// SetCounts updates the loaded row count and, when known, the server total.
func (m *Model) SetCounts(loaded, total int, totalKnown bool) {
	m.loaded = loaded
	m.total = total
	m.totalSet = totalKnown
}

// SetState stores a short fetch-state label ("loading", "fetching more", "").
func (m *Model) SetState(state string) {
	m.state = state
}

// SetError stores the last fetch error text; empty clears it.
func (m *Model) SetError(text string) {
	m.errText = text
}

// SetHint stores the key hint shown on the right.
func (m *Model) SetHint(hint string) {
	m.hint = hint
}

// View renders the status bar as a single line padded to width.
func (m Model) View(width int) string {
	var parts []string
	if m.dataset != "" {
		parts = append(parts, style.StatusBar.Render(m.dataset))
	}
	parts = append(parts, style.StatusCount.Render(m.countLabel()))
	if m.state != "" {
		parts = append(parts, style.StatusState.Render(m.state))
	}
	if m.errText != "" {
		parts = append(parts, style.StatusError.Render("✘ "+m.errText))
	}
	line := strings.Join(parts, style.HeaderSeparator.Render(" │ "))

	if m.hint != "" {
		hint := style.Hint.Render(m.hint)
		pad := width - lipgloss.Width(line) - lipgloss.Width(hint) - 1
		if pad > 0 {
			line += strings.Repeat(" ", pad) + hint
		}
	}
	return line
}

// countLabel builds "142 / 1 250 rows" or "142 rows" while the total is
// still unknown.
func (m Model) countLabel() string {
	if m.totalSet {
		return fmt.Sprintf("%d / %d rows", m.loaded, m.total)
	}
	return fmt.Sprintf("%d rows", m.loaded)
}
