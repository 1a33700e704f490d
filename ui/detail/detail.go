// Package detail renders a bordered overlay with the full field breakdown of
// one selected row, formatted as markdown.
package detail

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/officine/remise-tui/style"
)

// Model holds the content of the currently open detail overlay.
type Model struct {
	title    string
	markdown string
	width    int
	height   int
	open     bool
}

// New returns a closed detail Model.
func New() Model {
	return Model{}
}

// SetSize stores the terminal dimensions used to size the overlay.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Open shows the overlay with the given title and markdown body.
func (m *Model) Open(title, markdown string) {
	m.title = title
	m.markdown = markdown
	m.open = true
}

// Close hides the overlay.
func (m *Model) Close() {
	m.open = false
}

// IsOpen reports whether the overlay is visible.
func (m Model) IsOpen() bool {
	return m.open
}

// View renders the overlay box. Empty when closed.
func (m Model) View() string {
	if !m.open {
		return ""
	}
	boxW := m.width * 3 / 4
	if boxW > 72 {
		boxW = 72
	}
	if boxW < 24 {
		boxW = m.width - 2
	}
	innerW := boxW - 4

	body := renderMarkdown(m.markdown, innerW)
	content := style.DetailTitle.Render(m.title) + "\n\n" +
		strings.TrimRight(body, "\n") + "\n\n" +
		style.Hint.Render("esc to close")

	return style.DetailBorder.Width(boxW).Render(content)
}

// Overlay centers the overlay box on top of the background view.
func (m Model) Overlay(background string) string {
	if !m.open {
		return background
	}
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center, m.View())
}

// renderMarkdown renders markdown text using glamour, falling back to plain
// text on error.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
