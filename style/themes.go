package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the TUI.
type Theme struct {
	Name                                        string
	Primary, Secondary, Success, Warning, Error color.Color
	Muted, Dim, Border                          color.Color
	SelectionBg, HeaderBg                       color.Color
}

// Built-in themes.
var (
	darkTheme = Theme{
		Name:        "dark",
		Primary:     lipgloss.Color("#0E9F6E"),
		Secondary:   lipgloss.Color("#3F83F8"),
		Success:     lipgloss.Color("#22C55E"),
		Warning:     lipgloss.Color("#F59E0B"),
		Error:       lipgloss.Color("#EF4444"),
		Muted:       lipgloss.Color("#6B7280"),
		Dim:         lipgloss.Color("#374151"),
		Border:      lipgloss.Color("#4B5563"),
		SelectionBg: lipgloss.Color("#1F3A2E"),
		HeaderBg:    lipgloss.Color("#111827"),
	}

	lightTheme = Theme{
		Name:        "light",
		Primary:     lipgloss.Color("#047857"),
		Secondary:   lipgloss.Color("#1C64F2"),
		Success:     lipgloss.Color("#15803D"),
		Warning:     lipgloss.Color("#B45309"),
		Error:       lipgloss.Color("#B91C1C"),
		Muted:       lipgloss.Color("#6B7280"),
		Dim:         lipgloss.Color("#9CA3AF"),
		Border:      lipgloss.Color("#D1D5DB"),
		SelectionBg: lipgloss.Color("#D1FAE5"),
		HeaderBg:    lipgloss.Color("#F3F4F6"),
	}
)

// Themes maps theme names to palettes.
var Themes = map[string]Theme{
	"dark":  darkTheme,
	"light": lightTheme,
}

// CurrentThemeName tracks the active theme.
var CurrentThemeName = "dark"
