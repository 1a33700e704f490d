package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors, initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = lipgloss.Color("#0E9F6E")
	Secondary color.Color = lipgloss.Color("#3F83F8")
	Success   color.Color = lipgloss.Color("#22C55E")
	Warning   color.Color = lipgloss.Color("#F59E0B")
	Error     color.Color = lipgloss.Color("#EF4444")
	Muted     color.Color = lipgloss.Color("#6B7280")
	Dim       color.Color = lipgloss.Color("#374151")
	Border    color.Color = lipgloss.Color("#4B5563")

	SelectionBgColor color.Color = lipgloss.Color("#1F3A2E")
	HeaderBgColor    color.Color = lipgloss.Color("#111827")
)

// Base styles, rebuilt when the theme changes via rebuildStyles().
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style
	Hint      lipgloss.Style

	// Header bar
	HeaderTitle     lipgloss.Style
	HeaderBackend   lipgloss.Style
	HeaderSeparator lipgloss.Style

	// Dataset tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Table
	TableHeader      lipgloss.Style
	TableRowSelected lipgloss.Style
	TableSentinel    lipgloss.Style
	TableSkeleton    lipgloss.Style
	TableEmpty       lipgloss.Style

	// Scrollbar
	ScrollbarThumb lipgloss.Style
	ScrollbarTrack lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusCount lipgloss.Style
	StatusState lipgloss.Style
	StatusError lipgloss.Style

	// Filter prompt
	FilterPrompt lipgloss.Style
	FilterLabel  lipgloss.Style

	// Detail overlay
	DetailBorder lipgloss.Style
	DetailTitle  lipgloss.Style

	// Connecting screen
	ConnectTitle  lipgloss.Style
	ConnectDetail lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetTheme applies a named theme, updating all color vars and rebuilding styles.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentThemeName = name
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	SelectionBgColor = t.SelectionBg
	HeaderBgColor = t.HeaderBg
	rebuildStyles()
	return true
}

// IsDark returns whether the current theme is dark.
func IsDark() bool {
	return CurrentThemeName != "light"
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Hint = lipgloss.NewStyle().Foreground(Dim)

	HeaderTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	HeaderBackend = lipgloss.NewStyle().Foreground(Muted)
	HeaderSeparator = lipgloss.NewStyle().Foreground(Dim)

	TabActive = lipgloss.NewStyle().Foreground(Primary).Bold(true).Underline(true)
	TabInactive = lipgloss.NewStyle().Foreground(Muted)

	TableHeader = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	TableRowSelected = lipgloss.NewStyle().Background(SelectionBgColor)
	TableSentinel = lipgloss.NewStyle().Foreground(Dim).Italic(true)
	TableSkeleton = lipgloss.NewStyle().Foreground(Dim)
	TableEmpty = lipgloss.NewStyle().Foreground(Muted).Italic(true)

	ScrollbarThumb = lipgloss.NewStyle().Foreground(Border)
	ScrollbarTrack = lipgloss.NewStyle().Foreground(Dim)

	StatusBar = lipgloss.NewStyle().Foreground(Muted).PaddingLeft(1)
	StatusCount = lipgloss.NewStyle().Foreground(Secondary)
	StatusState = lipgloss.NewStyle().Foreground(Primary)
	StatusError = lipgloss.NewStyle().Foreground(Error)

	FilterPrompt = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	FilterLabel = lipgloss.NewStyle().Foreground(Muted)

	DetailBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
	DetailTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	ConnectTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	ConnectDetail = lipgloss.NewStyle().Foreground(Muted)
}
