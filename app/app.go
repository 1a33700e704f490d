// Package app wires the dataset panes, the backend client and the chrome
// (header, tabs, status bar, overlays) into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/officine/remise-tui/client"
	"github.com/officine/remise-tui/config"
	"github.com/officine/remise-tui/msg"
	"github.com/officine/remise-tui/style"
	"github.com/officine/remise-tui/ui/detail"
	"github.com/officine/remise-tui/ui/statusbar"
	"github.com/officine/remise-tui/ui/toast"
)

// ProfileDir is set by main to the user's profile directory path.
var ProfileDir string

// -- Internal message types ---------------------------------------------------

type retryHealth struct{}

// -- Model --------------------------------------------------------------------

// Model is the root Bubble Tea model. It owns every sub-model and all wiring
// between the backend client and the UI.
type Model struct {
	panes  []pane
	active int

	filter textinput.Model
	status statusbar.Model
	toasts toast.ToastsModel
	detail detail.Model

	state  State
	layout Layout

	client  *client.Client
	version string // backend version from the health check
	connErr error

	width  int
	height int
	keys   KeyMap
	config config.Config

	// warnedCollisions records panes already toasted for duplicate row keys,
	// so a degraded dataset does not re-toast on every appended page.
	warnedCollisions map[string]bool
}

// New constructs the root Model. It applies the persisted theme and builds
// one pane per dataset.
func New(c *client.Client) Model {
	cfg := config.Load(ProfileDir)
	if cfg.Theme != "" {
		style.SetTheme(cfg.Theme)
	}
	if cfg.PageSize > 0 {
		c.PageSize = cfg.PageSize
	}

	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.Prompt = "/ "
	s := ti.Styles()
	s.Focused.Prompt = lipgloss.NewStyle().Foreground(style.Primary)
	ti.SetStyles(s)

	return Model{
		panes: []pane{
			newCataloguePane(c),
			newSalesPane(c),
			newMatchingPane(c),
		},
		filter:           ti,
		status:           statusbar.New(),
		toasts:           toast.NewToasts(),
		detail:           detail.New(),
		state:            StateConnecting,
		client:           c,
		keys:             DefaultKeyMap(),
		width:            80,
		height:           24,
		config:           cfg,
		warnedCollisions: make(map[string]bool),
	}
}

func (m Model) activePane() pane { return m.panes[m.active] }

// -- Init ---------------------------------------------------------------------

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkHealth(), func() tea.Msg { return tea.RequestWindowSize() })
}

// -- Update -------------------------------------------------------------------

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.resize()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(v)

	case tea.MouseWheelMsg:
		if m.state == StateBrowsing {
			return m, m.activePane().forward(v)
		}
		return m, nil

	case tea.MouseClickMsg:
		if m.state == StateBrowsing {
			return m, m.activePane().forward(v)
		}
		return m, nil

	// -- Health / connection --

	case msg.HealthResult:
		if v.Err != nil {
			m.state = StateConnectError
			m.connErr = v.Err
			return m, nil
		}
		m.version = v.Version
		m.connErr = nil
		m.state = StateBrowsing
		return m, m.activePane().load()

	case retryHealth:
		m.state = StateConnecting
		return m, m.checkHealth()

	// -- Overlays --

	case showDetail:
		m.detail.Open(v.title, v.markdown)
		m.state = StateDetail
		return m, nil

	case msg.DismissDetail:
		m.detail.Close()
		m.state = StateBrowsing
		return m, nil

	case msg.TickMsg:
		m.toasts.Tick()
		if m.toasts.HasToasts() {
			return m, m.tickCmd()
		}
		return m, nil
	}

	// Page results are typed per dataset; offer the message to every pane.
	for _, p := range m.panes {
		cmd, handled := p.handle(rawMsg)
		if !handled {
			continue
		}
		var cmds []tea.Cmd
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if st := p.status(); st.errText != "" {
			m.toasts.Add("fetch failed: "+st.errText, toast.ToastError)
			cmds = append(cmds, m.tickCmd())
		}
		if p.collisions() > 0 && !m.warnedCollisions[p.name()] {
			m.warnedCollisions[p.name()] = true
			m.toasts.Add(fmt.Sprintf("%s: duplicate row keys, recycling degraded", p.name()), toast.ToastWarning)
			cmds = append(cmds, m.tickCmd())
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// resize recomputes the layout and propagates sizes to every sub-model.
func (m *Model) resize() {
	m.layout = ComputeLayout(m.width, m.height, m.state == StateFiltering)
	for _, p := range m.panes {
		p.setSize(m.layout.TableWidth, m.layout.TableHeight)
	}
	m.filter.SetWidth(m.width - 4)
	m.detail.SetSize(m.width, m.height)
}

// -- Key handling -------------------------------------------------------------

func (m Model) handleKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateConnecting:
		return m.handleConnectingKey(k)
	case StateConnectError:
		return m.handleConnectErrorKey(k)
	case StateBrowsing:
		return m.handleBrowsingKey(k)
	case StateFiltering:
		return m.handleFilteringKey(k)
	case StateDetail:
		return m.handleDetailKey(k)
	}
	return m, nil
}

func (m Model) handleConnectingKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches[tea.KeyPressMsg](k, m.keys.Quit) || key.Matches[tea.KeyPressMsg](k, m.keys.Cancel) {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleConnectErrorKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Quit), key.Matches[tea.KeyPressMsg](k, m.keys.Cancel):
		return m, tea.Quit
	case key.Matches[tea.KeyPressMsg](k, m.keys.Reload):
		return m, func() tea.Msg { return retryHealth{} }
	}
	return m, nil
}

func (m Model) handleBrowsingKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	p := m.activePane()
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Quit), key.Matches[tea.KeyPressMsg](k, m.keys.Cancel):
		return m, tea.Quit

	case key.Matches[tea.KeyPressMsg](k, m.keys.NextTab):
		m.active = (m.active + 1) % len(m.panes)
		return m, m.activePane().load()

	case key.Matches[tea.KeyPressMsg](k, m.keys.PrevTab):
		m.active = (m.active + len(m.panes) - 1) % len(m.panes)
		return m, m.activePane().load()

	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollDown):
		return m, p.cursorDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollUp):
		return m, p.cursorUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageDown):
		return m, p.pageDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageUp):
		return m, p.pageUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageDown):
		return m, p.halfPageDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageUp):
		return m, p.halfPageUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollTop):
		return m, p.scrollTop()
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollBottom):
		return m, p.scrollBottom()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Select):
		return m, p.activate()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Filter):
		m.state = StateFiltering
		m.filter.SetValue(p.query())
		m.resize()
		return m, m.filter.Focus()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Reload):
		// Retry the failed fetch when there is one, otherwise a full reload.
		if p.status().errText != "" {
			return m, p.retry()
		}
		return m, p.reload()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Theme):
		return m.toggleTheme()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Escape):
		if p.query() != "" {
			return m, p.applyFilter("")
		}
		return m, nil
	}

	// Direct pane selection by number.
	if s := k.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if idx := int(s[0] - '1'); idx < len(m.panes) {
			m.active = idx
			return m, m.activePane().load()
		}
	}
	return m, nil
}

// toggleTheme flips between the dark and light themes, invalidates every
// pane's render cache (styles are baked into cached lines) and persists the
// choice to the profile config.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	next := "dark"
	if style.IsDark() {
		next = "light"
	}
	style.SetTheme(next)
	m.config.Theme = next
	for _, p := range m.panes {
		p.invalidate()
	}
	if err := config.Save(ProfileDir, m.config); err != nil {
		m.toasts.Add("could not save config: "+err.Error(), toast.ToastWarning)
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) handleFilteringKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Escape):
		m.state = StateBrowsing
		m.filter.Blur()
		m.resize()
		return m, nil

	case key.Matches[tea.KeyPressMsg](k, m.keys.Select):
		query := strings.TrimSpace(m.filter.Value())
		m.state = StateBrowsing
		m.filter.Blur()
		m.resize()
		return m, m.activePane().applyFilter(query)
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(k)
	return m, cmd
}

func (m Model) handleDetailKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Escape),
		key.Matches[tea.KeyPressMsg](k, m.keys.Select),
		key.Matches[tea.KeyPressMsg](k, m.keys.Quit):
		return m.Update(msg.DismissDetail{})
	case key.Matches[tea.KeyPressMsg](k, m.keys.Cancel):
		return m, tea.Quit
	}
	return m, nil
}

// -- Commands -----------------------------------------------------------------

func (m Model) checkHealth() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		ctx, cancel := healthContext()
		defer cancel()
		health, err := c.Health(ctx)
		if err != nil {
			return msg.HealthResult{Err: err}
		}
		return msg.HealthResult{Status: health.Status, Version: health.Version}
	}
}

func healthContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return msg.TickMsg{} })
}

// -- View ---------------------------------------------------------------------

// View returns the tea.View for the current frame.
// AltScreen and MouseMode are set on every frame.
func (m Model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderView composes the full terminal frame as a string.
func (m Model) renderView() string {
	switch m.state {
	case StateConnecting:
		return m.renderConnecting()
	case StateConnectError:
		return m.renderConnectError()
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTabs())
	sections = append(sections, m.activePane().view())
	if m.state == StateFiltering {
		sections = append(sections, m.filter.View())
	}
	sections = append(sections, m.renderStatus())

	frame := strings.Join(sections, "\n")

	if m.state == StateDetail {
		frame = m.detail.Overlay(frame)
	}
	if m.toasts.HasToasts() {
		frame += "\n" + m.toasts.View(m.width)
	}
	return frame
}

func (m Model) renderHeader() string {
	title := style.HeaderTitle.Render("remise")
	backend := style.HeaderBackend.Render(m.client.BaseURL)
	if m.version != "" {
		backend += style.HeaderBackend.Render(" · v" + m.version)
	}
	line := title + "  " + backend
	sep := style.HeaderSeparator.Render(strings.Repeat("─", m.width))
	return line + "\n" + sep
}

func (m Model) renderTabs() string {
	labels := make([]string, len(m.panes))
	for i, p := range m.panes {
		label := " " + p.name() + " "
		if i == m.active {
			labels[i] = style.TabActive.Render(label)
		} else {
			labels[i] = style.TabInactive.Render(label)
		}
	}
	return strings.Join(labels, style.HeaderSeparator.Render("│"))
}

func (m Model) renderStatus() string {
	p := m.activePane()
	st := p.status()

	bar := m.status
	bar.SetDataset(p.name())
	bar.SetCounts(st.loaded, st.total, st.totalKnown)
	bar.SetState(st.state)
	bar.SetError(st.errText)
	hint := "tab switch · / filter · enter detail · r reload · q quit"
	if q := p.query(); q != "" {
		hint = fmt.Sprintf("filter %q · esc clear · %s", q, hint)
	}
	bar.SetHint(hint)
	return bar.View(m.width)
}

func (m Model) renderConnecting() string {
	body := style.ConnectTitle.Render("remise") + "\n\n" +
		style.ConnectDetail.Render("Connecting to "+m.client.BaseURL+" ...")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderConnectError() string {
	body := style.ConnectTitle.Render("remise") + "\n\n" +
		style.ErrorText.Render("Cannot reach "+m.client.BaseURL) + "\n" +
		style.ConnectDetail.Render(m.connErr.Error()) + "\n\n" +
		style.Hint.Render("r retry · q quit")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
