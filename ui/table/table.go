// Package table provides the windowed data-table widget for remise-tui.
//
// The widget renders result sets of unbounded size while materializing only
// the rows that intersect the viewport (plus an overscan margin): render cost
// is bounded by the viewport, not by the number of loaded rows.
//
// Key properties:
//   - Pure visible-range calculation (window.go) shared by the renderer, the
//     scrollbar and the prefetch proximity signal.
//   - Row identity is a stable key, not the slice index: rendered rows are
//     cached and recycled by key, so appends never re-render earlier rows.
//   - One column list drives the header, the data rows and the loading
//     skeleton, keeping the layout stable across feed states.
//   - A sentinel line after the last row marks that more pages exist; its
//     proximity to the viewport drives prefetch (see Trigger).
package table

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/officine/remise-tui/style"
)

const (
	colGap = 2 // cells between columns

	// DefaultOverscan is the number of extra rows materialized beyond the
	// strictly visible range on each side.
	DefaultOverscan = 5

	// DefaultSkeletonRows is the placeholder row count while the first page
	// is in flight.
	DefaultSkeletonRows = 8
)

// Identifiable is the fallback identity convention: when no explicit row-id
// accessor is configured, rows implementing this interface are keyed by
// RowID(). Rows providing neither are keyed by index.
type Identifiable interface {
	RowID() string
}

// Option is a functional option for New.
type Option[T any] func(*Model[T])

// WithRowID sets the row identity accessor. Returning the same key for two
// different rows is a caller contract violation; the widget degrades to
// index-suffixed identity for the duplicates and counts the collisions.
func WithRowID[T any](fn func(item T) string) Option[T] {
	return func(m *Model[T]) { m.rowID = fn }
}

// WithRowHeight sets the height of every row in terminal lines (default 1).
// Rows taller than one line pad below the content line.
func WithRowHeight[T any](h int) Option[T] {
	return func(m *Model[T]) {
		if h > 0 {
			m.rowHeight = h
		}
	}
}

// WithOverscan sets the overscan row count.
func WithOverscan[T any](n int) Option[T] {
	return func(m *Model[T]) {
		if n >= 0 {
			m.overscan = n
		}
	}
}

// WithSkeletonRows sets the number of placeholder rows rendered while the
// first page is in flight.
func WithSkeletonRows[T any](n int) Option[T] {
	return func(m *Model[T]) {
		if n > 0 {
			m.skeletonRows = n
		}
	}
}

// WithEmptyText sets the message rendered when the first page resolves with
// zero rows.
func WithEmptyText[T any](s string) Option[T] {
	return func(m *Model[T]) { m.emptyText = s }
}

// WithOnActivate sets the callback invoked when a row is activated (enter or
// mouse click). The callback receives the original item, untransformed.
func WithOnActivate[T any](fn func(item T) tea.Cmd) Option[T] {
	return func(m *Model[T]) { m.onActivate = fn }
}

// Model is a windowed table over rows of type T.
// The zero value is not usable; construct with New.
type Model[T any] struct {
	cols []Column[T]
	rows []T
	ids  []string // resolved identity per index, same length as rows

	rowID      func(T) string
	onActivate func(T) tea.Cmd

	width  int // total widget width
	height int // total widget height including the header line

	rowHeight    int
	overscan     int
	skeletonRows int
	emptyText    string

	// offset is the scroll position in lines over the row area.
	offset int
	// cursor is the selected row index.
	cursor int

	loading  bool   // first page in flight: render the skeleton
	resolved bool   // first page accepted: empty rows mean empty result
	hasMore  bool   // further pages exist: render the sentinel line
	errText  string // failed first fetch: render the inline error body

	// cache holds rendered row content keyed by row identity. Entries are
	// written only for materialized rows, so the pool stays proportional to
	// the window, not to the result set.
	cache      map[string]string
	collisions int
}

// New constructs a table over the given column list.
func New[T any](cols []Column[T], opts ...Option[T]) Model[T] {
	m := Model[T]{
		cols:         cols,
		rowHeight:    1,
		overscan:     DefaultOverscan,
		skeletonRows: DefaultSkeletonRows,
		emptyText:    "No results.",
		cache:        make(map[string]string),
	}
	for _, o := range opts {
		o(&m)
	}
	return m
}

// -- Mutations ---------------------------------------------------------------

// SetSize updates the widget dimensions. The render cache is invalidated on
// width changes because every cell must be re-fitted.
func (m *Model[T]) SetSize(w, h int) {
	if w != m.width {
		m.cache = make(map[string]string)
	}
	m.width = w
	m.height = h
	m.clamp()
}

// SetRows replaces the row sequence. Identity keys are resolved once per
// call; the render cache is preserved, so rows already materialized under an
// unchanged key are not re-rendered. Duplicate keys degrade to index-suffixed
// identity and are counted (see KeyCollisions).
func (m *Model[T]) SetRows(rows []T) {
	m.rows = rows
	m.ids = make([]string, len(rows))
	m.collisions = 0
	seen := make(map[string]int, len(rows))
	for i, item := range rows {
		id := m.identity(i, item)
		if _, dup := seen[id]; dup {
			m.collisions++
			id = id + "#" + strconv.Itoa(i)
		}
		seen[id] = i
		m.ids[i] = id
	}
	m.clamp()
}

// SetLoading marks whether the first page is in flight.
func (m *Model[T]) SetLoading(v bool) { m.loading = v }

// SetResolved marks whether the first page has been accepted.
func (m *Model[T]) SetResolved(v bool) { m.resolved = v }

// SetHasMore marks whether further pages exist beyond the loaded rows.
func (m *Model[T]) SetHasMore(v bool) { m.hasMore = v }

// SetError stores the text shown when the first page failed; empty clears it.
func (m *Model[T]) SetError(text string) { m.errText = text }

// InvalidateCache discards all cached row renders.
func (m *Model[T]) InvalidateCache() {
	m.cache = make(map[string]string)
}

// KeyCollisions returns the number of duplicate identity keys detected by the
// last SetRows. A non-zero value is a caller contract violation; the widget
// keeps working on degraded index identity.
func (m *Model[T]) KeyCollisions() int { return m.collisions }

// -- Scrolling ---------------------------------------------------------------

// ScrollDown scrolls the row area down by n lines.
func (m *Model[T]) ScrollDown(n int) {
	m.offset += n
	m.clamp()
	m.syncCursor()
}

// ScrollUp scrolls the row area up by n lines.
func (m *Model[T]) ScrollUp(n int) {
	m.offset -= n
	m.clamp()
	m.syncCursor()
}

// PageDown scrolls by one viewport height.
func (m *Model[T]) PageDown() { m.ScrollDown(m.bodyHeight()) }

// PageUp scrolls up by one viewport height.
func (m *Model[T]) PageUp() { m.ScrollUp(m.bodyHeight()) }

// HalfPageDown scrolls by half a viewport.
func (m *Model[T]) HalfPageDown() { m.ScrollDown(m.bodyHeight() / 2) }

// HalfPageUp scrolls up by half a viewport.
func (m *Model[T]) HalfPageUp() { m.ScrollUp(m.bodyHeight() / 2) }

// ScrollToTop jumps to the first row.
func (m *Model[T]) ScrollToTop() {
	m.offset = 0
	m.cursor = 0
}

// ScrollToBottom jumps to the last loaded row.
func (m *Model[T]) ScrollToBottom() {
	m.offset = m.contentHeight()
	m.clamp()
	if len(m.rows) > 0 {
		m.cursor = len(m.rows) - 1
	}
}

// CursorDown moves the selection down one row, scrolling to keep it visible.
func (m *Model[T]) CursorDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
	m.ensureCursorVisible()
}

// CursorUp moves the selection up one row, scrolling to keep it visible.
func (m *Model[T]) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	m.ensureCursorVisible()
}

// Cursor returns the selected row index.
func (m Model[T]) Cursor() int { return m.cursor }

// SelectedItem returns the item under the cursor.
func (m Model[T]) SelectedItem() (T, bool) {
	var zero T
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return zero, false
	}
	return m.rows[m.cursor], true
}

// ScrollOffset returns the current scroll position in lines.
func (m Model[T]) ScrollOffset() int { return m.offset }

// Window returns the materialized index range for the current frame,
// including overscan.
func (m Model[T]) Window() (start, end int) {
	return VisibleRange(m.offset, m.bodyHeight(), len(m.rows), m.rowHeight, m.overscan)
}

// NearEnd reports whether the strictly visible range ends within threshold
// rows of the last loaded row. This is the sentinel proximity signal consumed
// by Trigger.
func (m Model[T]) NearEnd(threshold int) bool {
	_, end := VisibleRange(m.offset, m.bodyHeight(), len(m.rows), m.rowHeight, 0)
	return end+threshold >= len(m.rows)
}

// RowAt resolves a y coordinate relative to the top of the widget to a row
// index, or -1 for the header, a padding line, or out of range.
func (m Model[T]) RowAt(y int) int {
	bodyY := y - 1 // header line
	if bodyY < 0 || bodyY >= m.bodyHeight() {
		return -1
	}
	idx := (m.offset + bodyY) / m.rowHeight
	if idx < 0 || idx >= len(m.rows) {
		return -1
	}
	return idx
}

// -- Update ------------------------------------------------------------------

// Update handles mouse events. Key events are routed by the parent model,
// which calls the scroll and cursor methods directly.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			m.ScrollUp(3)
		case tea.MouseWheelDown:
			m.ScrollDown(3)
		}
	case tea.MouseClickMsg:
		if idx := m.RowAt(msg.Y); idx >= 0 {
			m.cursor = idx
			if m.onActivate != nil {
				return m, m.onActivate(m.rows[idx])
			}
		}
	}
	return m, nil
}

// ActivateCursor invokes the activation callback for the selected row.
func (m Model[T]) ActivateCursor() tea.Cmd {
	item, ok := m.SelectedItem()
	if !ok || m.onActivate == nil {
		return nil
	}
	return m.onActivate(item)
}

// -- View --------------------------------------------------------------------

// View renders the header plus only the body lines of the current viewport.
// The skeleton is scoped to an in-flight first page: once that fetch fails,
// the body switches to the inline error state instead of a placeholder that
// suggests progress.
func (m Model[T]) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	var body string
	switch {
	case m.resolved && len(m.rows) == 0:
		body = m.viewEmpty()
	case !m.resolved && m.loading:
		body = m.viewSkeleton()
	case !m.resolved && m.errText != "":
		body = m.viewLoadError()
	case !m.resolved:
		body = m.viewBlank()
	default:
		body = m.viewRows()
	}
	return m.viewHeader() + "\n" + body
}

func (m Model[T]) viewHeader() string {
	widths := cellWidths(m.cols, m.tableWidth())
	cells := make([]string, len(m.cols))
	for i, c := range m.cols {
		cells[i] = fit(c.Title, widths[i])
	}
	line := strings.Join(cells, strings.Repeat(" ", colGap))
	return style.TableHeader.Render(fit(line, m.tableWidth()))
}

// viewRows assembles the viewport: each materialized row is placed at its
// absolute line position (index*rowHeight) translated by the scroll offset.
// The row count is re-read here, never assumed frozen since the last event;
// the feed may have appended between the window computation and this render.
func (m Model[T]) viewRows() string {
	bodyH := m.bodyHeight()
	lines := make([]string, bodyH)

	start, end := VisibleRange(m.offset, bodyH, len(m.rows), m.rowHeight, m.overscan)
	offset := ClampOffset(m.offset, bodyH, len(m.rows), m.rowHeight)

	for i := start; i < end; i++ {
		top := i*m.rowHeight - offset
		content := m.materialize(i)
		if i == m.cursor {
			content = style.TableRowSelected.Render(content)
		}
		for j := 0; j < m.rowHeight; j++ {
			pos := top + j
			if pos < 0 || pos >= bodyH {
				continue
			}
			if j == 0 {
				lines[pos] = content
			} else {
				lines[pos] = ""
			}
		}
	}

	// Sentinel line directly after the last row while more pages exist.
	if m.hasMore {
		pos := len(m.rows)*m.rowHeight - offset
		if pos >= 0 && pos < bodyH {
			lines[pos] = style.TableSentinel.Render("… fetching more rows")
		}
	}

	return m.withScrollbar(lines, offset)
}

// materialize returns the rendered content for row i, recycling the cached
// render for its identity key when present.
func (m Model[T]) materialize(i int) string {
	id := m.ids[i]
	if cached, ok := m.cache[id]; ok {
		return cached
	}
	widths := cellWidths(m.cols, m.tableWidth())
	cells := make([]string, len(m.cols))
	for c, col := range m.cols {
		var text string
		if col.Render != nil {
			text = col.Render(m.rows[i])
		}
		cells[c] = fit(text, widths[c])
	}
	content := fit(strings.Join(cells, strings.Repeat(" ", colGap)), m.tableWidth())
	m.cache[id] = content
	return content
}

// withScrollbar appends the scrollbar column to every body line.
func (m Model[T]) withScrollbar(lines []string, offset int) string {
	contentH := m.contentHeight()
	if m.hasMore {
		contentH += m.rowHeight // account for the sentinel line
	}
	bar := scrollbarColumn(len(lines), contentH, offset)
	for i := range lines {
		pad := m.tableWidth() - lipgloss.Width(lines[i])
		if pad < 0 {
			pad = 0
		}
		lines[i] = lines[i] + strings.Repeat(" ", pad) + bar[i]
	}
	return strings.Join(lines, "\n")
}

// -- Internal geometry -------------------------------------------------------

// bodyHeight is the line count available for rows (total minus header).
func (m Model[T]) bodyHeight() int {
	h := m.height - 1
	if h < 0 {
		h = 0
	}
	return h
}

// tableWidth is the width available for cells (total minus scrollbar column).
func (m Model[T]) tableWidth() int {
	w := m.width - 1
	if w < 0 {
		w = 0
	}
	return w
}

func (m Model[T]) contentHeight() int {
	return ContentHeight(len(m.rows), m.rowHeight)
}

func (m *Model[T]) clamp() {
	m.offset = ClampOffset(m.offset, m.bodyHeight(), len(m.rows), m.rowHeight)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncCursor drags the selection along when scrolling pushes it outside the
// viewport.
func (m *Model[T]) syncCursor() {
	if len(m.rows) == 0 {
		return
	}
	first := m.offset / m.rowHeight
	last := (m.offset + m.bodyHeight() - 1) / m.rowHeight
	if last >= len(m.rows) {
		last = len(m.rows) - 1
	}
	if m.cursor < first {
		m.cursor = first
	}
	if m.cursor > last {
		m.cursor = last
	}
}

func (m *Model[T]) ensureCursorVisible() {
	top := m.cursor * m.rowHeight
	bottom := (m.cursor + 1) * m.rowHeight
	if top < m.offset {
		m.offset = top
	}
	if bottom > m.offset+m.bodyHeight() {
		m.offset = bottom - m.bodyHeight()
	}
	m.clamp()
}

func (m Model[T]) identity(index int, item T) string {
	if m.rowID != nil {
		return m.rowID(item)
	}
	if ident, ok := any(item).(Identifiable); ok {
		return ident.RowID()
	}
	return "#" + strconv.Itoa(index)
}

// -- String helpers ----------------------------------------------------------

// fit pads or truncates s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) > w {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes)) > w-1 {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// fitRight right-aligns s within w cells. Used by numeric column renderers.
func fitRight(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if pad := w - lipgloss.Width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return fit(s, w)
}

// AlignRight wraps a cell value for numeric columns.
func AlignRight(s string, w int) string { return fitRight(s, w) }
