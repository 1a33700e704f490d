package table

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// Test row implementation
// ---------------------------------------------------------------------------

type testRow struct {
	id   string
	name string
}

func (r testRow) RowID() string { return r.id }

// renderCounter counts Render invocations per row id.
type renderCounter struct {
	calls map[string]int
}

func newCounter() *renderCounter {
	return &renderCounter{calls: make(map[string]int)}
}

func (c *renderCounter) total() int {
	n := 0
	for _, v := range c.calls {
		n += v
	}
	return n
}

func testColumns(c *renderCounter) []Column[testRow] {
	return []Column[testRow]{
		{Key: "id", Title: "ID", Width: 8, Render: func(r testRow) string {
			if c != nil {
				c.calls[r.id]++
			}
			return r.id
		}},
		{Key: "name", Title: "Name", Render: func(r testRow) string {
			return r.name
		}},
	}
}

func makeRows(n int) []testRow {
	rows := make([]testRow, n)
	for i := range rows {
		rows[i] = testRow{id: "r" + strconv.Itoa(i), name: fmt.Sprintf("row %d", i)}
	}
	return rows
}

// ---------------------------------------------------------------------------
// Feed states
// ---------------------------------------------------------------------------

func TestView_SkeletonBeforeFirstPage(t *testing.T) {
	m := New(testColumns(nil))
	m.SetSize(60, 11)
	m.SetLoading(true)

	out := m.View()
	if !strings.Contains(out, skeletonBlock) {
		t.Error("unresolved table must render skeleton blocks")
	}
	if strings.Contains(out, "No results") {
		t.Error("skeleton must not show the empty-state message")
	}
	if got := len(strings.Split(out, "\n")); got != 11 {
		t.Errorf("skeleton frame must fill the full height, want 11 lines, got %d", got)
	}
}

func TestView_SkeletonOnlyWhileFetchInFlight(t *testing.T) {
	// Unresolved but idle: nothing is being fetched, so a skeleton frame
	// would suggest progress that is not happening.
	m := New(testColumns(nil))
	m.SetSize(60, 11)
	m.SetLoading(false)

	out := m.View()
	if strings.Contains(out, skeletonBlock) {
		t.Error("idle unresolved table must not render skeleton blocks")
	}
	if got := len(strings.Split(out, "\n")); got != 11 {
		t.Errorf("blank frame must keep the full height, want 11 lines, got %d", got)
	}
}

func TestView_ErrorAfterFailedFirstFetch(t *testing.T) {
	m := New(testColumns(nil))
	m.SetSize(60, 11)
	m.SetLoading(false)
	m.SetError("API 503: service unavailable")

	out := m.View()
	if !strings.Contains(out, "API 503: service unavailable") {
		t.Error("failed first fetch must surface the error text inline")
	}
	if !strings.Contains(out, "r to retry") {
		t.Error("error state must hint at the retry key")
	}
	if strings.Contains(out, skeletonBlock) {
		t.Error("error state must not render skeleton blocks")
	}

	// A retry puts the fetch back in flight: the skeleton returns.
	m.SetError("")
	m.SetLoading(true)
	out = m.View()
	if !strings.Contains(out, skeletonBlock) {
		t.Error("retried fetch must render the skeleton again")
	}
}

func TestView_EmptyStateAfterResolvedEmptyPage(t *testing.T) {
	m := New(testColumns(nil), WithEmptyText[testRow]("No products match."))
	m.SetSize(60, 11)
	m.SetRows(nil)
	m.SetResolved(true)

	out := m.View()
	if !strings.Contains(out, "No products match.") {
		t.Error("resolved empty table must show the empty-state message")
	}
	if strings.Contains(out, skeletonBlock) {
		t.Error("empty state must not render skeleton blocks")
	}
}

func TestView_SentinelWhileMorePagesExist(t *testing.T) {
	m := New(testColumns(nil))
	m.SetSize(60, 11)
	m.SetRows(makeRows(5))
	m.SetResolved(true)
	m.SetHasMore(true)

	if !strings.Contains(m.View(), "fetching more rows") {
		t.Error("want sentinel line after the last row")
	}

	m.SetHasMore(false)
	if strings.Contains(m.View(), "fetching more rows") {
		t.Error("sentinel must disappear on the final page")
	}
}

// ---------------------------------------------------------------------------
// Windowed materialization
// ---------------------------------------------------------------------------

func TestView_MaterializesOnlyTheWindow(t *testing.T) {
	c := newCounter()
	m := New(testColumns(c))
	m.SetSize(60, 21) // 20 body lines
	m.SetRows(makeRows(10000))
	m.SetResolved(true)

	_ = m.View()

	// Window = viewport (20) + overscan on each side.
	bound := 20 + 1 + 2*DefaultOverscan
	if c.total() > bound {
		t.Errorf("10000 rows: want at most %d renders, got %d", bound, c.total())
	}
	if c.calls["r9999"] != 0 {
		t.Error("rows far outside the viewport must not be rendered")
	}
}

func TestView_CacheRecyclesAcrossAppends(t *testing.T) {
	c := newCounter()
	m := New(testColumns(c))
	m.SetSize(60, 11)
	m.SetRows(makeRows(10))
	m.SetResolved(true)
	_ = m.View()

	first := c.calls["r0"]
	if first == 0 {
		t.Fatal("visible row must have been rendered")
	}

	// A page append replaces the slice but keeps earlier identities.
	m.SetRows(makeRows(20))
	_ = m.View()

	if c.calls["r0"] != first {
		t.Errorf("appending rows must not re-render row r0: %d -> %d", first, c.calls["r0"])
	}
}

func TestView_ScrollingRendersNewWindowOnly(t *testing.T) {
	c := newCounter()
	m := New(testColumns(c))
	m.SetSize(60, 11)
	m.SetRows(makeRows(100))
	m.SetResolved(true)
	_ = m.View()

	m.ScrollDown(5)
	_ = m.View()

	// Rows materialized in the first frame stay cached.
	if c.calls["r3"] != 1 {
		t.Errorf("overlapping row must be rendered once, got %d", c.calls["r3"])
	}
}

func TestInvalidateCache_ForcesRerender(t *testing.T) {
	c := newCounter()
	m := New(testColumns(c))
	m.SetSize(60, 11)
	m.SetRows(makeRows(5))
	m.SetResolved(true)
	_ = m.View()
	m.InvalidateCache()
	_ = m.View()

	if c.calls["r0"] != 2 {
		t.Errorf("want 2 renders after invalidation, got %d", c.calls["r0"])
	}
}

// ---------------------------------------------------------------------------
// Row identity
// ---------------------------------------------------------------------------

func TestSetRows_DuplicateKeysDegradeToIndexIdentity(t *testing.T) {
	m := New(testColumns(nil))
	m.SetSize(60, 11)
	m.SetRows([]testRow{
		{id: "dup", name: "first"},
		{id: "dup", name: "second"},
		{id: "other", name: "third"},
	})
	m.SetResolved(true)

	if got := m.KeyCollisions(); got != 1 {
		t.Errorf("want 1 collision, got %d", got)
	}
	// Both duplicate rows must still render, under distinct degraded keys.
	out := m.View()
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Error("duplicate-key rows must both be rendered")
	}
}

func TestIdentity_ExplicitAccessorWinsOverInterface(t *testing.T) {
	m := New(testColumns(nil), WithRowID(func(r testRow) string { return "x-" + r.name }))
	m.SetRows([]testRow{{id: "same", name: "a"}, {id: "same", name: "b"}})
	if m.KeyCollisions() != 0 {
		t.Error("explicit accessor must override the RowID interface")
	}
}

// ---------------------------------------------------------------------------
// Cursor / activation
// ---------------------------------------------------------------------------

func TestActivateCursor_PassesOriginalItem(t *testing.T) {
	var got testRow
	m := New(testColumns(nil), WithOnActivate(func(r testRow) tea.Cmd {
		got = r
		return nil
	}))
	m.SetSize(60, 11)
	m.SetRows(makeRows(10))
	m.SetResolved(true)

	m.CursorDown()
	m.CursorDown()
	_ = m.ActivateCursor()

	if got.id != "r2" {
		t.Errorf("want activated item r2, got %q", got.id)
	}
}

func TestRowAt_MapsClicksThroughTheOffset(t *testing.T) {
	m := New(testColumns(nil))
	m.SetSize(60, 11)
	m.SetRows(makeRows(100))
	m.SetResolved(true)
	m.ScrollDown(40)

	if idx := m.RowAt(0); idx != -1 {
		t.Errorf("header line must map to -1, got %d", idx)
	}
	// Body line 0 is the row at the scroll offset.
	if idx := m.RowAt(1); idx != 40 {
		t.Errorf("want row 40, got %d", idx)
	}
}

// ---------------------------------------------------------------------------
// Scrolling bounds
// ---------------------------------------------------------------------------

func TestScroll_ClampsToContent(t *testing.T) {
	m := New(testColumns(nil))
	m.SetSize(60, 11) // 10 body lines
	m.SetRows(makeRows(30))
	m.SetResolved(true)

	m.ScrollDown(10000)
	if got := m.ScrollOffset(); got != 20 {
		t.Errorf("want max offset 20, got %d", got)
	}
	m.ScrollUp(10000)
	if got := m.ScrollOffset(); got != 0 {
		t.Errorf("want offset 0, got %d", got)
	}
}

func TestNearEnd(t *testing.T) {
	m := New(testColumns(nil))
	m.SetSize(60, 11)
	m.SetRows(makeRows(100))
	m.SetResolved(true)

	if m.NearEnd(20) {
		t.Error("top of a 100-row set is not near the end")
	}
	m.ScrollToBottom()
	if !m.NearEnd(20) {
		t.Error("bottom of the set must be near the end")
	}
}

func TestWindow_MovesWithScroll(t *testing.T) {
	m := New(testColumns(nil))
	m.SetSize(60, 11)
	m.SetRows(makeRows(100))
	m.SetResolved(true)

	m.ScrollDown(50)
	start, end := m.Window()
	if start != 50-DefaultOverscan {
		t.Errorf("want start %d, got %d", 50-DefaultOverscan, start)
	}
	if end != 60+DefaultOverscan {
		t.Errorf("want end %d, got %d", 60+DefaultOverscan, end)
	}
}
