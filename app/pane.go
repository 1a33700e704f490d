package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/officine/remise-tui/feed"
	"github.com/officine/remise-tui/ui/table"
)

// prefetchThreshold is how many rows before the loaded end the next page
// fetch is triggered.
const prefetchThreshold = 20

// showDetail asks the root model to open the detail overlay.
type showDetail struct {
	title    string
	markdown string
}

// pageResult carries one resolved page fetch back into the event loop. The
// feed pointer identifies the exact feed that issued the request, so a
// response arriving after a filter switch still lands on the feed it was
// issued for (where the epoch check decides its fate).
type pageResult[T any] struct {
	feed *feed.Feed[T]
	req  feed.Request
	page feed.Page[T]
	err  error
}

// paneStatus is the slice of pane state the status bar renders.
type paneStatus struct {
	loaded     int
	total      int
	totalKnown bool
	state      string
	errText    string
}

// pane is the dataset-agnostic surface the root model drives. Each dataset
// tab is one pane; the concrete type is tablePane instantiated per row type.
type pane interface {
	name() string
	setSize(w, h int)

	// Data lifecycle.
	load() tea.Cmd
	reload() tea.Cmd
	retry() tea.Cmd
	applyFilter(query string) tea.Cmd
	query() string
	handle(raw tea.Msg) (tea.Cmd, bool)

	// Navigation. Scrolling can expose the loaded end, so every move
	// returns a possible prefetch command.
	cursorUp() tea.Cmd
	cursorDown() tea.Cmd
	pageUp() tea.Cmd
	pageDown() tea.Cmd
	halfPageUp() tea.Cmd
	halfPageDown() tea.Cmd
	scrollTop() tea.Cmd
	scrollBottom() tea.Cmd
	forward(raw tea.Msg) tea.Cmd

	activate() tea.Cmd
	view() string
	status() paneStatus
	collisions() int
	invalidate()
}

// tablePane binds one dataset's feed store to its table widget.
type tablePane[T any] struct {
	paneName string
	store    *feed.Store[T]
	q        string
	fetch    func(query string) feed.FetchFunc[T]
	tbl      table.Model[T]
	trigger  table.Trigger
	detail   func(item T) (title, markdown string)
}

func newTablePane[T any](
	name string,
	cols []table.Column[T],
	fetch func(query string) feed.FetchFunc[T],
	detail func(item T) (string, string),
	opts ...table.Option[T],
) *tablePane[T] {
	// Mouse activation goes through the same detail path as the enter key.
	opts = append(opts, table.WithOnActivate[T](func(item T) tea.Cmd {
		title, md := detail(item)
		return func() tea.Msg { return showDetail{title: title, markdown: md} }
	}))
	return &tablePane[T]{
		paneName: name,
		store:    feed.NewStore[T](),
		fetch:    fetch,
		tbl:      table.New(cols, opts...),
		detail:   detail,
	}
}

func (p *tablePane[T]) name() string { return p.paneName }

func (p *tablePane[T]) setSize(w, h int) {
	p.tbl.SetSize(w, h)
}

// invalidate drops cached row renders, forcing the next frame to restyle.
func (p *tablePane[T]) invalidate() {
	p.tbl.InvalidateCache()
}

// feedKey derives the store key for the current filter query. Each distinct
// query owns an independent feed, so switching back to a previous filter
// reuses its already-loaded pages.
func (p *tablePane[T]) feedKey() string {
	return p.paneName + "?" + p.q
}

func (p *tablePane[T]) currentFeed() *feed.Feed[T] {
	return p.store.Get(p.feedKey(), p.fetch(p.q))
}

// sync pushes the current feed's state into the table widget.
func (p *tablePane[T]) sync() {
	f := p.currentFeed()
	p.tbl.SetRows(f.Rows())
	p.tbl.SetResolved(f.FirstPageResolved())
	p.tbl.SetLoading(f.Fetching())
	p.tbl.SetHasMore(f.HasNextPage())
	if err := f.Err(); err != nil {
		p.tbl.SetError(err.Error())
	} else {
		p.tbl.SetError("")
	}
}

// fetchCmd runs the blocking page fetch off the event loop.
func (p *tablePane[T]) fetchCmd(f *feed.Feed[T], req feed.Request) tea.Cmd {
	return func() tea.Msg {
		page, err := f.Do(context.Background(), req)
		return pageResult[T]{feed: f, req: req, page: page, err: err}
	}
}

// load issues the first-page fetch if this pane's feed is still empty.
func (p *tablePane[T]) load() tea.Cmd {
	f := p.currentFeed()
	req, ok := f.BeginFirst()
	p.sync()
	if !ok {
		return nil
	}
	return p.fetchCmd(f, req)
}

// reload discards the current feed and fetches from scratch.
func (p *tablePane[T]) reload() tea.Cmd {
	p.store.Reset(p.feedKey())
	p.trigger = table.Trigger{}
	p.tbl.InvalidateCache()
	p.tbl.ScrollToTop()
	return p.load()
}

// retry re-issues the failed fetch without discarding accepted pages. A
// failed first page goes through BeginFirst again; a failed follow-up page
// re-arms the prefetch trigger and fires it.
func (p *tablePane[T]) retry() tea.Cmd {
	f := p.currentFeed()
	if f.Status() != feed.StatusError {
		return nil
	}
	if !f.FirstPageResolved() {
		return p.load()
	}
	p.trigger.Rearm()
	return p.maybePrefetch()
}

// applyFilter switches the pane to the feed for the given query.
func (p *tablePane[T]) applyFilter(query string) tea.Cmd {
	if query == p.q {
		return nil
	}
	p.q = query
	p.trigger = table.Trigger{}
	p.tbl.InvalidateCache()
	p.tbl.ScrollToTop()
	return p.load()
}

func (p *tablePane[T]) query() string { return p.q }

// handle consumes page results for this pane's row type. The result is
// resolved against the feed that issued it; epoch and request-ID checks
// inside Resolve discard anything stale.
func (p *tablePane[T]) handle(raw tea.Msg) (tea.Cmd, bool) {
	r, ok := raw.(pageResult[T])
	if !ok {
		return nil, false
	}
	r.feed.Resolve(r.req, r.page, r.err)
	p.sync()
	return p.maybePrefetch(), true
}

// maybePrefetch fires the next-page fetch when the viewport is near the
// loaded end. The trigger collapses repeated signals for the same gap.
func (p *tablePane[T]) maybePrefetch() tea.Cmd {
	f := p.currentFeed()
	if !p.trigger.Fire(p.tbl.NearEnd(prefetchThreshold), f.HasNextPage(), f.Fetching(), f.Len()) {
		return nil
	}
	req, ok := f.BeginNext()
	if !ok {
		return nil
	}
	p.sync()
	return p.fetchCmd(f, req)
}

func (p *tablePane[T]) cursorUp() tea.Cmd {
	p.tbl.CursorUp()
	return p.maybePrefetch()
}

func (p *tablePane[T]) cursorDown() tea.Cmd {
	p.tbl.CursorDown()
	return p.maybePrefetch()
}

func (p *tablePane[T]) pageUp() tea.Cmd {
	p.tbl.PageUp()
	return p.maybePrefetch()
}

func (p *tablePane[T]) pageDown() tea.Cmd {
	p.tbl.PageDown()
	return p.maybePrefetch()
}

func (p *tablePane[T]) halfPageUp() tea.Cmd {
	p.tbl.HalfPageUp()
	return p.maybePrefetch()
}

func (p *tablePane[T]) halfPageDown() tea.Cmd {
	p.tbl.HalfPageDown()
	return p.maybePrefetch()
}

func (p *tablePane[T]) scrollTop() tea.Cmd {
	p.tbl.ScrollToTop()
	return nil
}

func (p *tablePane[T]) scrollBottom() tea.Cmd {
	p.tbl.ScrollToBottom()
	return p.maybePrefetch()
}

// forward hands mouse events to the table widget.
func (p *tablePane[T]) forward(raw tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.tbl, cmd = p.tbl.Update(raw)
	return tea.Batch(cmd, p.maybePrefetch())
}

// activate opens the detail overlay for the cursor row.
func (p *tablePane[T]) activate() tea.Cmd {
	item, ok := p.tbl.SelectedItem()
	if !ok {
		return nil
	}
	title, md := p.detail(item)
	return func() tea.Msg { return showDetail{title: title, markdown: md} }
}

func (p *tablePane[T]) view() string { return p.tbl.View() }

func (p *tablePane[T]) status() paneStatus {
	f := p.currentFeed()
	st := paneStatus{
		loaded:     f.Len(),
		total:      f.TotalCount(),
		totalKnown: f.FirstPageResolved(),
	}
	switch f.Status() {
	case feed.StatusLoadingFirst:
		st.state = "loading"
	case feed.StatusLoadingNext:
		st.state = "fetching more"
	}
	if err := f.Err(); err != nil {
		st.errText = err.Error()
	}
	return st
}

func (p *tablePane[T]) collisions() int { return p.tbl.KeyCollisions() }
