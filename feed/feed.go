// Package feed implements cursor-paginated data feeds for remise-tui.
//
// A Feed accumulates pages fetched from a backend endpoint behind an opaque
// continuation cursor and exposes the flattened row sequence to the table
// renderer. The package is UI-framework free: fetches are split into a
// Begin/Resolve pair so the blocking call can run inside whatever async
// boundary the caller uses (a tea.Cmd goroutine in this application).
//
// Key properties:
//   - At most one outstanding request per feed at any time. BeginNext while a
//     request is in flight is a no-op, which is what makes rapid scrolling
//     safe: two prefetch signals for the same gap collapse into one fetch.
//   - Pages are applied in issuance order; with the single-flight guard the
//     two orders are trivially equal.
//   - Reset bumps an epoch counter. A late response carrying a stale epoch is
//     discarded in Resolve, so a slow fetch for a superseded query key can
//     never corrupt the fresh feed.
//   - The total row count is read once, from the first accepted page, and is
//     not reconciled against later pages.
package feed

import (
	"context"

	"github.com/google/uuid"
)

// Cursor is an opaque continuation token. The empty string means "no cursor":
// as a request parameter it asks for the first page, as a page field it marks
// the end of the result set.
type Cursor = string

// Page is one fetched slice of the result set, mirroring the backend's
// paginated response shape.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor Cursor `json:"next_cursor"`
	TotalCount int    `json:"total_count"`
}

// FetchFunc retrieves one page for the given cursor. Implementations are
// supplied per feed; the feed places no constraint on the transport.
type FetchFunc[T any] func(ctx context.Context, cursor Cursor) (Page[T], error)

// Status is the feed lifecycle state.
type Status int

const (
	StatusIdle         Status = iota // nothing fetched, nothing in flight
	StatusLoadingFirst               // first page in flight
	StatusLoadingNext                // follow-up page in flight
	StatusReady                      // at least one page accepted
	StatusError                      // newest request failed; accepted pages remain
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoadingFirst:
		return "loading"
	case StatusLoadingNext:
		return "loading more"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Request is the token handed out by BeginFirst/BeginNext. It identifies one
// issued fetch so Resolve can reject responses that no longer belong to the
// feed's current life (stale epoch) or were superseded.
type Request struct {
	ID     string
	Epoch  uint64
	Cursor Cursor
	First  bool
}

// Feed accumulates pages for a single query key.
// The zero value is not usable; construct with New.
//
// Feed is written for a single-threaded event loop: all methods must be
// called from the same goroutine. Only the FetchFunc itself runs elsewhere.
type Feed[T any] struct {
	fetch FetchFunc[T]

	pages []Page[T]
	rows  []T // flattened view, maintained on append

	total    int
	totalSet bool

	status   Status
	err      error
	epoch    uint64
	inflight string // ID of the outstanding request, "" when none

	subject Subject
}

// New constructs an empty feed around the given fetch function.
func New[T any](fetch FetchFunc[T]) *Feed[T] {
	return &Feed[T]{fetch: fetch}
}

// BeginFirst issues the initial request (cursor = none). It reports ok=false
// when a request is already in flight or a first page has been accepted;
// after a failed first fetch it may be called again to retry.
func (f *Feed[T]) BeginFirst() (Request, bool) {
	if f.inflight != "" || len(f.pages) > 0 {
		return Request{}, false
	}
	req := Request{ID: uuid.NewString(), Epoch: f.epoch, First: true}
	f.inflight = req.ID
	f.status = StatusLoadingFirst
	f.subject.Notify()
	return req, true
}

// BeginNext issues a request for the page after the last accepted one. It
// reports ok=false when a request is in flight, no page has been accepted
// yet, or the last page's cursor marks the end of the result set.
func (f *Feed[T]) BeginNext() (Request, bool) {
	if f.inflight != "" || !f.HasNextPage() {
		return Request{}, false
	}
	req := Request{
		ID:     uuid.NewString(),
		Epoch:  f.epoch,
		Cursor: f.pages[len(f.pages)-1].NextCursor,
	}
	f.inflight = req.ID
	f.status = StatusLoadingNext
	f.subject.Notify()
	return req, true
}

// Do runs the feed's fetch function for a previously begun request. It is a
// plain blocking call intended for the caller's async boundary.
func (f *Feed[T]) Do(ctx context.Context, req Request) (Page[T], error) {
	return f.fetch(ctx, req.Cursor)
}

// Resolve applies the outcome of a request. Responses from before the last
// Reset, or that do not match the outstanding request, are discarded.
// It reports whether a page was appended.
func (f *Feed[T]) Resolve(req Request, page Page[T], err error) bool {
	if req.Epoch != f.epoch || req.ID != f.inflight {
		return false
	}
	f.inflight = ""
	if err != nil {
		f.status = StatusError
		f.err = err
		f.subject.Notify()
		return false
	}
	f.pages = append(f.pages, page)
	f.rows = append(f.rows, page.Items...)
	if !f.totalSet {
		// Authoritative count comes from the first page only.
		f.total = page.TotalCount
		f.totalSet = true
	}
	f.status = StatusReady
	f.err = nil
	f.subject.Notify()
	return true
}

// Reset discards all pages and cursors and returns the feed to its initial
// state. Any response for a request issued before the reset will be ignored.
func (f *Feed[T]) Reset() {
	f.epoch++
	f.pages = nil
	f.rows = nil
	f.total = 0
	f.totalSet = false
	f.status = StatusIdle
	f.err = nil
	f.inflight = ""
	f.subject.Notify()
}

// Rows returns the flattened row sequence in page order. The slice is owned
// by the feed; callers must treat it as read-only.
func (f *Feed[T]) Rows() []T { return f.rows }

// Len returns the number of rows accepted so far.
func (f *Feed[T]) Len() int { return len(f.rows) }

// PageCount returns the number of accepted pages.
func (f *Feed[T]) PageCount() int { return len(f.pages) }

// TotalCount returns the backend's total result count as reported by the
// first page, or the loaded row count before any page has been accepted.
func (f *Feed[T]) TotalCount() int {
	if !f.totalSet {
		return len(f.rows)
	}
	return f.total
}

// HasNextPage reports whether a further page can be requested.
func (f *Feed[T]) HasNextPage() bool {
	if len(f.pages) == 0 {
		return false
	}
	return f.pages[len(f.pages)-1].NextCursor != ""
}

// FirstPageResolved reports whether the initial fetch has completed
// successfully, i.e. whether an empty Rows() means "empty result" rather
// than "nothing loaded yet".
func (f *Feed[T]) FirstPageResolved() bool { return len(f.pages) > 0 }

// Fetching reports whether a request is currently outstanding.
func (f *Feed[T]) Fetching() bool { return f.inflight != "" }

// Status returns the feed lifecycle state.
func (f *Feed[T]) Status() Status { return f.status }

// Err returns the error of the newest failed request, or nil.
func (f *Feed[T]) Err() error { return f.err }

// Subscribe registers fn to be called after every accepted state change.
// The returned function unsubscribes.
func (f *Feed[T]) Subscribe(fn func()) func() {
	return f.subject.Subscribe(fn)
}
