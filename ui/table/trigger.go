package table

// Trigger converts the level "viewport tail is near the end of the loaded
// rows" signal into at-most-one fetch request per gap. The signal itself may
// be recomputed on every frame; the trigger remembers the row count it last
// fired at and stays quiet until more rows arrive (the gap it fired for has
// been filled) or it is explicitly re-armed for a manual retry.
//
// Debouncing is not time-based: the feed's own single-flight guard covers the
// in-flight window, the fired-at row count covers the frames between a
// response landing and the next window computation.
type Trigger struct {
	fired   bool
	firedAt int
}

// Fire reports whether a next-page fetch should be issued now. nearEnd is the
// proximity signal, hasNext and fetching come from the feed, rowCount is the
// current length of the loaded row sequence.
func (t *Trigger) Fire(nearEnd, hasNext, fetching bool, rowCount int) bool {
	if t.fired && t.firedAt != rowCount {
		// The gap we fired for has been filled; re-arm.
		t.fired = false
	}
	if !nearEnd || !hasNext || fetching {
		return false
	}
	if t.fired {
		return false
	}
	t.fired = true
	t.firedAt = rowCount
	return true
}

// Rearm clears the fired latch so the next proximity signal fires again even
// though the row count is unchanged. Used for user-initiated retries after a
// failed fetch.
func (t *Trigger) Rearm() {
	t.fired = false
}
