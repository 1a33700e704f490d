package table

import "testing"

// ---------------------------------------------------------------------------
// VisibleRange
// ---------------------------------------------------------------------------

func TestVisibleRange_EmptyRowSet(t *testing.T) {
	start, end := VisibleRange(0, 480, 0, 48, 5)
	if start != 0 || end != 0 {
		t.Errorf("want [0,0), got [%d,%d)", start, end)
	}
}

func TestVisibleRange_NoOverscan(t *testing.T) {
	// 10 rows of height 1 in a 4-line viewport at offset 3: rows 3..6 visible.
	start, end := VisibleRange(3, 4, 10, 1, 0)
	if start != 3 || end != 7 {
		t.Errorf("want [3,7), got [%d,%d)", start, end)
	}
}

func TestVisibleRange_OverscanExtendsBothSides(t *testing.T) {
	start, end := VisibleRange(960, 480, 100, 48, 5)
	if start != 15 || end != 35 {
		t.Errorf("want [15,35), got [%d,%d)", start, end)
	}
}

func TestVisibleRange_ClampsAtStart(t *testing.T) {
	start, end := VisibleRange(0, 480, 100, 48, 5)
	if start != 0 {
		t.Errorf("start must clamp to 0, got %d", start)
	}
	if end != 15 {
		t.Errorf("want end=15, got %d", end)
	}
}

func TestVisibleRange_ClampsAtEnd(t *testing.T) {
	// Offset far past the content: clamps to the max offset first, then
	// the range clamps to the row count.
	start, end := VisibleRange(1<<30, 480, 100, 48, 5)
	if end != 100 {
		t.Errorf("end must clamp to row count, got %d", end)
	}
	if start < 0 || start > end {
		t.Errorf("invalid range [%d,%d)", start, end)
	}
}

func TestVisibleRange_NegativeOffsetTreatedAsZero(t *testing.T) {
	start, end := VisibleRange(-200, 480, 100, 48, 0)
	wantStart, wantEnd := VisibleRange(0, 480, 100, 48, 0)
	if start != wantStart || end != wantEnd {
		t.Errorf("want [%d,%d), got [%d,%d)", wantStart, wantEnd, start, end)
	}
}

func TestVisibleRange_Deterministic(t *testing.T) {
	s1, e1 := VisibleRange(960, 480, 100, 48, 5)
	s2, e2 := VisibleRange(960, 480, 100, 48, 5)
	if s1 != s2 || e1 != e2 {
		t.Errorf("identical inputs must yield identical ranges: [%d,%d) vs [%d,%d)", s1, e1, s2, e2)
	}
}

func TestVisibleRange_SizeBounded(t *testing.T) {
	// For any offset the window never exceeds
	// ceil(viewport/rowHeight) + 1 + 2*overscan rows.
	const (
		viewport  = 480
		rowHeight = 48
		overscan  = 5
		rows      = 1000
	)
	bound := (viewport+rowHeight-1)/rowHeight + 1 + 2*overscan
	for offset := 0; offset < rows*rowHeight; offset += 97 {
		start, end := VisibleRange(offset, viewport, rows, rowHeight, overscan)
		if end-start > bound {
			t.Fatalf("offset %d: window size %d exceeds bound %d", offset, end-start, bound)
		}
		if start < 0 || end > rows || start > end {
			t.Fatalf("offset %d: invalid range [%d,%d)", offset, start, end)
		}
	}
}

// ---------------------------------------------------------------------------
// ContentHeight / ClampOffset
// ---------------------------------------------------------------------------

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(0, 48); got != 0 {
		t.Errorf("want 0, got %d", got)
	}
	if got := ContentHeight(100, 48); got != 4800 {
		t.Errorf("want 4800, got %d", got)
	}
}

func TestClampOffset_WithinContent(t *testing.T) {
	if got := ClampOffset(960, 480, 100, 48); got != 960 {
		t.Errorf("in-range offset must be unchanged, got %d", got)
	}
}

func TestClampOffset_PastEnd(t *testing.T) {
	// Max offset = contentHeight - viewport = 4800 - 480.
	if got := ClampOffset(99999, 480, 100, 48); got != 4320 {
		t.Errorf("want 4320, got %d", got)
	}
}

func TestClampOffset_ContentSmallerThanViewport(t *testing.T) {
	if got := ClampOffset(50, 480, 3, 48); got != 0 {
		t.Errorf("want 0 when content fits, got %d", got)
	}
}
