package table

// VisibleRange maps scroll state onto the contiguous index window [start, end)
// of rows that must be materialized: every row whose vertical extent
// intersects the viewport, extended by overscan rows on each side, clamped to
// [0, rowCount).
//
// The function is pure (identical inputs always yield the identical range)
// and is the only place scroll geometry is computed, so the renderer, the
// scrollbar and the prefetch trigger cannot disagree about what is visible.
//
// scrollOffset and viewportSize are in lines, rowHeight is lines per row.
// A scrollOffset past the end of the content clamps to the last valid window.
func VisibleRange(scrollOffset, viewportSize, rowCount, rowHeight, overscan int) (start, end int) {
	if rowCount <= 0 || viewportSize <= 0 || rowHeight <= 0 {
		return 0, 0
	}
	if overscan < 0 {
		overscan = 0
	}

	maxOffset := ContentHeight(rowCount, rowHeight) - viewportSize
	if maxOffset < 0 {
		maxOffset = 0
	}
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	start = scrollOffset/rowHeight - overscan
	if start < 0 {
		start = 0
	}
	// First index past the viewport, rounded up to whole rows.
	end = (scrollOffset+viewportSize+rowHeight-1)/rowHeight + overscan
	if end > rowCount {
		end = rowCount
	}
	if start > end {
		start = end
	}
	return start, end
}

// ContentHeight returns the total scrollable height in lines for the fixed
// row-height case. The scroll container reserves exactly this extent.
func ContentHeight(rowCount, rowHeight int) int {
	if rowCount < 0 || rowHeight < 0 {
		return 0
	}
	return rowCount * rowHeight
}

// ClampOffset limits a scroll offset to the valid range for the given
// content and viewport extents.
func ClampOffset(offset, viewportSize, rowCount, rowHeight int) int {
	maxOffset := ContentHeight(rowCount, rowHeight) - viewportSize
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
