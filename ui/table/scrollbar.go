package table

import "github.com/officine/remise-tui/style"

const (
	scrollTrackChar = "│"
	scrollThumbChar = "█"
)

// scrollbarColumn renders a vertical scrollbar as one string per body line.
// The thumb is positioned and sized proportionally to the visible region
// within the total content extent reported by ContentHeight. When the
// content fits the viewport every line is a blank cell, keeping the column
// width stable.
func scrollbarColumn(viewportHeight, contentHeight, offset int) []string {
	rows := make([]string, viewportHeight)
	if viewportHeight <= 0 || contentHeight <= viewportHeight {
		for i := range rows {
			rows[i] = " "
		}
		return rows
	}

	thumbH := viewportHeight * viewportHeight / contentHeight
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > viewportHeight {
		thumbH = viewportHeight
	}

	scrollable := contentHeight - viewportHeight
	thumbTop := 0
	if scrollable > 0 {
		thumbTop = offset * (viewportHeight - thumbH) / scrollable
	}
	if thumbTop+thumbH > viewportHeight {
		thumbTop = viewportHeight - thumbH
	}
	if thumbTop < 0 {
		thumbTop = 0
	}

	for i := range rows {
		if i >= thumbTop && i < thumbTop+thumbH {
			rows[i] = style.ScrollbarThumb.Render(scrollThumbChar)
		} else {
			rows[i] = style.ScrollbarTrack.Render(scrollTrackChar)
		}
	}
	return rows
}
