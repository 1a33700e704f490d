package table

import (
	"strings"

	"github.com/officine/remise-tui/style"
)

// skeletonBlock is the placeholder cell fill.
const skeletonBlock = "▒"

// viewSkeleton renders the loading placeholder: the same column layout as
// the data rows, with a configurable row count. Cell widths vary per
// (row, column) purely for visual realism; the variation is deterministic so
// frames don't shimmer.
func (m Model[T]) viewSkeleton() string {
	bodyH := m.bodyHeight()
	widths := cellWidths(m.cols, m.tableWidth())

	rows := m.skeletonRows
	if rows > bodyH {
		rows = bodyH
	}

	lines := make([]string, bodyH)
	for r := 0; r < rows; r++ {
		cells := make([]string, len(m.cols))
		for c := range m.cols {
			w := skeletonWidth(r, c, widths[c])
			cells[c] = style.TableSkeleton.Render(strings.Repeat(skeletonBlock, w)) +
				strings.Repeat(" ", widths[c]-w)
		}
		lines[r] = strings.Join(cells, strings.Repeat(" ", colGap))
	}
	return strings.Join(lines, "\n")
}

// skeletonWidth picks a placeholder width between half and full cell width,
// varied by position.
func skeletonWidth(row, col, cell int) int {
	if cell <= 1 {
		return cell
	}
	span := cell / 2
	w := cell - (row*7+col*13)%(span+1)
	if w < 1 {
		w = 1
	}
	return w
}

// viewLoadError renders the inline failure state shown when the first page
// fetch failed and nothing is in flight. The skeleton would suggest progress
// that is not happening, so the error text takes its place.
func (m Model[T]) viewLoadError() string {
	bodyH := m.bodyHeight()
	lines := make([]string, bodyH)
	pos := bodyH / 3
	if pos >= bodyH {
		pos = 0
	}
	if bodyH > 0 {
		lines[pos] = style.StatusError.Render("  ✘ " + m.errText)
		if pos+1 < bodyH {
			lines[pos+1] = style.Hint.Render("    r to retry")
		}
	}
	return strings.Join(lines, "\n")
}

// viewBlank renders an empty body for the idle unresolved state, before any
// fetch has started.
func (m Model[T]) viewBlank() string {
	bodyH := m.bodyHeight()
	if bodyH <= 0 {
		return ""
	}
	return strings.Repeat("\n", bodyH-1)
}

// viewEmpty renders the distinct empty-result state shown once the first
// page has resolved with zero rows. It is not the skeleton and not a
// zero-height table: the body keeps its full height.
func (m Model[T]) viewEmpty() string {
	bodyH := m.bodyHeight()
	lines := make([]string, bodyH)
	pos := bodyH / 3
	if pos >= bodyH {
		pos = 0
	}
	if bodyH > 0 {
		lines[pos] = style.TableEmpty.Render("  " + m.emptyText)
	}
	return strings.Join(lines, "\n")
}
