package table

// Column describes one table column for rows of type T. Columns are created
// by the calling page and consumed read-only by both the row renderer and the
// skeleton, so switching between placeholder and real rows never causes a
// layout jump.
type Column[T any] struct {
	// Key is a stable identifier for the column.
	Key string

	// Title is the header cell text.
	Title string

	// Width is the fixed cell width in terminal cells. Columns with Width 0
	// share the space left over after the fixed columns.
	Width int

	// Render produces the cell text for an item. A nil Render yields an
	// empty cell. The result must be a single line.
	Render func(item T) string
}

// cellWidths resolves the concrete width of every column for a total table
// width. Fixed widths are honored; flexible columns split the remainder.
// Every column gets at least one cell so the header stays structurally
// complete even on narrow terminals.
func cellWidths[T any](cols []Column[T], total int) []int {
	widths := make([]int, len(cols))
	fixed := 0
	flex := 0
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed += c.Width + colGap
		} else {
			flex++
		}
	}
	if flex > 0 {
		rest := total - fixed - (flex-1)*colGap
		per := rest / flex
		if per < 1 {
			per = 1
		}
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = per
			}
		}
	}
	for i := range widths {
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	return widths
}
