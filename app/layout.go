package app

const (
	// minTableHeight keeps the table usable on tiny terminals.
	minTableHeight = 5

	// minTableWidth is enforced even if the terminal is narrower.
	minTableWidth = 40
)

// Layout holds computed dimensions for the current frame.
type Layout struct {
	TermWidth    int
	TermHeight   int
	HeaderHeight int // title line + separator
	TabsHeight   int
	FilterHeight int // 1 while the filter prompt is open, else 0
	StatusHeight int
	TableWidth   int
	TableHeight  int
}

// ComputeLayout calculates the layout dimensions based on terminal size.
// The table pane absorbs whatever height remains after the fixed chrome.
func ComputeLayout(termW, termH int, filtering bool) Layout {
	l := Layout{
		TermWidth:    termW,
		TermHeight:   termH,
		HeaderHeight: 2, // title line + separator
		TabsHeight:   1,
		StatusHeight: 1,
	}
	if filtering {
		l.FilterHeight = 1
	}

	l.TableWidth = termW
	if l.TableWidth < minTableWidth {
		l.TableWidth = minTableWidth
	}

	reserved := l.HeaderHeight + l.TabsHeight + l.FilterHeight + l.StatusHeight
	l.TableHeight = termH - reserved
	if l.TableHeight < minTableHeight {
		l.TableHeight = minTableHeight
	}

	return l
}
