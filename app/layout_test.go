package app

import "testing"

func TestComputeLayout_HeightsSum(t *testing.T) {
	l := ComputeLayout(120, 40, false)
	chrome := l.HeaderHeight + l.TabsHeight + l.FilterHeight + l.StatusHeight
	if l.TableHeight != 40-chrome {
		t.Errorf("table must absorb the remainder: want %d, got %d", 40-chrome, l.TableHeight)
	}
	if l.FilterHeight != 0 {
		t.Errorf("filter row must be absent while not filtering, got %d", l.FilterHeight)
	}
}

func TestComputeLayout_FilteringReservesARow(t *testing.T) {
	plain := ComputeLayout(120, 40, false)
	filtering := ComputeLayout(120, 40, true)
	if filtering.FilterHeight != 1 {
		t.Errorf("want filter height 1, got %d", filtering.FilterHeight)
	}
	if filtering.TableHeight != plain.TableHeight-1 {
		t.Errorf("filter row must come out of the table height: %d vs %d",
			filtering.TableHeight, plain.TableHeight)
	}
}

func TestComputeLayout_TinyTerminalClamps(t *testing.T) {
	l := ComputeLayout(20, 6, false)
	if l.TableHeight < minTableHeight {
		t.Errorf("want table height >= %d, got %d", minTableHeight, l.TableHeight)
	}
	if l.TableWidth < minTableWidth {
		t.Errorf("want table width >= %d, got %d", minTableWidth, l.TableWidth)
	}
}
