package view

import (
	"fmt"
	"strings"

	"adminctl/internal/navigation"
	"adminctl/internal/permission"
	"adminctl/internal/tui/design"
	"adminctl/internal/tui/model"

	"github.com/mattn/go-runewidth"
)

const (
	tabGap     = 1
	tabPadding = 2 // TabStyle pads one cell each side
	arrowCells = 2 // "‹ " and " ›"
)

func tabLabel(i int, e permission.Entry) string {
	return fmt.Sprintf("%d %s", i+1, e.Name)
}

// TabLayout returns the cell extents [start, end) of every tab in the
// windowed strip and the total strip width.
func TabLayout(entries []permission.Entry) (starts, ends []int, total int) {
	starts = make([]int, len(entries))
	ends = make([]int, len(entries))
	pos := 0
	for i, e := range entries {
		w := runewidth.StringWidth(tabLabel(i, e)) + tabPadding
		starts[i] = pos
		ends[i] = pos + w
		total = ends[i]
		pos = ends[i] + tabGap
	}
	return starts, ends, total
}

// StripWidth is the number of cells available to tabs between the scroll
// arrows.
func StripWidth(width int) int {
	w := width - 2*arrowCells
	if w < 1 {
		w = 1
	}
	return w
}

func renderTabBar(m *model.Model) string {
	if m.Tabs.State() != navigation.Ready {
		return ""
	}
	if m.Viewport.Mode() == navigation.ModePager {
		return renderPager(m.Tabs)
	}
	return renderStrip(m.Tabs, m.Strip, m.Width)
}

// renderStrip shows the tabs that fit the strip window, with arrows when
// more tabs are hidden on either side.
func renderStrip(tabs *navigation.Tabs, strip navigation.Strip, width int) string {
	entries := tabs.Entries()
	starts, ends, _ := TabLayout(entries)
	lo := strip.Offset()
	hi := lo + StripWidth(width)

	var parts []string
	for i, e := range entries {
		if starts[i] < lo || ends[i] > hi {
			continue
		}
		style := design.TabStyle
		if i == tabs.Active() {
			style = design.TabActiveStyle
		}
		parts = append(parts, style.Render(tabLabel(i, e)))
	}

	left, right := "  ", "  "
	if strip.CanScrollLeft() {
		left = design.TabArrowStyle.Render("‹") + " "
	}
	if strip.CanScrollRight() {
		right = " " + design.TabArrowStyle.Render("›")
	}
	return left + strings.Join(parts, strings.Repeat(" ", tabGap)) + right
}

// renderPager shows only the active tab with prev/next affordances and
// the page position.
func renderPager(tabs *navigation.Tabs) string {
	e, ok := tabs.ActiveEntry()
	if !ok {
		return ""
	}
	prev, next := "  ", "  "
	if tabs.HasPrev() {
		prev = design.TabArrowStyle.Render("‹") + " "
	}
	if tabs.HasNext() {
		next = " " + design.TabArrowStyle.Render("›")
	}
	return prev + design.TabActiveStyle.Render(e.Name) + " " +
		design.DimStyle.Render(tabs.PageLabel()) + next
}

// renderSubTabs draws the nested settings tabs in the current mode.
func renderSubTabs(tabs *navigation.Tabs, mode navigation.Mode) string {
	if mode == navigation.ModePager {
		return renderPager(tabs)
	}
	var parts []string
	for i, e := range tabs.Entries() {
		style := design.TabStyle
		if i == tabs.Active() {
			style = design.TabActiveStyle
		}
		parts = append(parts, style.Render(e.Name))
	}
	return strings.Join(parts, " ")
}
