// Package navigation models permission-gated tabs: which entries are
// visible, which one is active, and how the tab bar is presented for the
// available width.
package navigation

import (
	"fmt"

	"adminctl/internal/permission"
)

// State is the lifecycle of a tab set.
type State int

const (
	// Loading until the first permission fetch completes.
	Loading State = iota
	// Empty when the actor may see none of the entries.
	Empty
	// Ready when at least one entry is visible.
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Empty:
		return "Empty"
	case Ready:
		return "Ready"
	default:
		return "Unknown"
	}
}

// Tabs tracks the visible entries and the active index.
//
// Invariant: in Ready, 0 <= Active() < Len().
type Tabs struct {
	state      State
	entries    []permission.Entry
	active     int
	refetching bool
}

// NewTabs returns a tab set in Loading.
func NewTabs() *Tabs {
	return &Tabs{state: Loading}
}

// BeginRefetch marks a permission fetch in flight. The state is left as is:
// a Ready set keeps its entries and active tab until SetVisible decides.
func (t *Tabs) BeginRefetch() {
	t.refetching = true
}

// Refetching reports whether a permission fetch is in flight.
func (t *Tabs) Refetching() bool { return t.refetching }

// SetVisible applies the result of a permission fetch. An out-of-range
// active index is reset to 0.
func (t *Tabs) SetVisible(entries []permission.Entry) {
	t.refetching = false
	t.entries = append([]permission.Entry(nil), entries...)
	if len(t.entries) == 0 {
		t.state = Empty
		t.active = 0
		return
	}
	t.state = Ready
	if t.active < 0 || t.active >= len(t.entries) {
		t.active = 0
	}
}

// SelectTab activates index i. It is a no-op outside [0, Len()) and
// unless the set is Ready.
func (t *Tabs) SelectTab(i int) bool {
	if t.state != Ready || i < 0 || i >= len(t.entries) {
		return false
	}
	t.active = i
	return true
}

// SelectByPanel activates the first entry rendering panel.
func (t *Tabs) SelectByPanel(panel string) bool {
	for i, e := range t.entries {
		if e.Panel == panel {
			return t.SelectTab(i)
		}
	}
	return false
}

// Next moves one tab right without wrapping.
func (t *Tabs) Next() bool { return t.SelectTab(t.active + 1) }

// Prev moves one tab left without wrapping.
func (t *Tabs) Prev() bool { return t.SelectTab(t.active - 1) }

// Jump is the pager's jump-to-index control.
func (t *Tabs) Jump(i int) bool { return t.SelectTab(i) }

func (t *Tabs) State() State { return t.state }

func (t *Tabs) Len() int { return len(t.entries) }

func (t *Tabs) Active() int { return t.active }

// Entries returns the visible entries in declaration order.
func (t *Tabs) Entries() []permission.Entry {
	return append([]permission.Entry(nil), t.entries...)
}

// ActiveEntry returns the entry whose panel is rendered.
func (t *Tabs) ActiveEntry() (permission.Entry, bool) {
	if t.state != Ready {
		return permission.Entry{}, false
	}
	return t.entries[t.active], true
}

// PageLabel is the pager position, e.g. "2 / 3".
func (t *Tabs) PageLabel() string {
	if t.state != Ready {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", t.active+1, len(t.entries))
}

// HasPrev and HasNext drive the pager's prev/next affordances.
func (t *Tabs) HasPrev() bool { return t.state == Ready && t.active > 0 }

func (t *Tabs) HasNext() bool { return t.state == Ready && t.active < len(t.entries)-1 }
