package page

import (
	"time"

	"Folio3D/internal/content"
)

// DefaultLookAhead is how far below the scroll offset the tracker probes.
const DefaultLookAhead = 300

// Tracker decides which section is active for a scroll offset.
type Tracker struct {
	Order     []content.SectionID
	LookAhead float64
	active    content.SectionID
}

func NewTracker(order []content.SectionID, lookAhead float64) *Tracker {
	return &Tracker{Order: order, LookAhead: lookAhead, active: content.Home}
}

// SetOrder replaces the section order. An active section missing from the
// new order falls back to home.
func (t *Tracker) SetOrder(order []content.SectionID) {
	t.Order = order
	for _, id := range order {
		if id == t.active {
			return
		}
	}
	t.active = content.Home
}

// Active is the last decided section.
func (t *Tracker) Active() content.SectionID {
	return t.active
}

// Update probes at scrollY+LookAhead. The first section in Order whose span
// contains the probe becomes active; with no match the previous value stays.
func (t *Tracker) Update(scrollY float64, layout *Layout) content.SectionID {
	probe := scrollY + t.LookAhead
	for _, id := range t.Order {
		sec, ok := layout.Find(id)
		if !ok {
			continue
		}
		if sec.Contains(probe) {
			t.active = id
			return id
		}
	}
	return t.active
}

// Scrolled is the navbar's compact state.
func Scrolled(scrollY, threshold float64) bool {
	return scrollY > threshold
}

// Highlighted returns the index of the nav item for active, or -1.
func Highlighted(nav []content.NavItem, active content.SectionID) int {
	for i, n := range nav {
		if n.Section == active {
			return i
		}
	}
	return -1
}

// Debouncer collapses a burst of triggers into one firing after Wait of quiet.
type Debouncer struct {
	Wait    time.Duration
	last    time.Duration
	pending bool
}

// Trigger records activity at now.
func (d *Debouncer) Trigger(now time.Duration) {
	d.last = now
	d.pending = true
}

// Ready reports true once per burst, when Wait has passed since the last Trigger.
func (d *Debouncer) Ready(now time.Duration) bool {
	if !d.pending || now-d.last < d.Wait {
		return false
	}
	d.pending = false
	return true
}

// Pending reports whether a trigger is waiting to fire.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Title is the window title for active: the owner and the highlighted nav
// label, then detail when set. An empty active shows the owner alone.
func Title(owner string, nav []content.NavItem, active content.SectionID, detail string) string {
	title := owner
	if active != "" {
		label := string(active)
		if i := Highlighted(nav, active); i >= 0 {
			label = nav[i].Name
		}
		title += " — " + label
	}
	if detail != "" {
		title += " | " + detail
	}
	return title
}
