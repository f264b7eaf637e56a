// Package page models the scrolling document: where each section sits,
// which one is active, and which elements have been revealed.
package page

import (
	"math"

	"Folio3D/internal/content"
)

// Span is a vertical range in document pixels.
type Span struct {
	Top, Height float64
}

func (s Span) Bottom() float64 { return s.Top + s.Height }

// Contains reports whether y lies in [Top, Top+Height).
func (s Span) Contains(y float64) bool {
	return y >= s.Top && y < s.Bottom()
}

// Intersects reports whether the two spans overlap.
func (s Span) Intersects(o Span) bool {
	return s.Top < o.Bottom() && o.Top < s.Bottom()
}

type Section struct {
	ID content.SectionID
	Span
}

// Layout is the virtual document: sections stacked top to bottom and a
// viewport scrolled over them.
type Layout struct {
	Sections []Section
	Viewport float64
	ScrollY  float64
}

// NewLayout stacks sections in order using heights; sections without a
// height are left out of the geometry.
func NewLayout(order []content.SectionID, heights map[string]float64, viewport float64) *Layout {
	l := &Layout{Viewport: viewport}
	l.Restack(order, heights)
	return l
}

// Restack replaces the section geometry and clamps the scroll offset to the
// new document.
func (l *Layout) Restack(order []content.SectionID, heights map[string]float64) {
	l.Sections = nil
	var top float64
	for _, id := range order {
		h, ok := heights[string(id)]
		if !ok || h <= 0 {
			continue
		}
		l.Sections = append(l.Sections, Section{ID: id, Span: Span{Top: top, Height: h}})
		top += h
	}
	l.ScrollTo(l.ScrollY)
}

// HeadingInset and HeadingHeight place a section's heading below its top edge.
const (
	HeadingInset  = 100
	HeadingHeight = 100
)

// Heading is the span of the section's heading, clipped to the section.
func (s Section) Heading() Span {
	top := s.Top + math.Min(HeadingInset, s.Height)
	return Span{Top: top, Height: math.Min(HeadingHeight, s.Bottom()-top)}
}

// HeadingID is the reveal id of a section heading.
func HeadingID(id content.SectionID) string {
	return "heading:" + string(id)
}

// HeadingBounds maps every section heading's reveal id to its span.
func (l *Layout) HeadingBounds() map[string]Span {
	out := make(map[string]Span, len(l.Sections))
	for _, s := range l.Sections {
		out[HeadingID(s.ID)] = s.Heading()
	}
	return out
}

// Total is the document height.
func (l *Layout) Total() float64 {
	if len(l.Sections) == 0 {
		return 0
	}
	return l.Sections[len(l.Sections)-1].Bottom()
}

// MaxScroll is the largest valid scroll offset.
func (l *Layout) MaxScroll() float64 {
	m := l.Total() - l.Viewport
	if m < 0 {
		return 0
	}
	return m
}

// ScrollTo sets the scroll offset, clamped to the document.
func (l *Layout) ScrollTo(y float64) float64 {
	if y < 0 {
		y = 0
	}
	if m := l.MaxScroll(); y > m {
		y = m
	}
	l.ScrollY = y
	return y
}

// ScrollBy moves the scroll offset by dy, clamped to the document.
func (l *Layout) ScrollBy(dy float64) float64 {
	return l.ScrollTo(l.ScrollY + dy)
}

// Find returns the geometry of section id.
func (l *Layout) Find(id content.SectionID) (Section, bool) {
	for _, s := range l.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// View is the visible document range.
func (l *Layout) View() Span {
	return Span{Top: l.ScrollY, Height: l.Viewport}
}

// Visible lists the sections intersecting the viewport, in document order.
func (l *Layout) Visible() []content.SectionID {
	view := l.View()
	var ids []content.SectionID
	for _, s := range l.Sections {
		if s.Intersects(view) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Screen clips span to the viewport and returns it relative to the top of
// the window. ok is false when no part of span is on screen.
func (l *Layout) Screen(span Span) (top, height float64, ok bool) {
	view := l.View()
	if !span.Intersects(view) {
		return 0, 0, false
	}
	t := span.Top
	if t < view.Top {
		t = view.Top
	}
	b := span.Bottom()
	if b > view.Bottom() {
		b = view.Bottom()
	}
	return t - view.Top, b - t, true
}

// Unclipped returns span's window-relative top, which may be negative or
// past the viewport.
func (l *Layout) Unclipped(span Span) float64 {
	return span.Top - l.ScrollY
}
