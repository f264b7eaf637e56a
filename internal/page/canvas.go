package page

import (
	"Folio3D/internal/content"
	"Folio3D/internal/input"
)

// Canvas places a 3D viewport inside a section. Left and Right are
// fractions of the window width.
type Canvas struct {
	Section     content.SectionID
	Inset       float64 // from the section top; ignored when Center is set
	Height      float64 // 0 fills the section below Inset
	Center      bool
	Left, Right float64
}

// CanvasSpan returns the canvas in document pixels, clamped to its section.
func (l *Layout) CanvasSpan(c Canvas) (Span, bool) {
	sec, ok := l.Find(c.Section)
	if !ok {
		return Span{}, false
	}
	h := c.Height
	if h <= 0 || h > sec.Height {
		h = sec.Height
	}
	inset := c.Inset
	if c.Center {
		inset = (sec.Height - h) / 2
	}
	if inset+h > sec.Height {
		inset = sec.Height - h
	}
	return Span{Top: sec.Top + inset, Height: h}, true
}

// CanvasRect returns the canvas in window pixels for a window width wide.
// The rect is not clipped: its top may be above the window. visible is
// false when no part of it is on screen.
func (l *Layout) CanvasRect(c Canvas, width float64) (rect input.Rect, visible bool) {
	span, ok := l.CanvasSpan(c)
	if !ok {
		return input.Rect{}, false
	}
	_, _, visible = l.Screen(span)
	left := c.Left * width
	return input.Rect{
		Left:   left,
		Top:    l.Unclipped(span),
		Width:  c.Right*width - left,
		Height: span.Height,
	}, visible
}
