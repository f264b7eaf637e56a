package page

import (
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/anim"
)

// DefaultBottomMargin shrinks the viewport so elements reveal a little after
// they scroll into view.
const DefaultBottomMargin = -100

// springFPS is the sampling rate of precomputed spring curves.
const springFPS = 60

type Options struct {
	Delay    time.Duration
	Duration time.Duration
	// From is the offset the element starts at before sliding into place.
	From mgl32.Vec2
	// BottomMargin grows (positive) or shrinks (negative) the viewport edges.
	BottomMargin float64
	// Spring replaces the cubic ease with a slightly underdamped spring.
	Spring bool
}

// HeadingOptions is used for section headings.
func HeadingOptions() Options {
	return Options{Duration: 600 * time.Millisecond, BottomMargin: DefaultBottomMargin}
}

// CardOptions staggers the i-th card in a row.
func CardOptions(i int) Options {
	return Options{
		Delay:        200*time.Millisecond + time.Duration(i)*100*time.Millisecond,
		Duration:     500 * time.Millisecond,
		From:         mgl32.Vec2{0, 30},
		BottomMargin: DefaultBottomMargin,
	}
}

// SideOptions slides in from the left (left=true) or right.
func SideOptions(left bool) Options {
	x := float32(50)
	if left {
		x = -50
	}
	return Options{
		Duration:     600 * time.Millisecond,
		From:         mgl32.Vec2{x, 0},
		BottomMargin: DefaultBottomMargin,
	}
}

type element struct {
	opts     Options
	revealed bool
	at       time.Duration
	curve    []float32
}

// Reveal latches elements the first time they enter the viewport. Once
// revealed an element never hides again.
type Reveal struct {
	mu       sync.Mutex
	elements map[string]*element
	onReveal func(id string)
}

// NewReveal creates a controller. onReveal, if set, runs once per element.
func NewReveal(onReveal func(id string)) *Reveal {
	return &Reveal{elements: make(map[string]*element), onReveal: onReveal}
}

// Observe starts tracking id. Re-observing an element keeps its latch.
func (r *Reveal) Observe(id string, opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.elements[id]
	if !ok {
		e = &element{}
		r.elements[id] = e
	}
	e.opts = opts
	switch {
	case !opts.Spring:
		e.curve = nil
	case e.curve == nil:
		e.curve = springCurve()
	}
}

// Unobserve stops tracking id.
func (r *Reveal) Unobserve(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.elements, id)
}

// Close drops every observation.
func (r *Reveal) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elements = make(map[string]*element)
}

// Update latches every observed element whose bounds intersect the viewport
// adjusted by its margin. It returns the ids revealed by this call.
func (r *Reveal) Update(viewport Span, bounds map[string]Span, now time.Duration) []string {
	r.mu.Lock()
	var fired []string
	for id, e := range r.elements {
		if e.revealed {
			continue
		}
		b, ok := bounds[id]
		if !ok {
			continue
		}
		m := e.opts.BottomMargin
		root := Span{Top: viewport.Top - m, Height: viewport.Height + 2*m}
		if root.Height <= 0 || !b.Intersects(root) {
			continue
		}
		e.revealed = true
		e.at = now
		fired = append(fired, id)
	}
	cb := r.onReveal
	r.mu.Unlock()

	if cb != nil {
		for _, id := range fired {
			cb(id)
		}
	}
	return fired
}

// Revealed reports whether id has latched.
func (r *Reveal) Revealed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.elements[id]
	return ok && e.revealed
}

// Progress returns the element's opacity and offset at now. Unrevealed and
// unknown elements are hidden at their starting offset.
func (r *Reveal) Progress(id string, now time.Duration) (float32, mgl32.Vec2) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.elements[id]
	if !ok {
		return 0, mgl32.Vec2{}
	}
	if !e.revealed {
		return 0, e.opts.From
	}
	p := e.progress(now - e.at)
	return anim.Clamp(p, 0, 1), e.opts.From.Mul(1 - p)
}

func (e *element) progress(since time.Duration) float32 {
	t := since - e.opts.Delay
	if t <= 0 {
		return 0
	}
	if e.curve != nil {
		i := int(t.Seconds() * springFPS)
		if i >= len(e.curve) {
			return 1
		}
		return e.curve[i]
	}
	if e.opts.Duration <= 0 {
		return 1
	}
	return anim.EaseOutCubic(float32(t) / float32(e.opts.Duration))
}

// springCurve samples a 0→1 spring until it settles.
func springCurve() []float32 {
	s := anim.NewSpring(springFPS, 1, 170, 0.7)
	s.SetTarget(1)
	curve := []float32{0}
	for i := 0; i < springFPS*3 && !s.Settled(); i++ {
		curve = append(curve, float32(s.Step()))
	}
	return curve
}
