package input

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

// Rect is a tracked screen region in window pixels, origin top-left.
type Rect struct {
	Left, Top, Width, Height float64
}

// Contains reports whether the pixel position lies inside the region.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.Left && px < r.Left+r.Width && py >= r.Top && py < r.Top+r.Height
}

// Pointer is a normalized pointer position in [-1,1] with y pointing up.
// Seen is false until the first pointer-move has been observed.
type Pointer struct {
	X, Y float32
	Seen bool
}

// Vec2 returns the position as a vector.
func (p Pointer) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{p.X, p.Y}
}

// Normalize maps a window pixel position to the region's [-1,1] space.
func Normalize(px, py float64, region Rect) Pointer {
	if region.Width <= 0 || region.Height <= 0 {
		return Pointer{}
	}
	x := (px-region.Left)/region.Width*2 - 1
	y := -((py-region.Top)/region.Height)*2 + 1
	return Pointer{
		X:    mgl32.Clamp(float32(x), -1, 1),
		Y:    mgl32.Clamp(float32(y), -1, 1),
		Seen: true,
	}
}

// PointerState holds the latest pointer. The input callback is the only
// writer; render-side readers take a copy with Snapshot once per frame.
type PointerState struct {
	v atomic.Value
}

// Set publishes a new pointer value.
func (s *PointerState) Set(p Pointer) {
	s.v.Store(p)
}

// Snapshot returns the latest pointer, or the zero pointer if none was set.
func (s *PointerState) Snapshot() Pointer {
	p, _ := s.v.Load().(Pointer)
	return p
}
