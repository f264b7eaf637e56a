package showcase

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/anim"
	"Folio3D/internal/behaviour"
)

// Limit bounds both polar and azimuth rotation.
const Limit = math32.Pi / 4

const (
	springFPS      = 60
	springFriction = 26
)

// SpringConfig is a mass and tension pair.
type SpringConfig struct {
	Mass, Tension float64
}

var (
	DragSpring = SpringConfig{Mass: 2, Tension: 500}
	SnapSpring = SpringConfig{Mass: 4, Tension: 1500}
)

func (sc SpringConfig) damping() float64 {
	return springFriction / (2 * float64(math32.Sqrt(float32(sc.Mass*sc.Tension))))
}

func (sc SpringConfig) spring(from *anim.Spring) *anim.Spring {
	s := anim.NewSpring(springFPS, sc.Mass, sc.Tension, sc.damping())
	if from != nil {
		s.Pos, s.Vel = from.Pos, from.Vel
		s.SetTarget(from.Target())
	}
	return s
}

// Controls rotate the showcase while the pointer is held and spring back to
// rest on release.
type Controls struct {
	behaviour.BaseComponent
	polar    *anim.Spring
	azimuth  *anim.Spring
	dragging bool
}

func NewControls() *Controls {
	return &Controls{polar: DragSpring.spring(nil), azimuth: DragSpring.spring(nil)}
}

// Dragging reports whether a drag is in progress.
func (c *Controls) Dragging() bool {
	return c.dragging
}

// Drag adds a pointer movement, given as a fraction of the view size.
func (c *Controls) Drag(dx, dy float32) {
	if !c.dragging {
		c.dragging = true
		c.polar = DragSpring.spring(c.polar)
		c.azimuth = DragSpring.spring(c.azimuth)
	}
	c.azimuth.SetTarget(float64(anim.Clamp(float32(c.azimuth.Target())+dx*math32.Pi, -Limit, Limit)))
	c.polar.SetTarget(float64(anim.Clamp(float32(c.polar.Target())+dy*math32.Pi, -Limit, Limit)))
}

// Release snaps back to rest.
func (c *Controls) Release() {
	c.dragging = false
	c.polar = SnapSpring.spring(c.polar)
	c.azimuth = SnapSpring.spring(c.azimuth)
	c.polar.SetTarget(0)
	c.azimuth.SetTarget(0)
}

// Target is the (polar, azimuth) pair being approached.
func (c *Controls) Target() (float32, float32) {
	return float32(c.polar.Target()), float32(c.azimuth.Target())
}

// Rotation is the current group rotation.
func (c *Controls) Rotation() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.polar.Pos), float32(c.azimuth.Pos), 0}
}

// Settled reports whether both axes are at rest.
func (c *Controls) Settled() bool {
	return c.polar.Settled() && c.azimuth.Settled()
}

func (c *Controls) Step() {
	c.polar.Step()
	c.azimuth.Step()
}

func (c *Controls) Update(*behaviour.Frame) {
	c.Step()
	c.GetGameObject().Transform.SetEuler(c.Rotation())
}
