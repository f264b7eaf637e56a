// Package particles builds the drifting particle backdrop behind the hero.
package particles

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/input"
	"Folio3D/internal/palette"
)

// DefaultCount is the number of particles in the home backdrop.
const DefaultCount = 50

// Backdrop plane behind the particles.
const (
	BackdropSize    = 40
	BackdropZ       = -5
	BackdropOpacity = 0.8
)

// BackdropColor fills the backdrop plane.
var BackdropColor = palette.Night

// GroupTilt scales the pointer into the whole field's rotation.
const GroupTilt = 0.1

// Particle is fixed at creation. Its pose at any time is computed from
// these values, never accumulated.
type Particle struct {
	Initial mgl32.Vec3
	Size    float32
	Color   mgl32.Vec3
	Speed   float32
	Phase   float32
}

// Position is Initial plus a small orbit driven by Speed and Phase.
func (p Particle) Position(t float32) mgl32.Vec3 {
	return p.Initial.Add(mgl32.Vec3{
		math32.Cos(t*p.Speed*0.5+p.Phase) * 0.2,
		math32.Sin(t*p.Speed+p.Phase) * 0.3,
		0,
	})
}

// Rotation is the Euler rotation shared by every particle at time t.
func (p Particle) Rotation(t float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Sin(t*0.5) * 0.2, 0, math32.Cos(t*0.3) * 0.2}
}

type Field struct {
	Particles []Particle
}

// NewField creates n particles (none for n <= 0) with random placement.
func NewField(n int, rng *rand.Rand) *Field {
	if n < 0 {
		n = 0
	}
	f := &Field{Particles: make([]Particle, n)}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			Initial: mgl32.Vec3{
				(rng.Float32() - 0.5) * 10,
				(rng.Float32() - 0.5) * 10,
				(rng.Float32() - 0.5) * 3,
			},
			Size:  rng.Float32()*0.3 + 0.1,
			Color: palette.Particles[i%len(palette.Particles)],
			Speed: rng.Float32()*0.5 + 0.1,
			Phase: rng.Float32() * 2 * math32.Pi,
		}
	}
	return f
}

// Len is the particle count.
func (f *Field) Len() int {
	return len(f.Particles)
}

// GroupRotation tilts the whole field toward the pointer.
func GroupRotation(p input.Pointer) mgl32.Vec3 {
	return mgl32.Vec3{p.Y * GroupTilt, p.X * GroupTilt, 0}
}
