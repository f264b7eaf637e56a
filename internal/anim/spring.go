package anim

import (
	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"
)

// settleEpsilon is the distance and speed below which a spring counts as at rest.
const settleEpsilon = 1e-4

// Spring drives a single value toward a target with damped harmonic motion.
// It is configured the way UI animation libraries are: a mass and a tension,
// from which the angular frequency sqrt(tension/mass) is derived.
type Spring struct {
	spring harmonica.Spring
	Pos    float64
	Vel    float64
	target float64
}

// NewSpring builds a spring stepped at fps frames per second.
// Damping is a ratio: below 1 overshoots, 1 is critical.
func NewSpring(fps int, mass, tension, damping float64) *Spring {
	if mass <= 0 {
		mass = 1
	}
	freq := float64(math32.Sqrt(float32(tension / mass)))
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), freq, damping)}
}

// SetTarget changes the equilibrium the spring moves toward.
func (s *Spring) SetTarget(target float64) {
	s.target = target
}

// Target returns the current equilibrium.
func (s *Spring) Target() float64 {
	return s.target
}

// Step advances one frame and returns the new position.
func (s *Spring) Step() float64 {
	s.Pos, s.Vel = s.spring.Update(s.Pos, s.Vel, s.target)
	return s.Pos
}

// Settled reports whether the spring has effectively reached its target.
func (s *Spring) Settled() bool {
	d := s.Pos - s.target
	return d < settleEpsilon && d > -settleEpsilon && s.Vel < settleEpsilon && s.Vel > -settleEpsilon
}

// Snap jumps straight to the target with no velocity.
func (s *Spring) Snap() {
	s.Pos = s.target
	s.Vel = 0
}
