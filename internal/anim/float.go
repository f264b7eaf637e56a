package anim

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float describes a gentle hover: a vertical bob plus a small wobble
// rotation. Offset is chosen once so several floating objects drift out of
// step with each other.
type Float struct {
	Speed             float32
	RotationIntensity float32
	FloatIntensity    float32
	Offset            float32
}

// NewFloat returns a Float with a random phase offset drawn from rng.
func NewFloat(speed, rotationIntensity, floatIntensity float32, rng *rand.Rand) Float {
	return Float{
		Speed:             speed,
		RotationIntensity: rotationIntensity,
		FloatIntensity:    floatIntensity,
		Offset:            rng.Float32() * 10000,
	}
}

// At returns the vertical offset and rotation at elapsed time t.
func (f Float) At(t float32) (float32, mgl32.Vec3) {
	ft := f.Offset + t
	rot := mgl32.Vec3{
		math32.Cos(ft*f.Speed/4) / 8 * f.RotationIntensity,
		math32.Sin(ft*f.Speed/4) / 8 * f.RotationIntensity,
		math32.Sin(ft*f.Speed/4) / 20 * f.RotationIntensity,
	}
	y := math32.Sin(ft*f.Speed/4) / 10 * f.FloatIntensity
	return y, rot
}
