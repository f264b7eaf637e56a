package anim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lerp moves a toward b by fraction t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 is Lerp applied per component.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

// EaseOutCubic maps linear progress in [0,1] to a decelerating curve.
func EaseOutCubic(p float32) float32 {
	p = Clamp(p, 0, 1) - 1
	return p*p*p + 1
}
