package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At is the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform maps the ray through m. The direction is not renormalised so
// distances stay comparable with the source space.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	return Ray{
		Origin:    m.Mul4x1(r.Origin.Vec4(1)).Vec3(),
		Direction: m.Mul4x1(r.Direction.Vec4(0)).Vec3(),
	}
}

// RayIntersectPlane intersects the ray with the plane through point with
// the given normal. Returns: (intersected, distance, intersection point)
func RayIntersectPlane(ray Ray, point, normal mgl32.Vec3) (bool, float32, mgl32.Vec3) {
	denom := normal.Dot(ray.Direction)
	if math32.Abs(denom) < 1e-6 {
		return false, 0, mgl32.Vec3{} // parallel
	}
	t := point.Sub(ray.Origin).Dot(normal) / denom
	if t <= 0 {
		return false, 0, mgl32.Vec3{}
	}
	return true, t, ray.At(t)
}

// RayIntersectSphere tests if a ray intersects a sphere
// Returns: (intersected, distance, intersection point)
func RayIntersectSphere(ray Ray, center mgl32.Vec3, radius float32) (bool, float32, mgl32.Vec3) {
	oc := ray.Origin.Sub(center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false, 0, mgl32.Vec3{}
	}

	sqrtDisc := math32.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// Closest intersection in front of the origin
	var t float32
	switch {
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return false, 0, mgl32.Vec3{}
	}
	return true, t, ray.At(t)
}

// RayIntersectRect intersects the ray with a w×h rectangle centred at the
// origin of the local space given by world, facing +Z in that space.
// Returns the world-space distance along ray.
func RayIntersectRect(ray Ray, world mgl32.Mat4, w, h float32) (bool, float32) {
	local := ray.Transform(world.Inv())
	ok, t, p := RayIntersectPlane(local, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	if !ok || math32.Abs(p.X()) > w/2 || math32.Abs(p.Y()) > h/2 {
		return false, 0
	}
	// t is the ray parameter, shared by both spaces
	return true, t * ray.Direction.Len()
}
