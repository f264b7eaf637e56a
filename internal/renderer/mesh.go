package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/scene"
)

// VertexStride is the number of floats per interleaved vertex:
// position (3), texture coordinate (2), normal (3).
const VertexStride = 8

// Mesh is interleaved vertex data with triangle indices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount is the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// Position returns vertex i's position.
func (m *Mesh) Position(i int) mgl32.Vec3 {
	o := i * VertexStride
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Normal returns vertex i's normal.
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	o := i*VertexStride + 5
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Translate moves every vertex by d.
func (m *Mesh) Translate(d mgl32.Vec3) {
	for i := 0; i < len(m.Vertices); i += VertexStride {
		m.Vertices[i] += d[0]
		m.Vertices[i+1] += d[1]
		m.Vertices[i+2] += d[2]
	}
}

// BoundingRadius is the distance from the origin to the farthest vertex.
func (m *Mesh) BoundingRadius() float32 {
	var r float32
	for i := 0; i < m.VertexCount(); i++ {
		if l := m.Position(i).Len(); l > r {
			r = l
		}
	}
	return r
}

func (m *Mesh) vertex(p mgl32.Vec3, u, v float32, n mgl32.Vec3) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, p[0], p[1], p[2], u, v, n[0], n[1], n[2])
	return idx
}

// quad appends a face spanned from origin by du and dv.
func (m *Mesh) quad(origin, du, dv, n mgl32.Vec3) {
	a := m.vertex(origin, 0, 0, n)
	b := m.vertex(origin.Add(du), 1, 0, n)
	c := m.vertex(origin.Add(du).Add(dv), 1, 1, n)
	d := m.vertex(origin.Add(dv), 0, 1, n)
	m.Indices = append(m.Indices, a, b, c, a, c, d)
}

// Plane is a w×h quad in the XY plane facing +Z.
func Plane(w, h float32) *Mesh {
	m := &Mesh{}
	m.quad(mgl32.Vec3{-w / 2, -h / 2, 0}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{0, 0, 1})
	return m
}

// Box is an axis-aligned w×h×d box centred on the origin. Every face maps
// the full texture.
func Box(w, h, d float32) *Mesh {
	x, y, z := w/2, h/2, d/2
	m := &Mesh{}
	m.quad(mgl32.Vec3{-x, -y, z}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{0, 0, 1})   // front
	m.quad(mgl32.Vec3{x, -y, -z}, mgl32.Vec3{-w, 0, 0}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{0, 0, -1}) // back
	m.quad(mgl32.Vec3{x, -y, z}, mgl32.Vec3{0, 0, -d}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{1, 0, 0})   // right
	m.quad(mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{0, 0, d}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{-1, 0, 0}) // left
	m.quad(mgl32.Vec3{-x, y, z}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, 0, -d}, mgl32.Vec3{0, 1, 0})   // top
	m.quad(mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, 0, d}, mgl32.Vec3{0, -1, 0}) // bottom
	return m
}

// SubdividedBox is Box with every face split into segments×segments quads,
// giving deformers enough vertices to bend.
func SubdividedBox(w, h, d float32, segments int) *Mesh {
	if segments < 1 {
		segments = 1
	}
	x, y, z := w/2, h/2, d/2
	m := &Mesh{}
	m.patch(mgl32.Vec3{-x, -y, z}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{0, 0, 1}, segments)
	m.patch(mgl32.Vec3{x, -y, -z}, mgl32.Vec3{-w, 0, 0}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{0, 0, -1}, segments)
	m.patch(mgl32.Vec3{x, -y, z}, mgl32.Vec3{0, 0, -d}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{1, 0, 0}, segments)
	m.patch(mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{0, 0, d}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{-1, 0, 0}, segments)
	m.patch(mgl32.Vec3{-x, y, z}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, 0, -d}, mgl32.Vec3{0, 1, 0}, segments)
	m.patch(mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, 0, d}, mgl32.Vec3{0, -1, 0}, segments)
	return m
}

// patch appends a face like quad, split into a segments×segments lattice.
func (m *Mesh) patch(origin, du, dv, n mgl32.Vec3, segments int) {
	base := uint32(m.VertexCount())
	for j := 0; j <= segments; j++ {
		v := float32(j) / float32(segments)
		for i := 0; i <= segments; i++ {
			u := float32(i) / float32(segments)
			m.vertex(origin.Add(du.Mul(u)).Add(dv.Mul(v)), u, v, n)
		}
	}
	stride := uint32(segments + 1)
	for j := 0; j < segments; j++ {
		for i := 0; i < segments; i++ {
			a := base + uint32(j)*stride + uint32(i)
			b := a + stride
			m.Indices = append(m.Indices, a, a+1, b+1, a, b+1, b)
		}
	}
}

// Sphere is a UV sphere of the given radius.
func Sphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}
	m := &Mesh{}
	for r := 0; r <= rings; r++ {
		v := float32(r) / float32(rings)
		phi := v * math32.Pi
		for s := 0; s <= segments; s++ {
			u := float32(s) / float32(segments)
			theta := u * 2 * math32.Pi
			n := mgl32.Vec3{
				-math32.Cos(theta) * math32.Sin(phi),
				math32.Cos(phi),
				math32.Sin(theta) * math32.Sin(phi),
			}
			m.vertex(n.Mul(radius), u, 1-v, n)
		}
	}
	m.grid(segments, rings)
	return m
}

// Torus lies in the XY plane; radius is to the tube centre.
func Torus(radius, tube float32, radialSegments, tubularSegments int) *Mesh {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if tubularSegments < 3 {
		tubularSegments = 3
	}
	m := &Mesh{}
	for j := 0; j <= radialSegments; j++ {
		v := float32(j) / float32(radialSegments) * 2 * math32.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * 2 * math32.Pi
			p := mgl32.Vec3{
				(radius + tube*math32.Cos(v)) * math32.Cos(u),
				(radius + tube*math32.Cos(v)) * math32.Sin(u),
				tube * math32.Sin(v),
			}
			centre := mgl32.Vec3{radius * math32.Cos(u), radius * math32.Sin(u), 0}
			m.vertex(p, float32(i)/float32(tubularSegments), float32(j)/float32(radialSegments), p.Sub(centre).Normalize())
		}
	}
	m.grid(tubularSegments, radialSegments)
	return m
}

// grid indexes a (cols+1)×(rows+1) vertex lattice.
func (m *Mesh) grid(cols, rows int) {
	stride := uint32(cols + 1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a := uint32(r)*stride + uint32(c)
			b := a + stride
			m.Indices = append(m.Indices, a, b, a+1, b, b+1, a+1)
		}
	}
}

// DeformInto writes the rest mesh deformed at t into dst, which must have
// the same length as m.Vertices.
func (m *Mesh) DeformInto(dst []float32, d scene.Deformer, t float32) {
	copy(dst, m.Vertices)
	for i := 0; i < m.VertexCount(); i++ {
		p := d.Deform(m.Position(i), m.Normal(i), t)
		o := i * VertexStride
		dst[o], dst[o+1], dst[o+2] = p[0], p[1], p[2]
	}
}
