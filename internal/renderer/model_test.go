package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/scene"
)

type push struct{}

func (push) Deform(pos, normal mgl32.Vec3, t float32) mgl32.Vec3 {
	return pos.Add(normal.Mul(t))
}

func TestModelFromShapeKinds(t *testing.T) {
	shapes := map[string]scene.Shape{
		"plane":  {Kind: scene.KindPlane, Size: mgl32.Vec3{40, 40, 0}},
		"box":    {Kind: scene.KindBox, Size: mgl32.Vec3{4, 3, 0.2}},
		"sphere": {Kind: scene.KindSphere, Size: mgl32.Vec3{0.3, 0, 0}},
		"torus":  {Kind: scene.KindTorus, Size: mgl32.Vec3{0.2, 0.1, 0}},
	}
	for name, shape := range shapes {
		shape.Opacity = 1
		m, err := ModelFromShape(name, shape, nil)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		checkIndices(t, name, m.Mesh)
		if m.Textured() {
			t.Errorf("%s: should not be textured", name)
		}
	}
}

func TestModelFromTextShape(t *testing.T) {
	tr, err := NewTextRenderer()
	if err != nil {
		t.Fatal(err)
	}
	shape := scene.Shape{Kind: scene.KindText, Text: "return (", FontSize: 0.5, Mono: true, AnchorLeft: true, Opacity: 1}
	m, err := ModelFromShape("line", shape, tr)
	if err != nil {
		t.Fatal(err)
	}
	if m.Image == nil || !m.Textured() {
		t.Fatal("Text model should carry its raster")
	}
	if !m.Transparent() {
		t.Error("Text should draw in the transparent pass")
	}

	// Left anchored: the quad starts at x=0.
	minX := m.Mesh.Position(0).X()
	for i := 1; i < m.Mesh.VertexCount(); i++ {
		if x := m.Mesh.Position(i).X(); x < minX {
			minX = x
		}
	}
	if minX != 0 {
		t.Errorf("Expected left edge at 0, got %v", minX)
	}

	if _, err := ModelFromShape("orphan", shape, nil); err == nil {
		t.Error("Text without a renderer should fail")
	}
}

func TestModelDeformAt(t *testing.T) {
	shape := scene.Shape{Kind: scene.KindBox, Size: mgl32.Vec3{1, 1, 1}, Opacity: 1, Deform: push{}}
	m, err := ModelFromShape("panel", shape, nil)
	if err != nil {
		t.Fatal(err)
	}
	rest := m.Mesh.Position(0)
	buf := m.DeformAt(0.5)
	if buf == nil {
		t.Fatal("Deformed model should return a buffer")
	}
	moved := mgl32.Vec3{buf[0], buf[1], buf[2]}
	want := rest.Add(m.Mesh.Normal(0).Mul(0.5))
	if !moved.ApproxEqual(want) {
		t.Errorf("Expected %v, got %v", want, moved)
	}
	if m.Mesh.Position(0) != rest {
		t.Error("Rest mesh must not change")
	}

	static, _ := ModelFromShape("static", scene.Shape{Kind: scene.KindBox, Size: mgl32.Vec3{1, 1, 1}}, nil)
	if static.DeformAt(1) != nil {
		t.Error("Static model should not deform")
	}
}

func TestModelSetters(t *testing.T) {
	m := NewModel("m", Plane(1, 1))
	m.SetWorldMatrix(mgl32.Translate3D(1, 2, 3))
	if m.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Unexpected position %v", m.Position())
	}
	m.SetUniform("uTime", float32(2))
	if m.CustomUniforms["uTime"] != float32(2) {
		t.Error("Uniform not recorded")
	}
	m.SetColor(mgl32.Vec3{1, 0, 0})
	m.SetOpacity(2)
	if m.Color != (mgl32.Vec3{1, 0, 0}) || m.Opacity != 1 {
		t.Errorf("Unexpected color %v opacity %v", m.Color, m.Opacity)
	}
	if m.Transparent() {
		t.Error("Opaque untextured model should not be transparent")
	}
}
