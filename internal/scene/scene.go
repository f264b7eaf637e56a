// Package scene describes what to draw: a GameObject tree plus, for the
// objects that are visible, the shape the renderer should build for them.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/behaviour"
)

type Kind int

const (
	KindPlane Kind = iota
	KindBox
	KindSphere
	KindTorus
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindTorus:
		return "torus"
	case KindText:
		return "text"
	}
	return "unknown"
}

// ShaderKind selects the program a shape is drawn with.
type ShaderKind int

const (
	ShaderLit ShaderKind = iota
	ShaderUnlit
	ShaderParticle
)

// Deformer moves mesh vertices over time. It is evaluated from the rest
// pose every frame.
type Deformer interface {
	Deform(pos, normal mgl32.Vec3, t float32) mgl32.Vec3
}

// Shape is a drawable description. Size means:
// plane (w, h, _), box (w, h, d), sphere (r, _, _), torus (radius, tube, _).
type Shape struct {
	Kind    Kind
	Size    mgl32.Vec3
	Color   mgl32.Vec3
	Opacity float32
	Shader  ShaderKind
	// Additive blends onto what is behind instead of over it.
	Additive bool

	// Text shapes.
	Text       string
	FontSize   float32
	Bold       bool
	Mono       bool
	AnchorLeft bool

	// Image is a file path or http(s) URL applied as the texture.
	Image string

	Deform Deformer
}

// Drawable pairs an object with the shape drawn at its transform.
type Drawable struct {
	Object *behaviour.GameObject
	Shape  Shape
}

// CameraSpec is a perspective camera looking down -Z.
type CameraSpec struct {
	Position mgl32.Vec3
	FOV      float32
}

// Lighting is an ambient term plus one point light.
type Lighting struct {
	Ambient       float32
	PointPosition mgl32.Vec3
	PointStrength float32
}

// DefaultLighting matches the page's canvases.
var DefaultLighting = Lighting{Ambient: 0.5, PointPosition: mgl32.Vec3{10, 10, 10}, PointStrength: 1}

type Scene struct {
	Name      string
	Root      *behaviour.GameObject
	Drawables []Drawable
	Camera    CameraSpec
	Lighting  Lighting
}

func New(name string, camera CameraSpec) *Scene {
	return &Scene{
		Name:     name,
		Root:     behaviour.NewGameObject(name),
		Camera:   camera,
		Lighting: DefaultLighting,
	}
}

// Add parents obj under parent (the root when nil) and records shape if set.
func (s *Scene) Add(parent, obj *behaviour.GameObject, shape *Shape) *behaviour.GameObject {
	if parent == nil {
		parent = s.Root
	}
	parent.AddChild(obj)
	if shape != nil {
		s.Attach(obj, *shape)
	}
	return obj
}

// Attach records a shape for an object already in the tree.
func (s *Scene) Attach(obj *behaviour.GameObject, shape Shape) {
	if shape.Opacity == 0 {
		shape.Opacity = 1
	}
	s.Drawables = append(s.Drawables, Drawable{Object: obj, Shape: shape})
}

// Find returns the drawable for obj.
func (s *Scene) Find(obj *behaviour.GameObject) (Drawable, bool) {
	for _, d := range s.Drawables {
		if d.Object == obj {
			return d, true
		}
	}
	return Drawable{}, false
}

// Tintable is implemented by drawables whose color can change per frame.
type Tintable interface {
	SetColor(c mgl32.Vec3)
}
