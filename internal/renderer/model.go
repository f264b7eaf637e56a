package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/scene"
)

// Geometry detail used for curved shapes.
const (
	sphereSegments  = 32
	sphereRings     = 32
	torusRadial     = 16
	torusTubular    = 32
	deformSegments  = 16
	defaultFontSize = 0.15
)

type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix mgl32.Mat4
	Color       mgl32.Vec3
	Opacity     float32
	Visible     bool
	TextureID   uint32
	VAO         uint32
	VBO         uint32
	EBO         uint32

	// MEDIUM DATA - Conditional/periodic access
	Shader         scene.ShaderKind
	Additive       bool
	Deform         scene.Deformer
	CustomUniforms map[string]interface{}
	deformed       []float32

	// COLD DATA - Initialization only or rarely accessed
	Name                 string
	Mesh                 *Mesh
	TextureRef           string      // file path or URL fetched asynchronously
	Image                image.Image // raster uploaded directly, e.g. text
	BoundingSphereRadius float32
}

// NewModel wraps mesh with identity transform, white color and full opacity.
func NewModel(name string, mesh *Mesh) *Model {
	return &Model{
		Name:                 name,
		Mesh:                 mesh,
		ModelMatrix:          mgl32.Ident4(),
		Color:                mgl32.Vec3{1, 1, 1},
		Opacity:              1,
		Visible:              true,
		CustomUniforms:       make(map[string]interface{}),
		BoundingSphereRadius: mesh.BoundingRadius(),
	}
}

// ModelFromShape builds the mesh a shape describes. Text is rasterised with
// text onto a quad PixelsPerUnit pixels per world unit.
func ModelFromShape(name string, shape scene.Shape, text *TextRenderer) (*Model, error) {
	var mesh *Mesh
	var raster image.Image
	size := shape.Size
	switch shape.Kind {
	case scene.KindPlane:
		mesh = Plane(size.X(), size.Y())
	case scene.KindBox:
		mesh = Box(size.X(), size.Y(), size.Z())
		if shape.Deform != nil {
			mesh = SubdividedBox(size.X(), size.Y(), size.Z(), deformSegments)
		}
	case scene.KindSphere:
		mesh = Sphere(size.X(), sphereSegments, sphereRings)
	case scene.KindTorus:
		mesh = Torus(size.X(), size.Y(), torusRadial, torusTubular)
	case scene.KindText:
		if text == nil {
			return nil, fmt.Errorf("model %s: text shape without a text renderer", name)
		}
		fontSize := shape.FontSize
		if fontSize <= 0 {
			fontSize = defaultFontSize
		}
		img, err := text.Rasterize(shape.Text, TextStyle{
			Face:  FontFace{Bold: shape.Bold, Mono: shape.Mono},
			Size:  float64(fontSize * PixelsPerUnit),
			Color: mgl32.Vec3{1, 1, 1},
		})
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", name, err)
		}
		w := float32(img.Bounds().Dx()) / PixelsPerUnit
		h := float32(img.Bounds().Dy()) / PixelsPerUnit
		mesh = Plane(w, h)
		if shape.AnchorLeft {
			mesh.Translate(mgl32.Vec3{w / 2, 0, 0})
		}
		raster = img
	default:
		return nil, fmt.Errorf("model %s: unknown shape kind %v", name, shape.Kind)
	}

	m := NewModel(name, mesh)
	m.Color = shape.Color
	m.Opacity = shape.Opacity
	m.Shader = shape.Shader
	m.Additive = shape.Additive
	m.Deform = shape.Deform
	m.TextureRef = shape.Image
	m.Image = raster
	if raster != nil {
		m.TextureRef = fmt.Sprintf("text:%s:%p", name, m)
	}
	if m.Deform != nil {
		m.deformed = make([]float32, len(mesh.Vertices))
		copy(m.deformed, mesh.Vertices)
	}
	return m, nil
}

// SetWorldMatrix follows the owning object's transform.
func (m *Model) SetWorldMatrix(world mgl32.Mat4) {
	m.ModelMatrix = world
}

// SetUniform records a value pushed to the shader before each draw.
func (m *Model) SetUniform(name string, value interface{}) {
	m.CustomUniforms[name] = value
}

func (m *Model) SetColor(c mgl32.Vec3) {
	m.Color = c
}

func (m *Model) SetOpacity(alpha float32) {
	m.Opacity = mgl32.Clamp(alpha, 0, 1)
}

// Transparent models are drawn after opaque ones with depth writes off.
func (m *Model) Transparent() bool {
	return m.Additive || m.Opacity < 1 || m.Image != nil || m.Shader == scene.ShaderParticle
}

// Textured reports whether the model samples a texture.
func (m *Model) Textured() bool {
	return m.TextureRef != ""
}

// Position is the translation column of the model matrix.
func (m *Model) Position() mgl32.Vec3 {
	return m.ModelMatrix.Col(3).Vec3()
}

// DeformAt evaluates the deformer at t into the dynamic vertex buffer and
// returns it, or nil for static models.
func (m *Model) DeformAt(t float32) []float32 {
	if m.Deform == nil {
		return nil
	}
	m.Mesh.DeformInto(m.deformed, m.Deform, t)
	return m.deformed
}
