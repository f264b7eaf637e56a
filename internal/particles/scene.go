package particles

import (
	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/behaviour"
	"Folio3D/internal/scene"
)

// BackgroundCamera frames the backdrop.
var BackgroundCamera = scene.CameraSpec{Position: mgl32.Vec3{0, 0, 5}, FOV: 75}

// Backdrop is the home background: the particle field and the plane behind it.
type Backdrop struct {
	Scene     *scene.Scene
	Component *FieldComponent
}

// NewBackdrop lays out field as unit quads scaled to each particle's size.
func NewBackdrop(field *Field) *Backdrop {
	sc := scene.New("background", BackgroundCamera)
	group, fc := NewFieldObject("particles", field)
	sc.Add(nil, group, nil)

	for i, obj := range fc.Particles() {
		sc.Attach(obj, scene.Shape{
			Kind:     scene.KindPlane,
			Size:     mgl32.Vec3{1, 1, 0},
			Color:    field.Particles[i].Color,
			Shader:   scene.ShaderParticle,
			Additive: true,
		})
	}

	plane := behaviour.NewGameObject("backdrop")
	plane.Transform.SetPosition(mgl32.Vec3{0, 0, BackdropZ})
	sc.Add(group, plane, &scene.Shape{
		Kind:    scene.KindPlane,
		Size:    mgl32.Vec3{BackdropSize, BackdropSize, 0},
		Color:   BackdropColor,
		Opacity: BackdropOpacity,
		Shader:  scene.ShaderUnlit,
	})
	return &Backdrop{Scene: sc, Component: fc}
}
