package particles

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/behaviour"
)

// UniformSetter receives shader uniforms for one drawable.
type UniformSetter interface {
	SetUniform(name string, value interface{})
}

// FieldComponent poses the particle children of its object each frame and
// advances their materials.
type FieldComponent struct {
	behaviour.BaseComponent
	Field     *Field
	Materials []*Material
	particles []*behaviour.GameObject
}

// NewFieldObject builds a group object holding one child per particle and
// the component that animates them.
func NewFieldObject(name string, field *Field) (*behaviour.GameObject, *FieldComponent) {
	group := behaviour.NewGameObject(name)
	fc := &FieldComponent{Field: field}
	for i, p := range field.Particles {
		obj := behaviour.NewGameObject(fmt.Sprintf("%s-particle-%d", name, i))
		obj.Tag = "particle"
		obj.Transform.SetPosition(p.Initial)
		obj.Transform.SetScale(mgl32.Vec3{p.Size, p.Size, p.Size})
		group.AddChild(obj)
		fc.particles = append(fc.particles, obj)
		fc.Materials = append(fc.Materials, NewMaterial(p.Color))
	}
	group.AddComponent(fc)
	return group, fc
}

// Particles returns the child objects in particle order.
func (fc *FieldComponent) Particles() []*behaviour.GameObject {
	return fc.particles
}

func (fc *FieldComponent) Update(frame *behaviour.Frame) {
	t := frame.Elapsed
	fc.GetGameObject().Transform.SetEuler(GroupRotation(frame.Pointer))

	for i, obj := range fc.particles {
		p := fc.Field.Particles[i]
		obj.Transform.SetPosition(p.Position(t))
		obj.Transform.SetEuler(p.Rotation(t))

		m := fc.Materials[i]
		m.Advance(t)
		if u, ok := obj.GetModel().(UniformSetter); ok {
			u.SetUniform(UniformTime, m.Time())
			u.SetUniform(UniformColor, m.Base)
		}
	}
}
