package behaviour

import (
	"Folio3D/internal/anim"

	"github.com/go-gl/mathgl/mgl32"
)

// UpdateFunc adapts a plain function into a component
type UpdateFunc struct {
	BaseComponent
	Fn func(obj *GameObject, frame *Frame)
}

func NewUpdateFunc(fn func(obj *GameObject, frame *Frame)) *UpdateFunc {
	return &UpdateFunc{Fn: fn}
}

func (u *UpdateFunc) Update(frame *Frame) {
	if u.Fn != nil {
		u.Fn(u.GetGameObject(), frame)
	}
}

// Floating bobs its object around a fixed rest position and rotation.
// The rest pose is captured in Start; every frame the pose is
// rest + Float.At(elapsed), never accumulated.
type Floating struct {
	BaseComponent
	Float   anim.Float
	restPos mgl32.Vec3
	restRot mgl32.Vec3
}

func NewFloating(f anim.Float, restRot mgl32.Vec3) *Floating {
	return &Floating{Float: f, restRot: restRot}
}

func (f *Floating) Start() {
	f.restPos = f.GetGameObject().Transform.Position
}

func (f *Floating) Update(frame *Frame) {
	y, rot := f.Float.At(frame.Elapsed)
	t := f.GetGameObject().Transform
	t.Position = f.restPos.Add(mgl32.Vec3{0, y, 0})
	t.SetEuler(f.restRot.Add(rot))
}
