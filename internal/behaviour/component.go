package behaviour

import (
	"Folio3D/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is what every component sees once per rendered frame.
// Elapsed is seconds since the scene was mounted; Pointer is a copy taken
// at the start of the frame, so all components read the same value.
type Frame struct {
	Elapsed float32
	Delta   float32
	Pointer input.Pointer
}

// Component is the base interface for all components
// Components are attached to GameObjects and driven by the ComponentManager
type Component interface {
	// Lifecycle methods
	Awake()              // Called when component is first attached
	Start()              // Called before first Update (after all Awakes)
	Update(frame *Frame) // Called every frame
	OnDestroy()          // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// Animators embed this and only override what they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()        {}
func (c *BaseComponent) Start()        {}
func (c *BaseComponent) Update(*Frame) {}
func (c *BaseComponent) OnDestroy()    {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// GameObject is a node of a scene graph
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	model      interface{} // drawable bound by the renderer (interface avoids an import cycle)
}

// Transform places a GameObject relative to its parent
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Parent   *Transform
	Children []*Transform
	owner    *GameObject
}

// Transform methods
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	rotation := mgl32.QuatRotate(angle, axis)
	t.Rotation = t.Rotation.Mul(rotation)
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

// SetEuler sets the rotation from X, Y, Z angles in radians, applied in XYZ order.
func (t *Transform) SetEuler(angles mgl32.Vec3) {
	t.Rotation = mgl32.AnglesToQuat(angles.X(), angles.Y(), angles.Z(), mgl32.XYZ)
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

// Owner returns the GameObject this transform belongs to.
func (t *Transform) Owner() *GameObject {
	return t.owner
}

// LocalMatrix is translation * rotation * scale.
func (t *Transform) LocalMatrix() mgl32.Mat4 {
	scale := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	translation := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	return translation.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

// WorldMatrix composes the local matrices of every ancestor.
func (t *Transform) WorldMatrix() mgl32.Mat4 {
	m := t.LocalMatrix()
	for p := t.Parent; p != nil; p = p.Parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition is the origin of this transform in world space.
func (t *Transform) WorldPosition() mgl32.Vec3 {
	return t.WorldMatrix().Col(3).Vec3()
}

// NewGameObject creates an active object at the origin with unit scale
func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
	obj.Transform.owner = obj
	return obj
}

// AddChild parents child under obj, detaching it from any previous parent.
func (obj *GameObject) AddChild(child *GameObject) {
	if old := child.Transform.Parent; old != nil {
		old.removeChild(child.Transform)
	}
	child.Transform.Parent = obj.Transform
	obj.Transform.Children = append(obj.Transform.Children, child.Transform)
}

func (t *Transform) removeChild(child *Transform) {
	for i, c := range t.Children {
		if c == child {
			t.Children = append(t.Children[:i], t.Children[i+1:]...)
			return
		}
	}
}

// Children returns the direct child objects.
func (obj *GameObject) Children() []*GameObject {
	out := make([]*GameObject, 0, len(obj.Transform.Children))
	for _, c := range obj.Transform.Children {
		out = append(out, c.owner)
	}
	return out
}

// Walk visits obj and all descendants depth first.
func (obj *GameObject) Walk(fn func(*GameObject)) {
	fn(obj)
	for _, c := range obj.Transform.Children {
		c.owner.Walk(fn)
	}
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

func (obj *GameObject) SetModel(model interface{}) {
	obj.model = model
}

func (obj *GameObject) GetModel() interface{} {
	return obj.model
}

func (obj *GameObject) internalUpdate(frame *Frame) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update(frame)
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
