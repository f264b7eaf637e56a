package showcase

import (
	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/anim"
	"Folio3D/internal/behaviour"
	"Folio3D/internal/content"
	"Folio3D/internal/palette"
	"Folio3D/internal/scene"
)

// Card image dimensions.
const (
	CardWidth  = 2.5
	CardHeight = 1.6
	CardDepth  = 0.1
)

// Hover response.
const (
	HoverYaw    = 0.2
	HoverLift   = 0.3
	HoverFactor = 0.1
)

// Slot is a card's resting pose.
type Slot struct {
	Position mgl32.Vec3
	Yaw      float32
}

// Slots for the three showcased projects, left to right.
var Slots = []Slot{
	{mgl32.Vec3{-2.8, 0, 0}, 0.2},
	{mgl32.Vec3{0, 0, 0.5}, 0},
	{mgl32.Vec3{2.8, 0, 0}, -0.2},
}

// Card is one project in the showcase. Yaw and Z ease toward the slot pose,
// offset while hovered.
type Card struct {
	behaviour.BaseComponent
	Project content.Project
	Slot    Slot
	Yaw     float32
	Z       float32
	// Offset slides the card off its slot, e.g. while it fades in.
	Offset  mgl32.Vec3
	Body    *behaviour.GameObject
	hovered bool
}

func newCard(p content.Project, slot Slot) *Card {
	return &Card{Project: p, Slot: slot, Yaw: slot.Yaw, Z: slot.Position.Z()}
}

func (c *Card) SetHovered(h bool) {
	c.hovered = h
}

func (c *Card) Hovered() bool {
	return c.hovered
}

// Tint is the image color: full white while hovered.
func (c *Card) Tint() mgl32.Vec3 {
	if c.hovered {
		return palette.White
	}
	return palette.CardTint
}

// Step moves one frame toward the target pose.
func (c *Card) Step() {
	yaw, z := c.Slot.Yaw, c.Slot.Position.Z()
	if c.hovered {
		yaw += HoverYaw
		z += HoverLift
	}
	c.Yaw = anim.Lerp(c.Yaw, yaw, HoverFactor)
	c.Z = anim.Lerp(c.Z, z, HoverFactor)
}

func (c *Card) Update(*behaviour.Frame) {
	c.Step()
	obj := c.GetGameObject()
	pos := c.Slot.Position
	pos[2] = c.Z
	obj.Transform.SetPosition(pos.Add(c.Offset))
	obj.Transform.SetEuler(mgl32.Vec3{0, c.Yaw, 0})
	if c.Body != nil {
		if t, ok := c.Body.GetModel().(scene.Tintable); ok {
			t.SetColor(c.Tint())
		}
	}
}

// hit reports where ray meets the front of the card image.
func (c *Card) hit(ray scene.Ray) (bool, float32) {
	if c.Body == nil {
		return false, 0
	}
	front := c.Body.Transform.WorldMatrix().Mul4(mgl32.Translate3D(0, 0, CardDepth/2))
	return scene.RayIntersectRect(ray, front, CardWidth, CardHeight)
}

// Pick returns the nearest card whose image the ray hits, or nil.
func Pick(ray scene.Ray, cards []*Card) *Card {
	var best *Card
	var bestDist float32
	for _, c := range cards {
		if ok, d := c.hit(ray); ok && (best == nil || d < bestDist) {
			best, bestDist = c, d
		}
	}
	return best
}
