// Package showcase builds the interactive row of project cards.
package showcase

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/anim"
	"Folio3D/internal/behaviour"
	"Folio3D/internal/content"
	"Folio3D/internal/palette"
	"Folio3D/internal/scene"
)

// Camera frames the cards.
var Camera = scene.CameraSpec{Position: mgl32.Vec3{0, 0, 5}, FOV: 50}

// Layout pairs up to three projects with slots. Fewer projects give fewer cards.
func Layout(projects []content.Project) []*Card {
	n := len(projects)
	if n > len(Slots) {
		n = len(Slots)
	}
	cards := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, newCard(projects[i], Slots[i]))
	}
	return cards
}

type Showcase struct {
	Scene    *scene.Scene
	Controls *Controls
	Cards    []*Card
	hovered  *Card
}

// Build lays out the showcase for projects, which should already be sorted.
func Build(projects []content.Project, rng *rand.Rand) *Showcase {
	sc := scene.New("showcase", Camera)
	s := &Showcase{Scene: sc, Controls: NewControls(), Cards: Layout(content.Showcase(projects))}

	group := sc.Add(nil, behaviour.NewGameObject("showcase-controls"), nil)
	group.AddComponent(s.Controls)

	floater := sc.Add(group, behaviour.NewGameObject("showcase-float"), nil)
	floater.AddComponent(behaviour.NewFloating(anim.NewFloat(2, 0.2, 0.5, rng), mgl32.Vec3{}))

	for _, c := range s.Cards {
		obj := behaviour.NewGameObject("card-" + c.Project.Title)
		obj.Transform.SetPosition(c.Slot.Position)
		obj.Transform.SetEuler(mgl32.Vec3{0, c.Slot.Yaw, 0})
		obj.AddComponent(c)
		sc.Add(floater, obj, nil)

		c.Body = sc.Add(obj, behaviour.NewGameObject(obj.Name+"-image"), &scene.Shape{
			Kind:  scene.KindBox,
			Size:  mgl32.Vec3{CardWidth, CardHeight, CardDepth},
			Color: palette.CardTint,
			Image: c.Project.Image,
		})

		title := behaviour.NewGameObject(obj.Name + "-title")
		title.Transform.SetPosition(mgl32.Vec3{0, -1, 0.1})
		sc.Add(obj, title, &scene.Shape{
			Kind:     scene.KindText,
			Text:     c.Project.Title,
			Color:    palette.White,
			FontSize: 0.12,
			Bold:     true,
			Shader:   scene.ShaderUnlit,
		})

		category := behaviour.NewGameObject(obj.Name + "-category")
		category.Transform.SetPosition(mgl32.Vec3{0, -1.15, 0.1})
		sc.Add(obj, category, &scene.Shape{
			Kind:     scene.KindText,
			Text:     c.Project.Category,
			Color:    palette.Lavender,
			FontSize: 0.08,
			Shader:   scene.ShaderUnlit,
		})
	}
	return s
}

// Hover marks the card under ray as hovered and clears the rest. A nil ray
// clears every card.
func (s *Showcase) Hover(ray *scene.Ray) *Card {
	var hit *Card
	if ray != nil {
		hit = Pick(*ray, s.Cards)
	}
	for _, c := range s.Cards {
		c.SetHovered(c == hit)
	}
	s.hovered = hit
	return hit
}

// Hovered is the card picked by the last Hover.
func (s *Showcase) Hovered() *Card {
	return s.hovered
}
