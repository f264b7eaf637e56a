// Package hero builds the pointer-following scene on the home section: a
// code panel, floating technology badges and a few decorative shapes.
package hero

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/anim"
	"Folio3D/internal/behaviour"
	"Folio3D/internal/content"
	"Folio3D/internal/palette"
	"Folio3D/internal/scene"
)

// Camera frames the hero.
var Camera = scene.CameraSpec{Position: mgl32.Vec3{0, 0, 5}, FOV: 50}

// FollowFactor is how far the group moves toward its target each frame.
const FollowFactor = 0.1

// FollowRange is the rotation at the pointer's extremes.
const FollowRange = math32.Pi / 10

// Follow eases its object's rotation toward the pointer. Without a pointer
// the target is the rest pose.
type Follow struct {
	behaviour.BaseComponent
	Rotation mgl32.Vec3
}

func (f *Follow) Update(frame *behaviour.Frame) {
	target := mgl32.Vec3{frame.Pointer.Y * FollowRange, frame.Pointer.X * FollowRange, 0}
	f.Rotation = anim.LerpVec3(f.Rotation, target, FollowFactor)
	f.GetGameObject().Transform.SetEuler(f.Rotation)
}

// Sway rocks the panel about Y around BaseYaw.
type Sway struct {
	behaviour.BaseComponent
	BaseYaw float32
}

func (s *Sway) Update(frame *behaviour.Frame) {
	s.GetGameObject().Transform.SetEuler(mgl32.Vec3{0, math32.Sin(frame.Elapsed*0.3)*0.2 + s.BaseYaw, 0})
}

// CodeLine is one line of text on the panel, in the text group's space.
type CodeLine struct {
	Text     string
	Color    mgl32.Vec3
	Position mgl32.Vec2
	Bold     bool
}

// CodeLines is the panel's snippet for the given owner.
func CodeLines(owner string) []CodeLine {
	return []CodeLine{
		{"const Portfolio = () => {", palette.Pink, mgl32.Vec2{-1.6, 0.6}, true},
		{"return (", palette.Purple, mgl32.Vec2{-1.4, -0.5}, false},
		{fmt.Sprintf("<Developer name=%q />", owner), palette.Green, mgl32.Vec2{-1.2, -0.4}, false},
		{");", palette.Purple, mgl32.Vec2{-1.4, -0.9}, false},
		{"};", palette.Pink, mgl32.Vec2{-1.6, -1.4}, true},
	}
}

// Badge is a floating label.
type Badge struct {
	Label    string
	Color    mgl32.Vec3
	Position mgl32.Vec3
}

var Badges = []Badge{
	{"React", palette.React, mgl32.Vec3{-2.5, 1.5, 0.5}},
	{"TypeScript", palette.TS, mgl32.Vec3{2.2, 1.2, 0.3}},
	{"UI/UX", palette.Pink, mgl32.Vec3{-2, -1.5, 0.7}},
}

// Hero is the built scene and the handles the host needs.
type Hero struct {
	Scene      *scene.Scene
	Group      *behaviour.GameObject
	Follow     *Follow
	Panel      *behaviour.GameObject
	Badges     []*behaviour.GameObject
	Typewriter Typewriter
}

// Build assembles the hero for site. rng seeds the badge float phases and
// the panel noise.
func Build(site *content.Site, rng *rand.Rand) *Hero {
	sc := scene.New("hero", Camera)
	h := &Hero{Scene: sc, Typewriter: NewTypewriter(site.Role)}

	h.Group = sc.Add(nil, behaviour.NewGameObject("hero"), nil)
	h.Follow = &Follow{}
	h.Group.AddComponent(h.Follow)

	h.Panel = sc.Add(h.Group, behaviour.NewGameObject("panel"), nil)
	h.Panel.AddComponent(&Sway{})
	sc.Add(h.Panel, behaviour.NewGameObject("panel-body"), &scene.Shape{
		Kind:   scene.KindBox,
		Size:   mgl32.Vec3{4, 3, 0.2},
		Color:  palette.Panel,
		Deform: NewDistort(0.1, 1, rng),
	})

	code := behaviour.NewGameObject("panel-code")
	code.Transform.SetPosition(mgl32.Vec3{0, 0.8, 0.15})
	code.Transform.SetScale(mgl32.Vec3{0.15, 0.15, 0.15})
	sc.Add(h.Panel, code, nil)
	for i, line := range CodeLines(site.Owner) {
		obj := behaviour.NewGameObject(fmt.Sprintf("panel-line-%d", i))
		obj.Transform.SetPosition(line.Position.Vec3(0))
		sc.Add(code, obj, &scene.Shape{
			Kind:       scene.KindText,
			Text:       line.Text,
			Color:      line.Color,
			FontSize:   0.5,
			Bold:       line.Bold,
			Mono:       true,
			AnchorLeft: true,
			Shader:     scene.ShaderUnlit,
		})
	}

	for _, b := range Badges {
		h.Badges = append(h.Badges, addBadge(sc, h.Group, b, rng))
	}
	addDecorations(sc, h.Group)
	return h
}

func addBadge(sc *scene.Scene, parent *behaviour.GameObject, b Badge, rng *rand.Rand) *behaviour.GameObject {
	obj := behaviour.NewGameObject("badge-" + b.Label)
	obj.Transform.SetPosition(b.Position)
	obj.AddComponent(behaviour.NewFloating(anim.NewFloat(2, 0.2, 0.5, rng), mgl32.Vec3{}))
	sc.Add(parent, obj, nil)

	sc.Add(obj, behaviour.NewGameObject(obj.Name+"-body"), &scene.Shape{
		Kind:   scene.KindBox,
		Size:   mgl32.Vec3{2, 0.5, 0.1},
		Color:  b.Color,
		Deform: Wobble{Factor: 0.1, Speed: 2},
	})
	label := behaviour.NewGameObject(obj.Name + "-label")
	label.Transform.SetPosition(mgl32.Vec3{0, 0, 0.1})
	sc.Add(obj, label, &scene.Shape{
		Kind:     scene.KindText,
		Text:     b.Label,
		Color:    palette.White,
		FontSize: 0.15,
		Bold:     true,
		Shader:   scene.ShaderUnlit,
	})
	return obj
}

func addDecorations(sc *scene.Scene, parent *behaviour.GameObject) {
	cube := behaviour.NewGameObject("wobble-cube")
	cube.Transform.SetPosition(mgl32.Vec3{2, -1.3, 0.4})
	sc.Add(parent, cube, &scene.Shape{
		Kind:   scene.KindBox,
		Size:   mgl32.Vec3{0.5, 0.5, 0.5},
		Color:  palette.Purple,
		Deform: Wobble{Factor: 0.4, Speed: 2},
	})

	sphere := behaviour.NewGameObject("sphere")
	sphere.Transform.SetPosition(mgl32.Vec3{-1.8, 1, -0.5})
	sc.Add(parent, sphere, &scene.Shape{Kind: scene.KindSphere, Size: mgl32.Vec3{0.3, 0, 0}, Color: palette.Pink})

	torus := behaviour.NewGameObject("torus")
	torus.Transform.SetPosition(mgl32.Vec3{1.8, -1, -0.3})
	sc.Add(parent, torus, &scene.Shape{Kind: scene.KindTorus, Size: mgl32.Vec3{0.2, 0.1, 0}, Color: palette.Green})
}
