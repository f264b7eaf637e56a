package hero

import (
	"math/rand"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Folio3D/internal/behaviour"
	"Folio3D/internal/content"
	"Folio3D/internal/input"
	"Folio3D/internal/scene"
)

func buildHero(t *testing.T) (*Hero, *behaviour.ComponentManager) {
	t.Helper()
	site, err := content.Default()
	require.NoError(t, err)
	h := Build(site, rand.New(rand.NewSource(11)))
	cm := behaviour.NewComponentManager()
	cm.RegisterGameObject(h.Scene.Root)
	return h, cm
}

// yaw of a rotation about Y only.
func yaw(q mgl32.Quat) float32 {
	fwd := q.Rotate(mgl32.Vec3{0, 0, -1})
	return math32.Atan2(-fwd.X(), -fwd.Z())
}

func TestBuildContents(t *testing.T) {
	h, _ := buildHero(t)
	assert.Len(t, h.Badges, 3)

	var texts, boxes int
	var owner bool
	for _, d := range h.Scene.Drawables {
		switch d.Shape.Kind {
		case scene.KindText:
			texts++
			if d.Shape.Text == `<Developer name="Mamikie Maemu" />` {
				owner = true
			}
		case scene.KindBox:
			boxes++
		}
	}
	assert.Equal(t, 5+3, texts, "five code lines and three badge labels")
	assert.Equal(t, 1+3+1, boxes, "panel, badges and the wobble cube")
	assert.True(t, owner)
	assert.Equal(t, float32(50), h.Scene.Camera.FOV)
}

func TestFollowIdleWithoutPointer(t *testing.T) {
	h, cm := buildHero(t)
	for i := 0; i < 120; i++ {
		cm.UpdateAll(&behaviour.Frame{Elapsed: float32(i) / 60})
	}
	assert.True(t, h.Follow.Rotation.ApproxEqual(mgl32.Vec3{}))
	assert.True(t, h.Group.Transform.Rotation.ApproxEqual(mgl32.QuatIdent()))
}

func TestFollowConvergesOnPointer(t *testing.T) {
	h, cm := buildHero(t)
	p := input.Pointer{X: 1, Y: -1, Seen: true}

	cm.UpdateAll(&behaviour.Frame{Pointer: p})
	assert.InDelta(t, FollowRange*FollowFactor, h.Follow.Rotation.Y(), 1e-6)
	assert.InDelta(t, -FollowRange*FollowFactor, h.Follow.Rotation.X(), 1e-6)

	for i := 0; i < 200; i++ {
		cm.UpdateAll(&behaviour.Frame{Pointer: p})
	}
	assert.True(t, h.Follow.Rotation.ApproxEqualThreshold(mgl32.Vec3{-FollowRange, FollowRange, 0}, 1e-4))
	want := mgl32.AnglesToQuat(-FollowRange, FollowRange, 0, mgl32.XYZ)
	assert.True(t, h.Group.Transform.Rotation.ApproxEqualThreshold(want, 1e-4))
}

func TestPanelSway(t *testing.T) {
	h, cm := buildHero(t)
	cm.UpdateAll(&behaviour.Frame{Elapsed: 5})
	assert.InDelta(t, math32.Sin(1.5)*0.2, yaw(h.Panel.Transform.Rotation), 1e-4)
}

func TestBadgesFloatAroundRest(t *testing.T) {
	h, cm := buildHero(t)
	for i := 0; i < 300; i++ {
		cm.UpdateAll(&behaviour.Frame{Elapsed: float32(i) / 30})
		for j, b := range h.Badges {
			d := b.Transform.Position.Sub(Badges[j].Position)
			assert.LessOrEqual(t, math32.Abs(d.Y()), float32(0.05)+1e-6)
			assert.Equal(t, float32(0), d.X())
		}
	}
}

func TestDistortStaysBounded(t *testing.T) {
	d := NewDistort(0.1, 1, rand.New(rand.NewSource(1)))
	n := mgl32.Vec3{0, 0, 1}
	for i := 0; i < 50; i++ {
		p := mgl32.Vec3{float32(i%7) * 0.3, float32(i%5) * 0.3, 0.1}
		out := d.Deform(p, n, float32(i)*0.1)
		assert.Equal(t, p.X(), out.X())
		assert.Equal(t, p.Y(), out.Y())
		assert.LessOrEqual(t, math32.Abs(out.Z()-p.Z()), float32(0.2))
	}
}

func TestWobblePreservesRadius(t *testing.T) {
	w := Wobble{Factor: 0.4, Speed: 2}
	p := mgl32.Vec3{0.25, 0.1, -0.25}
	out := w.Deform(p, mgl32.Vec3{}, 1.3)
	assert.InDelta(t, p.Len(), out.Len(), 1e-5)
	assert.Equal(t, p.Y(), out.Y())
}

func TestTypewriter(t *testing.T) {
	tw := NewTypewriter("Front-end Web Developer")

	assert.Equal(t, "", tw.At(0))
	assert.Equal(t, "F", tw.At(150*time.Millisecond))
	assert.Equal(t, "Front", tw.At(500*time.Millisecond))
	assert.False(t, tw.Done(time.Second))
	assert.Equal(t, tw.Text, tw.At(10*time.Second))
	assert.True(t, tw.Done(10*time.Second))

	prev := ""
	for ms := 0; ms < 3000; ms += 37 {
		cur := tw.At(time.Duration(ms) * time.Millisecond)
		assert.GreaterOrEqual(t, len(cur), len(prev))
		assert.Equal(t, prev, cur[:len(prev)])
		prev = cur
	}
}

func TestTypewriterMultibyte(t *testing.T) {
	tw := NewTypewriter("héllo")
	assert.Equal(t, "hé", tw.At(200*time.Millisecond))
}
