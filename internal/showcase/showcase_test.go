package showcase

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Folio3D/internal/behaviour"
	"Folio3D/internal/content"
	"Folio3D/internal/palette"
	"Folio3D/internal/scene"
)

func projects(n int) []content.Project {
	out := make([]content.Project, n)
	for i := range out {
		out[i] = content.Project{Title: string(rune('A' + i)), Category: "c"}
	}
	return out
}

func TestLayoutShortLists(t *testing.T) {
	for n := 0; n <= 5; n++ {
		assert.NotPanics(t, func() {
			cards := Layout(projects(n))
			want := n
			if want > 3 {
				want = 3
			}
			assert.Len(t, cards, want)
		})
	}
}

func TestBuildShortListsDoNotPanic(t *testing.T) {
	for n := 0; n < 3; n++ {
		assert.NotPanics(t, func() {
			s := Build(projects(n), rand.New(rand.NewSource(1)))
			cm := behaviour.NewComponentManager()
			cm.RegisterGameObject(s.Scene.Root)
			cm.UpdateAll(&behaviour.Frame{Elapsed: 1})
			assert.Len(t, s.Cards, n)
		})
	}
}

func TestHoverReturnsToBaseline(t *testing.T) {
	for _, slot := range Slots {
		c := newCard(content.Project{}, slot)
		c.SetHovered(true)
		for i := 0; i < 40; i++ {
			c.Step()
		}
		assert.Greater(t, c.Z, slot.Position.Z()+0.25)
		assert.Equal(t, palette.White, c.Tint())

		c.SetHovered(false)
		for i := 0; i < 40; i++ {
			c.Step()
		}
		// one-frame lag of a 0.1 lerp leaves (0.9^40) of the offset
		assert.InDelta(t, slot.Yaw, c.Yaw, 0.01)
		assert.InDelta(t, slot.Position.Z(), c.Z, 0.01)
		assert.Equal(t, palette.CardTint, c.Tint())
	}
}

func TestHoverStepMatchesLerp(t *testing.T) {
	c := newCard(content.Project{}, Slots[1])
	c.SetHovered(true)
	c.Step()
	assert.InDelta(t, HoverYaw*HoverFactor, c.Yaw, 1e-6)
	assert.InDelta(t, 0.5+HoverLift*HoverFactor, c.Z, 1e-6)
}

func TestPickNearestCard(t *testing.T) {
	s := Build(projects(3), rand.New(rand.NewSource(1)))

	center := scene.Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	got := s.Hover(&center)
	require.NotNil(t, got)
	assert.Equal(t, "B", got.Project.Title)
	assert.True(t, got.Hovered())
	assert.False(t, s.Cards[0].Hovered())

	left := scene.Ray{Origin: mgl32.Vec3{-2.8, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	assert.Equal(t, "A", s.Hover(&left).Project.Title)
	assert.False(t, s.Cards[1].Hovered())

	miss := scene.Ray{Origin: mgl32.Vec3{0, 3, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	assert.Nil(t, s.Hover(&miss))
	assert.Nil(t, s.Hover(nil))
	for _, c := range s.Cards {
		assert.False(t, c.Hovered())
	}
}

func TestControlsClampAndSnapBack(t *testing.T) {
	c := NewControls()
	for i := 0; i < 20; i++ {
		c.Drag(0.2, -0.2)
	}
	polar, azimuth := c.Target()
	assert.InDelta(t, -Limit, polar, 1e-6)
	assert.InDelta(t, Limit, azimuth, 1e-6)

	// Only the target is clamped. The drag spring is underdamped, so the
	// rendered rotation swings past the limit before settling on it.
	var peak float32
	for i := 0; i < 300; i++ {
		c.Step()
		if y := c.Rotation().Y(); y > peak {
			peak = y
		}
		_, azimuth = c.Target()
		require.InDelta(t, Limit, azimuth, 1e-6, "target stays clamped")
	}
	assert.Greater(t, peak, Limit)
	assert.Less(t, peak, Limit*1.5)
	assert.InDelta(t, Limit, c.Rotation().Y(), 1e-2)

	c.Release()
	assert.False(t, c.Dragging())
	for i := 0; i < 1200 && !c.Settled(); i++ {
		c.Step()
	}
	require.True(t, c.Settled())
	assert.InDelta(t, 0, c.Rotation().X(), 1e-3)
	assert.InDelta(t, 0, c.Rotation().Y(), 1e-3)
}

func TestCardTintPushedToModel(t *testing.T) {
	s := Build(projects(1), rand.New(rand.NewSource(1)))
	tint := &tintRecorder{}
	s.Cards[0].Body.SetModel(tint)
	s.Cards[0].SetHovered(true)

	cm := behaviour.NewComponentManager()
	cm.RegisterGameObject(s.Scene.Root)
	cm.UpdateAll(&behaviour.Frame{})
	assert.Equal(t, palette.White, tint.color)
}

type tintRecorder struct{ color mgl32.Vec3 }

func (r *tintRecorder) SetColor(c mgl32.Vec3) { r.color = c }
