package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Folio3D/internal/behaviour"
)

func TestAddParentsAndRecords(t *testing.T) {
	s := New("test", CameraSpec{Position: mgl32.Vec3{0, 0, 5}, FOV: 50})
	group := s.Add(nil, behaviour.NewGameObject("group"), nil)
	box := s.Add(group, behaviour.NewGameObject("box"), &Shape{Kind: KindBox, Size: mgl32.Vec3{1, 1, 1}})

	assert.Equal(t, []*behaviour.GameObject{group}, s.Root.Children())
	assert.Equal(t, []*behaviour.GameObject{box}, group.Children())
	require.Len(t, s.Drawables, 1)

	d, ok := s.Find(box)
	require.True(t, ok)
	assert.Equal(t, float32(1), d.Shape.Opacity, "zero opacity defaults to opaque")
	_, ok = s.Find(group)
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "torus", KindTorus.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
