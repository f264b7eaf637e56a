package renderer

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/scene"
)

func placed(name string, z float32, opacity float32) *Model {
	m := NewModel(name, Plane(1, 1))
	m.SetWorldMatrix(mgl32.Translate3D(0, 0, z))
	m.Opacity = opacity
	return m
}

func TestDrawOrderOpaqueFirstThenBackToFront(t *testing.T) {
	near := placed("near", 1, 0.5)
	far := placed("far", -5, 0.8)
	solid := placed("solid", 0, 1)
	hidden := placed("hidden", 0, 1)
	hidden.Visible = false
	faded := placed("faded", 0, 0)

	got := drawOrder([]*Model{near, solid, far, hidden, faded}, mgl32.Vec3{0, 0, 5}, nil)

	var names []string
	for _, m := range got {
		names = append(names, m.Name)
	}
	if strings.Join(names, ",") != "solid,far,near" {
		t.Errorf("Unexpected draw order %v", names)
	}
}

func TestDrawOrderAdditiveIsTransparent(t *testing.T) {
	glow := placed("glow", 0, 1)
	glow.Additive = true
	solid := placed("solid", 3, 1)

	got := drawOrder([]*Model{glow, solid}, mgl32.Vec3{0, 0, 5}, nil)
	if got[0] != solid || got[1] != glow {
		t.Errorf("Additive model should draw after opaque ones")
	}
}

func TestShaderForKinds(t *testing.T) {
	cases := map[scene.ShaderKind]string{
		scene.ShaderLit:      "lit",
		scene.ShaderUnlit:    "unlit",
		scene.ShaderParticle: "particle",
	}
	for kind, name := range cases {
		s := ShaderFor(kind)
		if s.Name != name {
			t.Errorf("Kind %v: expected %s, got %s", kind, name, s.Name)
		}
		if s.IsCompiled() {
			t.Errorf("%s should not be compiled before a GL context exists", name)
		}
		for _, src := range []string{s.vertexSource, s.fragmentSource} {
			if !strings.HasSuffix(src, "\x00") {
				t.Errorf("%s: source must be NUL terminated", name)
			}
		}
	}
}

func TestViewportEmpty(t *testing.T) {
	if !(Viewport{Width: 0, Height: 10}).Empty() {
		t.Error("Zero width viewport should be empty")
	}
	if (Viewport{Width: 10, Height: 10}).Empty() {
		t.Error("10x10 viewport should not be empty")
	}
}
