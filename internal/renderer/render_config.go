package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/palette"
)

// RenderConfig represents the quality knobs the OpenGL renderer honours.
type RenderConfig struct {
	// Anti-Aliasing - applied as a window hint, requires restart
	MSAASamples int `json:"msaaSamples"` // 0, 2, 4, 8

	// Per-frame vertex deformation of distort and wobble materials.
	// Disabled models draw their rest pose.
	EnableDeformation bool `json:"enableDeformation"`

	// Lighting
	Shininess    float32 `json:"shininess"`
	AmbientScale float32 `json:"ambientScale"`

	// Fraction of the configured particle count actually spawned.
	ParticleScale float32 `json:"particleScale"`

	EnableFaceCulling bool       `json:"enableFaceCulling"`
	ClearColor        mgl32.Vec3 `json:"clearColor"`
}

// DefaultRenderConfig returns sensible defaults for the page's scenes
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MSAASamples:       4,
		EnableDeformation: true,
		Shininess:         32,
		AmbientScale:      1,
		ParticleScale:     1,
		ClearColor:        palette.Night,
	}
}

// HighQualityRenderConfig returns settings optimized for maximum visual quality
func HighQualityRenderConfig() RenderConfig {
	config := DefaultRenderConfig()
	config.MSAASamples = 8
	config.Shininess = 64
	return config
}

// PerformanceRenderConfig returns settings optimized for performance
func PerformanceRenderConfig() RenderConfig {
	config := DefaultRenderConfig()
	config.MSAASamples = 0
	config.EnableDeformation = false
	config.ParticleScale = 0.5
	config.EnableFaceCulling = true
	return config
}

// RenderConfigByName resolves a quality preset name.
func RenderConfigByName(name string) (RenderConfig, error) {
	switch name {
	case "", "default":
		return DefaultRenderConfig(), nil
	case "high":
		return HighQualityRenderConfig(), nil
	case "performance":
		return PerformanceRenderConfig(), nil
	}
	return RenderConfig{}, fmt.Errorf("unknown quality preset %q", name)
}

// Particles scales a requested particle count, keeping at least one when
// any were requested.
func (c RenderConfig) Particles(requested int) int {
	n := int(float32(requested) * c.ParticleScale)
	if n < 1 && requested > 0 {
		return 1
	}
	return n
}
