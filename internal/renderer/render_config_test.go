package renderer

import (
	"testing"

	"Folio3D/internal/config"
)

func TestDefaultRenderConfig(t *testing.T) {
	cfg := DefaultRenderConfig()

	if cfg.MSAASamples != 4 {
		t.Errorf("Expected 4x MSAA, got %d", cfg.MSAASamples)
	}
	if !cfg.EnableDeformation {
		t.Error("Deformation should be enabled by default")
	}
	if cfg.Particles(50) != 50 {
		t.Errorf("Default should keep all particles, got %d", cfg.Particles(50))
	}
}

func TestPerformanceRenderConfig(t *testing.T) {
	cfg := PerformanceRenderConfig()

	if cfg.EnableDeformation {
		t.Error("Performance preset should skip deformation")
	}
	if got := cfg.Particles(50); got != 25 {
		t.Errorf("Expected 25 particles, got %d", got)
	}
	if got := cfg.Particles(1); got != 1 {
		t.Errorf("Expected at least one particle, got %d", got)
	}
	if got := cfg.Particles(0); got != 0 {
		t.Errorf("Expected no particles, got %d", got)
	}
}

func TestRenderConfigByNameCoversQualityPresets(t *testing.T) {
	for _, name := range config.QualityPresets {
		if _, err := RenderConfigByName(name); err != nil {
			t.Errorf("Preset %q: %v", name, err)
		}
	}
	if _, err := RenderConfigByName("ultra"); err == nil {
		t.Error("Unknown preset should fail")
	}
}
