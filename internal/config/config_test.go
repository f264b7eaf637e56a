package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folio.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.Scene.ParticleCount)
	assert.Equal(t, 300.0, cfg.Page.LookAhead)
	assert.Equal(t, 50.0, cfg.Page.ScrolledThreshold)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 640

[scene]
particle_count = 10
quality = "performance"

[page.section_heights]
projects = 1200
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, 10, cfg.Scene.ParticleCount)
	assert.Equal(t, "performance", cfg.Scene.Quality)
	assert.Equal(t, 1200.0, cfg.Page.SectionHeights["projects"])
	assert.Equal(t, 800.0, cfg.Page.SectionHeights["home"])
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		is   error
	}{
		{"unknown key", "[window]\ndepth = 3\n", nil},
		{"negative particles", "[scene]\nparticle_count = -1\n", ErrInvalid},
		{"unknown quality", "[scene]\nquality = \"ultra\"\n", ErrInvalid},
		{"zero section height", "[page.section_heights]\nabout = 0\n", ErrInvalid},
		{"bad level", "[log]\nlevel = \"loud\"\n", ErrUnknownLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestLoadFonts(t *testing.T) {
	path := writeConfig(t, `
[fonts]
mono = "/usr/share/fonts/JetBrainsMono-Regular.ttf"
mono_bold = "/usr/share/fonts/JetBrainsMono-Bold.ttf"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/fonts/JetBrainsMono-Regular.ttf", cfg.Fonts.Mono)
	assert.Equal(t, "/usr/share/fonts/JetBrainsMono-Bold.ttf", cfg.Fonts.MonoBold)
	assert.Empty(t, cfg.Fonts.Regular)
}
