package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRasterizeNonEmpty(t *testing.T) {
	tr, err := NewTextRenderer()
	if err != nil {
		t.Fatalf("NewTextRenderer: %v", err)
	}

	for _, face := range []FontFace{{}, {Bold: true}, {Mono: true}, {Bold: true, Mono: true}} {
		img, err := tr.Rasterize("const Portfolio", TextStyle{Face: face, Size: 32, Color: mgl32.Vec3{1, 1, 1}})
		if err != nil {
			t.Fatalf("Rasterize %+v: %v", face, err)
		}
		b := img.Bounds()
		if b.Dx() < 32 || b.Dy() < 16 {
			t.Errorf("Face %+v: image too small: %v", face, b)
		}
		var inked int
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] > 0 {
				inked++
			}
		}
		if inked == 0 {
			t.Errorf("Face %+v: no pixels drawn", face)
		}
	}
}

func TestRasterizeEmptyAndInvalid(t *testing.T) {
	tr, err := NewTextRenderer()
	if err != nil {
		t.Fatal(err)
	}
	img, err := tr.Rasterize("", TextStyle{Size: 20})
	if err != nil {
		t.Fatalf("Empty text should not fail: %v", err)
	}
	if img.Bounds().Dx() < 1 || img.Bounds().Dy() < 1 {
		t.Errorf("Expected at least a 1x1 image, got %v", img.Bounds())
	}
	if _, err := tr.Rasterize("x", TextStyle{Size: 0}); err == nil {
		t.Error("Expected an error for zero size")
	}
}

func TestMonoWidthsMatch(t *testing.T) {
	tr, err := NewTextRenderer()
	if err != nil {
		t.Fatal(err)
	}
	style := TextStyle{Face: FontFace{Mono: true}, Size: 24}
	w1, _ := tr.Measure("iiii", style)
	w2, _ := tr.Measure("MMMM", style)
	if w1 != w2 {
		t.Errorf("Expected equal monospace widths, got %d and %d", w1, w2)
	}
}

func TestLoadFontFallback(t *testing.T) {
	tr, err := NewTextRenderer()
	if err != nil {
		t.Fatal(err)
	}
	mono := FontFace{Mono: true}
	before := tr.font(mono)

	if err := tr.LoadFont(mono, filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("Expected an error for a missing font file")
	}
	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := tr.LoadFont(mono, bad); err == nil {
		t.Error("Expected an error for a corrupt font file")
	}
	if tr.font(mono) != before {
		t.Error("A failed load must keep the previous face")
	}
}
