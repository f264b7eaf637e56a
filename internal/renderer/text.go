package renderer

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"Folio3D/internal/logger"
	"Folio3D/internal/palette"
)

// PixelsPerUnit is the raster resolution of text per world unit of font size.
const PixelsPerUnit = 256

// FontFace selects one of the four faces a TextRenderer holds.
type FontFace struct {
	Bold bool
	Mono bool
}

// TextStyle describes how a string is rasterised.
type TextStyle struct {
	Face  FontFace
	Size  float64 // pixels per em
	Color mgl32.Vec3
}

// TextRenderer rasterises strings into RGBA images with freetype. It starts
// with the Go fonts and can have any face replaced from a TTF file.
type TextRenderer struct {
	mu    sync.Mutex
	fonts map[FontFace]*truetype.Font
}

func NewTextRenderer() (*TextRenderer, error) {
	builtin := map[FontFace][]byte{
		{}:                       goregular.TTF,
		{Bold: true}:             gobold.TTF,
		{Mono: true}:             gomono.TTF,
		{Bold: true, Mono: true}: gomonobold.TTF,
	}
	tr := &TextRenderer{fonts: make(map[FontFace]*truetype.Font, len(builtin))}
	for face, ttf := range builtin {
		f, err := truetype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse builtin font %+v: %w", face, err)
		}
		tr.fonts[face] = f
	}
	return tr, nil
}

// LoadFont replaces face with the TTF at path. On failure the current face
// is kept and the error returned.
func (tr *TextRenderer) LoadFont(face FontFace, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", path, err)
	}
	tr.mu.Lock()
	tr.fonts[face] = f
	tr.mu.Unlock()
	logger.Log.Info("Font loaded", zap.String("path", path), zap.Bool("bold", face.Bold), zap.Bool("mono", face.Mono))
	return nil
}

func (tr *TextRenderer) font(face FontFace) *truetype.Font {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if f, ok := tr.fonts[face]; ok {
		return f
	}
	return tr.fonts[FontFace{}]
}

// Measure returns the pixel size of text set in style.
func (tr *TextRenderer) Measure(text string, style TextStyle) (int, int) {
	face := truetype.NewFace(tr.font(style.Face), &truetype.Options{Size: style.Size, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()
	m := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	return w, h
}

// Rasterize draws text on a transparent image just large enough to hold it.
// Empty text yields a 1×1 transparent image.
func (tr *TextRenderer) Rasterize(text string, style TextStyle) (*image.RGBA, error) {
	if style.Size <= 0 {
		return nil, fmt.Errorf("text size %v must be positive", style.Size)
	}
	w, h := tr.Measure(text, style)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if text == "" {
		return img, nil
	}

	f := tr.font(style.Face)
	rgba := palette.RGBA8(style.Color, 1)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(style.Size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: 255}))
	ctx.SetHinting(font.HintingFull)

	face := truetype.NewFace(f, &truetype.Options{Size: style.Size, DPI: 72, Hinting: font.HintingFull})
	ascent := face.Metrics().Ascent
	face.Close()

	if _, err := ctx.DrawString(text, freetype.Pt(0, ascent.Ceil())); err != nil {
		return nil, fmt.Errorf("draw %q: %w", text, err)
	}
	return img, nil
}
