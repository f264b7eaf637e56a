// Package palette holds the page's colors as linear RGB vectors.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	Pink      = MustHex("#e83a7c")
	Purple    = MustHex("#8a56e0")
	Indigo    = MustHex("#6a3ce8")
	Green     = MustHex("#27c93f")
	Night     = MustHex("#0e0e2c")
	Panel     = MustHex("#1a1528")
	React     = MustHex("#61DAFB")
	TS        = MustHex("#3178C6")
	Lavender  = MustHex("#c0b5e6")
	CardTint  = MustHex("#cccccc")
	White     = mgl32.Vec3{1, 1, 1}
	Particles = []mgl32.Vec3{Pink, Purple, Indigo}
)

// Hex parses #rrggbb or #rgb.
func Hex(s string) (mgl32.Vec3, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return mgl32.Vec3{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("color %q: %w", s, err)
	}
	return mgl32.Vec3{
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// MustHex is Hex for constants; it panics on a malformed literal.
func MustHex(s string) mgl32.Vec3 {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA8 converts a color and alpha to 8-bit channels.
func RGBA8(c mgl32.Vec3, alpha float32) [4]uint8 {
	to8 := func(f float32) uint8 {
		return uint8(mgl32.Clamp(f, 0, 1)*255 + 0.5)
	}
	return [4]uint8{to8(c[0]), to8(c[1]), to8(c[2]), to8(alpha)}
}
