package renderer

import (
	"context"

	"Folio3D/internal/scene"
)

// Viewport is a window region in framebuffer pixels, origin bottom-left.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// Empty reports whether nothing can be drawn into v.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

type Render interface {
	Init(ctx context.Context, width, height int32) error
	BeginFrame()
	Render(camera *Camera, viewport Viewport, models []*Model, lighting scene.Lighting, t float32)
	AddModel(model *Model) error
	RemoveModel(model *Model)
	UpdateModel(model *Model)
	UpdateViewport(width, height int32)
	Cleanup()
}
