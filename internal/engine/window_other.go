//go:build !windows

package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// SetDarkTitleBar is a no-op: other platforms theme the frame themselves.
func SetDarkTitleBar(*glfw.Window, mgl32.Vec3) {}
