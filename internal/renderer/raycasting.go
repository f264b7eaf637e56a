package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/scene"
)

// ScreenToRay converts a position inside a viewport of the given size to a
// world space ray from the camera.
func ScreenToRay(camera *Camera, screenX, screenY float32, viewportWidth, viewportHeight int) scene.Ray {
	// NDC (-1 to 1); the projection already accounts for aspect ratio
	ndcX := 2.0*screenX/float32(viewportWidth) - 1.0
	ndcY := 1.0 - 2.0*screenY/float32(viewportHeight)

	clipCoords := mgl32.Vec4{ndcX, ndcY, -1.0, 1.0}

	// Clip space to eye space
	eyeCoords := camera.Projection.Inv().Mul4x1(clipCoords)
	eyeCoords = mgl32.Vec4{eyeCoords.X(), eyeCoords.Y(), -1.0, 0.0}

	// Eye space to world space
	worldDir := camera.GetViewMatrix().Inv().Mul4x1(eyeCoords).Vec3().Normalize()

	return scene.Ray{
		Origin:    camera.Position,
		Direction: worldDir,
	}
}
