package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"Folio3D/internal/scene"
)

func testCamera() *Camera {
	return NewCamera(scene.CameraSpec{Position: mgl32.Vec3{0, 0, 5}, FOV: 50}, 800, 600)
}

func TestNewCamera(t *testing.T) {
	cam := testCamera()

	if cam.Position != (mgl32.Vec3{0, 0, 5}) {
		t.Errorf("Expected position (0,0,5), got %v", cam.Position)
	}
	if !cam.Front.ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Expected camera to look down -Z, got %v", cam.Front)
	}
	if math.Abs(float64(cam.AspectRatio)-800.0/600.0) > 1e-6 {
		t.Errorf("Expected aspect 4/3, got %f", cam.AspectRatio)
	}
}

func TestCameraZeroSizeAspect(t *testing.T) {
	cam := NewCamera(scene.CameraSpec{FOV: 75}, 0, 0)
	if cam.AspectRatio != 1 {
		t.Errorf("Expected aspect 1 for an empty viewport, got %f", cam.AspectRatio)
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := testCamera()
	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
	origin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math.Abs(float64(origin.Z()+5)) > 1e-5 {
		t.Errorf("Expected world origin 5 units in front, got z=%f", origin.Z())
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := testCamera()
	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraResize(t *testing.T) {
	cam := testCamera()
	before := cam.Projection
	cam.Resize(1600, 400)

	if cam.AspectRatio != 4 {
		t.Errorf("Expected aspect 4, got %f", cam.AspectRatio)
	}
	if cam.Projection == before {
		t.Error("Resize should rebuild the projection")
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := testCamera()
	cam.LookAt(mgl32.Vec3{5, 0, 5})

	if !cam.Front.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Expected front +X, got %v", cam.Front)
	}
	if math.Abs(float64(cam.Front.Len())-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", cam.Front.Len())
	}
}

func TestScreenToRayCenter(t *testing.T) {
	cam := testCamera()
	ray := ScreenToRay(cam, 400, 300, 800, 600)

	if ray.Origin != cam.Position {
		t.Errorf("Expected ray from camera, got %v", ray.Origin)
	}
	if !ray.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Expected center ray down -Z, got %v", ray.Direction)
	}
}

func TestScreenToRayEdgeMatchesFov(t *testing.T) {
	cam := testCamera()

	top := ScreenToRay(cam, 400, 0, 800, 600)
	angle := math.Atan2(float64(top.Direction.Y()), float64(-top.Direction.Z()))
	if math.Abs(angle-float64(mgl32.DegToRad(25))) > 1e-4 {
		t.Errorf("Expected top edge at half fov, got %f rad", angle)
	}

	right := ScreenToRay(cam, 800, 300, 800, 600)
	halfW := math.Tan(float64(mgl32.DegToRad(25))) * 800 / 600
	got := float64(right.Direction.X() / -right.Direction.Z())
	if math.Abs(got-halfW) > 1e-4 {
		t.Errorf("Expected right edge slope %f, got %f", halfW, got)
	}
}
