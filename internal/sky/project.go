package sky

import (
	"math"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
)

// Near/far planes for the sky dome. Stars live on the unit sphere, well
// inside this range; the exact values only matter for depth precision.
const (
	NearPlane = 0.05
	FarPlane  = 10.0
)

// Viewport is the target surface in output units (pixels or cells).
type Viewport struct {
	Width  float64
	Height float64
}

// Aspect returns width/height, the value Perspective expects.
func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return math.NaN()
	}
	return v.Width / v.Height
}

// ScreenPoint is a projected position in viewport units. Depth is the
// forward distance from the eye, positive in front of the camera.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Project maps a catalog-frame point to viewport coordinates for the given
// camera and celestial rotation. The transform order is
// projection * view * rotation * point and must not be reordered.
//
// The second return is false when the point is not visible: behind the
// camera, outside the frustum, or any NaN produced by degenerate inputs.
func Project(p astro.Vec3, cam Camera, rotation astro.Mat4, fovYDeg float64, vp Viewport) (ScreenPoint, bool) {
	view := cam.ViewMatrix()
	proj := Perspective(fovYDeg, vp.Aspect(), NearPlane, FarPlane)
	return project(p, view, proj, rotation, vp)
}

// project is the shared inner pipeline; callers that evaluate many points
// per frame build the view and projection matrices once and reuse them.
func project(p astro.Vec3, view, proj, rotation astro.Mat4, vp Viewport) (ScreenPoint, bool) {
	eye := view.TransformDir(rotation.TransformDir(p))

	depth := -eye.Z
	if !(depth > 0) { // catches NaN as well as points behind the eye
		return ScreenPoint{}, false
	}

	clip, w := proj.TransformPoint(eye)
	if !(w > 0) {
		return ScreenPoint{}, false
	}

	ndcX := clip.X / w
	ndcY := clip.Y / w
	if math.IsNaN(ndcX) || math.IsNaN(ndcY) {
		return ScreenPoint{}, false
	}
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 {
		return ScreenPoint{}, false
	}

	return ScreenPoint{
		X:     (ndcX + 1) / 2 * vp.Width,
		Y:     (1 - ndcY) / 2 * vp.Height,
		Depth: depth,
	}, true
}
