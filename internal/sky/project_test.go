package sky

import (
	"math"
	"testing"
	"time"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
)

var testViewport = Viewport{Width: 800, Height: 600}

func TestProject_CenterOfView(t *testing.T) {
	// A point straight ahead of the camera lands at the viewport center.
	tests := []struct {
		name  string
		cam   Camera
		point astro.Vec3
	}{
		{"north", Camera{}, astro.Vec3{Z: 1}},
		{"east", Camera{YawRad: math.Pi / 2}, astro.Vec3{X: 1}},
		{"zenith-ish", Camera{PitchRad: 1.2}, astro.Vec3{Y: math.Sin(1.2), Z: math.Cos(1.2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, ok := Project(tt.point, tt.cam, astro.Identity(), 60, testViewport)
			if !ok {
				t.Fatal("point straight ahead reported not visible")
			}
			if math.Abs(pt.X-400) > 1e-6 || math.Abs(pt.Y-300) > 1e-6 {
				t.Errorf("projected to (%v, %v), want viewport center", pt.X, pt.Y)
			}
			if pt.Depth <= 0 {
				t.Errorf("depth = %v, want positive", pt.Depth)
			}
		})
	}
}

func TestProject_BehindCamera(t *testing.T) {
	// Looking North, a point due South is behind the eye.
	if _, ok := Project(astro.Vec3{Z: -1}, Camera{}, astro.Identity(), 60, testViewport); ok {
		t.Error("point behind camera reported visible")
	}
}

func TestProject_OutsideFrustum(t *testing.T) {
	// With a narrow FOV, a point 45 degrees off-axis is off-screen.
	point := astro.Vec3{X: 1, Z: 1}.Normalized()
	if _, ok := Project(point, Camera{}, astro.Identity(), 30, testViewport); ok {
		t.Error("point far off-axis reported visible")
	}
}

func TestProject_UpIsUp(t *testing.T) {
	// A point slightly above the view axis projects above center
	// (smaller Y in screen coordinates).
	above := astro.Vec3{Y: math.Sin(0.1), Z: math.Cos(0.1)}
	pt, ok := Project(above, Camera{}, astro.Identity(), 60, testViewport)
	if !ok {
		t.Fatal("point slightly above axis not visible")
	}
	if pt.Y >= 300 {
		t.Errorf("screen Y = %v, want above center (< 300)", pt.Y)
	}
	if math.Abs(pt.X-400) > 1e-6 {
		t.Errorf("screen X = %v, want centered", pt.X)
	}
}

func TestProject_EastIsRightLookingNorth(t *testing.T) {
	slightlyEast := astro.Vec3{X: math.Sin(0.1), Z: math.Cos(0.1)}
	pt, ok := Project(slightlyEast, Camera{}, astro.Identity(), 60, testViewport)
	if !ok {
		t.Fatal("point slightly east of axis not visible")
	}
	if pt.X <= 400 {
		t.Errorf("screen X = %v, want right of center (> 400)", pt.X)
	}
}

func TestProject_DegenerateViewportNotVisible(t *testing.T) {
	if _, ok := Project(astro.Vec3{Z: 1}, Camera{}, astro.Identity(), 60, Viewport{}); ok {
		t.Error("zero viewport should never report visible")
	}
}

func TestProject_WithCelestialRotation(t *testing.T) {
	// Full pipeline: aim the camera at a star's Alt/Az and the star's
	// catalog position must project to the viewport center.
	obs := astro.Observer{LatDeg: 35, LonDeg: -117}
	at := time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC)
	eq := astro.Equatorial{RAHours: 18.616, DecDeg: 38.784}

	h := astro.EquatorialToHorizontal(eq, obs, at)
	if h.AltDeg < 5 {
		t.Skipf("test star below usable altitude at chosen instant: %v", h.AltDeg)
	}

	cam := Camera{
		YawRad:   h.AzDeg * math.Pi / 180,
		PitchRad: h.AltDeg * math.Pi / 180,
	}
	rotation := astro.CelestialRotation(obs, at)

	pt, ok := Project(astro.EquatorialToCartesian(eq.RAHours, eq.DecDeg), cam, rotation, 60, testViewport)
	if !ok {
		t.Fatal("aimed-at star not visible")
	}
	if math.Abs(pt.X-400) > 0.01 || math.Abs(pt.Y-300) > 0.01 {
		t.Errorf("aimed-at star projects to (%v, %v), want (400, 300)", pt.X, pt.Y)
	}
}
