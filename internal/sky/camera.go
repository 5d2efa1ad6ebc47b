// Package sky implements the camera, projection, and star-picking math
// that turns catalog-frame positions into screen positions and back.
package sky

import (
	"math"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
)

const (
	// DragSensitivity converts pointer deltas to radians of camera
	// motion. Motion is 1:1 with the pointer; there is no inertia.
	DragSensitivity = 0.0045

	// pitchLimit keeps the camera strictly inside (-pi/2, pi/2) so the
	// view basis never degenerates at the poles.
	pitchLimit = math.Pi/2 - 1e-3
)

// Camera is a yaw/pitch orbital camera. Yaw rotates about the observer's
// Up axis (0 = North, increasing toward East, matching azimuth); pitch
// rotates about the local horizontal axis, positive upward.
//
// The camera is owned and mutated exclusively by the interaction layer;
// projection and picking only read it.
type Camera struct {
	YawRad   float64
	PitchRad float64
}

// ApplyDrag accumulates a pointer drag into the camera angles. dx moves
// the view toward the drag direction horizontally, dy vertically; pitch is
// clamped at the limits, yaw accumulates freely (the trig is periodic).
func (c Camera) ApplyDrag(dx, dy float64) Camera {
	c.YawRad += dx * DragSensitivity
	c.PitchRad = clampPitch(c.PitchRad + dy*DragSensitivity)
	return c
}

func clampPitch(p float64) float64 {
	if p > pitchLimit {
		return pitchLimit
	}
	if p < -pitchLimit {
		return -pitchLimit
	}
	return p
}

// ViewMatrix builds the transform from the observer frame (x=East, y=Up,
// z=North) into the eye frame (x right, y up, camera looking down -z).
//
// The product is orthogonal (the z flip is an axis reflection, the rest
// pure rotations), so the picking path inverts it by transpose. That
// shortcut breaks the moment any non-rigid factor is added here.
func (c Camera) ViewMatrix() astro.Mat4 {
	// z flip: the eye looks down -z, the observer frame puts the yaw=0
	// direction (North) on +z.
	flip := astro.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	}
	return flip.Mul(astro.RotationX(clampPitch(c.PitchRad))).Mul(astro.RotationY(-c.YawRad))
}

// Perspective builds a standard right-handed perspective projection for a
// vertical field of view in degrees. Degenerate inputs (fov outside
// (0,180), aspect <= 0, near/far not ordered) yield a NaN matrix; the NaN
// flows through projection and reads as "not visible" rather than a panic.
func Perspective(fovYDeg, aspect, near, far float64) astro.Mat4 {
	if !(fovYDeg > 0 && fovYDeg < 180) || !(aspect > 0) || !(near > 0 && far > near) {
		var m astro.Mat4
		for i := range m {
			m[i] = math.NaN()
		}
		return m
	}

	f := 1 / math.Tan(fovYDeg*math.Pi/360)
	return astro.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), -1,
		0, 0, 2 * far * near / (near - far), 0,
	}
}
