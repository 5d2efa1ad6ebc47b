package sky

import (
	"math"
	"testing"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
)

func TestApplyDrag_Accumulates(t *testing.T) {
	var c Camera

	c = c.ApplyDrag(10, 0)
	c = c.ApplyDrag(10, 0)

	want := 20 * DragSensitivity
	if math.Abs(c.YawRad-want) > 1e-12 {
		t.Errorf("yaw after two drags = %v, want %v", c.YawRad, want)
	}
	if c.PitchRad != 0 {
		t.Errorf("pitch changed by horizontal drag: %v", c.PitchRad)
	}
}

func TestApplyDrag_PitchClamped(t *testing.T) {
	var c Camera

	// Drag upward far past the pole; pitch must stay inside (-pi/2, pi/2).
	for i := 0; i < 10000; i++ {
		c = c.ApplyDrag(0, 50)
	}
	if c.PitchRad >= math.Pi/2 {
		t.Errorf("pitch reached %v, must stay below pi/2", c.PitchRad)
	}

	for i := 0; i < 20000; i++ {
		c = c.ApplyDrag(0, -50)
	}
	if c.PitchRad <= -math.Pi/2 {
		t.Errorf("pitch reached %v, must stay above -pi/2", c.PitchRad)
	}
}

func TestViewMatrix_Orthogonal(t *testing.T) {
	cams := []Camera{
		{},
		{YawRad: 1.3, PitchRad: 0.4},
		{YawRad: -2.8, PitchRad: -1.2},
		{YawRad: 6.9, PitchRad: 1.5},
	}

	for _, c := range cams {
		m := c.ViewMatrix()
		prod := m.Transpose().Mul(m)
		id := astro.Identity()
		for i := range prod {
			if math.Abs(prod[i]-id[i]) > 1e-12 {
				t.Errorf("view matrix not orthogonal for %+v", c)
				break
			}
		}
	}
}

func TestViewMatrix_LooksAlongYawPitch(t *testing.T) {
	// The camera's forward direction in the observer frame must map to
	// the eye's -z axis.
	tests := []struct {
		name string
		cam  Camera
	}{
		{"north", Camera{}},
		{"east", Camera{YawRad: math.Pi / 2}},
		{"up northward", Camera{PitchRad: 1.0}},
		{"southwest down", Camera{YawRad: -3 * math.Pi / 4, PitchRad: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sinP, cosP := math.Sincos(tt.cam.PitchRad)
			sinY, cosY := math.Sincos(tt.cam.YawRad)
			forward := astro.Vec3{X: cosP * sinY, Y: sinP, Z: cosP * cosY}

			got := tt.cam.ViewMatrix().TransformDir(forward)
			if got.Sub(astro.Vec3{Z: -1}).Norm() > 1e-12 {
				t.Errorf("forward maps to %+v, want (0,0,-1)", got)
			}
		})
	}
}

func TestViewMatrix_EastOnRightLookingNorth(t *testing.T) {
	// Looking North in the real sky, East is on the right.
	east := astro.Vec3{X: 1}
	got := Camera{}.ViewMatrix().TransformDir(east)
	if got.Sub(astro.Vec3{X: 1}).Norm() > 1e-12 {
		t.Errorf("east maps to %+v, want (1,0,0)", got)
	}
}

func TestPerspective_KnownValues(t *testing.T) {
	// fov 90, aspect 1: focal factor 1.
	m := Perspective(90, 1, 0.1, 10)

	if math.Abs(m.At(0, 0)-1) > 1e-12 || math.Abs(m.At(1, 1)-1) > 1e-12 {
		t.Errorf("focal terms = %v, %v, want 1, 1", m.At(0, 0), m.At(1, 1))
	}
	if math.Abs(m.At(3, 2)+1) > 1e-12 {
		t.Errorf("w row = %v, want -1", m.At(3, 2))
	}
}

func TestPerspective_DegenerateInputsAreNaN(t *testing.T) {
	bad := []astro.Mat4{
		Perspective(0, 1, 0.1, 10),
		Perspective(180, 1, 0.1, 10),
		Perspective(60, 0, 0.1, 10),
		Perspective(60, -2, 0.1, 10),
		Perspective(60, 1, 10, 0.1),
	}

	for i, m := range bad {
		if !math.IsNaN(m.At(0, 0)) {
			t.Errorf("case %d: degenerate perspective should be NaN, got %v", i, m.At(0, 0))
		}
	}
}
