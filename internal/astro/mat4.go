package astro

import "math"

// Mat4 is a 4x4 matrix stored as a flat 16-element column-major array,
// the layout GPU pipelines and the rest of the projection code expect.
// Element (row r, column c) lives at index c*4 + r.
type Mat4 [16]float64

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float64 {
	return m[col*4+row]
}

// Mul returns the product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// Transpose returns the transpose of the matrix. For the pure rotation
// matrices used throughout this package the transpose is also the inverse;
// that shortcut does not hold for projection matrices or any transform
// carrying scale or translation.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// TransformPoint applies the matrix to a point (w=1) and returns the
// transformed xyz together with the resulting w component.
func (m Mat4) TransformPoint(v Vec3) (Vec3, float64) {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	return Vec3{X: x, Y: y, Z: z}, w
}

// TransformDir applies only the upper-left 3x3 part of the matrix to a
// direction vector, ignoring translation.
func (m Mat4) TransformDir(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// RotationX returns a rotation about the x-axis by angle radians,
// rotating +y toward +z for positive angles.
func RotationX(angle float64) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation about the y-axis by angle radians,
// rotating +z toward +x for positive angles.
func RotationY(angle float64) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation about the z-axis by angle radians,
// rotating +x toward +y for positive angles.
func RotationZ(angle float64) Mat4 {
	s, c := sincos(angle)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func sincos(angle float64) (sin, cos float64) {
	return math.Sincos(angle)
}
