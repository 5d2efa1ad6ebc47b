package astro

import (
	"math"
	"time"
)

// CelestialRotation builds the single matrix that maps catalog-fixed unit
// vectors (see EquatorialToCartesian) into the observer-local frame
// (x=East, y=Up, z=North) for a given location and time.
//
// It is the composition of a rotation about the polar axis by the local
// sidereal time with a tilt about the east-west axis by (90 deg - latitude),
// so one multiply replaces a per-star Alt/Az trigonometric conversion.
//
// The result must be recomputed every frame: it depends on the instant.
// It is orthogonal, so its transpose is its inverse; picking relies on that.
func CelestialRotation(obs Observer, t time.Time) Mat4 {
	obs = obs.Clamped()

	lstRad := hoursToRad(LocalSiderealTime(t, obs.LonDeg))
	lat := degToRad(obs.LatDeg)

	// Spin the sky sphere so the local meridian lands on the x-z plane.
	spin := RotationZ(-lstRad)

	// Re-express meridian-frame coordinates in the observer basis.
	// In the meridian frame the observer's East is +y, Up is
	// (cos lat, 0, sin lat) and North is (-sin lat, 0, cos lat);
	// the rows below are those basis vectors.
	sinLat, cosLat := math.Sincos(lat)
	tilt := Mat4{
		0, cosLat, -sinLat, 0,
		1, 0, 0, 0,
		0, sinLat, cosLat, 0,
		0, 0, 0, 1,
	}

	return tilt.Mul(spin)
}
