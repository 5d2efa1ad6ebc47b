package astro

import (
	"math"
	"time"
)

// Equatorial represents a fixed sky-sphere position, independent of observer.
type Equatorial struct {
	RAHours float64 // Right Ascension in hours (0-24)
	DecDeg  float64 // Declination in degrees (-90 to +90)
}

// Horizontal represents an observer-relative position.
type Horizontal struct {
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith)
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// Clamped returns the observer with latitude forced into [-90, 90] and
// longitude into [-180, 180]. Out-of-range numeric input must never panic;
// clamping keeps the trigonometry in its intended domain.
func (o Observer) Clamped() Observer {
	o.LatDeg = clamp(o.LatDeg, -90, 90)
	o.LonDeg = clamp(o.LonDeg, -180, 180)
	return o
}

// EquatorialToHorizontal converts equatorial coordinates to horizontal
// coordinates for a given observer and time.
//
// Azimuth is computed with atan2 so the quadrant is always correct.
// At the zenith (cos alt ~ 0) azimuth is ill-defined; atan2(0,0) = 0 is
// returned, an arbitrary but in-range value.
func EquatorialToHorizontal(eq Equatorial, obs Observer, t time.Time) Horizontal {
	obs = obs.Clamped()

	lat := degToRad(obs.LatDeg)
	ra := hoursToRad(eq.RAHours)
	dec := degToRad(eq.DecDeg)

	lst := LocalSiderealTime(t, obs.LonDeg)

	// Hour Angle = LST - RA
	ha := hoursToRad(lst) - ra

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	sinAlt = clamp(sinAlt, -1, 1)
	alt := math.Asin(sinAlt)

	// Both atan2 arguments carry a common cos(alt) factor, so the quotient
	// is unaffected and no separate cos(alt) is needed. Azimuth measured
	// from North toward East.
	sinAzCosAlt := -math.Sin(ha) * math.Cos(dec)
	cosAzCosAlt := math.Sin(dec)*math.Cos(lat) - math.Cos(dec)*math.Sin(lat)*math.Cos(ha)

	az := math.Atan2(sinAzCosAlt, cosAzCosAlt)
	if az < 0 {
		az += 2 * math.Pi
	}

	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  radToDeg(az),
	}
}

// EquatorialToCartesian maps RA/Dec onto the unit sphere in the
// catalog-fixed frame: x toward RA=0h on the equator, y toward RA=6h,
// z toward the north celestial pole.
func EquatorialToCartesian(raHours, decDeg float64) Vec3 {
	ra := hoursToRad(raHours)
	dec := degToRad(decDeg)

	cosDec := math.Cos(dec)
	return Vec3{
		X: cosDec * math.Cos(ra),
		Y: cosDec * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// HorizontalToCartesian maps Alt/Az onto the unit sphere in the
// observer-local frame: x=East, y=Zenith/Up, z=North.
func HorizontalToCartesian(h Horizontal) Vec3 {
	alt := degToRad(h.AltDeg)
	az := degToRad(h.AzDeg)

	cosAlt := math.Cos(alt)
	return Vec3{
		X: cosAlt * math.Sin(az),
		Y: math.Sin(alt),
		Z: cosAlt * math.Cos(az),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// hoursToRad converts hours of right ascension or sidereal time to radians.
func hoursToRad(h float64) float64 {
	return h * 15 * math.Pi / 180
}
