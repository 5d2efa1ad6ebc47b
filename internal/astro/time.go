// Package astro provides astronomical time and coordinate transformations.
package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00:00 UTC).
const J2000 = 2451545.0

// JulianDate converts a time.Time to a Julian Date.
// Uses the standard astronomical algorithm for the Gregorian calendar.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// Treat January/February as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// GMST returns Greenwich Mean Sidereal Time in hours [0, 24) for a Julian Date.
// Uses the IAU 1982 polynomial referenced to J2000.0.
func GMST(jd float64) float64 {
	T := (jd - J2000) / 36525.0

	// GMST in degrees
	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*T*T -
		T*T*T/38710000.0

	gmst = math.Mod(gmst, 360)
	if gmst < 0 {
		gmst += 360
	}

	return gmst / 15 // degrees -> hours
}

// LocalSiderealTime returns the Local Sidereal Time in hours [0, 24)
// for a UTC time and an observer longitude in degrees (east positive).
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	lst := GMST(JulianDate(t)) + lonDeg/15

	lst = math.Mod(lst, 24)
	if lst < 0 {
		lst += 24
	}

	return lst
}
