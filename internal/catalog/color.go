package catalog

import "math"

// RGB is a display color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// B-V indices outside this range are observational noise or heavily
// reddened objects; clamp before lookup to avoid extrapolation artifacts.
const (
	minBV = -0.4
	maxBV = 2.0
)

// ColorFromBV approximates a star's display color from its B-V color index.
//
// The index is clamped, converted to an effective temperature estimate
// (Ballesteros' formula), and mapped through fixed bands from hot
// blue-white down to red.
func ColorFromBV(bv float64) RGB {
	if math.IsNaN(bv) {
		return RGB{R: 1, G: 1, B: 1}
	}
	if bv < minBV {
		bv = minBV
	} else if bv > maxBV {
		bv = maxBV
	}

	t := bvToTemperature(bv)

	switch {
	case t >= 11000: // O/B: blue-white
		return RGB{R: 0.78, G: 0.74, B: 1.00}
	case t >= 7500: // A: white with a blue cast
		return RGB{R: 0.90, G: 0.89, B: 1.00}
	case t >= 6000: // F: white
		return RGB{R: 1.00, G: 0.98, B: 0.93}
	case t >= 5000: // G: yellow-white
		return RGB{R: 1.00, G: 0.93, B: 0.78}
	case t >= 3900: // K: orange
		return RGB{R: 1.00, G: 0.82, B: 0.57}
	default: // M: red
		return RGB{R: 1.00, G: 0.64, B: 0.35}
	}
}

// bvToTemperature estimates effective temperature in Kelvin from B-V.
func bvToTemperature(bv float64) float64 {
	return 4600 * (1/(0.92*bv+1.7) + 1/(0.92*bv+0.62))
}
