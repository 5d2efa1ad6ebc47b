package sky

import (
	"math"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
	"github.com/openclaw-blip/stellar-sky/internal/catalog"
)

// PickConfig tunes both picking strategies.
type PickConfig struct {
	// Forward projection: per-star hit radius in viewport units,
	// r = clamp(BaseRadius - RadiusSlope*mag, MinRadius, MaxRadius).
	// Brighter stars (lower magnitude) get the larger radius, modeling
	// perceived point size.
	BaseRadius  float64
	RadiusSlope float64
	MinRadius   float64
	MaxRadius   float64

	// Inverse ray: maximum chord distance between the cast ray and a
	// star's unit-sphere position. A lenient near-equality radius, not a
	// magic constant; 0.06 is roughly 3.4 degrees.
	RayThreshold float64
}

// DefaultPickConfig returns the tuning used by the interactive view.
func DefaultPickConfig() PickConfig {
	return PickConfig{
		BaseRadius:   9,
		RadiusSlope:  1.2,
		MinRadius:    2,
		MaxRadius:    12,
		RayThreshold: 0.06,
	}
}

// HitRadius returns the forward-projection hit radius for a magnitude.
func (c PickConfig) HitRadius(mag float64) float64 {
	r := c.BaseRadius - c.RadiusSlope*mag
	if r < c.MinRadius {
		return c.MinRadius
	}
	if r > c.MaxRadius {
		return c.MaxRadius
	}
	return r
}

// PickNearestScreen finds the visible star nearest to a cursor position by
// forward-projecting every candidate through the full pipeline. This is
// the primary picking strategy.
//
// A candidate must be above the horizon (observer-frame Up component
// non-negative) and in front of the camera before it is screen-projected.
// On an exact distance tie the first star in catalog order wins, which by
// the magnitude sort is the brightest.
//
// Returns (nil, false) when the catalog is empty, the cursor is outside
// the viewport, or nothing is within its hit radius.
func PickNearestScreen(cat *catalog.Catalog, cursorX, cursorY float64, cam Camera, rotation astro.Mat4, fovYDeg float64, vp Viewport, cfg PickConfig) (*catalog.Star, bool) {
	if cat.Len() == 0 || !cursorInside(cursorX, cursorY, vp) {
		return nil, false
	}

	view := cam.ViewMatrix()
	proj := Perspective(fovYDeg, vp.Aspect(), NearPlane, FarPlane)

	var best *catalog.Star
	bestDist := math.Inf(1)

	for i := range cat.Stars {
		s := &cat.Stars[i]

		obs := rotation.TransformDir(s.Pos)
		if obs.Y < 0 {
			continue // below horizon
		}

		pt, ok := project(s.Pos, view, proj, rotation, vp)
		if !ok {
			continue
		}

		dx := pt.X - cursorX
		dy := pt.Y - cursorY
		dist := math.Hypot(dx, dy)
		if dist <= cfg.HitRadius(s.Mag) && dist < bestDist {
			best = s
			bestDist = dist
		}
	}

	return best, best != nil
}

// PickNearestRay finds the star nearest to a cursor position by casting
// the cursor back through the inverse pipeline into catalog space and
// scanning for the closest unit-sphere position.
//
// Both the view transform and the celestial rotation are orthogonal, so
// they are inverted by transpose. The same above-horizon filter as the
// forward strategy applies, keeping the two strategies in agreement.
func PickNearestRay(cat *catalog.Catalog, cursorX, cursorY float64, cam Camera, rotation astro.Mat4, fovYDeg float64, vp Viewport, cfg PickConfig) (*catalog.Star, bool) {
	if cat.Len() == 0 || !cursorInside(cursorX, cursorY, vp) {
		return nil, false
	}

	dir, ok := cursorRay(cursorX, cursorY, cam, rotation, fovYDeg, vp)
	if !ok {
		return nil, false
	}

	var best *catalog.Star
	bestDist := math.Inf(1)

	for i := range cat.Stars {
		s := &cat.Stars[i]

		if rotation.TransformDir(s.Pos).Y < 0 {
			continue
		}

		dist := s.Pos.Sub(dir).Norm()
		if dist <= cfg.RayThreshold && dist < bestDist {
			best = s
			bestDist = dist
		}
	}

	return best, best != nil
}

// cursorRay maps a viewport position to a unit direction in catalog space.
func cursorRay(cursorX, cursorY float64, cam Camera, rotation astro.Mat4, fovYDeg float64, vp Viewport) (astro.Vec3, bool) {
	ndcX := 2*cursorX/vp.Width - 1
	ndcY := 1 - 2*cursorY/vp.Height

	halfTan := math.Tan(fovYDeg * math.Pi / 360)
	eyeDir := astro.Vec3{
		X: ndcX * halfTan * vp.Aspect(),
		Y: ndcY * halfTan,
		Z: -1,
	}.Normalized()
	if math.IsNaN(eyeDir.X) || math.IsNaN(eyeDir.Y) || math.IsNaN(eyeDir.Z) {
		return astro.Vec3{}, false
	}

	obsDir := cam.ViewMatrix().Transpose().TransformDir(eyeDir)
	return rotation.Transpose().TransformDir(obsDir), true
}

func cursorInside(x, y float64, vp Viewport) bool {
	return x >= 0 && x <= vp.Width && y >= 0 && y <= vp.Height
}
