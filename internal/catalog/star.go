// Package catalog holds the star dataset: positions, magnitudes, and
// derived colors, loaded once and immutable for the rest of the session.
package catalog

import (
	"sort"
	"strconv"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
)

// Star is a single catalog record. All derived fields (Pos, Color) are
// computed once at load time; a Star is never mutated afterwards.
type Star struct {
	ID         int
	RAHours    float64 // Right Ascension in hours (0-24)
	DecDeg     float64 // Declination in degrees (-90 to +90)
	Mag        float64 // Apparent visual magnitude (lower = brighter)
	ColorIndex float64 // B-V color index

	Pos   astro.Vec3 // Unit-sphere position in the catalog-fixed frame
	Color RGB        // Display color derived from ColorIndex

	ProperName    string // e.g. "Sirius" (may be empty)
	Designation   string // e.g. "Alp CMa" (may be empty)
	Constellation string // IAU abbreviation, e.g. "CMa" (may be empty)
}

// DisplayName returns the best available human-readable name.
func (s Star) DisplayName() string {
	if s.ProperName != "" {
		return s.ProperName
	}
	if s.Designation != "" {
		return s.Designation
	}
	return "HR " + strconv.Itoa(s.ID)
}

// Catalog is an immutable, magnitude-sorted collection of stars.
//
// Stars are sorted ascending by magnitude (brightest first). Downstream
// consumers rely on that ordering, both for "render N brightest"
// truncation and for deterministic tie-breaking when picking.
type Catalog struct {
	Stars []Star

	// Flattened parallel arrays for bulk numeric consumption by the
	// presentation layer: xyz triples, magnitudes, rgb triples, all in
	// the same (sorted) star order.
	Positions []float64
	Mags      []float64
	Colors    []float64
}

// New builds a catalog from raw records: derives unit-sphere positions and
// colors, sorts by magnitude, and fills the flattened arrays.
func New(stars []Star) *Catalog {
	for i := range stars {
		stars[i].Pos = astro.EquatorialToCartesian(stars[i].RAHours, stars[i].DecDeg)
		stars[i].Color = ColorFromBV(stars[i].ColorIndex)
	}

	sort.SliceStable(stars, func(i, j int) bool {
		return stars[i].Mag < stars[j].Mag
	})

	c := &Catalog{
		Stars:     stars,
		Positions: make([]float64, 0, len(stars)*3),
		Mags:      make([]float64, 0, len(stars)),
		Colors:    make([]float64, 0, len(stars)*3),
	}
	for _, s := range stars {
		c.Positions = append(c.Positions, s.Pos.X, s.Pos.Y, s.Pos.Z)
		c.Mags = append(c.Mags, s.Mag)
		c.Colors = append(c.Colors, s.Color.R, s.Color.G, s.Color.B)
	}
	return c
}

// Len returns the number of stars.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Stars)
}

// Brightest returns the n brightest stars (the catalog prefix).
func (c *Catalog) Brightest(n int) []Star {
	if n > len(c.Stars) {
		n = len(c.Stars)
	}
	return c.Stars[:n]
}
