package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
	"github.com/openclaw-blip/stellar-sky/internal/catalog"
	"github.com/openclaw-blip/stellar-sky/internal/sky"
	"github.com/openclaw-blip/stellar-sky/internal/state"
)

const (
	// Star glyphs by magnitude
	glyphStarBright = '✶' // mag < 1.5
	glyphStarMedium = '✸' // mag 1.5-3.0
	glyphStarDim    = '·' // mag >= 3.0

	glyphPicked = '◆'

	colorPicked   = "229" // bright gold
	colorGrid     = "238"
	colorHorizon  = "60" // muted purple
	colorCardinal = "252"
	colorLabel    = "250"
)

// LabelMode controls how star labels are displayed.
type LabelMode int

const (
	LabelNone   LabelMode = iota // No labels
	LabelBright                  // First-magnitude stars with proper names
	LabelAll                     // All stars with proper names
)

// brightLabelMag is the cutoff for LabelBright.
const brightLabelMag = 1.0

// SkyViewModel renders the star field through the camera.
type SkyViewModel struct {
	width  int
	height int

	showGrid  bool
	labelMode LabelMode
}

// NewSkyViewModel creates a new sky view model.
func NewSkyViewModel() SkyViewModel {
	return SkyViewModel{
		labelMode: LabelBright,
	}
}

// SetSize updates the viewport size in terminal cells.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// ToggleGrid flips the alt/az grid overlay.
func (m SkyViewModel) ToggleGrid() SkyViewModel {
	m.showGrid = !m.showGrid
	return m
}

// CycleLabelMode steps to the next label mode.
func (m SkyViewModel) CycleLabelMode() SkyViewModel {
	m.labelMode = (m.labelMode + 1) % 3
	return m
}

// viewport returns the projection viewport. Height is doubled so the
// projection space is square even though cells are not.
func (m SkyViewModel) viewport() sky.Viewport {
	return sky.Viewport{
		Width:  float64(m.width),
		Height: float64(m.height * cellHeightUnits),
	}
}

// canvas is a cell grid with per-cell foreground colors.
type canvas struct {
	width, height int
	runes         [][]rune
	colors        [][]lipgloss.Color
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.runes = make([][]rune, height)
	c.colors = make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		c.runes[y] = make([]rune, width)
		c.colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			c.runes[y][x] = ' '
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, color lipgloss.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.runes[y][x] = r
	c.colors[y][x] = color
}

func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if c.runes[y][x] == ' ' {
				b.WriteByte(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.colors[y][x])
			b.WriteString(style.Render(string(c.runes[y][x])))
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Render draws the sky for one snapshot.
func (m SkyViewModel) Render(snap state.Snapshot, cat *catalog.Catalog, picked *catalog.Star, fovDeg float64) string {
	if m.width < 20 || m.height < 8 {
		return "Sky view requires a larger terminal"
	}

	c := newCanvas(m.width, m.height)
	rotation := astro.CelestialRotation(snap.Observer, snap.Instant)
	vp := m.viewport()

	if m.showGrid {
		m.drawGrid(c, snap.Camera, fovDeg, vp)
	}
	m.drawHorizon(c, snap.Camera, fovDeg, vp)

	// The catalog is sorted brightest first; draw in reverse so bright
	// stars win contested cells.
	var labels []starLabel
	for i := cat.Len() - 1; i >= 0; i-- {
		s := &cat.Stars[i]
		if rotation.TransformDir(s.Pos).Y < 0 {
			continue
		}
		sp, ok := sky.Project(s.Pos, snap.Camera, rotation, fovDeg, vp)
		if !ok {
			continue
		}
		x, y := cellOf(sp.X, sp.Y)
		c.set(x, y, glyphForMag(s.Mag), rgbColor(s.Color))

		if s.ProperName != "" && m.wantLabel(s.Mag) {
			labels = append(labels, starLabel{x: x, y: y, text: s.ProperName})
		}
	}

	// The picked star draws last so its marker and label are never
	// buried under neighbors.
	if picked != nil {
		if sp, ok := sky.Project(picked.Pos, snap.Camera, rotation, fovDeg, vp); ok {
			x, y := cellOf(sp.X, sp.Y)
			c.set(x, y, glyphPicked, colorPicked)
			labels = append(labels, starLabel{x: x, y: y, text: "◄ " + picked.DisplayName(), picked: true})
		}
	}

	m.drawLabels(c, labels)

	return c.String()
}

// cellOf converts projection units to a terminal cell.
func cellOf(px, py float64) (int, int) {
	return int(px), int(py) / cellHeightUnits
}

type starLabel struct {
	x, y   int
	text   string
	picked bool
}

func (m SkyViewModel) wantLabel(mag float64) bool {
	switch m.labelMode {
	case LabelBright:
		return mag < brightLabelMag
	case LabelAll:
		return true
	default:
		return false
	}
}

// drawLabels writes labels to the right of their stars. Picked labels
// render after the rest so they win overlaps.
func (m SkyViewModel) drawLabels(c *canvas, labels []starLabel) {
	for _, pass := range []bool{false, true} {
		for _, l := range labels {
			if l.picked != pass {
				continue
			}
			color := lipgloss.Color(colorLabel)
			if l.picked {
				color = colorPicked
			}
			for i, r := range []rune(l.text) {
				c.set(l.x+2+i, l.y, r, color)
			}
		}
	}
}

// drawGrid draws altitude circles and azimuth meridians.
func (m SkyViewModel) drawGrid(c *canvas, cam sky.Camera, fovDeg float64, vp sky.Viewport) {
	gridColor := lipgloss.Color(colorGrid)

	for _, alt := range []float64{15, 30, 45, 60, 75} {
		for az := 0.0; az < 360; az += 1 {
			m.plotHorizontal(c, cam, fovDeg, vp, alt, az, '·', gridColor)
		}
	}
	for az := 0.0; az < 360; az += 45 {
		for alt := 2.0; alt < 88; alt += 1 {
			m.plotHorizontal(c, cam, fovDeg, vp, alt, az, '·', gridColor)
		}
	}
}

// drawHorizon draws the horizon line and cardinal direction markers.
func (m SkyViewModel) drawHorizon(c *canvas, cam sky.Camera, fovDeg float64, vp sky.Viewport) {
	for az := 0.0; az < 360; az += 0.25 {
		m.plotHorizontal(c, cam, fovDeg, vp, 0, az, '─', colorHorizon)
	}

	cardinals := []struct {
		label rune
		az    float64
	}{
		{'N', 0}, {'E', 90}, {'S', 180}, {'W', 270},
	}
	for _, cd := range cardinals {
		m.plotHorizontal(c, cam, fovDeg, vp, 0, cd.az, cd.label, colorCardinal)
	}
}

// plotHorizontal projects an alt/az point and sets a cell if visible.
func (m SkyViewModel) plotHorizontal(c *canvas, cam sky.Camera, fovDeg float64, vp sky.Viewport, altDeg, azDeg float64, r rune, color lipgloss.Color) {
	dir := astro.HorizontalToCartesian(astro.Horizontal{AltDeg: altDeg, AzDeg: azDeg})
	sp, ok := sky.Project(dir, cam, astro.Identity(), fovDeg, vp)
	if !ok {
		return
	}
	x, y := cellOf(sp.X, sp.Y)
	c.set(x, y, r, color)
}

// glyphForMag returns the glyph for a star of the given magnitude.
func glyphForMag(mag float64) rune {
	switch {
	case mag < 1.5:
		return glyphStarBright
	case mag < 3.0:
		return glyphStarMedium
	default:
		return glyphStarDim
	}
}

// rgbColor converts a derived star color to a truecolor terminal color.
func rgbColor(c catalog.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B)))
}

func channel(v float64) int {
	n := int(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
