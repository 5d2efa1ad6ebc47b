// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
	"github.com/openclaw-blip/stellar-sky/internal/catalog"
	"github.com/openclaw-blip/stellar-sky/internal/logging"
	"github.com/openclaw-blip/stellar-sky/internal/sky"
	"github.com/openclaw-blip/stellar-sky/internal/state"
	"github.com/openclaw-blip/stellar-sky/internal/version"
)

const (
	// Terminal cells are roughly twice as tall as wide, so a cell is
	// one unit across and two units down in projection space.
	cellHeightUnits = 2

	// Drag distances are reported in cells; scale them up so a swipe
	// across the terminal pans a comfortable angle.
	dragUnitsPerCellX = 10
	dragUnitsPerCellY = 20

	// Keyboard panning step per arrow key press, in drag units.
	keyPanStep = 30

	// Rows above the sky canvas (title, clock, blank) and below it
	// (blank, star info, help). pickAt depends on headerLines matching
	// what renderHeader emits.
	headerLines = 3
	footerLines = 3

	timeStepInterval = time.Hour
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state   *state.Manager
	catalog *catalog.Catalog
	log     *logging.Logger

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	fovDeg   float64

	// Mouse drag tracking
	mouseDown  bool
	mouseMoved bool
	lastMouseX int
	lastMouseY int

	// Sub-models
	skyView SkyViewModel

	// Data snapshot (refreshed each tick)
	snapshot state.Snapshot
	picked   *catalog.Star
}

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSky ViewMode = iota
	ViewHelp
)

// New creates a new root UI model.
func New(stateMgr *state.Manager, cat *catalog.Catalog, log *logging.Logger, fovDeg float64) Model {
	return Model{
		state:    stateMgr,
		catalog:  cat,
		log:      log,
		fovDeg:   fovDeg,
		viewMode: ViewSky,
		skyView:  NewSkyViewModel(),
		snapshot: stateMgr.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.skyView = m.skyView.SetSize(msg.Width, msg.Height-headerLines-footerLines)

	case TickMsg:
		m.snapshot = m.state.Snapshot()
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		if m.viewMode == ViewHelp {
			m.viewMode = ViewSky
		} else {
			m.viewMode = ViewHelp
		}

	case "esc":
		m.viewMode = ViewSky
		m.picked = nil

	case "g":
		m.skyView = m.skyView.ToggleGrid()

	case "l":
		m.skyView = m.skyView.CycleLabelMode()

	case "tab", ".":
		scale := m.state.CycleTimeScale()
		m.log.Debug("time scale set to x%v", scale)
		m.snapshot = m.state.Snapshot()

	case " ":
		m.state.TogglePause()
		m.snapshot = m.state.Snapshot()

	case "[":
		m.state.StepInstant(-timeStepInterval)
		m.snapshot = m.state.Snapshot()
	case "]":
		m.state.StepInstant(timeStepInterval)
		m.snapshot = m.state.Snapshot()

	case "up":
		m.panKey(0, keyPanStep)
	case "down":
		m.panKey(0, -keyPanStep)
	case "left":
		m.panKey(-keyPanStep, 0)
	case "right":
		m.panKey(keyPanStep, 0)
	}

	return m, nil
}

// panKey applies a keyboard pan in drag units.
func (m *Model) panKey(dx, dy float64) {
	m.state.Drag(dx, dy)
	m.snapshot = m.state.Snapshot()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.mouseDown = true
		m.mouseMoved = false
		m.lastMouseX = msg.X
		m.lastMouseY = msg.Y

	case tea.MouseActionMotion:
		if !m.mouseDown {
			return m, nil
		}
		// Terminal rows grow downward while drag dy is positive-up, so
		// the vertical delta flips; both axes then move the view toward
		// the drag direction, matching the arrow keys.
		dx := float64(msg.X-m.lastMouseX) * dragUnitsPerCellX
		dy := float64(m.lastMouseY-msg.Y) * dragUnitsPerCellY
		if dx != 0 || dy != 0 {
			m.mouseMoved = true
			m.state.Drag(dx, dy)
			m.snapshot = m.state.Snapshot()
		}
		m.lastMouseX = msg.X
		m.lastMouseY = msg.Y

	case tea.MouseActionRelease:
		wasClick := m.mouseDown && !m.mouseMoved
		m.mouseDown = false
		if wasClick {
			m.pickAt(msg.X, msg.Y)
		}
	}

	return m, nil
}

// pickAt resolves a click at terminal cell (cx, cy) to a star, if any.
func (m *Model) pickAt(cx, cy int) {
	row := cy - headerLines
	if row < 0 || row >= m.skyView.height {
		return
	}

	snap := m.snapshot
	rotation := astro.CelestialRotation(snap.Observer, snap.Instant)
	vp := m.skyView.viewport()

	// Cursor at the center of the cell, in projection units.
	px := float64(cx) + 0.5
	py := float64(row)*cellHeightUnits + 1

	star, ok := sky.PickNearestScreen(m.catalog, px, py, snap.Camera, rotation, m.fovDeg, vp, sky.DefaultPickConfig())
	if !ok {
		m.picked = nil
		return
	}

	// Cross-check with the inverse-ray strategy; disagreement means the
	// click landed in the slop between two stars, keep the screen result
	// but note it.
	if rayStar, rayOK := sky.PickNearestRay(m.catalog, px, py, snap.Camera, rotation, m.fovDeg, vp, sky.DefaultPickConfig()); rayOK && rayStar.ID != star.ID {
		m.log.Debug("pick strategies disagree: screen=%s ray=%s", star.DisplayName(), rayStar.DisplayName())
	}

	m.picked = star
	m.log.Info("picked %s (mag %.2f)", star.DisplayName(), star.Mag)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewHelp:
		content = m.renderHelp()
	default:
		content = m.skyView.Render(m.snapshot, m.catalog, m.picked, m.fovDeg)
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	title := titleStyle.Render("✶ stellar-sky") + muted.Render(" v"+version.Version)

	snap := m.snapshot
	site := fmt.Sprintf("%s (%.2f°, %.2f°)", siteName(snap.Observer), snap.Observer.LatDeg, snap.Observer.LonDeg)

	lst := astro.LocalSiderealTime(snap.Instant, snap.Observer.LonDeg)
	clock := fmt.Sprintf("%s UT | LST %s", snap.Instant.UTC().Format("2006-01-02 15:04:05"), formatHours(lst))

	var pace string
	if snap.Paused {
		pace = accent.Render("⏸ paused")
	} else if snap.TimeScale == 1 {
		pace = muted.Render("real time")
	} else {
		pace = accent.Render(fmt.Sprintf("×%s", formatScale(snap.TimeScale)))
	}

	line1 := "  " + title + "  " + muted.Render(site)
	line2 := "  " + muted.Render(clock) + "  " + pace

	return line1 + "\n" + line2 + "\n"
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	var info string
	if m.picked != nil {
		s := m.picked
		h := astro.EquatorialToHorizontal(
			astro.Equatorial{RAHours: s.RAHours, DecDeg: s.DecDeg},
			m.snapshot.Observer, m.snapshot.Instant)
		info = accent.Render(fmt.Sprintf(">>> %s", s.DisplayName())) +
			dimStyle.Render(fmt.Sprintf("  mag %.2f | RA %s Dec %+.2f° | Alt %.1f° Az %.1f°",
				s.Mag, formatHours(s.RAHours), s.DecDeg, h.AltDeg, h.AzDeg))
	} else {
		info = dimStyle.Render("click a star to identify it")
	}

	help := dimStyle.Render("drag/arrows: look | g: grid | l: labels | tab: speed | space: pause | [ ]: ±" + stepLabel() + " | ?: help | q: quit")

	return "  " + info + "\n  " + help
}

func (m Model) renderHelp() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	lines := []string{
		"",
		"  Controls",
		"",
		"    mouse drag / arrows   look around",
		"    click                 identify star",
		"    g                     toggle alt/az grid",
		"    l                     cycle star labels (off / bright / all named)",
		"    tab or .              cycle time scale (x1, x60, x3600, x86400)",
		"    space                 pause or resume the clock",
		fmt.Sprintf("    [  ]                  step time %s back / forward", stepLabel()),
		"    esc                   clear selection",
		"    q                     quit",
		"",
	}
	content := dimStyle.Render(strings.Join(lines, "\n"))

	// Pad to the sky view height so the footer stays put.
	pad := m.skyView.height - len(lines) + 1
	for i := 0; i < pad; i++ {
		content += "\n"
	}
	return content
}

func siteName(obs astro.Observer) string {
	if obs.Name != "" {
		return obs.Name
	}
	return "site"
}

// stepLabel renders timeStepInterval compactly for the help lines, so
// they track the constant.
func stepLabel() string {
	s := timeStepInterval.String()
	s = strings.TrimSuffix(s, "0s")
	s = strings.TrimSuffix(s, "0m")
	return s
}

// formatHours renders decimal hours as "18h41m".
func formatHours(h float64) string {
	for h < 0 {
		h += 24
	}
	hh := int(h)
	mm := int((h - float64(hh)) * 60)
	return fmt.Sprintf("%02dh%02dm", hh, mm)
}

// formatScale drops the trailing .0 from whole-number scales.
func formatScale(s float64) string {
	if s == float64(int64(s)) {
		return fmt.Sprintf("%d", int64(s))
	}
	return fmt.Sprintf("%g", s)
}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
