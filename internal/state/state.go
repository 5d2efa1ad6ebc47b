// Package state provides thread-safe session state for the planetarium:
// observer location, simulation clock, and camera.
package state

import (
	"sync"
	"time"

	"github.com/openclaw-blip/stellar-sky/internal/astro"
	"github.com/openclaw-blip/stellar-sky/internal/sky"
)

// TimeScales are the playback speed multipliers cycled by the UI:
// real time, a minute per second, an hour per second, a day per second.
var TimeScales = []float64{1, 60, 3600, 86400}

// Manager owns the mutable session state. The interaction layer is the
// only writer; the render/pick path takes one Snapshot per frame and
// works from that. The celestial rotation matrix is deliberately NOT
// stored here: it depends on the instant and is recomputed every frame
// from the snapshot.
type Manager struct {
	mu sync.RWMutex

	observer astro.Observer
	camera   sky.Camera

	// Simulation clock: simTime was the simulated instant at wallRef;
	// the current instant is simTime + (now - wallRef) * scale.
	simTime time.Time
	wallRef time.Time
	scale   float64
	paused  bool

	// now is stubbed in tests.
	now func() time.Time
}

// Config holds the initial session settings.
type Config struct {
	Observer astro.Observer
	Start    time.Time // zero means current wall-clock time
}

// NewManager creates a session state manager.
func NewManager(cfg Config) *Manager {
	m := &Manager{
		observer: cfg.Observer.Clamped(),
		scale:    1,
		now:      time.Now,
	}
	start := cfg.Start
	if start.IsZero() {
		start = m.now()
	}
	m.simTime = start.UTC()
	m.wallRef = m.now()
	return m
}

// Snapshot is an immutable per-frame view of the session.
type Snapshot struct {
	Observer  astro.Observer
	Instant   time.Time
	Camera    sky.Camera
	TimeScale float64
	Paused    bool
}

// Snapshot returns a consistent view of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Observer:  m.observer,
		Instant:   m.instantLocked(),
		Camera:    m.camera,
		TimeScale: m.scale,
		Paused:    m.paused,
	}
}

func (m *Manager) instantLocked() time.Time {
	if m.paused {
		return m.simTime
	}
	elapsed := m.now().Sub(m.wallRef)
	return m.simTime.Add(time.Duration(float64(elapsed) * m.scale))
}

// rebaseLocked freezes the current simulated instant as the new reference
// so a scale or pause change does not jump the clock.
func (m *Manager) rebaseLocked() {
	m.simTime = m.instantLocked()
	m.wallRef = m.now()
}

// SetObserver updates the observer location.
func (m *Manager) SetObserver(obs astro.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observer = obs.Clamped()
}

// Observer returns the current observer location.
func (m *Manager) Observer() astro.Observer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.observer
}

// Drag accumulates a pointer drag into the camera.
func (m *Manager) Drag(dx, dy float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.camera = m.camera.ApplyDrag(dx, dy)
}

// Camera returns the current camera state.
func (m *Manager) Camera() sky.Camera {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.camera
}

// CycleTimeScale steps to the next playback speed and returns it.
func (m *Manager) CycleTimeScale() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rebaseLocked()
	for i, s := range TimeScales {
		if s == m.scale {
			m.scale = TimeScales[(i+1)%len(TimeScales)]
			return m.scale
		}
	}
	m.scale = TimeScales[0]
	return m.scale
}

// TogglePause pauses or resumes the simulation clock and reports the new
// paused state.
func (m *Manager) TogglePause() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rebaseLocked()
	m.paused = !m.paused
	return m.paused
}

// SetInstant jumps the simulation clock to a specific time.
func (m *Manager) SetInstant(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.simTime = t.UTC()
	m.wallRef = m.now()
}

// StepInstant shifts the simulation clock by a fixed offset, used for
// keyboard time stepping.
func (m *Manager) StepInstant(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rebaseLocked()
	m.simTime = m.simTime.Add(d)
}
