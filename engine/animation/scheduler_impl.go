package animation

import (
	"sync"
	"time"

	"github.com/RafaelCarro/orrery/engine/body"
)

// schedulerImpl is the single implementation of Scheduler. All clock state is
// guarded by one mutex; the frame loop is the only writer in practice but
// control operations (pause, speed, registration) may arrive from event
// callbacks, so every entry point locks.
type schedulerImpl struct {
	mu *sync.Mutex

	registry *body.Registry
	orbits   map[string]OrbitalParams

	center [3]float32

	// elapsed is simulated time in seconds before time scaling.
	elapsed float64

	// lastTick is the wall-clock reference for frame deltas. refPending marks
	// it stale (after Start, resume, or reset); the next unpaused Tick then
	// records the reference without advancing the simulation, which is what
	// makes resume jump-free.
	lastTick   time.Time
	refPending bool

	speedMultiplier float64
	timeScaleFactor float64

	running bool
	paused  bool

	observers []func(simTime float32)
}

var _ Scheduler = &schedulerImpl{}

// NewScheduler creates a Scheduler bound to the given body registry. The
// registry is shared by reference with the camera rig; passing nil panics
// since nothing downstream can work without it.
//
// Parameters:
//   - registry: the shared body registry (must not be nil)
//   - options: functional options to configure the scheduler
//
// Returns:
//   - Scheduler: the newly created scheduler
func NewScheduler(registry *body.Registry, options ...SchedulerOption) Scheduler {
	if registry == nil {
		panic("animation: NewScheduler requires a non-nil body registry")
	}
	s := &schedulerImpl{
		mu:              &sync.Mutex{},
		registry:        registry,
		orbits:          make(map[string]OrbitalParams),
		speedMultiplier: 1.0,
		timeScaleFactor: 1.0,
		refPending:      true,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *schedulerImpl) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.refPending = true
}

func (s *schedulerImpl) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

func (s *schedulerImpl) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *schedulerImpl) Tick(now time.Time) {
	s.mu.Lock()

	if !s.running || s.paused {
		// Paused: no accumulation, and the wall-clock reference stays put so
		// the post-resume delta excludes the paused duration.
		s.mu.Unlock()
		return
	}

	if s.refPending {
		s.lastTick = now
		s.refPending = false
		s.mu.Unlock()
		return
	}

	frameDelta := now.Sub(s.lastTick).Seconds() * s.speedMultiplier
	s.elapsed += frameDelta
	s.lastTick = now

	simTime := float32(s.elapsed * s.timeScaleFactor)
	delta := float32(frameDelta)
	cx, cy, cz := s.center[0], s.center[1], s.center[2]

	// Place every body with orbital parameters, then run per-frame visual
	// updates for all registered bodies. Bodies without parameters stay put
	// (stationary central body) but still spin. The scheduler lock is held so
	// orbit mutations arriving from event callbacks cannot tear a frame.
	s.registry.ForEach(func(id string, b body.Body) {
		if params, ok := s.orbits[id]; ok {
			b.OrbitAround(cx, cy, cz, params.Distance, params.AngularSpeed, simTime)
		}
		b.Update(delta)
	})

	// Observers run outside the lock; they are external code and may call
	// back into the scheduler.
	observers := make([]func(float32), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(simTime)
	}
}

func (s *schedulerImpl) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused == paused {
		return
	}
	s.paused = paused
	if !paused {
		// Resuming: re-reference the wall clock on the next Tick.
		s.refPending = true
	}
}

func (s *schedulerImpl) TogglePause() {
	s.SetPaused(!s.Paused())
}

func (s *schedulerImpl) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *schedulerImpl) SetSpeedMultiplier(v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := float64(v)
	if m < MinSpeedMultiplier {
		m = MinSpeedMultiplier
	}
	if m > MaxSpeedMultiplier {
		m = MaxSpeedMultiplier
	}
	s.speedMultiplier = m
}

func (s *schedulerImpl) SpeedMultiplier() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float32(s.speedMultiplier)
}

func (s *schedulerImpl) SetTimeScaleFactor(v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeScaleFactor = float64(v)
}

func (s *schedulerImpl) TimeScaleFactor() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float32(s.timeScaleFactor)
}

func (s *schedulerImpl) ResetClock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elapsed = 0
	s.refPending = true
}

func (s *schedulerImpl) SimTime() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float32(s.elapsed * s.timeScaleFactor)
}

func (s *schedulerImpl) RegisterBody(id string, b body.Body, params ...OrbitalParams) {
	if b == nil {
		return
	}
	s.registry.Add(id, b)
	if len(params) > 0 {
		s.mu.Lock()
		s.orbits[id] = params[0]
		s.mu.Unlock()
	}
}

func (s *schedulerImpl) DeregisterBody(id string) {
	s.registry.Remove(id)
	s.mu.Lock()
	delete(s.orbits, id)
	s.mu.Unlock()
}

func (s *schedulerImpl) UpdateOrbit(id string, distance, angularSpeed float32) {
	if _, ok := s.registry.Get(id); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orbits[id] = OrbitalParams{Distance: distance, AngularSpeed: angularSpeed}
}

func (s *schedulerImpl) Orbit(id string) (OrbitalParams, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	params, ok := s.orbits[id]
	return params, ok
}

func (s *schedulerImpl) AddFrameObserver(fn func(simTime float32)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}
