package animation

import (
	"math"
	"testing"
	"time"

	"github.com/RafaelCarro/orrery/engine/body"
)

func newTestScheduler(t *testing.T, options ...SchedulerOption) (Scheduler, *body.Registry) {
	t.Helper()
	registry := body.NewRegistry()
	return NewScheduler(registry, options...), registry
}

// tickTwice establishes the wall-clock reference at base, then advances the
// scheduler by the given duration.
func tickTwice(s Scheduler, base time.Time, advance time.Duration) {
	s.Tick(base)
	s.Tick(base.Add(advance))
}

func bodyPosition(t *testing.T, r *body.Registry, id string) (float32, float32, float32) {
	t.Helper()
	b, ok := r.Get(id)
	if !ok {
		t.Fatalf("body %q not registered", id)
	}
	return b.Position()
}

func TestNewSchedulerNilRegistryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil registry")
		}
	}()
	NewScheduler(nil)
}

func TestOrbitPlacement(t *testing.T) {
	s, registry := newTestScheduler(t)
	s.RegisterBody("earth", body.NewPlanet("earth"), OrbitalParams{Distance: 70, AngularSpeed: 1.0})
	s.Start()

	// simTime = π/2 with timeScale 1.0 puts the body at (sin, cos) = (1, 0).
	base := time.Now()
	quarterTurn := float64(time.Second) * math.Pi / 2
	tickTwice(s, base, time.Duration(quarterTurn))

	x, y, z := bodyPosition(t, registry, "earth")
	if math.Abs(float64(x-70)) > 1e-3 {
		t.Errorf("x = %f, want 70", x)
	}
	if y != 0 {
		t.Errorf("y = %f, want 0", y)
	}
	if math.Abs(float64(z)) > 1e-3 {
		t.Errorf("z = %f, want 0", z)
	}
}

func TestOrbitStaysOnCircle(t *testing.T) {
	s, registry := newTestScheduler(t, WithTimeScaleFactor(0.37))
	s.RegisterBody("mars", body.NewPlanet("mars"), OrbitalParams{Distance: 80, AngularSpeed: 0.53})
	s.Start()

	base := time.Now()
	s.Tick(base)
	for i := 1; i <= 50; i++ {
		s.Tick(base.Add(time.Duration(i) * 100 * time.Millisecond))

		x, _, z := bodyPosition(t, registry, "mars")
		dist := math.Sqrt(float64(x*x + z*z))
		if math.Abs(dist-80) > 1e-2 {
			t.Fatalf("tick %d: orbital distance = %f, want 80", i, dist)
		}
	}
}

func TestBodyWithoutOrbitStaysPut(t *testing.T) {
	s, registry := newTestScheduler(t)
	sun := body.NewPlanet("sun", body.WithSpinSpeed(0.5))
	sun.SetPosition(1, 2, 3)
	s.RegisterBody("sun", sun)
	s.Start()

	tickTwice(s, time.Now(), 2*time.Second)

	x, y, z := bodyPosition(t, registry, "sun")
	if x != 1 || y != 2 || z != 3 {
		t.Errorf("central body moved to (%f, %f, %f)", x, y, z)
	}
	if sun.Spin() == 0 {
		t.Error("central body should still spin")
	}
}

func TestPauseFreezesBodies(t *testing.T) {
	s, registry := newTestScheduler(t)
	s.RegisterBody("earth", body.NewPlanet("earth"), OrbitalParams{Distance: 60, AngularSpeed: 1.0})
	s.Start()

	base := time.Now()
	tickTwice(s, base, time.Second)
	x0, _, z0 := bodyPosition(t, registry, "earth")

	s.SetPaused(true)
	s.Tick(base.Add(5 * time.Second))
	s.Tick(base.Add(10 * time.Second))

	x1, _, z1 := bodyPosition(t, registry, "earth")
	if x0 != x1 || z0 != z1 {
		t.Errorf("body moved while paused: (%f, %f) -> (%f, %f)", x0, z0, x1, z1)
	}
	if s.SimTime() != 1.0 {
		t.Errorf("SimTime = %f, want 1.0", s.SimTime())
	}
}

func TestResumeDoesNotJump(t *testing.T) {
	s, _ := newTestScheduler(t)
	s.RegisterBody("earth", body.NewPlanet("earth"), OrbitalParams{Distance: 60, AngularSpeed: 1.0})
	s.Start()

	base := time.Now()
	tickTwice(s, base, time.Second)

	// Pause for a long wall-clock gap, resume, and tick. The first unpaused
	// tick only re-references the clock; the gap must not enter sim time.
	s.SetPaused(true)
	s.SetPaused(false)
	s.Tick(base.Add(61 * time.Second))
	if got := s.SimTime(); got != 1.0 {
		t.Fatalf("SimTime after resume = %f, want 1.0", got)
	}

	// Subsequent ticks advance from the new reference.
	s.Tick(base.Add(63 * time.Second))
	if got := s.SimTime(); math.Abs(float64(got-3.0)) > 1e-5 {
		t.Errorf("SimTime = %f, want 3.0", got)
	}
}

func TestSpeedMultiplierClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"negative", -5, 0.1},
		{"zero", 0, 0.1},
		{"at floor", 0.1, 0.1},
		{"in range", 3, 3},
		{"at ceiling", 5, 5},
		{"above ceiling", 10, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScheduler(t)
			s.SetSpeedMultiplier(tt.in)
			if got := s.SpeedMultiplier(); got != tt.want {
				t.Errorf("SpeedMultiplier(%f) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}

func TestSpeedMultiplierScalesElapsed(t *testing.T) {
	s, _ := newTestScheduler(t, WithSpeedMultiplier(2.0))
	s.Start()

	tickTwice(s, time.Now(), time.Second)
	if got := s.SimTime(); math.Abs(float64(got-2.0)) > 1e-5 {
		t.Errorf("SimTime = %f, want 2.0", got)
	}
}

func TestTimeScaleFactorUnconstrained(t *testing.T) {
	s, _ := newTestScheduler(t)
	s.SetTimeScaleFactor(-3.5)
	if got := s.TimeScaleFactor(); got != -3.5 {
		t.Errorf("TimeScaleFactor = %f, want -3.5", got)
	}

	s.Start()
	tickTwice(s, time.Now(), 2*time.Second)
	if got := s.SimTime(); math.Abs(float64(got+7.0)) > 1e-5 {
		t.Errorf("SimTime = %f, want -7.0", got)
	}
}

func TestResetClock(t *testing.T) {
	s, _ := newTestScheduler(t)
	s.Start()

	base := time.Now()
	tickTwice(s, base, 3*time.Second)
	if s.SimTime() == 0 {
		t.Fatal("expected nonzero sim time before reset")
	}

	s.ResetClock()
	if got := s.SimTime(); got != 0 {
		t.Errorf("SimTime after reset = %f, want 0", got)
	}

	// The reset also re-references the wall clock.
	s.Tick(base.Add(100 * time.Second))
	if got := s.SimTime(); got != 0 {
		t.Errorf("SimTime after re-reference tick = %f, want 0", got)
	}
}

func TestStartStopIdempotent(t *testing.T) {
	s, _ := newTestScheduler(t)
	if s.Running() {
		t.Error("scheduler should not run before Start")
	}

	s.Start()
	s.Start()
	if !s.Running() {
		t.Error("scheduler should run after Start")
	}

	base := time.Now()
	tickTwice(s, base, time.Second)

	s.Stop()
	s.Stop()
	if s.Running() {
		t.Error("scheduler should not run after Stop")
	}

	before := s.SimTime()
	s.Tick(base.Add(10 * time.Second))
	if s.SimTime() != before {
		t.Error("stopped scheduler must not accumulate time")
	}
}

func TestUpdateOrbit(t *testing.T) {
	s, _ := newTestScheduler(t)
	s.RegisterBody("venus", body.NewPlanet("venus"), OrbitalParams{Distance: 45, AngularSpeed: 1.62})

	s.UpdateOrbit("venus", 50, 2.0)
	params, ok := s.Orbit("venus")
	if !ok {
		t.Fatal("expected orbit parameters for venus")
	}
	if params.Distance != 50 || params.AngularSpeed != 2.0 {
		t.Errorf("orbit = %+v, want {50 2}", params)
	}

	// Unknown bodies are a silent no-op.
	s.UpdateOrbit("vulcan", 10, 1)
	if _, ok := s.Orbit("vulcan"); ok {
		t.Error("orbit parameters must not be created for unregistered bodies")
	}
}

func TestDeregisterBody(t *testing.T) {
	s, registry := newTestScheduler(t)
	s.RegisterBody("earth", body.NewPlanet("earth"), OrbitalParams{Distance: 60, AngularSpeed: 1.0})

	s.DeregisterBody("earth")
	if _, ok := registry.Get("earth"); ok {
		t.Error("body should be removed from the registry")
	}
	if _, ok := s.Orbit("earth"); ok {
		t.Error("orbit parameters should be removed with the body")
	}

	// Removing again is a no-op.
	s.DeregisterBody("earth")
}

func TestFrameObservers(t *testing.T) {
	s, _ := newTestScheduler(t)
	var order []int
	var times []float32
	s.AddFrameObserver(func(simTime float32) {
		order = append(order, 1)
		times = append(times, simTime)
	})
	s.AddFrameObserver(func(simTime float32) {
		order = append(order, 2)
	})
	s.AddFrameObserver(nil)

	s.Start()
	tickTwice(s, time.Now(), time.Second)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("observer order = %v, want [1 2]", order)
	}
	if math.Abs(float64(times[0]-1.0)) > 1e-5 {
		t.Errorf("observed simTime = %f, want 1.0", times[0])
	}
}
