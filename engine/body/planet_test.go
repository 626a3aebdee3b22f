package body

import (
	"math"
	"testing"
)

func TestNewPlanetDefaults(t *testing.T) {
	p := NewPlanet("moon")
	if p.Name() != "moon" {
		t.Errorf("Name = %q, want moon", p.Name())
	}
	if p.Radius() != 1.0 {
		t.Errorf("Radius = %f, want 1.0", p.Radius())
	}
	if p.Texture() != "" {
		t.Errorf("Texture = %q, want empty", p.Texture())
	}
	if p.Rings() != nil || p.Atmosphere() != nil {
		t.Error("rings and atmosphere should default to nil")
	}
}

func TestPlanetOptions(t *testing.T) {
	p := NewPlanet("saturn",
		WithRadius(7),
		WithSpinSpeed(2.2),
		WithTexture("assets/saturn.jpg"),
		WithRings(9, 16, "assets/rings.png"),
		WithAtmosphere(0.9, 0.8, 0.6, 0.2, 1.1),
		WithPosition(140, 0, 0),
	)

	if p.Radius() != 7 {
		t.Errorf("Radius = %f, want 7", p.Radius())
	}
	if p.Texture() != "assets/saturn.jpg" {
		t.Errorf("Texture = %q", p.Texture())
	}
	r := p.Rings()
	if r == nil || r.InnerRadius != 9 || r.OuterRadius != 16 || r.Texture != "assets/rings.png" {
		t.Errorf("Rings = %+v", r)
	}
	a := p.Atmosphere()
	if a == nil || a.Scale != 1.1 || a.Color != [4]float32{0.9, 0.8, 0.6, 0.2} {
		t.Errorf("Atmosphere = %+v", a)
	}
	x, y, z := p.Position()
	if x != 140 || y != 0 || z != 0 {
		t.Errorf("Position = (%f, %f, %f)", x, y, z)
	}
}

func TestPlanetSpinAccumulatesAndWraps(t *testing.T) {
	p := NewPlanet("earth", WithSpinSpeed(1.0))

	p.Update(1.5)
	if got := p.Spin(); math.Abs(float64(got-1.5)) > 1e-6 {
		t.Errorf("Spin = %f, want 1.5", got)
	}

	// Push past 2π and verify the wrap.
	p.Update(6.0)
	want := math.Mod(7.5, 2*math.Pi)
	if got := p.Spin(); math.Abs(float64(got)-want) > 1e-5 {
		t.Errorf("Spin = %f, want %f", got, want)
	}
}

func TestPlanetNegativeSpinWrapsPositive(t *testing.T) {
	p := NewPlanet("venus", WithSpinSpeed(-1.0))

	p.Update(1.0)
	got := p.Spin()
	if got < 0 || got >= 2*math.Pi {
		t.Fatalf("Spin = %f, want value in [0, 2π)", got)
	}
	if math.Abs(float64(got)-(2*math.Pi-1.0)) > 1e-5 {
		t.Errorf("Spin = %f, want %f", got, 2*math.Pi-1.0)
	}
}

func TestOrbitAround(t *testing.T) {
	tests := []struct {
		name    string
		simTime float32
		wantX   float32
		wantZ   float32
	}{
		{"start", 0, 0, 60},
		{"quarter", float32(math.Pi / 2), 60, 0},
		{"half", float32(math.Pi), 0, -60},
		{"full", float32(2 * math.Pi), 0, 60},
	}
	p := NewPlanet("earth")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.OrbitAround(0, 0, 0, 60, 1.0, tt.simTime)
			x, y, z := p.Position()
			if math.Abs(float64(x-tt.wantX)) > 1e-3 {
				t.Errorf("x = %f, want %f", x, tt.wantX)
			}
			if y != 0 {
				t.Errorf("y = %f, want 0", y)
			}
			if math.Abs(float64(z-tt.wantZ)) > 1e-3 {
				t.Errorf("z = %f, want %f", z, tt.wantZ)
			}
		})
	}
}

func TestOrbitAroundOffsetCenter(t *testing.T) {
	p := NewPlanet("moon")
	p.OrbitAround(100, 5, -40, 10, 1.0, 0)

	x, y, z := p.Position()
	if x != 100 || y != 5 {
		t.Errorf("position = (%f, %f, _), want (100, 5, _)", x, y)
	}
	if math.Abs(float64(z-(-30))) > 1e-3 {
		t.Errorf("z = %f, want -30", z)
	}
}

func TestRegistryAddGetRemove(t *testing.T) {
	r := NewRegistry()
	r.Add("earth", NewPlanet("earth", WithRadius(3)))
	r.Add("nil-body", nil)

	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
	if _, ok := r.Get("earth"); !ok {
		t.Error("earth should be registered")
	}
	if _, ok := r.Get("nil-body"); ok {
		t.Error("nil bodies must be ignored")
	}

	r.Remove("earth")
	r.Remove("earth") // no-op
	if r.Len() != 0 {
		t.Errorf("Len after remove = %d, want 0", r.Len())
	}
}

func TestRegistrySafeDistance(t *testing.T) {
	r := NewRegistry()
	r.Add("sun", NewPlanet("sun", WithRadius(12)))

	d, ok := r.SafeDistance("sun")
	if !ok {
		t.Fatal("expected safe distance for sun")
	}
	if d != 12*DefaultSafeDistanceFactor {
		t.Errorf("SafeDistance = %f, want %f", d, 12*DefaultSafeDistanceFactor)
	}

	if _, ok := r.SafeDistance("pluto"); ok {
		t.Error("unknown identifier should report no safe distance")
	}
}

func TestRegistryCustomFactor(t *testing.T) {
	r := NewRegistry(WithSafeDistanceFactor(5))
	r.Add("earth", NewPlanet("earth", WithRadius(3)))

	d, _ := r.SafeDistance("earth")
	if d != 15 {
		t.Errorf("SafeDistance = %f, want 15", d)
	}

	// Non-positive factors fall back to the default.
	r2 := NewRegistry(WithSafeDistanceFactor(-1))
	r2.Add("earth", NewPlanet("earth", WithRadius(2)))
	d2, _ := r2.SafeDistance("earth")
	if d2 != 2*DefaultSafeDistanceFactor {
		t.Errorf("SafeDistance = %f, want %f", d2, 2*DefaultSafeDistanceFactor)
	}
}

func TestRegistryIDsSorted(t *testing.T) {
	r := NewRegistry()
	r.Add("venus", NewPlanet("venus"))
	r.Add("earth", NewPlanet("earth"))
	r.Add("mars", NewPlanet("mars"))

	ids := r.IDs()
	want := []string{"earth", "mars", "venus"}
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestRegistryForEach(t *testing.T) {
	r := NewRegistry()
	r.Add("a", NewPlanet("a"))
	r.Add("b", NewPlanet("b"))

	seen := make(map[string]bool)
	r.ForEach(func(id string, b Body) {
		seen[id] = b != nil
	})
	if len(seen) != 2 || !seen["a"] || !seen["b"] {
		t.Errorf("ForEach visited %v", seen)
	}
}
