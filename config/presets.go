package config

// Presets are ready-to-run scene configurations. Distances and radii are in
// scene units, not physical scale; angular speeds are relative (Earth = 1.0).
var Presets = map[string]func() *Config{
	"solar-system": solarSystem,
	"inner-planets": func() *Config {
		cfg := solarSystem()
		cfg.Bodies = cfg.Bodies[:5]
		return cfg
	},
}

func solarSystem() *Config {
	cfg := DefaultConfig()
	cfg.Bodies = []BodyConfig{
		{Name: "sun", Radius: 12, Central: true, SpinSpeed: 0.05, Texture: "assets/sun.jpg"},
		{Name: "mercury", Radius: 1.2, Distance: 30, AngularSpeed: 4.15, SpinSpeed: 0.02, Texture: "assets/mercury.jpg"},
		{Name: "venus", Radius: 2.8, Distance: 45, AngularSpeed: 1.62, SpinSpeed: -0.01, Texture: "assets/venus.jpg"},
		{
			Name: "earth", Radius: 3.0, Distance: 60, AngularSpeed: 1.0, SpinSpeed: 1.0, Texture: "assets/earth.jpg",
			Atmosphere: &AtmosphereConfig{Color: [4]float32{0.4, 0.6, 1.0, 0.25}, Scale: 1.05},
		},
		{Name: "mars", Radius: 1.8, Distance: 80, AngularSpeed: 0.53, SpinSpeed: 0.97, Texture: "assets/mars.jpg"},
		{Name: "jupiter", Radius: 8.0, Distance: 110, AngularSpeed: 0.084, SpinSpeed: 2.4, Texture: "assets/jupiter.jpg"},
		{
			Name: "saturn", Radius: 7.0, Distance: 140, AngularSpeed: 0.034, SpinSpeed: 2.2, Texture: "assets/saturn.jpg",
			Rings: &RingConfig{InnerRadius: 9, OuterRadius: 16, Texture: "assets/saturn_rings.png"},
		},
		{
			Name: "uranus", Radius: 5.0, Distance: 170, AngularSpeed: 0.012, SpinSpeed: 1.4, Texture: "assets/uranus.jpg",
			Rings: &RingConfig{InnerRadius: 6.5, OuterRadius: 9, Texture: "assets/uranus_rings.png"},
		},
		{Name: "neptune", Radius: 4.8, Distance: 200, AngularSpeed: 0.006, SpinSpeed: 1.5, Texture: "assets/neptune.jpg"},
	}
	return cfg
}

func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
