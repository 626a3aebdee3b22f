package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth            = 1280
	DefaultHeight           = 720
	DefaultTickRate         = 60.0
	DefaultSpeedMultiplier  = 1.0
	DefaultTimeScaleFactor  = 0.1
	DefaultViewDistance     = 250.0
	DefaultMinDistance      = 20.0
	DefaultSafeDistFactor   = 3.0
	DefaultBaseSpeed        = 60.0
	DefaultMouseSensitivity = 0.005
	DefaultZoomSpeed        = 15.0
)

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Engine    EngineConfig    `yaml:"engine"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Bodies    []BodyConfig    `yaml:"bodies"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type EngineConfig struct {
	TickRate   float64 `yaml:"tick_rate"`
	FrameLimit float64 `yaml:"frame_limit"`
	Profile    bool    `yaml:"profile"`
	Workers    int     `yaml:"workers"`
}

type CameraConfig struct {
	ViewDistance       float32 `yaml:"view_distance"`
	MinDistance        float32 `yaml:"min_distance"`
	SafeDistanceFactor float32 `yaml:"safe_distance_factor"`
	BaseSpeed          float32 `yaml:"base_speed"`
	MouseSensitivity   float32 `yaml:"mouse_sensitivity"`
	ZoomSpeed          float32 `yaml:"zoom_speed"`
}

type AnimationConfig struct {
	SpeedMultiplier float32 `yaml:"speed_multiplier"`
	TimeScaleFactor float32 `yaml:"time_scale_factor"`
}

type BodyConfig struct {
	Name         string            `yaml:"name"`
	Radius       float32           `yaml:"radius"`
	Distance     float32           `yaml:"distance"`
	AngularSpeed float32           `yaml:"angular_speed"`
	SpinSpeed    float32           `yaml:"spin_speed"`
	Texture      string            `yaml:"texture,omitempty"`
	Central      bool              `yaml:"central,omitempty"`
	Rings        *RingConfig       `yaml:"rings,omitempty"`
	Atmosphere   *AtmosphereConfig `yaml:"atmosphere,omitempty"`
}

type RingConfig struct {
	InnerRadius float32 `yaml:"inner_radius"`
	OuterRadius float32 `yaml:"outer_radius"`
	Texture     string  `yaml:"texture,omitempty"`
}

type AtmosphereConfig struct {
	Color [4]float32 `yaml:"color"`
	Scale float32    `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Orrery",
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Engine: EngineConfig{
			TickRate: DefaultTickRate,
		},
		Camera: CameraConfig{
			ViewDistance:       DefaultViewDistance,
			MinDistance:        DefaultMinDistance,
			SafeDistanceFactor: DefaultSafeDistFactor,
			BaseSpeed:          DefaultBaseSpeed,
			MouseSensitivity:   DefaultMouseSensitivity,
			ZoomSpeed:          DefaultZoomSpeed,
		},
		Animation: AnimationConfig{
			SpeedMultiplier: DefaultSpeedMultiplier,
			TimeScaleFactor: DefaultTimeScaleFactor,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Engine.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %g", c.Engine.TickRate)
	}
	if c.Camera.SafeDistanceFactor <= 0 {
		return fmt.Errorf("safe_distance_factor must be positive, got %g", c.Camera.SafeDistanceFactor)
	}
	seen := make(map[string]bool, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.Name == "" {
			return fmt.Errorf("body %d has no name", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("duplicate body name %q", b.Name)
		}
		seen[b.Name] = true
		if b.Radius <= 0 {
			return fmt.Errorf("body %q radius must be positive, got %g", b.Name, b.Radius)
		}
		if !b.Central && b.Distance <= 0 {
			return fmt.Errorf("orbiting body %q distance must be positive, got %g", b.Name, b.Distance)
		}
		if b.Rings != nil && b.Rings.OuterRadius <= b.Rings.InnerRadius {
			return fmt.Errorf("body %q ring outer radius must exceed inner radius", b.Name)
		}
	}
	return nil
}
