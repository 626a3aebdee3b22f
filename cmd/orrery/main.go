package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RafaelCarro/orrery/common"
	"github.com/RafaelCarro/orrery/config"
	"github.com/RafaelCarro/orrery/engine"
	"github.com/RafaelCarro/orrery/engine/animation"
	"github.com/RafaelCarro/orrery/engine/asset"
	"github.com/RafaelCarro/orrery/engine/body"
	"github.com/RafaelCarro/orrery/engine/camera"
	"github.com/RafaelCarro/orrery/engine/input"
	"github.com/RafaelCarro/orrery/engine/window"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	tickRate   float64
	frameLimit float64
	speed      float64
	timeScale  float64
	profile    bool
	workers    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orrery",
		Short: "interactive 3D solar system viewer",
		RunE:  runViewer,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "solar-system", "scene preset")
	rootCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width")
	rootCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height")
	rootCmd.Flags().Float64Var(&tickRate, "tick-rate", config.DefaultTickRate, "simulation ticks per second")
	rootCmd.Flags().Float64Var(&frameLimit, "frame-limit", 0, "render frame cap (0 = uncapped)")
	rootCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeedMultiplier, "playback speed multiplier")
	rootCmd.Flags().Float64Var(&timeScale, "time-scale", config.DefaultTimeScaleFactor, "orbital time scale factor")
	rootCmd.Flags().BoolVar(&profile, "profile", false, "log FPS and memory stats")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "texture decode workers (0 = auto)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scene presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [preset]",
		Short: "print a preset configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "solar-system"
			if len(args) > 0 {
				name = args[0]
			}
			cfg := config.GetPreset(name)
			if cfg == nil {
				return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Printf("%s: ok (%d bodies)\n", args[0], len(cfg.Bodies))
			return nil
		},
	}

	rootCmd.AddCommand(presetsCmd, dumpCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	registry := body.NewRegistry(
		body.WithSafeDistanceFactor(cfg.Camera.SafeDistanceFactor),
	)

	loader := asset.NewLoader(asset.WithWorkers(cfg.Engine.Workers))

	for _, bc := range cfg.Bodies {
		opts := []body.PlanetOption{
			body.WithRadius(bc.Radius),
			body.WithSpinSpeed(bc.SpinSpeed),
		}
		if bc.Texture != "" {
			opts = append(opts, body.WithTexture(bc.Texture))
			loader.Load(bc.Name, bc.Texture)
		}
		if bc.Rings != nil {
			opts = append(opts, body.WithRings(bc.Rings.InnerRadius, bc.Rings.OuterRadius, bc.Rings.Texture))
		}
		if bc.Atmosphere != nil {
			c := bc.Atmosphere.Color
			opts = append(opts, body.WithAtmosphere(c[0], c[1], c[2], c[3], bc.Atmosphere.Scale))
		}
		registry.Add(bc.Name, body.NewPlanet(bc.Name, opts...))
	}

	sched := animation.NewScheduler(registry,
		animation.WithSpeedMultiplier(cfg.Animation.SpeedMultiplier),
		animation.WithTimeScaleFactor(cfg.Animation.TimeScaleFactor),
	)
	for _, bc := range cfg.Bodies {
		b, ok := registry.Get(bc.Name)
		if !ok {
			continue
		}
		if bc.Central {
			sched.RegisterBody(bc.Name, b)
			continue
		}
		sched.RegisterBody(bc.Name, b, animation.OrbitalParams{
			Distance:     bc.Distance,
			AngularSpeed: bc.AngularSpeed,
		})
	}

	rig := camera.NewRig(registry,
		camera.WithBaseSpeed(cfg.Camera.BaseSpeed),
		camera.WithMouseSensitivity(cfg.Camera.MouseSensitivity),
		camera.WithZoomSpeed(cfg.Camera.ZoomSpeed),
		camera.WithViewDistance(cfg.Camera.ViewDistance),
		camera.WithMinDistance(cfg.Camera.MinDistance),
	)

	// The rig owns the pause interaction; the scheduler follows it.
	rig.AddPauseObserver(func(paused bool) {
		sched.SetPaused(paused)
		if paused {
			log.Println("[Orrery] animation paused")
		} else {
			log.Println("[Orrery] animation resumed")
		}
	})

	cam := camera.NewCamera(
		camera.WithRig(rig),
		camera.WithAspect(float32(cfg.Window.Width)/float32(cfg.Window.Height)),
	)

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithCamera(cam),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
		engine.WithProfiling(cfg.Engine.Profile),
	)

	// Number keys 1-9 toggle body locks in config order.
	bindOpts := make([]input.BindOption, 0, len(cfg.Bodies))
	for i, bc := range cfg.Bodies {
		if i >= 9 {
			break
		}
		bindOpts = append(bindOpts, input.WithLockKey(uint32(common.Key1+i), bc.Name))
	}
	input.Bind(win, rig, bindOpts...)

	loader.Wait()
	log.Printf("[Orrery] %d bodies, %d textures decoded", registry.Len(), len(loader.Textures()))

	sched.Start()
	defer sched.Stop()

	eng.SetTickCallback(func(dt float32) {
		sched.Tick(time.Now())
		rig.Update(dt)
		cam.Update()
	})

	eng.Run()
	return nil
}

// resolveConfig builds the effective config: preset, then config file, then
// explicitly set CLI flags, each layer overriding the previous one.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Window.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = height
	}
	if cmd.Flags().Changed("tick-rate") {
		cfg.Engine.TickRate = tickRate
	}
	if cmd.Flags().Changed("frame-limit") {
		cfg.Engine.FrameLimit = frameLimit
	}
	if cmd.Flags().Changed("speed") {
		cfg.Animation.SpeedMultiplier = float32(speed)
	}
	if cmd.Flags().Changed("time-scale") {
		cfg.Animation.TimeScaleFactor = float32(timeScale)
	}
	if cmd.Flags().Changed("profile") {
		cfg.Engine.Profile = profile
	}
	if cmd.Flags().Changed("workers") {
		cfg.Engine.Workers = workers
	}

	return cfg, nil
}
