// Package config handles view configuration loading and management.
package config

// Config holds all view settings.
type Config struct {
	View       ViewConfig       `yaml:"view"`
	Flashlight FlashlightConfig `yaml:"flashlight"`
	Debug      DebugConfig      `yaml:"debug"`
	Renderer   RendererConfig   `yaml:"renderer"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ViewConfig holds scene inclusion policy and camera settings.
type ViewConfig struct {
	Entities   bool    `yaml:"entities"`
	Particles  bool    `yaml:"particles"`
	Lights     bool    `yaml:"lights"`
	Blend      bool    `yaml:"blend"`
	ShowLights bool    `yaml:"show_lights"` // Mark sphere lights with a particle
	AdjustFOV  bool    `yaml:"adjust_fov"`  // Keep vertical FOV fixed on wide screens
	FOV        float32 `yaml:"fov"`         // Horizontal FOV at 4:3
	Hand       Hand    `yaml:"hand"`
	GunScale   float32 `yaml:"gun_scale"`
	Stats      bool    `yaml:"stats"`
}

// FlashlightConfig holds the player flashlight settings.
type FlashlightConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Intensity float32 `yaml:"intensity"`
	Offset    Offset  `yaml:"offset"`

	// Point light approximation used when the renderer cannot draw spot lights.
	TraceDistance     float32 `yaml:"trace_distance"`
	FallbackIntensity float32 `yaml:"fallback_intensity"`
	FallbackRadius    float32 `yaml:"fallback_radius"`
	SmoothingSpeed    float32 `yaml:"smoothing_speed"`
}

// DebugConfig holds developer stress-test toggles.
type DebugConfig struct {
	TestParticles  bool `yaml:"test_particles"`
	TestEntities   bool `yaml:"test_entities"`
	TestLights     int  `yaml:"test_lights"`      // 1 grid, -1 single subtractive, other nonzero single
	TestBlend      bool `yaml:"test_blend"`
	TestDebugLines int  `yaml:"test_debug_lines"` // 1-4, see view.DebugPoints
}

// RendererConfig selects the renderer backend.
type RendererConfig struct {
	Type          string `yaml:"type"` // "gl" or "rtx"
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	SnapshotDir   string `yaml:"snapshot_dir"`
	SnapshotEvery int    `yaml:"snapshot_every"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			Entities:   true,
			Particles:  true,
			Lights:     true,
			Blend:      true,
			ShowLights: false,
			AdjustFOV:  true,
			FOV:        90,
			Hand:       HandRight,
			GunScale:   1,
		},
		Flashlight: FlashlightConfig{
			Enabled:           false,
			Intensity:         20000,
			Offset:            Offset{10, -10, 32},
			TraceDistance:     256,
			FallbackIntensity: 256,
			FallbackRadius:    10,
			SmoothingSpeed:    1,
		},
		Renderer: RendererConfig{
			Type:   "gl",
			Width:  640,
			Height: 480,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
