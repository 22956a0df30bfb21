package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and frame stats")
	flagRenderer   = flag.String("renderer", "", "Renderer type (gl, rtx)")
	flagFlashlight = flag.Bool("flashlight", false, "Enable the player flashlight")
	flagFOV        = flag.Float64("fov", 0, "Horizontal field of view")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.View.Stats = true
	}
	if *flagRenderer != "" {
		cfg.Renderer.Type = *flagRenderer
	}
	if *flagFlashlight {
		cfg.Flashlight.Enabled = true
	}
	if *flagFOV > 0 {
		cfg.View.FOV = float32(*flagFOV)
	}
}
