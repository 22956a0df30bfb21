package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Q2View")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Q2View")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "q2view")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "q2view")
	}
}

// Validate checks values that cannot be corrected at runtime.
func (c *Config) Validate() error {
	switch c.Renderer.Type {
	case "gl", "rtx":
	default:
		return fmt.Errorf("renderer type %q: must be gl or rtx", c.Renderer.Type)
	}
	if c.View.GunScale <= 0 {
		return fmt.Errorf("gun_scale %v: must be positive", c.View.GunScale)
	}
	if c.Flashlight.TraceDistance <= 0 {
		return fmt.Errorf("flashlight trace_distance %v: must be positive", c.Flashlight.TraceDistance)
	}
	if c.Renderer.Width <= 0 || c.Renderer.Height <= 0 {
		return fmt.Errorf("screen %dx%d: width and height must be positive", c.Renderer.Width, c.Renderer.Height)
	}
	if c.Renderer.SnapshotEvery < 0 {
		return fmt.Errorf("snapshot_every %d: must not be negative", c.Renderer.SnapshotEvery)
	}
	return nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
