package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	switch c.Window.Backend {
	case "sdl", "glfw":
	default:
		return fmt.Errorf("unknown window backend %q (want sdl or glfw)", c.Window.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Graphics.MaxTextures <= 0 {
		return fmt.Errorf("max_textures must be positive, got %d", c.Graphics.MaxTextures)
	}
	if c.Camera.PitchLimit <= 0 || c.Camera.PitchLimit >= 90 {
		return fmt.Errorf("pitch_limit must be in (0, 90), got %v", c.Camera.PitchLimit)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("fov must be in (0, 180), got %v", c.Camera.FOV)
	}
	if c.Camera.MinSpeed <= 0 {
		return fmt.Errorf("min_speed must be positive, got %v", c.Camera.MinSpeed)
	}
	if c.Camera.OrthoHalfExtent <= 0 {
		return fmt.Errorf("ortho_half_extent must be positive, got %v", c.Camera.OrthoHalfExtent)
	}

	// The strafe axis is front x up; it must have a direction
	front, up := mgl32.Vec3(c.Camera.Front), mgl32.Vec3(c.Camera.Up)
	if front.Len() < 1e-6 {
		return fmt.Errorf("camera front must be non-zero, got %v", c.Camera.Front)
	}
	if up.Len() < 1e-6 {
		return fmt.Errorf("camera up must be non-zero, got %v", c.Camera.Up)
	}
	if front.Normalize().Cross(up.Normalize()).Len() < 1e-4 {
		return fmt.Errorf("camera front %v is parallel to up %v", c.Camera.Front, c.Camera.Up)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		"./config.toml",
		filepath.Join(ConfigDir(), "config.yaml"),
		filepath.Join(ConfigDir(), "config.toml"),
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
		return filepath.Join(home, "Library", "Application Support", "DeskView")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "DeskView")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "deskview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "deskview")
	}
}

// loadFromFile loads config from a YAML or TOML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}
