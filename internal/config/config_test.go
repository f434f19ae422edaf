package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Window.Height)
	}
	if cfg.Window.Backend != "sdl" {
		t.Errorf("expected sdl backend, got %s", cfg.Window.Backend)
	}
	if cfg.Graphics.MaxTextures != 16 {
		t.Errorf("expected 16 texture units, got %d", cfg.Graphics.MaxTextures)
	}

	// Camera defaults
	if cfg.Camera.Position != [3]float32{5, 5, 10} {
		t.Errorf("expected camera at (5, 5, 10), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Yaw != -90 {
		t.Errorf("expected yaw -90, got %f", cfg.Camera.Yaw)
	}
	if cfg.Camera.MovementSpeed != 2.5 {
		t.Errorf("expected movement speed 2.5, got %f", cfg.Camera.MovementSpeed)
	}
	if cfg.Camera.MouseSensitivity != 0.1 {
		t.Errorf("expected sensitivity 0.1, got %f", cfg.Camera.MouseSensitivity)
	}
	if cfg.Camera.PitchLimit != 89 {
		t.Errorf("expected pitch limit 89, got %f", cfg.Camera.PitchLimit)
	}
	if cfg.Camera.MinSpeed != 1 {
		t.Errorf("expected min speed 1, got %f", cfg.Camera.MinSpeed)
	}

	if cfg.Assets.TextureDir != "textures" {
		t.Errorf("expected texture dir 'textures', got %s", cfg.Assets.TextureDir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  backend: glfw
  width: 1024
  height: 768
  fullscreen: true
  capture_cursor: true

camera:
  movement_speed: 4
  pitch_limit: 80
  position: [0, 2, 6]

assets:
  texture_dir: "assets/tex"

logging:
  level: "debug"
  log_file: "deskview.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Backend != "glfw" {
		t.Errorf("expected glfw backend, got %s", cfg.Window.Backend)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if !cfg.Window.CaptureCursor {
		t.Error("expected capture_cursor to be true")
	}
	if cfg.Camera.MovementSpeed != 4 {
		t.Errorf("expected movement speed 4, got %f", cfg.Camera.MovementSpeed)
	}
	if cfg.Camera.PitchLimit != 80 {
		t.Errorf("expected pitch limit 80, got %f", cfg.Camera.PitchLimit)
	}
	if cfg.Camera.Position != [3]float32{0, 2, 6} {
		t.Errorf("expected position (0, 2, 6), got %v", cfg.Camera.Position)
	}
	// Untouched values keep their defaults
	if cfg.Camera.Yaw != -90 {
		t.Errorf("expected default yaw to survive merge, got %f", cfg.Camera.Yaw)
	}
	if cfg.Assets.TextureDir != "assets/tex" {
		t.Errorf("expected texture dir assets/tex, got %s", cfg.Assets.TextureDir)
	}
	if cfg.Logging.LogFile != "deskview.log" {
		t.Errorf("expected log file 'deskview.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOMLFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	tomlContent := `
[window]
backend = "glfw"
width = 1280

[camera]
min_speed = 0.5
far = 250.0
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Backend != "glfw" {
		t.Errorf("expected glfw backend, got %s", cfg.Window.Backend)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("expected default height 600, got %d", cfg.Window.Height)
	}
	if cfg.Camera.MinSpeed != 0.5 {
		t.Errorf("expected min speed 0.5, got %f", cfg.Camera.MinSpeed)
	}
	if cfg.Camera.Far != 250 {
		t.Errorf("expected far 250, got %f", cfg.Camera.Far)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Window.Backend = "x11" }},
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"no texture units", func(c *Config) { c.Graphics.MaxTextures = 0 }},
		{"pitch limit at 90", func(c *Config) { c.Camera.PitchLimit = 90 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"zero fov", func(c *Config) { c.Camera.FOV = 0 }},
		{"zero min speed", func(c *Config) { c.Camera.MinSpeed = 0 }},
		{"negative min speed", func(c *Config) { c.Camera.MinSpeed = -1 }},
		{"zero ortho extent", func(c *Config) { c.Camera.OrthoHalfExtent = 0 }},
		{"zero front", func(c *Config) { c.Camera.Front = [3]float32{} }},
		{"zero up", func(c *Config) { c.Camera.Up = [3]float32{} }},
		{"front along up", func(c *Config) { c.Camera.Front = [3]float32{0, 2, 0} }},
		{"front against up", func(c *Config) { c.Camera.Front = [3]float32{0, -1, 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}

	cfg := Default()
	cfg.Camera.Front = [3]float32{0, -1, -0.01}
	if err := cfg.Validate(); err != nil {
		t.Errorf("steep but not parallel front must validate, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[window]\nwidth = 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.toml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "backend flag",
			setup: func() { *flagBackend = "glfw" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Backend != "glfw" {
					t.Errorf("expected glfw backend, got %s", cfg.Window.Backend)
				}
			},
			teardown: func() { *flagBackend = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1920
				*flagHeight = 1080
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
					t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "textures flag",
			setup: func() { *flagTextures = "/srv/tex" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.TextureDir != "/srv/tex" {
					t.Errorf("expected texture dir /srv/tex, got %s", cfg.Assets.TextureDir)
				}
			},
			teardown: func() { *flagTextures = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, height from the file
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestEncode(t *testing.T) {
	cfg := Default()

	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := cfg.Encode(&buf, format); err != nil {
				t.Fatalf("Encode(%s) failed: %v", format, err)
			}
			out := buf.String()
			for _, key := range []string{"texture_dir", "pitch_limit", "backend"} {
				if !strings.Contains(out, key) {
					t.Errorf("expected %q in %s output", key, format)
				}
			}

			path := filepath.Join(t.TempDir(), "config."+format)
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				t.Fatalf("failed to write encoded config: %v", err)
			}
			reloaded := Default()
			reloaded.Window.Width = 1
			if err := loadFromFile(reloaded, path); err != nil {
				t.Fatalf("failed to reload encoded config: %v", err)
			}
			if reloaded.Window.Width != cfg.Window.Width {
				t.Errorf("reloaded width %d, want %d", reloaded.Window.Width, cfg.Window.Width)
			}
		})
	}

	if err := cfg.Encode(&bytes.Buffer{}, "ini"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
