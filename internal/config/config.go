// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Camera   CameraConfig   `yaml:"camera" toml:"camera"`
	Assets   AssetsConfig   `yaml:"assets" toml:"assets"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// WindowConfig holds window and input backend settings.
type WindowConfig struct {
	Backend       string `yaml:"backend" toml:"backend"` // "sdl" or "glfw"
	Title         string `yaml:"title" toml:"title"`
	Width         int    `yaml:"width" toml:"width"`
	Height        int    `yaml:"height" toml:"height"`
	Fullscreen    bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync         bool   `yaml:"vsync" toml:"vsync"`
	CaptureCursor bool   `yaml:"capture_cursor" toml:"capture_cursor"`
}

// GraphicsConfig holds rendering settings.
type GraphicsConfig struct {
	ClearColor  [4]float32 `yaml:"clear_color" toml:"clear_color"`
	MaxTextures int        `yaml:"max_textures" toml:"max_textures"` // texture units available to the scene

	ScreenshotDir string `yaml:"screenshot_dir" toml:"screenshot_dir"` // F12 captures land here
}

// CameraConfig holds the free-fly camera's initial state and limits.
type CameraConfig struct {
	Position [3]float32 `yaml:"position" toml:"position"`
	Front    [3]float32 `yaml:"front" toml:"front"`
	Up       [3]float32 `yaml:"up" toml:"up"`

	Yaw           float32 `yaml:"yaw" toml:"yaw"`     // degrees
	Pitch         float32 `yaml:"pitch" toml:"pitch"` // degrees
	MovementSpeed float32 `yaml:"movement_speed" toml:"movement_speed"`

	MouseSensitivity float32 `yaml:"mouse_sensitivity" toml:"mouse_sensitivity"`
	PitchLimit       float32 `yaml:"pitch_limit" toml:"pitch_limit"` // degrees, symmetric
	MinSpeed         float32 `yaml:"min_speed" toml:"min_speed"`

	FOV             float32 `yaml:"fov" toml:"fov"` // degrees
	Near            float32 `yaml:"near" toml:"near"`
	Far             float32 `yaml:"far" toml:"far"`
	OrthoHalfExtent float32 `yaml:"ortho_half_extent" toml:"ortho_half_extent"`
}

// AssetsConfig holds asset file locations.
type AssetsConfig struct {
	TextureDir string `yaml:"texture_dir" toml:"texture_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Backend:       "sdl",
			Title:         "Desk View",
			Width:         800,
			Height:        600,
			Fullscreen:    false,
			VSync:         true,
			CaptureCursor: false,
		},
		Graphics: GraphicsConfig{
			ClearColor:  [4]float32{0.0, 0.0, 0.0, 1.0},
			MaxTextures: 16,

			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Position:         [3]float32{5.0, 5.0, 10.0},
			Front:            [3]float32{-0.5, -0.5, -1.0},
			Up:               [3]float32{0.0, 1.0, 0.0},
			Yaw:              -90.0,
			Pitch:            0.0,
			MovementSpeed:    2.5,
			MouseSensitivity: 0.1,
			PitchLimit:       89.0,
			MinSpeed:         1.0,
			FOV:              45.0,
			Near:             0.1,
			Far:              100.0,
			OrthoHalfExtent:  5.0,
		},
		Assets: AssetsConfig{
			TextureDir: "textures",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
