package viewer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/deskview/internal/config"
	"github.com/Faultbox/deskview/internal/engine/camera"
	"github.com/Faultbox/deskview/internal/engine/renderer"
	"github.com/Faultbox/deskview/internal/engine/scene"
	"github.com/Faultbox/deskview/internal/engine/window"
)

// CameraSettings converts the camera section of the config. The perspective
// aspect is fixed at the configured window size.
func CameraSettings(cfg *config.Config) camera.Settings {
	c := cfg.Camera
	s := camera.DefaultSettings()
	s.Position = mgl32.Vec3(c.Position)
	s.Front = mgl32.Vec3(c.Front)
	s.Up = mgl32.Vec3(c.Up)
	s.Yaw = c.Yaw
	s.Pitch = c.Pitch
	s.Speed = c.MovementSpeed
	s.Sensitivity = c.MouseSensitivity
	s.PitchLimit = c.PitchLimit
	s.MinSpeed = c.MinSpeed
	s.FOV = c.FOV
	s.Aspect = float32(cfg.Window.Width) / float32(cfg.Window.Height)
	s.Near = c.Near
	s.Far = c.Far
	s.OrthoHalfExtent = c.OrthoHalfExtent
	return s
}

// SceneConfig converts the config into scene settings.
func SceneConfig(cfg *config.Config) scene.Config {
	return scene.Config{
		Camera:      CameraSettings(cfg),
		TextureDir:  cfg.Assets.TextureDir,
		MaxTextures: cfg.Graphics.MaxTextures,
	}
}

// WindowConfig converts the window section of the config.
func WindowConfig(cfg *config.Config) window.Config {
	w := cfg.Window
	return window.Config{
		Title:         w.Title,
		Width:         w.Width,
		Height:        w.Height,
		Fullscreen:    w.Fullscreen,
		VSync:         w.VSync,
		CaptureCursor: w.CaptureCursor,
	}
}

// RendererConfig converts the graphics section of the config.
func RendererConfig(cfg *config.Config, width, height int) renderer.Config {
	return renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Graphics.ClearColor,
	}
}
