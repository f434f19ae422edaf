// Package viewer wires the window, renderer and desk scene together and runs
// the frame loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/deskview/internal/config"
	"github.com/Faultbox/deskview/internal/engine/debug"
	"github.com/Faultbox/deskview/internal/engine/input"
	"github.com/Faultbox/deskview/internal/engine/mesh"
	"github.com/Faultbox/deskview/internal/engine/renderer"
	"github.com/Faultbox/deskview/internal/engine/scene"
	"github.com/Faultbox/deskview/internal/engine/texture"
	"github.com/Faultbox/deskview/internal/engine/window"
	"github.com/Faultbox/deskview/internal/logger"
)

// Viewer is the desk viewer application.
type Viewer struct {
	config   *config.Config
	window   window.Window
	renderer *renderer.Renderer
	meshes   *mesh.Library
	scene    *scene.Scene

	screenshots *debug.ScreenshotCapture
	captureHeld bool
}

// New creates the window, GL state and scene.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("backend", cfg.Window.Backend),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	v := &Viewer{
		config:      cfg,
		screenshots: debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "deskview"),
	}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(cfg.Window.Backend, WindowConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(RendererConfig(cfg, width, height))
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.window.OnResize(v.renderer.Resize)

	// Lights are written during preparation, so the program must be current
	v.renderer.Program().Use()

	v.meshes = mesh.NewLibrary()
	v.scene = scene.New(SceneConfig(cfg), v.renderer.Program(), v.meshes, texture.GLBackend{}, v.window)
	if err := v.scene.Prepare(); err != nil {
		v.meshes.Destroy()
		v.renderer.Close()
		v.window.Close()
		return nil, fmt.Errorf("failed to prepare scene: %w", err)
	}

	logger.Info("viewer initialized successfully")
	return v, nil
}

// Run drives the frame loop until the window is closed.
func (v *Viewer) Run() error {
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for !v.window.ShouldClose() {
		v.window.PollEvents()
		if v.window.ShouldClose() {
			break
		}

		v.renderer.Begin()
		if err := v.scene.RenderFrame(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		v.renderer.End()

		// Capture on the F12 press edge, before the back buffer is swapped
		pressed := v.window.Pressed(input.KeyF12)
		if pressed && !v.captureHeld {
			v.captureScreenshot()
		}
		v.captureHeld = pressed

		v.window.SwapBuffers()

		// FPS counter
		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Stringer("mode", v.scene.Camera().Mode()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) captureScreenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
