// Package window handles window and OpenGL context creation and turns the
// platform's input into an input.Source. Two backends are available: SDL2
// and GLFW.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Faultbox/deskview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// ErrUnknownBackend is returned by New for unsupported backend names.
var ErrUnknownBackend = errors.New("unknown window backend")

// Config holds window configuration.
type Config struct {
	Title         string
	Width         int
	Height        int
	Fullscreen    bool
	VSync         bool
	CaptureCursor bool // Hide the cursor and report unbounded relative motion
}

// ResizeFunc receives the new drawable size in pixels.
type ResizeFunc func(width, height int)

// Window is an OS window with a current OpenGL 4.1 core context.
// Keys are polled through input.KeyState; cursor and scroll events are
// delivered to callbacks during PollEvents.
type Window interface {
	input.Source

	// PollEvents processes pending platform events.
	PollEvents()
	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool
	// SetShouldClose requests the frame loop to stop.
	SetShouldClose()
	SwapBuffers()
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (int, int)
	OnResize(fn ResizeFunc)
	Close()
}

// New creates a window using the named backend.
func New(backend string, cfg Config) (Window, error) {
	switch backend {
	case BackendSDL, "":
		w, err := newSDLWindow(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendGLFW:
		w, err := newGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
