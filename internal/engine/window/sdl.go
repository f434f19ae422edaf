package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskview/internal/engine/input"
	"github.com/Faultbox/deskview/internal/logger"
)

var sdlScancodes = map[input.Key]sdl.Scancode{
	input.KeyW:      sdl.SCANCODE_W,
	input.KeyA:      sdl.SCANCODE_A,
	input.KeyS:      sdl.SCANCODE_S,
	input.KeyD:      sdl.SCANCODE_D,
	input.KeyQ:      sdl.SCANCODE_Q,
	input.KeyE:      sdl.SCANCODE_E,
	input.KeyP:      sdl.SCANCODE_P,
	input.KeyO:      sdl.SCANCODE_O,
	input.KeyEscape: sdl.SCANCODE_ESCAPE,
	input.KeyF12:    sdl.SCANCODE_F12,
}

// sdlWindow wraps an SDL2 window and OpenGL context.
type sdlWindow struct {
	*input.Events

	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext

	// SDL reports relative motion in captured mode, so the cursor is
	// accumulated here to give callbacks an absolute position.
	cursorX, cursorY float64

	closing bool
	resize  ResizeFunc
}

func newSDLWindow(cfg Config) (*sdlWindow, error) {
	w := &sdlWindow{
		Events: input.NewEvents(),
		config: cfg,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	if cfg.CaptureCursor {
		sdl.SetRelativeMouseMode(true)
	}

	logger.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Pressed reads the live keyboard state.
func (w *sdlWindow) Pressed(k input.Key) bool {
	sc, ok := sdlScancodes[k]
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return int(sc) < len(state) && state[sc] != 0
}

func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.closing = true

		case *sdl.KeyboardEvent:
			if e.State == sdl.PRESSED && e.Keysym.Sym == sdl.K_ESCAPE {
				w.closing = true
			}

		case *sdl.MouseMotionEvent:
			w.cursorX += float64(e.XRel)
			w.cursorY += float64(e.YRel)
			w.MoveCursor(w.cursorX, w.cursorY)

		case *sdl.MouseWheelEvent:
			w.Scroll(float64(e.X), float64(e.Y))

		case *sdl.WindowEvent:
			if (e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED) && w.resize != nil {
				w.resize(w.DrawableSize())
			}
		}
	}
}

func (w *sdlWindow) ShouldClose() bool {
	return w.closing
}

func (w *sdlWindow) SetShouldClose() {
	w.closing = true
}

func (w *sdlWindow) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

func (w *sdlWindow) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) OnResize(fn ResizeFunc) {
	w.resize = fn
}

// Close destroys the window and cleans up SDL2.
func (w *sdlWindow) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}
