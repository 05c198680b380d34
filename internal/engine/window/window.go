// Package window handles SDL2 window creation and timing.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/snowfall/internal/logger"
)

func init() {
	// SDL video and OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int // 0 uses the current display mode
	Height     int // 0 uses the current display mode
	Fullscreen bool
	VSync      bool
	OpenGL     bool // create an OpenGL 4.1 core context
}

// Window wraps an SDL2 window and, when requested, its OpenGL context.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
}

// New initializes SDL and opens a window.
func New(cfg Config) (*Window, error) {
	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_TIMER); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	if cfg.Width == 0 || cfg.Height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("SDL_GetCurrentDisplayMode failed: %w", err)
		}
		if cfg.Width == 0 {
			cfg.Width = int(mode.W)
		}
		if cfg.Height == 0 {
			cfg.Height = int(mode.H)
		}
		logger.Info("using display mode",
			zap.Int32("width", mode.W),
			zap.Int32("height", mode.H),
			zap.Int32("refresh_rate", mode.RefreshRate),
		)
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if cfg.OpenGL {
		// We want OpenGL 4.1 Core Profile (max supported on macOS)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
		sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
		flags |= sdl.WINDOW_OPENGL
	}

	w := &Window{config: cfg}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	if cfg.OpenGL {
		w.glContext, err = w.sdlWindow.GLCreateContext()
		if err != nil {
			w.sdlWindow.Destroy()
			sdl.Quit()
			return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
		}

		interval := 0
		if cfg.VSync {
			interval = 1
		}
		if err := sdl.GLSetSwapInterval(interval); err != nil {
			logger.Warn("failed to set swap interval", zap.Error(err))
		}
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("opengl", cfg.OpenGL),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// SDL returns the underlying SDL window.
func (w *Window) SDL() *sdl.Window {
	return w.sdlWindow
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// Size returns the window size chosen at creation.
func (w *Window) Size() (int, int) {
	return w.config.Width, w.config.Height
}
