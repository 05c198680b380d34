// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Keys the show reacts to.
const (
	KeyQuit       = sdl.SCANCODE_ESCAPE
	KeyScreenshot = sdl.SCANCODE_F12
)

// Input drains the SDL event queue once per frame.
type Input struct {
	quit       bool
	screenshot bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{}
}

// Update polls SDL events. Returns true if the show should quit: the window
// was closed or Escape was pressed.
func (i *Input) Update() bool {
	i.screenshot = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.quit = true

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			i.handleKey(e.Keysym.Scancode)
		}
	}

	return i.quit
}

func (i *Input) handleKey(key sdl.Scancode) {
	switch key {
	case KeyQuit:
		i.quit = true
	case KeyScreenshot:
		i.screenshot = true
	}
}

// ScreenshotRequested reports whether the screenshot key was pressed during
// the last Update.
func (i *Input) ScreenshotRequested() bool {
	return i.screenshot
}
