package window

import "github.com/veandco/go-sdl2/sdl"

// Clock reads SDL's millisecond tick counter.
type Clock struct{}

// Ticks returns milliseconds since SDL initialization.
func (Clock) Ticks() uint32 {
	return sdl.GetTicks()
}

// Delay sleeps for at least ms milliseconds.
func (Clock) Delay(ms uint32) {
	sdl.Delay(ms)
}
