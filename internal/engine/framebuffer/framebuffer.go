// Package framebuffer provides the CPU-side ARGB color buffer that every
// frame is drawn into before presentation.
package framebuffer

import (
	"fmt"
	"image"
)

// BytesPerPixel is the size of one ARGB8888 pixel.
const BytesPerPixel = 4

// FrameBuffer is a width x height array of ARGB pixels in row-major order.
type FrameBuffer struct {
	width  int
	height int
	pixels []uint32
}

// New allocates a frame buffer with the specified dimensions.
func New(width, height int) (*FrameBuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("creating framebuffer: invalid size %dx%d", width, height)
	}

	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}, nil
}

// Clear overwrites every pixel with c.
func (fb *FrameBuffer) Clear(c Color) {
	if len(fb.pixels) == 0 {
		return
	}
	// Fill by doubling copies instead of a per-pixel loop.
	fb.pixels[0] = uint32(c)
	for filled := 1; filled < len(fb.pixels); filled *= 2 {
		copy(fb.pixels[filled:], fb.pixels[:filled])
	}
}

// SetPixel writes c at (x, y). Writes outside the buffer are dropped.
func (fb *FrameBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	fb.pixels[y*fb.width+x] = uint32(c)
}

// Pixel returns the color at (x, y), or 0 outside the buffer.
func (fb *FrameBuffer) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return 0
	}
	return Color(fb.pixels[y*fb.width+x])
}

// Pixels returns the backing pixel slice. Presenters read it directly.
func (fb *FrameBuffer) Pixels() []uint32 {
	return fb.pixels
}

// Width returns the buffer width in pixels.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels.
func (fb *FrameBuffer) Height() int { return fb.height }

// Size returns the buffer dimensions.
func (fb *FrameBuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// Pitch returns the length of one row in bytes.
func (fb *FrameBuffer) Pitch() int {
	return fb.width * BytesPerPixel
}

// CountNot returns how many pixels differ from c.
func (fb *FrameBuffer) CountNot(c Color) int {
	n := 0
	for _, p := range fb.pixels {
		if p != uint32(c) {
			n++
		}
	}
	return n
}

// RGBA converts the buffer into an 8-bit RGBA image.
func (fb *FrameBuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for i, p := range fb.pixels {
		c := Color(p)
		o := i * 4
		img.Pix[o] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = c.A()
	}
	return img
}
