// Package raster draws wireframe primitives directly into a frame buffer.
package raster

import (
	"image"
	"math/rand/v2"

	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
)

const (
	// PolygonStep is how far DrawPolygon advances its scroll offset per call.
	PolygonStep = 5
	// ScrollReset is where scroll counters restart once they pass the screen edge.
	ScrollReset = -70
)

// Rasterizer owns a frame buffer and draws primitives into it.
type Rasterizer struct {
	fb  *framebuffer.FrameBuffer
	rng *rand.Rand
}

// New creates a rasterizer over fb. rng drives RandomColor.
func New(fb *framebuffer.FrameBuffer, rng *rand.Rand) *Rasterizer {
	return &Rasterizer{fb: fb, rng: rng}
}

// FrameBuffer returns the target buffer.
func (r *Rasterizer) FrameBuffer() *framebuffer.FrameBuffer {
	return r.fb
}

// Width returns the target width.
func (r *Rasterizer) Width() int { return r.fb.Width() }

// Height returns the target height.
func (r *Rasterizer) Height() int { return r.fb.Height() }

// Clear fills the whole buffer with c.
func (r *Rasterizer) Clear(c framebuffer.Color) {
	r.fb.Clear(c)
}

// SetPixel writes a single pixel; out-of-range writes are dropped.
func (r *Rasterizer) SetPixel(x, y int, c framebuffer.Color) {
	r.fb.SetPixel(x, y, c)
}

// DrawLine draws an integer Bresenham line including both endpoints.
func (r *Rasterizer) DrawLine(x0, y0, x1, y1 int, c framebuffer.Color) {
	w, h := r.fb.Size()
	// Both ends past the same edge: nothing on screen.
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= w && x1 >= w) || (y0 >= h && y1 >= h) {
		return
	}

	dx, sx := abs(x1-x0), sign(x0, x1)
	dy, sy := -abs(y1-y0), sign(y0, y1)
	err := dx + dy

	for {
		r.fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws a midpoint circle outline of the given radius.
func (r *Rasterizer) DrawCircle(cx, cy, radius int, c framebuffer.Color) {
	x, y := radius, 0
	err := 0

	for x >= y {
		r.fb.SetPixel(cx+x, cy+y, c)
		r.fb.SetPixel(cx+y, cy+x, c)
		r.fb.SetPixel(cx-y, cy+x, c)
		r.fb.SetPixel(cx-x, cy+y, c)
		r.fb.SetPixel(cx-x, cy-y, c)
		r.fb.SetPixel(cx-y, cy-x, c)
		r.fb.SetPixel(cx+y, cy-x, c)
		r.fb.SetPixel(cx+x, cy-y, c)

		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// DrawTriangle draws the three edges of a triangle.
func (r *Rasterizer) DrawTriangle(x0, y0, x1, y1, x2, y2 int, c framebuffer.Color) {
	r.DrawLine(x0, y0, x1, y1, c)
	r.DrawLine(x1, y1, x2, y2, c)
	r.DrawLine(x2, y2, x0, y0, c)
}

// DrawRectEdges draws a rectangle outline with one color per edge,
// ordered top, bottom, left, right.
func (r *Rasterizer) DrawRectEdges(x, y, width, height int, edges [4]framebuffer.Color) {
	r.DrawLine(x, y, x+width, y, edges[0])
	r.DrawLine(x, y+height, x+width, y+height, edges[1])
	r.DrawLine(x, y, x, y+height, edges[2])
	r.DrawLine(x+width, y, x+width, y+height, edges[3])
}

// DrawPolygon draws a closed six-point loop shifted down by *offset, then
// advances *offset by PolygonStep, restarting at ScrollReset once it reaches
// the bottom of the buffer.
func (r *Rasterizer) DrawPolygon(points [6]image.Point, offset *int, c framebuffer.Color) {
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		r.DrawLine(a.X, a.Y+*offset, b.X, b.Y+*offset, c)
	}
	*offset = Scroll(*offset, PolygonStep, r.fb.Height())
}

// RandomColor returns an opaque color with uniformly random channels.
func (r *Rasterizer) RandomColor() framebuffer.Color {
	return framebuffer.RGB(uint8(r.rng.IntN(256)), uint8(r.rng.IntN(256)), uint8(r.rng.IntN(256)))
}

// Intn returns a uniform int in [0, n); n must be positive.
func (r *Rasterizer) Intn(n int) int {
	return r.rng.IntN(n)
}

// Scroll advances a scroll counter by step and restarts it at ScrollReset
// once it reaches limit.
func Scroll(pos, step, limit int) int {
	pos += step
	if pos >= limit {
		return ScrollReset
	}
	return pos
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
