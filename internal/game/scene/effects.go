package scene

import (
	"image"

	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
	"github.com/Faultbox/snowfall/internal/engine/raster"
	"github.com/Faultbox/snowfall/pkg/math"
)

const (
	cloudWidth  = 500
	cloudHeight = 200
	scrollStep  = 5

	snowMin     = 50
	snowSpread  = 51
	snowTop     = 350
	starSize    = 100
	starSpin    = 0.01
	treeTrunk   = 50
	treeHeight  = 245
	treeFromBot = 70
)

// Cloud banks as (x, y) origins. The first row scrolls right, the second left.
var (
	cloudsRight = []image.Point{{0, 100}, {800, 120}, {1500, 126}, {2100, 100}}
	cloudsLeft  = []image.Point{{100, 100}, {800, 130}, {1500, 150}, {2100, 100}}
)

// Hexagon template for the polygon grid's left column.
var hexagon = [6]image.Point{{100, 100}, {150, 150}, {200, 100}, {200, 200}, {150, 250}, {100, 200}}

const hexagonRows = 5

func drawClouds(r *raster.Rasterizer, s *State) {
	for _, p := range cloudsRight {
		r.DrawRectEdges(p.X+s.CloudX, p.Y, cloudWidth, cloudHeight, confetti(r))
	}
	for _, p := range cloudsLeft {
		r.DrawRectEdges(p.X-s.CloudX, p.Y, cloudWidth, cloudHeight, confetti(r))
	}
	s.CloudX = raster.Scroll(s.CloudX, scrollStep, r.Width())
}

func drawSnow(r *raster.Rasterizer) {
	w, h := r.Width(), r.Height()
	top, span := snowTop, h-snowTop
	if span <= 0 {
		top, span = 0, h
	}
	n := snowMin + r.Intn(snowSpread)
	for i := 0; i < n; i++ {
		r.SetPixel(r.Intn(w), top+r.Intn(span), framebuffer.White)
	}
}

func drawSnowman(r *raster.Rasterizer, s *State) {
	x, base := s.SnowmanX, r.Height()/2

	r.DrawCircle(x, base+200, 100, framebuffer.White)
	r.DrawCircle(x, base+500, 200, framebuffer.White)

	r.SetPixel(x-25, base+180, framebuffer.Red)
	r.SetPixel(x+25, base+180, framebuffer.Red)

	r.DrawTriangle(x-5, base+200, x+5, base+200, x, base+210, framebuffer.Orange)
	r.DrawTriangle(x-20, base+240, x, base+250, x+20, base+240, framebuffer.Blush)

	r.DrawRectEdges(x-70, base+70, 140, 30, confetti(r))
	r.DrawRectEdges(x-35, base-70, 70, 140, confetti(r))

	s.SnowmanX = raster.Scroll(s.SnowmanX, scrollStep, r.Width())
}

func drawStars(r *raster.Rasterizer, s *State, elapsed uint32) {
	s.StarAngle += starSpin
	if s.StarLayout < 0 || s.StarLayout >= len(StarLayouts) {
		return
	}
	cx, cy := r.Width()/2, r.Height()/2
	since := elapsed - s.StarSince
	for _, p := range StarLayouts[s.StarLayout] {
		if since < p.DelayMs {
			continue
		}
		drawStar(r, cx+p.DX, cy+p.DY, starSize, s.StarAngle, framebuffer.Yellow)
	}
}

// drawStar draws four triangles pointing up, down, left and right around
// (x, y), rotated by angle about the center.
func drawStar(r *raster.Rasterizer, x, y, size int, angle float32, c framebuffer.Color) {
	half := size / 2
	points := [4][3]image.Point{
		{{x, y - size}, {x - half, y + half}, {x + half, y + half}},
		{{x, y + size}, {x - half, y - half}, {x + half, y - half}},
		{{x - size, y}, {x + half, y - half}, {x + half, y + half}},
		{{x + size, y}, {x - half, y - half}, {x - half, y + half}},
	}
	pivot := math.Vec2{X: float32(x), Y: float32(y)}
	for _, tri := range points {
		var q [3]image.Point
		for i, p := range tri {
			v := math.Vec2{X: float32(p.X), Y: float32(p.Y)}.Rotate(pivot, angle)
			q[i] = image.Point{X: int(v.X), Y: int(v.Y)}
		}
		r.DrawTriangle(q[0].X, q[0].Y, q[1].X, q[1].Y, q[2].X, q[2].Y, c)
	}
}

func drawTree(r *raster.Rasterizer) {
	x, y := r.Width()/2, r.Height()-treeFromBot
	r.DrawRectEdges(x-treeTrunk/2, y-100, treeTrunk, treeHeight, confetti(r))

	lx, ly := x, y-treeHeight
	r.DrawTriangle(lx, ly, lx-50, ly+50, lx+50, ly+50, r.RandomColor())
	r.DrawTriangle(lx, ly+40, lx-70, ly+90, lx+70, ly+90, r.RandomColor())
	r.DrawTriangle(lx, ly+80, lx-90, ly+140, lx+90, ly+140, r.RandomColor())
}

// drawPolygons draws two mirrored diagonal columns of hexagons. Every hexagon
// shares s.PolygonY, so the grid drifts down PolygonStep per hexagon drawn.
func drawPolygons(r *raster.Rasterizer, s *State) {
	w := r.Width()
	for k := 0; k < hexagonRows; k++ {
		var left, right [6]image.Point
		for i, p := range hexagon {
			left[i] = image.Point{X: p.X + 200*k, Y: p.Y + 100*k}
			right[i] = image.Point{X: w - p.X - 200*k, Y: p.Y + 100*k}
		}
		r.DrawPolygon(left, &s.PolygonY, r.RandomColor())
		r.DrawPolygon(right, &s.PolygonY, r.RandomColor())
	}
}

func confetti(r *raster.Rasterizer) [4]framebuffer.Color {
	return [4]framebuffer.Color{r.RandomColor(), r.RandomColor(), r.RandomColor(), r.RandomColor()}
}
