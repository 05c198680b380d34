package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/snowfall/internal/engine/camera"
	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
	"github.com/Faultbox/snowfall/internal/engine/model"
	"github.com/Faultbox/snowfall/internal/engine/projection"
	"github.com/Faultbox/snowfall/internal/engine/raster"
	"github.com/Faultbox/snowfall/internal/logger"
)

// Options configures a Director. Zero fields take defaults.
type Options struct {
	Background    framebuffer.Color // default Black
	Camera        *camera.Camera    // default camera.Default()
	ScalingFactor float32           // default projection.DefaultScalingFactor
	Script        []Cue             // default DefaultScript()
}

// Director advances the show by one frame per Update call.
type Director struct {
	raster    *raster.Rasterizer
	projector *projection.Projector
	timeline  *Timeline
	bg        framebuffer.Color
	log       *zap.Logger

	state State

	started bool
	start   uint32
	elapsed uint32
	frames  uint64

	squarePyramid     *meshEffect
	octahedron        *meshEffect
	triangularPyramid *meshEffect
	bouncer           *meshEffect
}

// NewDirector creates a director drawing into r.
func NewDirector(r *raster.Rasterizer, opts Options) (*Director, error) {
	if r == nil {
		return nil, fmt.Errorf("nil rasterizer")
	}

	script := opts.Script
	if script == nil {
		script = DefaultScript()
	}
	timeline, err := NewTimeline(script)
	if err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	cam := camera.Default()
	if opts.Camera != nil {
		cam = *opts.Camera
	}
	projector := projection.NewProjector(r.Width(), r.Height(), cam)
	if opts.ScalingFactor != 0 {
		projector.ScalingFactor = opts.ScalingFactor
	}

	bg := opts.Background
	if bg == 0 {
		bg = framebuffer.Black
	}

	return &Director{
		raster:            r,
		projector:         projector,
		timeline:          timeline,
		bg:                bg,
		log:               logger.Named("scene"),
		state:             NewState(),
		squarePyramid:     newMeshEffect(model.SquarePyramid(), projection.AxesAll),
		octahedron:        newMeshEffect(model.Octahedron(), projection.AxisY),
		triangularPyramid: newMeshEffect(model.TriangularPyramid(), projection.AxesAll),
		bouncer:           newMeshEffect(model.Octahedron(), projection.AxisY),
	}, nil
}

// Update renders the frame for wall-clock time nowMs. The first call fixes
// the start of the show.
func (d *Director) Update(nowMs uint32) {
	if !d.started {
		d.started = true
		d.start = nowMs
	}
	d.elapsed = nowMs - d.start
	d.frames++

	d.raster.Clear(d.bg)

	for _, cue := range d.timeline.Advance(d.elapsed) {
		if cue.Cut {
			d.raster.Clear(d.bg)
		}
		if cue.Action != nil {
			cue.Action(&d.state)
		}
		d.log.Debug("scene cue",
			zap.String("cue", cue.Name),
			zap.Uint32("at_ms", cue.At),
			zap.Uint32("elapsed_ms", d.elapsed),
			zap.Stringer("active", d.state.Active))
	}

	d.drawEffects()
}

func (d *Director) drawEffects() {
	r, s := d.raster, &d.state

	if s.IsActive(EffectCloud) {
		drawClouds(r, s)
	}
	if s.IsActive(EffectSnow) {
		drawSnow(r)
	}
	if s.IsActive(EffectSnowman) {
		drawSnowman(r, s)
	}
	if s.IsActive(EffectTree) {
		drawTree(r)
	}
	if s.IsActive(EffectStar) {
		drawStars(r, s, d.elapsed)
	}
	if s.IsActive(EffectSquarePyramid) {
		updateSquarePyramid(&s.SquarePyramid, d.elapsed)
		d.squarePyramid.draw(r, d.projector, s.SquarePyramid, fixed(framebuffer.Red))
	}
	if s.IsActive(EffectOctahedron) {
		updateOctahedron(&s.Octahedron)
		d.octahedron.draw(r, d.projector, s.Octahedron, r.RandomColor)
	}
	if s.IsActive(EffectTriangularPyramid) {
		updateTriangularPyramid(&s.TriangularPyramid, d.elapsed)
		d.triangularPyramid.draw(r, d.projector, s.TriangularPyramid, fixed(framebuffer.Green))
	}
	if s.IsActive(EffectPolygons) {
		drawPolygons(r, s)
	}
	if s.IsActive(EffectBouncer) {
		updateBouncer(&s.Bouncer, &s.BounceDir)
		d.bouncer.draw(r, d.projector, s.Bouncer, fixed(framebuffer.Amber))
	}
}

// State returns a snapshot of the animation state.
func (d *Director) State() State { return d.state }

// Elapsed returns ms since the first Update.
func (d *Director) Elapsed() uint32 { return d.elapsed }

// Frames returns the number of Update calls so far.
func (d *Director) Frames() uint64 { return d.frames }

// Finished reports whether the script has run out and nothing is left on screen.
func (d *Director) Finished() bool {
	return d.timeline.Done() && d.state.Active == EffectNone
}

// FrameBuffer returns the buffer the director draws into.
func (d *Director) FrameBuffer() *framebuffer.FrameBuffer { return d.raster.FrameBuffer() }
