// Package game implements the main frame loop.
package game

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/snowfall/internal/config"
	"github.com/Faultbox/snowfall/internal/engine/camera"
	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
	"github.com/Faultbox/snowfall/internal/engine/raster"
	"github.com/Faultbox/snowfall/internal/game/scene"
	"github.com/Faultbox/snowfall/internal/logger"
	"github.com/Faultbox/snowfall/pkg/math"
)

// EventSource polls platform events once per frame.
type EventSource interface {
	// Update drains pending events and reports whether the user asked to quit.
	Update() bool
	// ScreenshotRequested reports whether the last Update saw the screenshot key.
	ScreenshotRequested() bool
}

// Clock is a millisecond wall clock.
type Clock interface {
	Ticks() uint32
	Delay(ms uint32)
}

// Presenter shows a finished frame buffer on screen.
type Presenter interface {
	Present(fb *framebuffer.FrameBuffer) error
	Close()
}

// Capturer saves frame buffer snapshots.
type Capturer interface {
	Capture(fb *framebuffer.FrameBuffer) (string, error)
}

// Config holds loop settings.
type Config struct {
	FrameBudgetMs uint32
	ExitOnFinish  bool
}

// Game is the windowed frame loop.
type Game struct {
	config    Config
	running   bool
	director  *scene.Director
	events    EventSource
	clock     Clock
	presenter Presenter
	shots     Capturer // may be nil
	frames    uint64
	log       *zap.Logger
}

// New creates a game loop over the given collaborators. shots may be nil.
func New(cfg Config, director *scene.Director, events EventSource, clock Clock, presenter Presenter, shots Capturer) *Game {
	return &Game{
		config:    cfg,
		director:  director,
		events:    events,
		clock:     clock,
		presenter: presenter,
		shots:     shots,
		log:       logger.Named("game"),
	}
}

// Run loops until the user quits, or the show finishes when ExitOnFinish is set.
func (g *Game) Run() error {
	g.running = true
	g.log.Info("starting frame loop", zap.Uint32("budget_ms", g.config.FrameBudgetMs))

	for g.running {
		start := g.clock.Ticks()

		// 1. Input
		if g.events.Update() {
			g.log.Info("quit requested")
			break
		}

		// 2. Update and draw
		g.director.Update(start)
		g.frames++

		// 3. Diagnostics
		if g.shots != nil && g.events.ScreenshotRequested() {
			path, err := g.shots.Capture(g.director.FrameBuffer())
			if err != nil {
				g.log.Warn("screenshot failed", zap.Error(err))
			} else {
				g.log.Info("screenshot saved", zap.String("path", path))
			}
		}

		// 4. Present
		if err := g.presenter.Present(g.director.FrameBuffer()); err != nil {
			return fmt.Errorf("present frame %d: %w", g.frames, err)
		}

		if g.config.ExitOnFinish && g.director.Finished() {
			g.log.Info("show finished", zap.Uint32("elapsed_ms", g.director.Elapsed()))
			break
		}

		// 5. Pace
		if d := FrameDelay(g.config.FrameBudgetMs, start, g.clock.Ticks()); d > 0 {
			g.clock.Delay(d)
		}
	}

	g.running = false
	return nil
}

// Frames returns the number of frames rendered.
func (g *Game) Frames() uint64 {
	return g.frames
}

// Close releases the presenter.
func (g *Game) Close() {
	g.log.Info("closing game", zap.Uint64("frames", g.frames))
	if g.presenter != nil {
		g.presenter.Close()
	}
}

// FrameDelay returns how long to sleep so a frame started at start lasts
// budget ms. Frames that ran over get no delay.
func FrameDelay(budget, start, now uint32) uint32 {
	spent := now - start
	if spent >= budget {
		return 0
	}
	return budget - spent
}

// NewDirector builds the scene director for cfg on a fresh frame buffer.
func NewDirector(cfg *config.Config, width, height int) (*scene.Director, error) {
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return nil, err
	}

	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Debug("scene seed", zap.Uint64("seed", seed))

	cam := camera.New(math.Vec3{Z: cfg.Scene.CameraZ})
	director, err := scene.NewDirector(
		raster.New(fb, rand.New(rand.NewPCG(seed, seed))),
		scene.Options{
			Background:    framebuffer.Black,
			Camera:        &cam,
			ScalingFactor: cfg.Scene.ScalingFactor,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("creating scene director: %w", err)
	}
	return director, nil
}
