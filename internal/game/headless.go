package game

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/snowfall/internal/config"
	"github.com/Faultbox/snowfall/internal/engine/debug"
	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
	"github.com/Faultbox/snowfall/internal/logger"
)

// HeadlessResult summarizes a headless run.
type HeadlessResult struct {
	Frames    int
	ElapsedMs uint32
	Finished  bool
	Captures  []string
}

// RunHeadless renders the show without a window. Time advances by
// Headless.StepMs per frame; frames are saved at the first frame at or after
// each Headless.CaptureAt time.
func RunHeadless(cfg *config.Config) (*HeadlessResult, error) {
	hc := cfg.Headless
	if hc.StepMs == 0 {
		return nil, fmt.Errorf("headless: step_ms must be positive")
	}

	director, err := NewDirector(cfg, hc.Width, hc.Height)
	if err != nil {
		return nil, err
	}

	shots, err := debug.NewScreenshotCapture(hc.OutputDir, "frame", hc.Format)
	if err != nil {
		return nil, err
	}

	captures := slices.Clone(hc.CaptureAt)
	slices.Sort(captures)

	log := logger.Named("headless")
	log.Info("headless run",
		zap.Int("width", hc.Width),
		zap.Int("height", hc.Height),
		zap.Uint32("step_ms", hc.StepMs),
		zap.Int("max_frames", hc.MaxFrames),
		zap.Int("captures", len(captures)))

	res := &HeadlessResult{}
	var now uint32
	for {
		director.Update(now)
		res.Frames++

		for len(captures) > 0 && captures[0] <= director.Elapsed() {
			path, err := shots.CaptureElapsed(director.FrameBuffer(), captures[0])
			if err != nil {
				return res, fmt.Errorf("capture at %dms: %w", captures[0], err)
			}
			log.Debug("frame captured",
				zap.String("path", path),
				zap.Int("lit_pixels", director.FrameBuffer().CountNot(framebuffer.Black)))
			res.Captures = append(res.Captures, path)
			captures = captures[1:]
		}

		if director.Finished() {
			res.Finished = true
			break
		}
		if hc.MaxFrames > 0 && res.Frames >= hc.MaxFrames {
			break
		}
		now += hc.StepMs
	}

	res.ElapsedMs = director.Elapsed()
	log.Info("headless run complete",
		zap.Int("frames", res.Frames),
		zap.Uint32("elapsed_ms", res.ElapsedMs),
		zap.Bool("finished", res.Finished))
	return res, nil
}
