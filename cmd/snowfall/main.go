// Package main is the entry point for the snowfall show.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/snowfall/internal/config"
	"github.com/Faultbox/snowfall/internal/engine/debug"
	"github.com/Faultbox/snowfall/internal/engine/input"
	"github.com/Faultbox/snowfall/internal/engine/renderer"
	"github.com/Faultbox/snowfall/internal/engine/window"
	"github.com/Faultbox/snowfall/internal/game"
	"github.com/Faultbox/snowfall/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return
	}

	logger.Info("=== Snowfall ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.Headless.Enabled {
		res, err := game.RunHeadless(cfg)
		if err != nil {
			logger.Error("headless run failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("frames written",
			zap.String("dir", cfg.Headless.OutputDir),
			zap.Int("count", len(res.Captures)),
		)
		return
	}

	if err := run(cfg); err != nil {
		logger.Error("show error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("show closed normally")
}

// run opens the window, wires the presenter selected by the config and runs
// the frame loop until the user quits.
func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "Snowfall",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		OpenGL:     cfg.Graphics.Backend == config.BackendOpenGL,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	width, height := win.Size()

	var presenter game.Presenter
	switch cfg.Graphics.Backend {
	case config.BackendOpenGL:
		presenter, err = renderer.NewGLPresenter(width, height, win.SwapBuffers)
	default:
		presenter, err = renderer.NewTexturePresenter(win.SDL(), width, height, cfg.Graphics.VSync)
	}
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	director, err := game.NewDirector(cfg, width, height)
	if err != nil {
		presenter.Close()
		return err
	}

	var shots game.Capturer
	if sc, err := debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "snowfall", cfg.Debug.ScreenshotFormat); err != nil {
		logger.Warn("screenshots disabled", zap.Error(err))
	} else {
		shots = sc
	}

	g := game.New(game.Config{
		FrameBudgetMs: cfg.FrameBudgetMs(),
		ExitOnFinish:  cfg.Scene.ExitOnFinish,
	}, director, input.New(), window.Clock{}, presenter, shots)
	defer g.Close()

	return g.Run()
}
