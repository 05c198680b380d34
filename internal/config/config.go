// Package config handles renderer configuration loading and management.
package config

import (
	"fmt"
	"slices"

	"github.com/Faultbox/snowfall/internal/engine/debug"
)

// Presentation backends.
const (
	BackendSDL    = "sdl"
	BackendOpenGL = "opengl"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Headless HeadlessConfig `yaml:"headless"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings. A zero width or height means
// "use the current display mode".
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPS        int    `yaml:"fps"`
	Backend    string `yaml:"backend"` // sdl or opengl
}

// SceneConfig holds timeline and projection settings.
type SceneConfig struct {
	Seed          uint64  `yaml:"seed"` // 0 picks a random seed
	CameraZ       float32 `yaml:"camera_z"`
	ScalingFactor float32 `yaml:"scaling_factor"`
	ExitOnFinish  bool    `yaml:"exit_on_finish"`
}

// HeadlessConfig controls rendering without a window on a synthetic clock.
type HeadlessConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	StepMs    uint32   `yaml:"step_ms"`
	MaxFrames int      `yaml:"max_frames"`
	CaptureAt []uint32 `yaml:"capture_at"` // elapsed ms
	OutputDir string   `yaml:"output_dir"`
	Format    string   `yaml:"format"`
}

// DebugConfig holds diagnostics settings.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      0,
			Height:     0,
			Fullscreen: true,
			VSync:      false,
			FPS:        30,
			Backend:    BackendSDL,
		},
		Scene: SceneConfig{
			Seed:          0,
			CameraZ:       -5,
			ScalingFactor: 1000,
			ExitOnFinish:  false,
		},
		Headless: HeadlessConfig{
			Enabled:   false,
			Width:     1920,
			Height:    1080,
			StepMs:    33,
			MaxFrames: 0,
			CaptureAt: []uint32{0, 10000, 30000, 48000, 52000, 60000, 68000, 76000, 82000, 95000},
			OutputDir: "frames",
			Format:    debug.FormatPNG,
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: debug.FormatPNG,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// FrameBudgetMs returns the target duration of one frame.
func (c *Config) FrameBudgetMs() uint32 {
	return uint32(1000 / c.Graphics.FPS)
}

// Validate checks values that would otherwise fail deep inside the renderer.
func (c *Config) Validate() error {
	if c.Graphics.Width < 0 || c.Graphics.Height < 0 {
		return fmt.Errorf("graphics: negative size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FPS < 1 || c.Graphics.FPS > 1000 {
		return fmt.Errorf("graphics: fps %d out of range [1,1000]", c.Graphics.FPS)
	}
	if !slices.Contains([]string{BackendSDL, BackendOpenGL}, c.Graphics.Backend) {
		return fmt.Errorf("graphics: unknown backend %q", c.Graphics.Backend)
	}
	if c.Scene.CameraZ >= 0 {
		return fmt.Errorf("scene: camera_z must be negative to keep meshes in front of the camera, got %v", c.Scene.CameraZ)
	}
	if c.Scene.ScalingFactor <= 0 {
		return fmt.Errorf("scene: scaling_factor must be positive, got %v", c.Scene.ScalingFactor)
	}
	if c.Headless.Enabled {
		if c.Headless.Width < 1 || c.Headless.Height < 1 {
			return fmt.Errorf("headless: invalid size %dx%d", c.Headless.Width, c.Headless.Height)
		}
		if c.Headless.StepMs == 0 {
			return fmt.Errorf("headless: step_ms must be positive")
		}
	}
	for _, f := range []string{c.Headless.Format, c.Debug.ScreenshotFormat} {
		if f != debug.FormatPNG && f != debug.FormatBMP {
			return fmt.Errorf("unknown image format %q", f)
		}
	}
	return nil
}
