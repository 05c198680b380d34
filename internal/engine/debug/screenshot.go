// Package debug provides frame capture for diagnostics.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
)

// Supported output formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// ScreenshotCapture writes frame buffer snapshots to disk.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler.
// format is FormatPNG or FormatBMP.
func NewScreenshotCapture(outputDir, prefix, format string) (*ScreenshotCapture, error) {
	if format != FormatPNG && format != FormatBMP {
		return nil, fmt.Errorf("unsupported screenshot format %q", format)
	}
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}, nil
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// Capture saves fb under a timestamped filename and returns the path.
func (sc *ScreenshotCapture) Capture(fb *framebuffer.FrameBuffer) (string, error) {
	return sc.CaptureAs(fb, sc.GenerateFilename())
}

// CaptureElapsed saves fb under a name derived from the scene time, so
// repeated headless runs overwrite the same files.
func (sc *ScreenshotCapture) CaptureElapsed(fb *framebuffer.FrameBuffer, elapsedMs uint32) (string, error) {
	name := fmt.Sprintf("%s_%06d.%s", sc.prefix, elapsedMs, sc.format)
	if sc.outputDir != "" {
		name = filepath.Join(sc.outputDir, name)
	}
	return sc.CaptureAs(fb, name)
}

// CaptureAs saves fb to filename.
func (sc *ScreenshotCapture) CaptureAs(fb *framebuffer.FrameBuffer, filename string) (string, error) {
	// Create output directory if needed
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, fb.RGBA(), sc.format); err != nil {
		return "", err
	}

	return filename, nil
}

// GenerateFilename generates a screenshot filename without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.%s", sc.prefix, timestamp, sc.format)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	case FormatBMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("encoding BMP: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}
