package debug

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
)

func testFrame(t *testing.T) *framebuffer.FrameBuffer {
	t.Helper()
	fb, err := framebuffer.New(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	fb.Clear(framebuffer.Black)
	fb.SetPixel(3, 2, framebuffer.RGB(200, 100, 50))
	return fb
}

func TestNewScreenshotCaptureFormat(t *testing.T) {
	if _, err := NewScreenshotCapture("", "shot", "gif"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestCaptureFormats(t *testing.T) {
	tests := []struct {
		format string
		decode func(*bytes.Reader) (int, int, uint32, error)
	}{
		{FormatPNG, func(r *bytes.Reader) (int, int, uint32, error) {
			img, err := png.Decode(r)
			if err != nil {
				return 0, 0, 0, err
			}
			red, _, _, _ := img.At(3, 2).RGBA()
			return img.Bounds().Dx(), img.Bounds().Dy(), red >> 8, nil
		}},
		{FormatBMP, func(r *bytes.Reader) (int, int, uint32, error) {
			img, err := bmp.Decode(r)
			if err != nil {
				return 0, 0, 0, err
			}
			red, _, _, _ := img.At(3, 2).RGBA()
			return img.Bounds().Dx(), img.Bounds().Dy(), red >> 8, nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()
			sc, err := NewScreenshotCapture(dir, "frame", tt.format)
			if err != nil {
				t.Fatal(err)
			}

			path, err := sc.CaptureElapsed(testFrame(t), 48000)
			if err != nil {
				t.Fatalf("capture failed: %v", err)
			}
			if want := filepath.Join(dir, "frame_048000."+tt.format); path != want {
				t.Errorf("path = %s, want %s", path, want)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			w, h, red, err := tt.decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if w != 8 || h != 4 {
				t.Errorf("size = %dx%d, want 8x4", w, h)
			}
			if red != 200 {
				t.Errorf("red channel = %d, want 200", red)
			}
		})
	}
}

func TestGenerateFilename(t *testing.T) {
	sc, err := NewScreenshotCapture("shots", "snowfall", FormatBMP)
	if err != nil {
		t.Fatal(err)
	}
	sc.now = func() time.Time { return time.Date(2024, 12, 24, 18, 30, 5, 0, time.UTC) }

	got := sc.GenerateFilename()
	want := filepath.Join("shots", "snowfall_2024-12-24_18-30-05.000.bmp")
	if got != want {
		t.Errorf("GenerateFilename() = %s, want %s", got, want)
	}

	sc.SetOutputDir("")
	if strings.Contains(sc.GenerateFilename(), string(filepath.Separator)) {
		t.Error("filename should have no directory after SetOutputDir(\"\")")
	}
}

func TestCaptureCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	sc, _ := NewScreenshotCapture(dir, "shot", FormatPNG)
	path, err := sc.Capture(testFrame(t))
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot not written: %v", err)
	}
}
