// Package renderer presents software frame buffers on screen.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
	"github.com/Faultbox/snowfall/internal/logger"
)

// TexturePresenter streams the frame buffer into an ARGB8888 SDL texture and
// copies it to the window.
type TexturePresenter struct {
	width    int
	height   int
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewTexturePresenter creates an SDL renderer and a streaming texture of
// width x height on win.
func NewTexturePresenter(win *sdl.Window, width, height int, vsync bool) (*TexturePresenter, error) {
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}

	r, err := sdl.CreateRenderer(win, -1, flags)
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	tex, err := r.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888), sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}

	if info, err := r.GetInfo(); err == nil {
		logger.Info("SDL renderer initialized",
			zap.String("driver", info.Name),
			zap.Int("width", width),
			zap.Int("height", height),
		)
	}

	return &TexturePresenter{
		width:    width,
		height:   height,
		renderer: r,
		texture:  tex,
	}, nil
}

// Present uploads fb and shows it.
func (p *TexturePresenter) Present(fb *framebuffer.FrameBuffer) error {
	if fb.Width() != p.width || fb.Height() != p.height {
		return fmt.Errorf("frame buffer %dx%d does not match texture %dx%d",
			fb.Width(), fb.Height(), p.width, p.height)
	}

	pixels := fb.Pixels()
	if err := p.texture.Update(nil, unsafe.Pointer(&pixels[0]), fb.Pitch()); err != nil {
		return fmt.Errorf("SDL_UpdateTexture failed: %w", err)
	}
	if err := p.renderer.Copy(p.texture, nil, nil); err != nil {
		return fmt.Errorf("SDL_RenderCopy failed: %w", err)
	}
	p.renderer.Present()
	return nil
}

// Close destroys the texture and renderer.
func (p *TexturePresenter) Close() {
	logger.Info("closing SDL renderer")
	if p.texture != nil {
		p.texture.Destroy()
	}
	if p.renderer != nil {
		p.renderer.Destroy()
	}
}
