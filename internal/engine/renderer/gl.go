package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
	"github.com/Faultbox/snowfall/internal/engine/shader"
	"github.com/Faultbox/snowfall/internal/logger"
)

const quadVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;

out vec2 texCoord;

void main() {
	// Row 0 of the frame buffer is the top of the screen.
	texCoord = vec2((aPos.x + 1.0) * 0.5, (1.0 - aPos.y) * 0.5);
	gl_Position = vec4(aPos, 0.0, 1.0);
}
`

const quadFragmentShader = `
#version 410 core

in vec2 texCoord;
out vec4 FragColor;

uniform sampler2D frame;

void main() {
	FragColor = texture(frame, texCoord);
}
`

// GLPresenter uploads the frame buffer into an OpenGL texture and draws it
// as a fullscreen quad. The OpenGL context must be current.
type GLPresenter struct {
	width   int
	height  int
	swap    func()
	program uint32
	texture uint32
	vao     uint32
	vbo     uint32
}

// NewGLPresenter initializes OpenGL and allocates a width x height texture.
// swap is called after each frame is drawn.
func NewGLPresenter(width, height int, swap func()) (*GLPresenter, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	p := &GLPresenter{width: width, height: height, swap: swap}

	var err error
	p.program, err = shader.CompileProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	gl.GenTextures(1, &p.texture)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
		gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, nil)

	p.createQuad()

	gl.UseProgram(p.program)
	gl.Uniform1i(shader.GetUniform(p.program, "frame"), 0)
	gl.Viewport(0, 0, int32(width), int32(height))

	return p, nil
}

// createQuad uploads a triangle strip covering clip space.
func (p *GLPresenter) createQuad() {
	vertices := []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Present uploads fb and draws it.
func (p *GLPresenter) Present(fb *framebuffer.FrameBuffer) error {
	if fb.Width() != p.width || fb.Height() != p.height {
		return fmt.Errorf("frame buffer %dx%d does not match texture %dx%d",
			fb.Width(), fb.Height(), p.width, p.height)
	}

	pixels := fb.Pixels()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(p.width), int32(p.height),
		gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, unsafe.Pointer(&pixels[0]))

	gl.UseProgram(p.program)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error 0x%x", code)
	}

	if p.swap != nil {
		p.swap()
	}
	return nil
}

// Close releases GPU resources.
func (p *GLPresenter) Close() {
	logger.Info("closing OpenGL renderer")
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.texture != 0 {
		gl.DeleteTextures(1, &p.texture)
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
	}
}
