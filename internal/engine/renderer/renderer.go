// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fbarrios/desertscene/internal/engine/shader"
	"github.com/fbarrios/desertscene/internal/logger"
	"github.com/fbarrios/desertscene/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Wireframe bool

	// Shader source overrides; empty strings select the embedded defaults.
	VertexShaderPath   string
	FragmentShaderPath string
}

// Renderer owns the shader program and context-global GL state. Every
// draw goes through it so uniform uploads and texture binds happen in
// one place.
type Renderer struct {
	config Config

	program uint32

	// Cached uniform locations, resolved once at startup.
	modelLoc      int32
	viewLoc       int32
	projectionLoc int32
	samplerLoc    int32

	fallbackTexture uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	vertSrc, fragSrc, err := shader.LoadSources(cfg.VertexShaderPath, cfg.FragmentShaderPath)
	if err != nil {
		return nil, err
	}
	r.program, err = shader.CompileProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.modelLoc = shader.MustGetUniform(r.program, "model")
	r.viewLoc = shader.MustGetUniform(r.program, "view")
	r.projectionLoc = shader.MustGetUniform(r.program, "projection")
	r.samplerLoc = shader.MustGetUniform(r.program, "texture_sampler")

	r.fallbackTexture = newFallbackTexture()

	logger.Debug("shader program created",
		zap.Uint32("program", r.program),
		zap.Bool("wireframe", cfg.Wireframe),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.fallbackTexture != 0 {
		gl.DeleteTextures(1, &r.fallbackTexture)
		r.fallbackTexture = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Width returns the current framebuffer width.
func (r *Renderer) Width() int { return r.config.Width }

// Height returns the current framebuffer height.
func (r *Renderer) Height() int { return r.config.Height }

// FallbackTexture is a 1x1 white texture for models without an assigned
// texture; sampling it leaves the vertex color untouched.
func (r *Renderer) FallbackTexture() uint32 { return r.fallbackTexture }

// Begin starts a new frame: clears the buffers, activates the program
// and applies the polygon mode.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// End finishes the current frame: unbinds context-global state and
// drains the GL error queue so failures surface in the log instead of
// poisoning later calls.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	for {
		errCode := gl.GetError()
		if errCode == gl.NO_ERROR {
			break
		}
		logger.Error("OpenGL error", zap.Uint32("code", errCode))
	}
}

// DrawIndexed issues one indexed draw with the given transforms and
// texture. Must be called between Begin and End; the program is already
// active.
func (r *Renderer) DrawIndexed(vao uint32, indexCount int32, model, projection, view math.Mat4, texture uint32) {
	if vao == 0 || indexCount == 0 {
		return
	}

	gl.UniformMatrix4fv(r.modelLoc, 1, false, model.Ptr())
	gl.UniformMatrix4fv(r.viewLoc, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, projection.Ptr())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.Uniform1i(r.samplerLoc, 0)

	gl.BindVertexArray(vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, 0)
}

// newFallbackTexture uploads a single opaque white pixel.
func newFallbackTexture() uint32 {
	var tex uint32
	white := []uint8{255, 255, 255, 255}
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
