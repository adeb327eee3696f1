// Package game implements the main loop and lifecycle management.
package game

import (
	"errors"
	"fmt"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/fbarrios/desertscene/internal/config"
	"github.com/fbarrios/desertscene/internal/engine/input"
	"github.com/fbarrios/desertscene/internal/engine/renderer"
	"github.com/fbarrios/desertscene/internal/engine/texture"
	"github.com/fbarrios/desertscene/internal/engine/window"
	"github.com/fbarrios/desertscene/internal/logger"
	"github.com/fbarrios/desertscene/internal/scene"
	"github.com/fbarrios/desertscene/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// Camera constants. The viewpoint is fixed at the origin looking down -Z;
// all motion in the scene comes from the models' own poses.
const (
	fovY      = float32(gomath.Pi / 4) // 45 degrees
	nearPlane = 0.1
	farPlane  = 10.0
)

// Setup failure stages, for callers that map them to exit codes.
var (
	ErrWindow   = errors.New("window setup")
	ErrRenderer = errors.New("renderer setup")
	ErrTexture  = errors.New("texture setup")
)

// State is the coarse lifecycle phase of the application.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateTerminating
)

// Game is the main application instance.
type Game struct {
	config   *config.Config
	state    State
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene

	// textures maps 1-based scene texture slots to GL texture names.
	textures map[int]uint32

	projection math.Mat4
	view       math.Mat4
}

// New creates the window, GL context, renderer, textures and scene, in
// that order. Any failure tears down what was already created.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("wireframe", cfg.Graphics.Wireframe),
	)

	g := &Game{
		config: cfg,
		state:  StateInitializing,
		view:   math.Identity(),
	}

	// Create window (this also creates the OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      "Desert Scene",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindow, err)
	}

	// Create renderer (AFTER window, since the OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:              cfg.Graphics.Width,
		Height:             cfg.Graphics.Height,
		Wireframe:          cfg.Graphics.Wireframe,
		VertexShaderPath:   cfg.Scene.VertexShaderPath,
		FragmentShaderPath: cfg.Scene.FragmentShaderPath,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("%w: %w", ErrRenderer, err)
	}

	if err := g.loadTextures(cfg.Scene.TexturePaths); err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, fmt.Errorf("%w: %w", ErrTexture, err)
	}

	g.scene, err = scene.New()
	if err != nil {
		g.Close()
		return nil, err
	}

	g.input = input.New()
	g.setProjection(cfg.Graphics.Width, cfg.Graphics.Height)

	logger.Info("initialized successfully")
	return g, nil
}

// loadTextures decodes and uploads the configured texture files. The
// file at index i serves scene texture slot i+1; slots without a file
// fall back to the renderer's white texture.
func (g *Game) loadTextures(paths []string) error {
	g.textures = make(map[int]uint32, len(paths))
	for i, path := range paths {
		if path == "" {
			continue
		}
		tex, err := texture.Load(path)
		if err != nil {
			return err
		}
		g.textures[i+1] = tex
	}
	return nil
}

// setProjection recomputes the perspective matrix for the given
// framebuffer size.
func (g *Game) setProjection(width, height int) {
	aspect := float32(width) / float32(height)
	g.projection = math.Perspective(fovY, aspect, nearPlane, farPlane)
}

// Run starts the main loop. Returns when the window is closed or Escape
// is pressed.
func (g *Game) Run() error {
	g.state = StateRunning
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}

		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.renderer.Resize(event.Width, event.Height)
				g.setProjection(event.Width, event.Height)
			}
		}
		if g.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			g.running = false
		}

		// 2. Advance animation
		g.scene.Update()

		// 3. Render
		g.renderer.Begin()
		g.scene.Draw(g.renderer, g.projection, g.view, g.textures)
		g.renderer.End()

		// 4. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if g.config.Game.ShowFPS {
				logger.Info("fps",
					zap.Int("count", frameCount),
					zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				)
			} else {
				logger.Debug("fps",
					zap.Int("count", frameCount),
					zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				)
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	g.state = StateTerminating
	return nil
}

// State reports the current lifecycle phase.
func (g *Game) State() State {
	return g.state
}

// Close releases resources in reverse creation order: scene geometry,
// textures, renderer, then the window and GL context.
func (g *Game) Close() {
	logger.Info("shutting down")
	g.state = StateTerminating

	if g.scene != nil {
		g.scene.Destroy()
		g.scene = nil
	}
	for slot, tex := range g.textures {
		if tex != 0 {
			id := tex
			gl.DeleteTextures(1, &id)
		}
		delete(g.textures, slot)
	}
	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
