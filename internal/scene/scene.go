package scene

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/fbarrios/desertscene/internal/engine/renderer"
	"github.com/fbarrios/desertscene/internal/logger"
	"github.com/fbarrios/desertscene/pkg/math"
)

// cactusRightShift nudges the whole cactus cluster to the right.
const cactusRightShift = 0.09

// Scene owns the ordered collection of models for their entire lifetime.
// Models live in one contiguous slice; nothing outside the scene keeps a
// reference across frames.
type Scene struct {
	models []Model
}

// Assemble builds the fixed model collection with its literal geometry,
// initial poses, behaviors and texture assignments. It performs no GL
// calls, so the construction path is testable without a graphics context.
//
// Collection order: pyramid, ground, sky, then six cacti.
func Assemble() ([]Model, error) {
	type preset struct {
		name        string
		orientation math.Vec3
		position    math.Vec3
		vertices    []math.Vec3
		indices     []uint32
		behavior    Behavior
		textureSlot int
	}

	presets := []preset{
		{
			name:        "pyramid",
			orientation: math.Vec3{X: -0.3, Y: -0.3, Z: 0},
			position:    math.Vec3{X: -0.7, Y: -0.5, Z: -1.4},
			vertices:    pyramidVertices,
			indices:     pyramidIndices,
			behavior:    BehaviorSpinY,
			textureSlot: 1,
		},
		{
			name:        "ground",
			orientation: math.Vec3{X: -0.3, Y: -0.3, Z: 0},
			position:    math.Vec3{X: 0, Y: -2.6, Z: -8},
			vertices:    groundVertices,
			indices:     groundIndices,
			behavior:    BehaviorNone,
			textureSlot: 3,
		},
		{
			name:        "sky",
			orientation: math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
			position:    math.Vec3{X: -0.7, Y: -4.0, Z: -8},
			vertices:    skyVertices,
			indices:     skyIndices,
			behavior:    BehaviorSpinZ,
			textureSlot: 2,
		},
		{
			name:        "cactus-1",
			orientation: math.Vec3{X: -0.3, Y: -0.3, Z: 0},
			position:    math.Vec3{X: -0.01 + cactusRightShift, Y: -0.5, Z: -1.0},
			vertices:    cactusVertices,
			indices:     cactusIndices,
			behavior:    BehaviorDriftX,
			textureSlot: 4,
		},
		{
			name:        "cactus-2",
			orientation: math.Vec3{X: -0.3, Y: -0.3, Z: gomath.Pi / 2},
			position:    math.Vec3{X: 0.32 + cactusRightShift, Y: 0.06, Z: -1.1},
			vertices:    scaleVertices(cactusVertices, 1.5),
			indices:     cactusIndices,
			behavior:    BehaviorDriftX,
			textureSlot: 4,
		},
		{
			name:        "cactus-3",
			orientation: math.Vec3{X: -0.3, Y: -0.3, Z: 0},
			position:    math.Vec3{X: 0.32 + cactusRightShift, Y: 0.06, Z: -1.1},
			vertices:    scaleVertices(cactusVertices, 3),
			indices:     cactusIndices,
			behavior:    BehaviorDriftX,
			textureSlot: 4,
		},
		{
			name:        "cactus-4",
			orientation: math.Vec3{X: -0.3, Y: -0.3, Z: 0},
			position:    math.Vec3{X: 0.15 + 0.08 + cactusRightShift, Y: 0.06, Z: -1.1},
			vertices:    scaleVertices(cactusVertices, 3),
			indices:     cactusIndices,
			behavior:    BehaviorDriftX,
			textureSlot: 4,
		},
		{
			name:        "cactus-5",
			orientation: math.Vec3{X: -0.3, Y: -0.3, Z: 0},
			position:    math.Vec3{X: 0.32 - 0.5 + cactusRightShift, Y: 0.06, Z: -1.3},
			vertices:    scaleVertices(cactusVertices, 3),
			indices:     cactusIndices,
			behavior:    BehaviorDriftX,
			textureSlot: 4,
		},
		{
			name:        "cactus-6",
			orientation: math.Vec3{X: -0.3, Y: -0.3, Z: 0},
			position:    math.Vec3{X: 0.15 - 0.42 + cactusRightShift, Y: 0.06, Z: -1.3},
			vertices:    scaleVertices(cactusVertices, 3),
			indices:     cactusIndices,
			behavior:    BehaviorDriftX,
			textureSlot: 4,
		},
	}

	models := make([]Model, 0, len(presets))
	for _, p := range presets {
		m, err := NewModel(p.name, p.orientation, p.position, p.vertices, p.indices, p.behavior, p.textureSlot)
		if err != nil {
			return nil, fmt.Errorf("assembling scene: %w", err)
		}
		models = append(models, m)
	}
	return models, nil
}

// New assembles the scene and uploads every model's geometry to the GPU.
// Upload happens exactly once per model, before the first draw.
func New() (*Scene, error) {
	models, err := Assemble()
	if err != nil {
		return nil, err
	}

	s := &Scene{models: models}
	for i := range s.models {
		s.models[i].Upload()
	}

	logger.Info("scene built",
		zap.Int("models", len(s.models)),
	)
	return s, nil
}

// Models exposes the owned collection, in draw order.
func (s *Scene) Models() []Model {
	return s.models
}

// Update applies each model's animation behavior once. Called once per
// frame before drawing.
func (s *Scene) Update() {
	for i := range s.models {
		s.models[i].Behavior.Apply(&s.models[i])
	}
}

// Draw renders every model in collection order with its assigned texture.
// textures maps 1-based texture slots to GL texture names; slot 0 (or a
// slot outside the map) falls back to the renderer's default texture.
func (s *Scene) Draw(r *renderer.Renderer, projection, view math.Mat4, textures map[int]uint32) {
	for i := range s.models {
		m := &s.models[i]
		tex, ok := textures[m.TextureSlot]
		if !ok {
			tex = r.FallbackTexture()
		}
		m.Draw(r, projection, view, tex)
	}
}

// Destroy releases every model's GPU resources before dropping the
// collection. Deterministic teardown: buffers first, then the slice.
func (s *Scene) Destroy() {
	for i := range s.models {
		s.models[i].Release()
	}
	s.models = nil
}
