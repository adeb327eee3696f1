// Package scene holds the drawable entities of the desert scene: model
// geometry, poses, animation behaviors, and GPU resource ownership.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/fbarrios/desertscene/internal/engine/renderer"
	"github.com/fbarrios/desertscene/internal/logger"
	"github.com/fbarrios/desertscene/pkg/math"
)

// floatsPerVertex is the interleaved layout uploaded to the GPU:
// position (3) + color (3) + texel (2).
const floatsPerVertex = 8

// GL entry points used by Upload and Release, indirected so the buffer
// lifecycle can be driven in tests without a live context.
var (
	glGenVertexArrays               = gl.GenVertexArrays
	glBindVertexArray               = gl.BindVertexArray
	glGenBuffers                    = gl.GenBuffers
	glBindBuffer                    = gl.BindBuffer
	glBufferData                    = gl.BufferData
	glVertexAttribPointerWithOffset = gl.VertexAttribPointerWithOffset
	glEnableVertexAttribArray       = gl.EnableVertexAttribArray
	glDeleteVertexArrays            = gl.DeleteVertexArrays
	glDeleteBuffers                 = gl.DeleteBuffers
)

// Model is a single drawable entity: immutable triangle geometry, a mutable
// pose, and the GPU buffers the geometry lives in after Upload.
type Model struct {
	Name string

	// Pose. The only fields the updater rewrites between frames.
	orientation math.Vec3 // Euler angles in radians
	position    math.Vec3

	// Geometry, copied at construction and never mutated afterwards.
	vertices []math.Vec3
	indices  []uint32

	// GPU handles, zero until Upload.
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	// Behavior is the per-frame animation rule applied by Scene.Update.
	Behavior Behavior

	// TextureSlot selects which scene texture this model is drawn with
	// (1-based; 0 means the renderer's fallback texture).
	TextureSlot int
}

// NewModel builds a model from literal geometry and an initial pose.
// It performs no GL calls. The vertex and index slices are copied.
// Fails if the index list is not a whole number of triangles or if any
// index falls outside the vertex list.
func NewModel(name string, orientation, position math.Vec3, vertices []math.Vec3, indices []uint32, behavior Behavior, textureSlot int) (Model, error) {
	if len(indices)%3 != 0 {
		return Model{}, fmt.Errorf("model %s: index count %d is not a multiple of 3", name, len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return Model{}, fmt.Errorf("model %s: index %d at position %d out of range (have %d vertices)", name, idx, i, len(vertices))
		}
	}

	m := Model{
		Name:        name,
		orientation: orientation,
		position:    position,
		vertices:    make([]math.Vec3, len(vertices)),
		indices:     make([]uint32, len(indices)),
		Behavior:    behavior,
		TextureSlot: textureSlot,
	}
	copy(m.vertices, vertices)
	copy(m.indices, indices)
	return m, nil
}

// Position returns the current world-space translation.
func (m *Model) Position() math.Vec3 { return m.position }

// Orientation returns the current Euler rotation parameters in radians.
func (m *Model) Orientation() math.Vec3 { return m.orientation }

// SetPosition overwrites the translation; effective on the next Draw.
func (m *Model) SetPosition(p math.Vec3) { m.position = p }

// SetOrientation overwrites the rotation; effective on the next Draw.
func (m *Model) SetOrientation(o math.Vec3) { m.orientation = o }

// VertexCount returns the number of vertices in the model's geometry.
func (m *Model) VertexCount() int { return len(m.vertices) }

// IndexCount returns the number of indices in the model's geometry.
func (m *Model) IndexCount() int { return len(m.indices) }

// Uploaded reports whether the geometry is resident on the GPU.
func (m *Model) Uploaded() bool { return m.vao != 0 }

// Vertices returns a copy of the model's positions.
func (m *Model) Vertices() []math.Vec3 {
	out := make([]math.Vec3, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// vertexData produces the interleaved float buffer for upload.
// The shader consumes position at location 0, color at location 1 and
// texel at location 2. The source geometry only carries positions, so
// color is white and the texel is the position's XY.
func (m *Model) vertexData() []float32 {
	data := make([]float32, 0, len(m.vertices)*floatsPerVertex)
	for _, v := range m.vertices {
		data = append(data,
			v.X, v.Y, v.Z, // position
			1, 1, 1, // color
			v.X, v.Y, // texel
		)
	}
	return data
}

// Upload transfers the geometry into GPU-resident buffers.
//
// Calling Upload on an already-uploaded model deterministically replaces
// the buffers: the previous VAO/VBO/EBO are deleted and fresh ones are
// created, so any handle obtained before the call is invalid after it.
// A model with no vertices or no indices keeps a zero handle; drawing it
// is a no-op.
func (m *Model) Upload() {
	if m.vao != 0 {
		logger.Debug("re-uploading model, replacing GPU buffers",
			zap.String("model", m.Name),
			zap.Uint32("old_vao", m.vao),
		)
		m.Release()
	}
	if len(m.vertices) == 0 || len(m.indices) == 0 {
		return
	}

	data := m.vertexData()

	glGenVertexArrays(1, &m.vao)
	glBindVertexArray(m.vao)

	glGenBuffers(1, &m.vbo)
	glBindBuffer(gl.ARRAY_BUFFER, m.vbo)
	glBufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	// Position
	glVertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	glEnableVertexAttribArray(0)
	// Color
	glVertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	glEnableVertexAttribArray(1)
	// Texel
	glVertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	glEnableVertexAttribArray(2)

	glGenBuffers(1, &m.ebo)
	glBindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	glBufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.indices)*4, unsafe.Pointer(&m.indices[0]), gl.STATIC_DRAW)

	m.indexCount = int32(len(m.indices))
	glBindVertexArray(0)
}

// ModelMatrix composes the model transform from the current pose:
// rotation first, then translation (model = T * R), with the Euler
// components applied in Y, X, Z order.
func (m *Model) ModelMatrix() math.Mat4 {
	result := math.Translate(m.position.X, m.position.Y, m.position.Z)
	result = result.Mul(math.RotateY(m.orientation.Y))
	result = result.Mul(math.RotateX(m.orientation.X))
	result = result.Mul(math.RotateZ(m.orientation.Z))
	return result
}

// Draw issues the model's geometry with its current pose and the given
// texture. The renderer owns the shader program and sets the model, view
// and projection uniforms; like every GL call, this mutates context-global
// bindings as a side effect.
func (m *Model) Draw(r *renderer.Renderer, projection, view math.Mat4, tex uint32) {
	r.DrawIndexed(m.vao, m.indexCount, m.ModelMatrix(), projection, view, tex)
}

// Release deletes the model's GPU buffers. Safe to call twice.
func (m *Model) Release() {
	if m.vao != 0 {
		glDeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		glDeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		glDeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	m.indexCount = 0
}
