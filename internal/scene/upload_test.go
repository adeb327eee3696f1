package scene

import (
	"testing"
	"unsafe"

	"github.com/fbarrios/desertscene/pkg/math"
)

// glStub swaps the GL entry points for an in-memory handle allocator so
// the buffer lifecycle can be exercised without a context.
type glStub struct {
	nextID  uint32
	deleted []uint32
}

func installGLStub(t *testing.T) *glStub {
	t.Helper()
	s := &glStub{}

	origGenVA := glGenVertexArrays
	origBindVA := glBindVertexArray
	origGenBuf := glGenBuffers
	origBindBuf := glBindBuffer
	origBufData := glBufferData
	origAttrPtr := glVertexAttribPointerWithOffset
	origEnable := glEnableVertexAttribArray
	origDelVA := glDeleteVertexArrays
	origDelBuf := glDeleteBuffers
	t.Cleanup(func() {
		glGenVertexArrays = origGenVA
		glBindVertexArray = origBindVA
		glGenBuffers = origGenBuf
		glBindBuffer = origBindBuf
		glBufferData = origBufData
		glVertexAttribPointerWithOffset = origAttrPtr
		glEnableVertexAttribArray = origEnable
		glDeleteVertexArrays = origDelVA
		glDeleteBuffers = origDelBuf
	})

	gen := func(n int32, out *uint32) {
		s.nextID++
		*out = s.nextID
	}
	del := func(n int32, in *uint32) {
		s.deleted = append(s.deleted, *in)
	}
	glGenVertexArrays = gen
	glGenBuffers = gen
	glDeleteVertexArrays = del
	glDeleteBuffers = del
	glBindVertexArray = func(uint32) {}
	glBindBuffer = func(uint32, uint32) {}
	glBufferData = func(uint32, int, unsafe.Pointer, uint32) {}
	glVertexAttribPointerWithOffset = func(uint32, int32, uint32, bool, int32, uintptr) {}
	glEnableVertexAttribArray = func(uint32) {}
	return s
}

func (s *glStub) wasDeleted(handle uint32) bool {
	for _, h := range s.deleted {
		if h == handle {
			return true
		}
	}
	return false
}

func TestUploadEmptyGeometry(t *testing.T) {
	s := installGLStub(t)

	tests := []struct {
		name     string
		vertices []math.Vec3
		indices  []uint32
	}{
		{"no geometry", nil, nil},
		{"vertices without indices", testTriangle, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel("empty", math.Vec3{}, math.Vec3{}, tt.vertices, tt.indices, BehaviorNone, 0)
			if err != nil {
				t.Fatalf("NewModel() error: %v", err)
			}

			m.Upload()
			if m.Uploaded() {
				t.Error("model without drawable geometry should not report as uploaded")
			}
			if m.indexCount != 0 {
				t.Errorf("indexCount = %d, want 0", m.indexCount)
			}
			if s.nextID != 0 {
				t.Errorf("allocated %d GL handles, want none", s.nextID)
			}
		})
	}
}

func TestUploadTwiceReplacesBuffers(t *testing.T) {
	s := installGLStub(t)

	m, err := NewModel("test", math.Vec3{}, math.Vec3{}, testTriangle, []uint32{0, 1, 2}, BehaviorNone, 0)
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}

	m.Upload()
	if !m.Uploaded() {
		t.Fatal("model should report as uploaded after Upload")
	}
	if m.indexCount != 3 {
		t.Fatalf("indexCount = %d, want 3", m.indexCount)
	}
	firstVAO, firstVBO, firstEBO := m.vao, m.vbo, m.ebo

	m.Upload()
	if !m.Uploaded() {
		t.Fatal("model should still report as uploaded after re-upload")
	}
	if m.vao == firstVAO {
		t.Error("re-upload should allocate a fresh VAO")
	}
	for _, h := range []uint32{firstVAO, firstVBO, firstEBO} {
		if !s.wasDeleted(h) {
			t.Errorf("handle %d from the first upload was not released", h)
		}
	}
	if m.indexCount != 3 {
		t.Errorf("indexCount after re-upload = %d, want 3", m.indexCount)
	}
}

func TestReleaseIdempotent(t *testing.T) {
	s := installGLStub(t)

	m, err := NewModel("test", math.Vec3{}, math.Vec3{}, testTriangle, []uint32{0, 1, 2}, BehaviorNone, 0)
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	m.Upload()

	m.Release()
	if m.Uploaded() {
		t.Error("model should not report as uploaded after Release")
	}
	released := len(s.deleted)
	if released != 3 {
		t.Errorf("released %d handles, want 3", released)
	}

	m.Release()
	if len(s.deleted) != released {
		t.Error("second Release must not delete handles again")
	}
}
