package render

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-spincube/pkg/scene"
)

var (
	// ErrBufferSize is returned when a device buffer does not hold exactly count * stride bytes
	ErrBufferSize = errors.New("buffer size mismatch")
	// ErrClosed is returned when rendering with a renderer that has been shut down
	ErrClosed = errors.New("renderer closed")
)

// Buffer is a GPU resident buffer owned by whoever created it
type Buffer interface {
	// Size returns the allocation in bytes
	Size() int
	// Release frees the device memory. It is called exactly once.
	Release() error
}

// VertexBuffer holds mesh vertices
type VertexBuffer interface {
	Buffer
}

// IndexBuffer holds 16-bit triangle indices
type IndexBuffer interface {
	Buffer
}

// Transforms are the matrices handed to a draw call
type Transforms struct {
	World      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// DrawCall describes one indexed triangle list draw
type DrawCall struct {
	BaseVertex     int
	MinIndex       int
	NumVertices    int
	StartIndex     int
	PrimitiveCount int
}

// IndexCount returns the number of indices consumed by the draw
func (d DrawCall) IndexCount() int {
	return d.PrimitiveCount * 3
}

// Device is the graphics API the renderer drives. Every call happens on the
// thread that owns the context.
type Device interface {
	CreateVertexBuffer(vertices []scene.Vertex) (VertexBuffer, error)
	CreateIndexBuffer(indices []uint16) (IndexBuffer, error)
	SetLighting(lighting scene.Lighting) error

	Clear(color mgl32.Vec4, depth float32) error
	BeginScene() error
	SetVertexFormat(format scene.VertexFormat) error
	SetStreamSource(vb VertexBuffer, stride int) error
	SetIndices(ib IndexBuffer) error
	DrawIndexed(tf Transforms, call DrawCall) error
	EndScene() error
	Present() error

	// Release frees device level objects. Buffers must be released first.
	Release() error
}

// Surface is the window the renderer presents to
type Surface interface {
	// PollEvents dispatches pending window messages without blocking
	PollEvents()
	// ShouldClose reports whether the user asked to close the window
	ShouldClose() bool
}
