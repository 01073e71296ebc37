// Package openglhelper provides utilities for working with OpenGL buffers and other resources.
// It wraps the low-level OpenGL functions in a more Go-friendly API.
package openglhelper

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferObject represents an OpenGL buffer object (VBO, EBO, etc.)
// It provides a higher-level abstraction over raw OpenGL buffer IDs and operations.
type BufferObject struct {
	ID        uint32
	Type      uint32         // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER, etc.
	Size      int            // Size of the buffer in bytes
	IsMapped  bool           // Whether the buffer is currently locked
	MappedPtr unsafe.Pointer // Pointer to mapped memory (if locked)
}

// BufferUsage represents different buffer usage patterns for OpenGL buffers.
type BufferUsage uint32

// StaticDraw indicates buffer contents will be specified once and used many times for drawing
const StaticDraw BufferUsage = gl.STATIC_DRAW

// VertexArrayObject represents an OpenGL vertex array object (VAO) that stores vertex attribute configurations.
type VertexArrayObject struct {
	ID uint32
}

// NewBufferObject allocates sizeInBytes of storage for a buffer of the given type.
// data may be nil, in which case the contents are undefined until written.
// Returns an error if no buffer name could be generated or the allocation failed.
func NewBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) (*BufferObject, error) {
	if sizeInBytes <= 0 {
		return nil, fmt.Errorf("invalid buffer size %d", sizeInBytes)
	}

	var bufferID uint32
	gl.GenBuffers(1, &bufferID)
	if bufferID == 0 {
		return nil, fmt.Errorf("failed to generate buffer")
	}

	buffer := &BufferObject{
		ID:   bufferID,
		Type: bufferType,
		Size: sizeInBytes,
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))

	if err := CheckError("glBufferData"); err != nil {
		buffer.Delete()
		return nil, err
	}

	return buffer, nil
}

// NewStaticBuffer creates a buffer of exactly len(data) bytes and fills it
// through Lock / Unlock.
func NewStaticBuffer(bufferType uint32, data []byte) (*BufferObject, error) {
	buffer, err := NewBufferObject(bufferType, len(data), nil, StaticDraw)
	if err != nil {
		return nil, err
	}

	mapped, err := buffer.Lock()
	if err != nil {
		buffer.Delete()
		return nil, err
	}
	copy(mapped, data)

	if err := buffer.Unlock(); err != nil {
		buffer.Delete()
		return nil, err
	}

	return buffer, nil
}

// Lock maps the whole buffer for writing and returns it as a byte slice.
// The previous contents are discarded. The slice is only valid until Unlock.
func (bo *BufferObject) Lock() ([]byte, error) {
	if bo.IsMapped {
		return nil, fmt.Errorf("buffer is already mapped")
	}

	bo.Bind()
	bo.MappedPtr = gl.MapBufferRange(bo.Type, 0, bo.Size, gl.MAP_WRITE_BIT|gl.MAP_INVALIDATE_BUFFER_BIT)

	if bo.MappedPtr == nil {
		if err := CheckError("glMapBufferRange"); err != nil {
			return nil, fmt.Errorf("failed to map buffer: %w", err)
		}
		return nil, fmt.Errorf("failed to map buffer")
	}

	bo.IsMapped = true

	return unsafe.Slice((*byte)(bo.MappedPtr), bo.Size), nil
}

// Unlock unmaps a locked buffer.
// The driver may report that the contents were lost while mapped, which is returned as an error.
func (bo *BufferObject) Unlock() error {
	if !bo.IsMapped {
		return fmt.Errorf("buffer is not mapped")
	}

	bo.Bind()
	success := gl.UnmapBuffer(bo.Type)

	bo.IsMapped = false
	bo.MappedPtr = nil

	if !success {
		return fmt.Errorf("buffer contents were corrupted while mapped")
	}

	return nil
}

// Bind binds the buffer object to its type target.
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object from its type target.
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// Delete releases the buffer object and frees its resources.
// It automatically unmaps the buffer if it is mapped.
func (bo *BufferObject) Delete() {
	if bo.IsMapped {
		_ = bo.Unlock()
	}
	gl.DeleteBuffers(1, &bo.ID)
	bo.ID = 0
}

// NewVAO creates a new Vertex Array Object.
// It returns a pointer to a new VertexArrayObject.
func NewVAO() (*VertexArrayObject, error) {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)
	if vaoID == 0 {
		return nil, fmt.Errorf("failed to generate vertex array")
	}

	return &VertexArrayObject{
		ID: vaoID,
	}, nil
}

// Bind binds the vertex array object.
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object.
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array object and frees its resources.
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
	vao.ID = 0
}

// SetVertexAttribPointer sets up a vertex attribute pointer and enables the attribute.
// This configures how OpenGL will interpret vertex data for a specific attribute.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}

// DisableVertexAttrib turns off an attribute that the current format does not provide
func (vao *VertexArrayObject) DisableVertexAttrib(index uint32) {
	gl.DisableVertexAttribArray(index)
}
