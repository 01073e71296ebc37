package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// VertexAttrib describes one float attribute inside an interleaved vertex
type VertexAttrib struct {
	Location   uint32 // Shader attribute location
	Components int32  // Number of floats
	Offset     int    // Byte offset from the start of the vertex
}

// SetLayout points the VAO at the currently bound array buffer.
// Attributes in disabled are switched off so stale pointers from a previous
// layout are never read.
func (vao *VertexArrayObject) SetLayout(stride int32, attribs []VertexAttrib, disabled ...uint32) {
	vao.Bind()
	for _, a := range attribs {
		vao.SetVertexAttribPointer(a.Location, a.Components, gl.FLOAT, false, stride, a.Offset)
	}
	for _, loc := range disabled {
		vao.DisableVertexAttrib(loc)
	}
}

// DrawIndexedTriangles draws count 16-bit indices from the bound element
// buffer, starting at firstIndex. baseVertex is added to every index.
func DrawIndexedTriangles(firstIndex, count, baseVertex int) {
	const indexSize = 2 // GL_UNSIGNED_SHORT
	gl.DrawElementsBaseVertex(gl.TRIANGLES, int32(count), gl.UNSIGNED_SHORT, gl.PtrOffset(firstIndex*indexSize), int32(baseVertex))
}
