// Package scene holds the CPU-side description of the spinning cube demo:
// the cube geometry, the lighting values and the animation state.
// Nothing in here touches OpenGL, so it can be exercised without a context.
package scene

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a single cube vertex: position followed by normal
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// VertexFormat describes which attributes a vertex carries
type VertexFormat uint32

const (
	// FormatPosition marks a 3-float position attribute
	FormatPosition VertexFormat = 1 << iota
	// FormatNormal marks a 3-float normal attribute
	FormatNormal
)

// FormatPositionNormal is the layout of Vertex
const FormatPositionNormal = FormatPosition | FormatNormal

// Has reports whether all attributes in other are present in f
func (f VertexFormat) Has(other VertexFormat) bool {
	return f&other == other
}

// Cube geometry constants
const (
	CubeHalfExtent  = 3.0
	CubeFaces       = 6
	VerticesPerFace = 4
	CubeVertexCount = CubeFaces * VerticesPerFace // 24
	CubeIndexCount  = CubeFaces * 6               // 36
	CubeTriangles   = CubeIndexCount / 3          // 12
)

// Strides and buffer sizes in bytes
const (
	VertexStride     = int(unsafe.Sizeof(Vertex{}))
	IndexStride      = int(unsafe.Sizeof(uint16(0)))
	VertexBufferSize = CubeVertexCount * VertexStride
	IndexBufferSize  = CubeIndexCount * IndexStride
)

const h = CubeHalfExtent

var cubeVertices = [CubeVertexCount]Vertex{
	// +Z
	{mgl32.Vec3{-h, -h, h}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{h, -h, h}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{-h, h, h}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{h, h, h}, mgl32.Vec3{0, 0, 1}},

	// -Z
	{mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{-h, h, -h}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{h, -h, -h}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{h, h, -h}, mgl32.Vec3{0, 0, -1}},

	// +Y
	{mgl32.Vec3{-h, h, -h}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-h, h, h}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{h, h, -h}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{h, h, h}, mgl32.Vec3{0, 1, 0}},

	// -Y
	{mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{h, -h, -h}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{-h, -h, h}, mgl32.Vec3{0, -1, 0}},
	{mgl32.Vec3{h, -h, h}, mgl32.Vec3{0, -1, 0}},

	// +X
	{mgl32.Vec3{h, -h, -h}, mgl32.Vec3{1, 0, 0}},
	{mgl32.Vec3{h, h, -h}, mgl32.Vec3{1, 0, 0}},
	{mgl32.Vec3{h, -h, h}, mgl32.Vec3{1, 0, 0}},
	{mgl32.Vec3{h, h, h}, mgl32.Vec3{1, 0, 0}},

	// -X
	{mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-1, 0, 0}},
	{mgl32.Vec3{-h, -h, h}, mgl32.Vec3{-1, 0, 0}},
	{mgl32.Vec3{-h, h, -h}, mgl32.Vec3{-1, 0, 0}},
	{mgl32.Vec3{-h, h, h}, mgl32.Vec3{-1, 0, 0}},
}

// CubeVertices returns a copy of the 24 cube vertices, four per face
func CubeVertices() []Vertex {
	out := make([]Vertex, CubeVertexCount)
	copy(out, cubeVertices[:])
	return out
}

// CubeIndices returns the 36 indices of the cube's 12 triangles.
// Every face is laid out as a 2x2 strip (v0 v1 / v2 v3), so both of its
// triangles come out counter-clockwise when seen from outside.
func CubeIndices() []uint16 {
	indices := make([]uint16, 0, CubeIndexCount)
	for face := 0; face < CubeFaces; face++ {
		base := uint16(face * VerticesPerFace)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+1, base+3,
		)
	}
	return indices
}

// FaceNormal returns the normal shared by the vertices of the given face
func FaceNormal(face int) mgl32.Vec3 {
	return cubeVertices[face*VerticesPerFace].Normal
}
