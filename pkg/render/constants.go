package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ClearColor is the opaque black the back buffer is cleared to
var ClearColor = mgl32.Vec4{0, 0, 0, 1}

// ClearDepth is the farthest depth value
const ClearDepth = 1.0
