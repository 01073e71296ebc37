package scene

import "github.com/go-gl/mathgl/mgl32"

// DirectionalLight lights every surface from one direction, with no position.
// Direction does not have to be normalized; the device does that.
type DirectionalLight struct {
	Diffuse   mgl32.Vec4
	Direction mgl32.Vec3
}

// Material is applied uniformly to the whole mesh
type Material struct {
	Diffuse mgl32.Vec4
	Ambient mgl32.Vec4
}

// Lighting is everything the device needs to shade the cube.
// It is configured once before the first frame and never changed.
type Lighting struct {
	Light    DirectionalLight
	Material Material
	Ambient  mgl32.Vec4 // global ambient level
}

// DefaultLighting returns the demo's light, material and ambient level
func DefaultLighting() Lighting {
	return Lighting{
		Light: DirectionalLight{
			Diffuse:   mgl32.Vec4{0.5, 0.5, 0.5, 1.0},
			Direction: mgl32.Vec3{-1.0, -0.3, -1.0},
		},
		Material: Material{
			Diffuse: mgl32.Vec4{1, 1, 1, 1},
			Ambient: mgl32.Vec4{1, 1, 1, 1},
		},
		Ambient: RGB8(50, 50, 50),
	}
}

// RGB8 converts an 8-bit per channel color to an opaque Vec4
func RGB8(r, g, b uint8) mgl32.Vec4 {
	return mgl32.Vec4{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// Shade evaluates the lighting model for a surface normal that is already in
// world space. It is the CPU mirror of the fragment shader and clamps each
// channel to [0,1].
func (l Lighting) Shade(normal mgl32.Vec3) mgl32.Vec4 {
	toLight := l.Light.Direction.Mul(-1)
	if toLight.Len() > 0 {
		toLight = toLight.Normalize()
	}
	n := normal
	if n.Len() > 0 {
		n = n.Normalize()
	}
	lambert := max(n.Dot(toLight), 0)

	var out mgl32.Vec4
	for i := 0; i < 3; i++ {
		c := l.Material.Ambient[i]*l.Ambient[i] + l.Material.Diffuse[i]*l.Light.Diffuse[i]*lambert
		out[i] = mgl32.Clamp(c, 0, 1)
	}
	out[3] = l.Material.Diffuse[3]
	return out
}
