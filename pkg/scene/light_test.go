package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultLighting(t *testing.T) {
	l := DefaultLighting()

	if l.Light.Diffuse != (mgl32.Vec4{0.5, 0.5, 0.5, 1}) {
		t.Errorf("Unexpected light diffuse %v", l.Light.Diffuse)
	}
	if l.Light.Direction != (mgl32.Vec3{-1, -0.3, -1}) {
		t.Errorf("Unexpected light direction %v", l.Light.Direction)
	}
	if l.Material.Diffuse != (mgl32.Vec4{1, 1, 1, 1}) || l.Material.Ambient != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("Unexpected material %+v", l.Material)
	}
	if !mgl32.FloatEqual(l.Ambient[0], 50.0/255.0) || l.Ambient[3] != 1 {
		t.Errorf("Unexpected ambient %v", l.Ambient)
	}
}

func TestLightingShade(t *testing.T) {
	l := DefaultLighting()
	ambient := float32(50.0 / 255.0)
	toLight := mgl32.Vec3{1, 0.3, 1}.Normalize()

	tests := []struct {
		name   string
		normal mgl32.Vec3
		want   float32
	}{
		{"facing the light", toLight, ambient + 0.5},
		{"facing away", toLight.Mul(-1), ambient},
		{"+Z face", mgl32.Vec3{0, 0, 1}, ambient + 0.5*toLight.Z()},
		{"-Y face", mgl32.Vec3{0, -1, 0}, ambient},
		{"unnormalized normal", mgl32.Vec3{0, 0, 5}, ambient + 0.5*toLight.Z()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := l.Shade(tt.normal)
			for i := 0; i < 3; i++ {
				if !mgl32.FloatEqualThreshold(c[i], tt.want, 1e-5) {
					t.Errorf("Channel %d: expected %v, got %v", i, tt.want, c[i])
				}
			}
			if c[3] != 1 {
				t.Errorf("Expected alpha 1, got %v", c[3])
			}
		})
	}
}

func TestLightingShadeClamps(t *testing.T) {
	l := DefaultLighting()
	l.Light.Diffuse = mgl32.Vec4{4, 4, 4, 1}

	c := l.Shade(l.Light.Direction.Mul(-1))
	for i := 0; i < 3; i++ {
		if c[i] != 1 {
			t.Errorf("Channel %d: expected clamp to 1, got %v", i, c[i])
		}
	}
}

func TestRGB8(t *testing.T) {
	if RGB8(255, 0, 255) != (mgl32.Vec4{1, 0, 1, 1}) {
		t.Errorf("Unexpected RGB8 result %v", RGB8(255, 0, 255))
	}
}
