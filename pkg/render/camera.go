package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-spincube/pkg/config"
	"github.com/leterax/go-spincube/pkg/scene"
)

// Camera is a fixed look-at camera with a perspective projection
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	target   mgl32.Vec3
	worldUp  mgl32.Vec3

	// Projection
	fov        float32 // degrees
	near       float32
	far        float32
	width      int
	height     int
	projection mgl32.Mat4
}

// NewCameraFromConfig creates a camera from the camera and window sections
func NewCameraFromConfig(cfg config.Config) *Camera {
	camera := &Camera{
		position: cfg.Camera.Eye,
		target:   cfg.Camera.Target,
		worldUp:  cfg.Camera.Up,
		fov:      cfg.Camera.FOV,
		near:     cfg.Camera.Near,
		far:      cfg.Camera.Far,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}

	camera.updateProjectionMatrix()

	return camera
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.Aspect(), c.near, c.far)
}

// ViewMatrix returns the view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.worldUp)
}

// ProjectionMatrix returns the projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the eye position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Aspect returns the width / height ratio used by the projection
func (c *Camera) Aspect() float32 {
	return float32(c.width) / float32(c.height)
}

// WorldMatrix builds the cube's world transform from the animation state
func WorldMatrix(osc *scene.Oscillator, rotation config.Rotation) mgl32.Mat4 {
	if rotation == config.RotateYawPitchRoll {
		return YawPitchRoll(osc.Yaw(), osc.Pitch(), osc.Angle())
	}
	return mgl32.HomogRotate3DY(osc.Angle())
}

// YawPitchRoll rotates by roll about Z, then pitch about X, then yaw about Y
func YawPitchRoll(yaw, pitch, roll float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(yaw).
		Mul4(mgl32.HomogRotate3DX(pitch)).
		Mul4(mgl32.HomogRotate3DZ(roll))
}
