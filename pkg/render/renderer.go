package render

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-spincube/pkg/config"
	"github.com/leterax/go-spincube/pkg/scene"
)

// CubeDrawCall draws the whole cube: 24 vertices, 12 triangles, 36 indices
var CubeDrawCall = DrawCall{
	BaseVertex:     0,
	MinIndex:       0,
	NumVertices:    scene.CubeVertexCount,
	StartIndex:     0,
	PrimitiveCount: scene.CubeTriangles,
}

// Renderer owns the cube's GPU buffers and the animation state, and drives
// the device once per frame.
type Renderer struct {
	device   Device
	camera   *Camera
	anim     *scene.Oscillator
	rotation config.Rotation

	// Cube mesh data
	vertexBuffer VertexBuffer
	indexBuffer  IndexBuffer

	// Frame counters
	frames  uint64
	skipped uint64

	isClosed bool
}

// NewRenderer uploads the cube, configures lighting and prepares the camera.
// The renderer takes ownership of device: on failure every buffer created so
// far and the device itself are released before returning.
func NewRenderer(device Device, cfg config.Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		_ = device.Release()
		return nil, err
	}

	anim, err := scene.NewOscillator(cfg.Animation.Step, cfg.Animation.Bound)
	if err != nil {
		_ = device.Release()
		return nil, fmt.Errorf("failed to create animation: %w", err)
	}

	r := &Renderer{
		device:   device,
		camera:   NewCameraFromConfig(cfg),
		anim:     anim,
		rotation: cfg.Animation.Rotation,
	}

	if err := r.initGraphics(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to initialize cube mesh: %w", err), r.Close())
	}

	if err := device.SetLighting(cfg.Lighting()); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to set up lighting: %w", err), r.Close())
	}

	return r, nil
}

// initGraphics creates the vertex and index buffers and checks their sizes
func (r *Renderer) initGraphics() error {
	vertices := scene.CubeVertices()
	vb, err := r.device.CreateVertexBuffer(vertices)
	if err != nil {
		return fmt.Errorf("failed to create vertex buffer: %w", err)
	}
	r.vertexBuffer = vb

	if want := len(vertices) * scene.VertexStride; vb.Size() != want {
		return fmt.Errorf("%w: vertex buffer holds %d bytes, expected %d", ErrBufferSize, vb.Size(), want)
	}

	indices := scene.CubeIndices()
	ib, err := r.device.CreateIndexBuffer(indices)
	if err != nil {
		return fmt.Errorf("failed to create index buffer: %w", err)
	}
	r.indexBuffer = ib

	if want := len(indices) * scene.IndexStride; ib.Size() != want {
		return fmt.Errorf("%w: index buffer holds %d bytes, expected %d", ErrBufferSize, ib.Size(), want)
	}

	return nil
}

// Frame renders and presents one frame. If a device call fails after the
// scene was begun, the scene is still ended but nothing is presented.
func (r *Renderer) Frame() error {
	if r.isClosed {
		return ErrClosed
	}

	if err := r.device.Clear(ClearColor, ClearDepth); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	if err := r.device.BeginScene(); err != nil {
		return fmt.Errorf("begin scene: %w", err)
	}

	drawErr := r.drawScene()

	if err := r.device.EndScene(); err != nil {
		return errors.Join(drawErr, fmt.Errorf("end scene: %w", err))
	}
	if drawErr != nil {
		return drawErr
	}

	if err := r.device.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	r.frames++
	return nil
}

// drawScene issues everything between BeginScene and EndScene
func (r *Renderer) drawScene() error {
	if err := r.device.SetVertexFormat(scene.FormatPositionNormal); err != nil {
		return fmt.Errorf("set vertex format: %w", err)
	}

	tf := Transforms{
		View:       r.camera.ViewMatrix(),
		Projection: r.camera.ProjectionMatrix(),
	}

	r.anim.Tick()
	tf.World = WorldMatrix(r.anim, r.rotation)

	if err := r.device.SetStreamSource(r.vertexBuffer, scene.VertexStride); err != nil {
		return fmt.Errorf("set stream source: %w", err)
	}
	if err := r.device.SetIndices(r.indexBuffer); err != nil {
		return fmt.Errorf("set indices: %w", err)
	}

	if err := r.device.DrawIndexed(tf, CubeDrawCall); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

// Run renders until the surface asks to close, then shuts the renderer down.
// Failed frames are logged and skipped.
func (r *Renderer) Run(surface Surface) {
	for {
		surface.PollEvents()
		if surface.ShouldClose() {
			break
		}

		if err := r.Frame(); err != nil {
			if errors.Is(err, ErrClosed) {
				break
			}
			r.skipped++
			log.Printf("Frame %d skipped: %v", r.frames+r.skipped, err)
		}
	}

	if err := r.Close(); err != nil {
		log.Printf("Shutdown: %v", err)
	}
	log.Printf("Rendered %d frames, skipped %d", r.frames, r.skipped)
}

// Close releases the vertex buffer, the index buffer and then the device.
// Only the first call does anything.
func (r *Renderer) Close() error {
	if r.isClosed {
		return nil
	}
	r.isClosed = true

	var errs []error

	// Clean up GPU resources before the device that owns them
	if r.vertexBuffer != nil {
		if err := r.vertexBuffer.Release(); err != nil {
			errs = append(errs, fmt.Errorf("release vertex buffer: %w", err))
		}
		r.vertexBuffer = nil
	}
	if r.indexBuffer != nil {
		if err := r.indexBuffer.Release(); err != nil {
			errs = append(errs, fmt.Errorf("release index buffer: %w", err))
		}
		r.indexBuffer = nil
	}

	if err := r.device.Release(); err != nil {
		errs = append(errs, fmt.Errorf("release device: %w", err))
	}

	return errors.Join(errs...)
}

// Frames returns the number of presented frames
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Skipped returns the number of frames that failed
func (r *Renderer) Skipped() uint64 {
	return r.skipped
}

// Angle returns the current yaw angle of the cube
func (r *Renderer) Angle() float32 {
	return r.anim.Angle()
}

// World returns the world transform for the current animation state
func (r *Renderer) World() mgl32.Mat4 {
	return WorldMatrix(r.anim, r.rotation)
}
