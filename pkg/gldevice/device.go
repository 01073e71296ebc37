// Package gldevice implements render.Device on an OpenGL 4.6 core context.
package gldevice

import (
	_ "embed"
	"errors"
	"fmt"
	"unsafe"

	"openglhelper"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-spincube/pkg/render"
	"github.com/leterax/go-spincube/pkg/scene"
)

//go:embed shaders/vert.glsl
var vertexShaderSource string

//go:embed shaders/frag.glsl
var fragmentShaderSource string

// Shader attribute locations
const (
	attribPosition uint32 = 0
	attribNormal   uint32 = 1
)

// glBuffer adapts an openglhelper buffer to render.VertexBuffer / render.IndexBuffer
type glBuffer struct {
	bo *openglhelper.BufferObject
}

func (b *glBuffer) Size() int {
	return b.bo.Size
}

func (b *glBuffer) Release() error {
	if b.bo == nil {
		return nil
	}
	b.bo.Delete()
	b.bo = nil
	return openglhelper.CheckError("glDeleteBuffers")
}

// Device implements render.Device. Lighting is done by a small shader that
// reproduces one directional light, a uniform material and a global ambient term.
type Device struct {
	window *openglhelper.Window
	shader *openglhelper.Shader
	vao    *openglhelper.VertexArrayObject

	format  scene.VertexFormat
	inScene bool
}

// New compiles the lighting shader and sets up depth testing and
// back-face culling on the window's context.
func New(window *openglhelper.Window) (*Device, error) {
	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	vao, err := openglhelper.NewVAO()
	if err != nil {
		shader.Delete()
		return nil, err
	}

	// Configure global OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	fbWidth, fbHeight := window.FramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	if err := openglhelper.CheckError("device setup"); err != nil {
		vao.Delete()
		shader.Delete()
		return nil, err
	}

	return &Device{
		window: window,
		shader: shader,
		vao:    vao,
	}, nil
}

// CreateVertexBuffer uploads vertices into a static array buffer
func (d *Device) CreateVertexBuffer(vertices []scene.Vertex) (render.VertexBuffer, error) {
	if len(vertices) == 0 {
		return nil, errors.New("no vertices")
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), len(vertices)*scene.VertexStride)
	bo, err := openglhelper.NewStaticBuffer(gl.ARRAY_BUFFER, data)
	if err != nil {
		return nil, err
	}
	bo.Unbind()

	return &glBuffer{bo: bo}, nil
}

// CreateIndexBuffer uploads 16-bit indices into a static element buffer
func (d *Device) CreateIndexBuffer(indices []uint16) (render.IndexBuffer, error) {
	if len(indices) == 0 {
		return nil, errors.New("no indices")
	}

	// The element binding is VAO state, so a core context needs a VAO bound
	// while the buffer is filled. SetIndices rebinds it every frame.
	d.vao.Bind()
	defer d.vao.Unbind()

	data := unsafe.Slice((*byte)(unsafe.Pointer(&indices[0])), len(indices)*scene.IndexStride)
	bo, err := openglhelper.NewStaticBuffer(gl.ELEMENT_ARRAY_BUFFER, data)
	if err != nil {
		return nil, err
	}

	return &glBuffer{bo: bo}, nil
}

// SetLighting writes the light, material and ambient uniforms. The program
// keeps them until it is deleted.
func (d *Device) SetLighting(lighting scene.Lighting) error {
	d.shader.Use()
	d.shader.SetVec4("lightDiffuse", lighting.Light.Diffuse)
	d.shader.SetVec3("lightDirection", lighting.Light.Direction)
	d.shader.SetVec4("materialDiffuse", lighting.Material.Diffuse)
	d.shader.SetVec4("materialAmbient", lighting.Material.Ambient)
	d.shader.SetVec4("ambient", lighting.Ambient)
	return openglhelper.CheckError("set lighting")
}

func (d *Device) Clear(color mgl32.Vec4, depth float32) error {
	d.window.Clear(color, depth)
	return openglhelper.CheckError("glClear")
}

func (d *Device) BeginScene() error {
	if d.inScene {
		return errors.New("BeginScene called twice")
	}
	d.inScene = true
	return nil
}

// SetVertexFormat records the attributes carried by the next stream source
func (d *Device) SetVertexFormat(format scene.VertexFormat) error {
	if !format.Has(scene.FormatPosition) {
		return fmt.Errorf("vertex format %b has no position", format)
	}
	d.format = format
	d.vao.Bind()
	return nil
}

// SetStreamSource binds vb and points the attributes of the current format into it
func (d *Device) SetStreamSource(vb render.VertexBuffer, stride int) error {
	buf, ok := vb.(*glBuffer)
	if !ok || buf.bo == nil {
		return errors.New("not a live GL vertex buffer")
	}

	buf.bo.Bind()

	attribs := []openglhelper.VertexAttrib{
		{Location: attribPosition, Components: 3, Offset: 0},
	}
	var disabled []uint32
	if d.format.Has(scene.FormatNormal) {
		attribs = append(attribs, openglhelper.VertexAttrib{
			Location:   attribNormal,
			Components: 3,
			Offset:     int(unsafe.Offsetof(scene.Vertex{}.Normal)),
		})
	} else {
		disabled = append(disabled, attribNormal)
	}
	d.vao.SetLayout(int32(stride), attribs, disabled...)

	return openglhelper.CheckError("set stream source")
}

func (d *Device) SetIndices(ib render.IndexBuffer) error {
	buf, ok := ib.(*glBuffer)
	if !ok || buf.bo == nil {
		return errors.New("not a live GL index buffer")
	}
	d.vao.Bind()
	buf.bo.Bind()
	return nil
}

// DrawIndexed uploads the transforms and draws an indexed triangle list
func (d *Device) DrawIndexed(tf render.Transforms, call render.DrawCall) error {
	if !d.inScene {
		return errors.New("draw outside of BeginScene/EndScene")
	}

	d.shader.Use()
	d.shader.SetMat4("model", tf.World)
	d.shader.SetMat4("view", tf.View)
	d.shader.SetMat4("projection", tf.Projection)

	openglhelper.DrawIndexedTriangles(call.StartIndex, call.IndexCount(), call.BaseVertex)

	return openglhelper.CheckError("glDrawElementsBaseVertex")
}

func (d *Device) EndScene() error {
	if !d.inScene {
		return errors.New("EndScene without BeginScene")
	}
	d.inScene = false
	d.vao.Unbind()
	return nil
}

// Present swaps the back buffer onto the window
func (d *Device) Present() error {
	d.window.SwapBuffers()
	return nil
}

// Release deletes the vertex array and the shader program
func (d *Device) Release() error {
	if d.vao != nil {
		d.vao.Delete()
		d.vao = nil
	}
	if d.shader != nil {
		d.shader.Delete()
		d.shader = nil
	}
	return openglhelper.CheckError("release device")
}

var _ render.Device = (*Device)(nil)
