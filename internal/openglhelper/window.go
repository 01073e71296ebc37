package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window handles GLFW window creation and management.
// It is the root of every GL object: closing it terminates GLFW.
type Window struct {
	glfwWindow *glfw.Window
}

// NewWindow creates a fixed-size window with an OpenGL context made current
// on the calling thread. The default framebuffer has 8 bits per color channel
// and a 16-bit depth buffer.
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.DepthBits, 16)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	// Create window
	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1) // Enable vsync
	} else {
		glfw.SwapInterval(0) // Disable vsync
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfwWindow.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Print OpenGL version
	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	return &Window{glfwWindow: glfwWindow}, nil
}

// Clear clears the color buffer to color and the depth buffer to depth
func (w *Window) Clear(color mgl32.Vec4, depth float32) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.ClearDepth(float64(depth))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events without blocking
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// Close destroys the window and terminates GLFW.
// GL objects created on its context must be deleted before this.
func (w *Window) Close() {
	if w.glfwWindow != nil {
		w.glfwWindow.Destroy()
		w.glfwWindow = nil
	}
	glfw.Terminate()
}

// FramebufferSize returns the size of the default framebuffer in pixels.
// It can differ from the requested window size on high-DPI displays.
func (w *Window) FramebufferSize() (width, height int) {
	return w.glfwWindow.GetFramebufferSize()
}
