package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-spincube/pkg/scene"
)

var errInjected = errors.New("injected failure")

type fakeBuffer struct {
	name     string
	size     int
	released int
	dev      *fakeDevice
}

func (b *fakeBuffer) Size() int { return b.size }

func (b *fakeBuffer) Release() error {
	b.released++
	b.dev.record("release " + b.name)
	return nil
}

// fakeDevice records every call in order and can fail any of them by name
type fakeDevice struct {
	calls    []string
	failOn   map[string]bool
	sizeSkew int

	vb *fakeBuffer
	ib *fakeBuffer

	vertices []scene.Vertex
	indices  []uint16
	lighting []scene.Lighting
	draws    []Transforms
	drawCall []DrawCall
	stride   int
	format   scene.VertexFormat
	released int
	inScene  bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{failOn: make(map[string]bool)}
}

func (d *fakeDevice) record(call string) {
	d.calls = append(d.calls, call)
}

func (d *fakeDevice) step(call string) error {
	d.record(call)
	if d.failOn[call] {
		return fmt.Errorf("%s: %w", call, errInjected)
	}
	return nil
}

func (d *fakeDevice) CreateVertexBuffer(vertices []scene.Vertex) (VertexBuffer, error) {
	if err := d.step("create vertex buffer"); err != nil {
		return nil, err
	}
	d.vertices = append([]scene.Vertex(nil), vertices...)
	d.vb = &fakeBuffer{name: "vertex buffer", size: len(vertices)*scene.VertexStride + d.sizeSkew, dev: d}
	return d.vb, nil
}

func (d *fakeDevice) CreateIndexBuffer(indices []uint16) (IndexBuffer, error) {
	if err := d.step("create index buffer"); err != nil {
		return nil, err
	}
	d.indices = append([]uint16(nil), indices...)
	d.ib = &fakeBuffer{name: "index buffer", size: len(indices) * scene.IndexStride, dev: d}
	return d.ib, nil
}

func (d *fakeDevice) SetLighting(lighting scene.Lighting) error {
	d.lighting = append(d.lighting, lighting)
	return d.step("set lighting")
}

func (d *fakeDevice) Clear(color mgl32.Vec4, depth float32) error {
	if color != (mgl32.Vec4{0, 0, 0, 1}) || depth != 1 {
		return fmt.Errorf("unexpected clear %v %v", color, depth)
	}
	return d.step("clear")
}

func (d *fakeDevice) BeginScene() error {
	if err := d.step("begin scene"); err != nil {
		return err
	}
	d.inScene = true
	return nil
}

func (d *fakeDevice) SetVertexFormat(format scene.VertexFormat) error {
	d.format = format
	return d.step("set vertex format")
}

func (d *fakeDevice) SetStreamSource(vb VertexBuffer, stride int) error {
	if vb != d.vb {
		return errors.New("unknown vertex buffer")
	}
	d.stride = stride
	return d.step("set stream source")
}

func (d *fakeDevice) SetIndices(ib IndexBuffer) error {
	if ib != d.ib {
		return errors.New("unknown index buffer")
	}
	return d.step("set indices")
}

func (d *fakeDevice) DrawIndexed(tf Transforms, call DrawCall) error {
	if !d.inScene {
		return errors.New("draw outside scene")
	}
	if err := d.step("draw"); err != nil {
		return err
	}
	d.draws = append(d.draws, tf)
	d.drawCall = append(d.drawCall, call)
	return nil
}

func (d *fakeDevice) EndScene() error {
	d.inScene = false
	return d.step("end scene")
}

func (d *fakeDevice) Present() error {
	return d.step("present")
}

func (d *fakeDevice) Release() error {
	d.released++
	d.record("release device")
	return nil
}

func (d *fakeDevice) count(call string) int {
	n := 0
	for _, c := range d.calls {
		if c == call {
			n++
		}
	}
	return n
}

// fakeSurface asks to close after a fixed number of polls
type fakeSurface struct {
	dev        *fakeDevice
	closeAfter int
	polls      int
}

func (s *fakeSurface) PollEvents() {
	s.polls++
	s.dev.record("poll")
}

func (s *fakeSurface) ShouldClose() bool {
	return s.polls > s.closeAfter
}
