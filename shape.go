package shapes

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Shape is a primitive that can record itself into an active render pass.
//
// Draw sets bind group 0 to the shape's color, sets vertex buffer slot 0 to
// the shape's geometry and issues one non-indexed draw. It never binds a
// pipeline; the caller binds the shared pipeline once per pass.
//
// Shapes are created through a [Manager]; the interface is sealed.
type Shape interface {
	Draw(pass hal.RenderPassEncoder)

	// VertexCount returns the number of vertices submitted by Draw.
	VertexCount() uint32

	// Color returns the current fill color.
	Color() Color

	release()
}

// shapeResources holds the GPU resources owned by one shape: a vertex buffer
// sized at creation and a 16-byte color uniform with its bind group.
type shapeResources struct {
	device hal.Device
	queue  hal.Queue

	vertBuf   hal.Buffer
	vertCount uint32

	colorBuf  hal.Buffer
	bindGroup hal.BindGroup
	color     Color
}

// newShapeResources uploads the vertices and color and binds the color
// against layout. On failure everything created so far is released.
func newShapeResources(device hal.Device, queue hal.Queue, layout hal.BindGroupLayout,
	label string, verts []Point, color Color) (*shapeResources, error) {
	vertBuf, err := createAndUploadBuffer(device, queue, label+"_verts", encodeVertices(verts),
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	colorBuf, err := createAndUploadBuffer(device, queue, label+"_color", color.Bytes(),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		device.DestroyBuffer(vertBuf)
		return nil, fmt.Errorf("create color buffer: %w", err)
	}

	bindGroup, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  label + "_bind",
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: colorBuf.NativeHandle(), Offset: 0, Size: colorUniformSize,
			}},
		},
	})
	if err != nil {
		device.DestroyBuffer(colorBuf)
		device.DestroyBuffer(vertBuf)
		return nil, fmt.Errorf("create bind group: %w", err)
	}

	return &shapeResources{
		device:    device,
		queue:     queue,
		vertBuf:   vertBuf,
		vertCount: uint32(len(verts)), //nolint:gosec // vertex count fits uint32
		colorBuf:  colorBuf,
		bindGroup: bindGroup,
		color:     color,
	}, nil
}

// Draw records the shape into pass.
func (r *shapeResources) Draw(pass hal.RenderPassEncoder) {
	pass.SetBindGroup(0, r.bindGroup, nil)
	pass.SetVertexBuffer(0, r.vertBuf, 0)
	pass.Draw(r.vertCount, 1, 0, 0)
}

// VertexCount returns the number of vertices submitted by Draw.
func (r *shapeResources) VertexCount() uint32 { return r.vertCount }

// Color returns the current fill color.
func (r *shapeResources) Color() Color { return r.color }

// SetColor overwrites the color uniform. Takes effect on the next frame.
// Returns ErrClosed once the shape's manager has been closed.
func (r *shapeResources) SetColor(c Color) error {
	if r.device == nil {
		return ErrClosed
	}
	if err := r.queue.WriteBuffer(r.colorBuf, 0, c.Bytes()); err != nil {
		return fmt.Errorf("write color: %w", err)
	}
	r.color = c
	return nil
}

// writeVertices overwrites the vertex buffer in place.
// Panics if verts does not match the allocated vertex count.
func (r *shapeResources) writeVertices(verts []Point) error {
	if uint32(len(verts)) != r.vertCount { //nolint:gosec // vertex count fits uint32
		panic(fmt.Sprintf("shapes: vertex count changed from %d to %d", r.vertCount, len(verts)))
	}
	if r.device == nil {
		return ErrClosed
	}
	if err := r.queue.WriteBuffer(r.vertBuf, 0, encodeVertices(verts)); err != nil {
		return fmt.Errorf("write vertices: %w", err)
	}
	return nil
}

func (r *shapeResources) release() {
	if r.device == nil {
		return
	}
	if r.bindGroup != nil {
		r.device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	if r.colorBuf != nil {
		r.device.DestroyBuffer(r.colorBuf)
		r.colorBuf = nil
	}
	if r.vertBuf != nil {
		r.device.DestroyBuffer(r.vertBuf)
		r.vertBuf = nil
	}
	r.device = nil
	r.queue = nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func createAndUploadBuffer(device hal.Device, queue hal.Queue, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := queue.WriteBuffer(buf, 0, data); err != nil {
		device.DestroyBuffer(buf)
		return nil, fmt.Errorf("upload %s: %w", label, err)
	}
	return buf, nil
}
