package shapes

import "github.com/gogpu/wgpu/hal"

// Rectangle is an axis-aligned box drawn as two triangles.
type Rectangle struct {
	*shapeResources
	position Point
	size     Size
}

func newRectangle(device hal.Device, queue hal.Queue, layout hal.BindGroupLayout,
	label string, color Color, size Size, position Point) (*Rectangle, error) {
	mustPositiveSize("rectangle", size)
	res, err := newShapeResources(device, queue, layout, label, RectangleVertices(position, size), color)
	if err != nil {
		return nil, err
	}
	return &Rectangle{shapeResources: res, position: position, size: size}, nil
}

// Position returns the center of the rectangle.
func (r *Rectangle) Position() Point { return r.position }

// Size returns the full width and height of the rectangle.
func (r *Rectangle) Size() Size { return r.size }

// SetBounds moves and resizes the rectangle, rewriting its vertex buffer.
// Panics if size is not positive.
func (r *Rectangle) SetBounds(size Size, position Point) error {
	mustPositiveSize("rectangle", size)
	if err := r.writeVertices(RectangleVertices(position, size)); err != nil {
		return err
	}
	r.size, r.position = size, position
	return nil
}
