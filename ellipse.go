package shapes

import "github.com/gogpu/wgpu/hal"

// DefaultEllipseSegments is the number of wedges used by Manager.Ellipse.
const DefaultEllipseSegments = 64

// Ellipse is an axis-aligned ellipse tessellated into a triangle fan of
// segments wedges around its center. Its size holds the two radii.
//
// The vertex buffer is allocated once for segments*3 vertices; SetSize
// regenerates the geometry with the same segment count and overwrites it.
type Ellipse struct {
	*shapeResources
	position Point
	size     Size
	segments int
}

func newEllipse(device hal.Device, queue hal.Queue, layout hal.BindGroupLayout,
	label string, color Color, size Size, position Point, segments int) (*Ellipse, error) {
	mustPositiveSize("ellipse", size)
	res, err := newShapeResources(device, queue, layout, label, EllipseVertices(position, size, segments), color)
	if err != nil {
		return nil, err
	}
	return &Ellipse{shapeResources: res, position: position, size: size, segments: segments}, nil
}

// Position returns the center of the ellipse.
func (e *Ellipse) Position() Point { return e.position }

// Size returns the horizontal and vertical radii.
func (e *Ellipse) Size() Size { return e.size }

// Segments returns the number of wedges.
func (e *Ellipse) Segments() int { return e.segments }

// SetSize changes the radii, keeping the center and segment count.
// Panics if size is not positive.
func (e *Ellipse) SetSize(size Size) error {
	mustPositiveSize("ellipse", size)
	if err := e.writeVertices(EllipseVertices(e.position, size, e.segments)); err != nil {
		return err
	}
	e.size = size
	return nil
}

// SetPosition moves the ellipse center.
func (e *Ellipse) SetPosition(position Point) error {
	if err := e.writeVertices(EllipseVertices(position, e.size, e.segments)); err != nil {
		return err
	}
	e.position = position
	return nil
}
