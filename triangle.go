package shapes

import "github.com/gogpu/wgpu/hal"

// Triangle is an arbitrary triangle given by its three vertices.
type Triangle struct {
	*shapeResources
	vertices [3]Point
}

func newTriangle(device hal.Device, queue hal.Queue, layout hal.BindGroupLayout,
	label string, color Color, vertices [3]Point) (*Triangle, error) {
	res, err := newShapeResources(device, queue, layout, label, vertices[:], color)
	if err != nil {
		return nil, err
	}
	return &Triangle{shapeResources: res, vertices: vertices}, nil
}

// Vertices returns the triangle's corners in upload order.
func (t *Triangle) Vertices() [3]Point { return t.vertices }

// SetVertices replaces the triangle's corners.
func (t *Triangle) SetVertices(vertices [3]Point) error {
	if err := t.writeVertices(vertices[:]); err != nil {
		return err
	}
	t.vertices = vertices
	return nil
}
