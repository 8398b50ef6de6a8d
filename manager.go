package shapes

import (
	"fmt"
	"iter"
	"slices"

	"github.com/gogpu/wgpu/hal"
)

// Manager creates shapes and keeps them in registration order.
//
// Every shape is built against the manager's device and the shared color
// bind-group layout, so it can be drawn with the Context's pipeline. Shapes
// live until the manager is closed; there is no removal.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	device hal.Device
	queue  hal.Queue
	layout hal.BindGroupLayout

	shapes []Shape
}

func newManager(device hal.Device, queue hal.Queue, layout hal.BindGroupLayout) *Manager {
	return &Manager{device: device, queue: queue, layout: layout}
}

// Rectangle registers an axis-aligned rectangle of the given full size
// centered at position. Panics if size is not positive.
func (m *Manager) Rectangle(color Color, size Size, position Point) (*Rectangle, error) {
	if err := m.checkOpen(); err != nil {
		return nil, err
	}
	r, err := newRectangle(m.device, m.queue, m.layout, m.label("rectangle"), color, size, position)
	if err != nil {
		return nil, fmt.Errorf("rectangle: %w", err)
	}
	m.add(r)
	return r, nil
}

// Triangle registers a triangle with the given vertices.
func (m *Manager) Triangle(color Color, vertices [3]Point) (*Triangle, error) {
	if err := m.checkOpen(); err != nil {
		return nil, err
	}
	t, err := newTriangle(m.device, m.queue, m.layout, m.label("triangle"), color, vertices)
	if err != nil {
		return nil, fmt.Errorf("triangle: %w", err)
	}
	m.add(t)
	return t, nil
}

// Ellipse registers an ellipse with radii size centered at position,
// tessellated into DefaultEllipseSegments wedges.
func (m *Manager) Ellipse(color Color, size Size, position Point) (*Ellipse, error) {
	return m.EllipseSegments(color, size, position, DefaultEllipseSegments)
}

// EllipseSegments is like Ellipse with an explicit wedge count.
// Panics if size is not positive or segments is below 4.
func (m *Manager) EllipseSegments(color Color, size Size, position Point, segments int) (*Ellipse, error) {
	if err := m.checkOpen(); err != nil {
		return nil, err
	}
	e, err := newEllipse(m.device, m.queue, m.layout, m.label("ellipse"), color, size, position, segments)
	if err != nil {
		return nil, fmt.Errorf("ellipse: %w", err)
	}
	m.add(e)
	return e, nil
}

// All yields the registered shapes in registration order.
func (m *Manager) All() iter.Seq[Shape] {
	return slices.Values(m.shapes)
}

// Len returns the number of registered shapes.
func (m *Manager) Len() int { return len(m.shapes) }

// drawAll records every shape into pass in registration order and returns
// the number of draws issued.
func (m *Manager) drawAll(pass hal.RenderPassEncoder) int {
	for _, s := range m.shapes {
		s.Draw(pass)
	}
	return len(m.shapes)
}

// Close releases every shape's GPU resources. Further registrations fail
// with ErrClosed. Close is idempotent.
func (m *Manager) Close() {
	if m.device == nil {
		return
	}
	for _, s := range m.shapes {
		s.release()
	}
	m.shapes = nil
	m.device = nil
	m.queue = nil
	m.layout = nil
}

func (m *Manager) checkOpen() error {
	if m.device == nil {
		return ErrClosed
	}
	return nil
}

func (m *Manager) add(s Shape) {
	m.shapes = append(m.shapes, s)
	slogger().Debug("shape registered",
		"index", len(m.shapes)-1,
		"type", fmt.Sprintf("%T", s),
		"vertices", s.VertexCount())
}

func (m *Manager) label(kind string) string {
	return fmt.Sprintf("shape_%d_%s", len(m.shapes), kind)
}
