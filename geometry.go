package shapes

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// vertexStride is the byte size of one vertex (vec2<f32>).
const vertexStride = 8

// Point is a position in normalized device coordinates, where (-1, -1) is
// the bottom-left corner of the surface and (1, 1) the top-right.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair in normalized device units.
type Size struct {
	W, H float32
}

// Sz is a convenience function to create a Size.
func Sz(w, h float32) Size {
	return Size{W: w, H: h}
}

func (s Size) positive() bool {
	return s.W > 0 && s.H > 0
}

// RectangleVertices returns the six vertices of the axis-aligned box of the
// given size centered at position, as two counter-clockwise triangles:
// (bottom-left, bottom-right, top-right) and (bottom-left, top-right, top-left).
func RectangleVertices(position Point, size Size) []Point {
	hw, hh := size.W/2, size.H/2
	bl := Point{X: position.X - hw, Y: position.Y - hh}
	br := Point{X: position.X + hw, Y: position.Y - hh}
	tr := Point{X: position.X + hw, Y: position.Y + hh}
	tl := Point{X: position.X - hw, Y: position.Y + hh}
	return []Point{bl, br, tr, bl, tr, tl}
}

// EllipseVertices tessellates an ellipse with radii size.W and size.H around
// center into segments triangular wedges. Wedge i is (center, p(θi), p(θi+1))
// where θi = 2π·i/segments; the last wedge closes on θ0.
//
// The result always holds segments*3 vertices. EllipseVertices panics if
// segments is below 4.
func EllipseVertices(center Point, size Size, segments int) []Point {
	mustEllipseSegments(segments)
	verts := make([]Point, 0, segments*3)
	step := 2 * math32.Pi / float32(segments)
	at := func(i int) Point {
		theta := step * float32(i%segments)
		return Point{
			X: center.X + size.W*math32.Cos(theta),
			Y: center.Y + size.H*math32.Sin(theta),
		}
	}
	for i := 0; i < segments; i++ {
		verts = append(verts, center, at(i), at(i+1))
	}
	return verts
}

// encodeVertices packs points as tightly packed little-endian vec2<f32>.
func encodeVertices(points []Point) []byte {
	buf := make([]byte, len(points)*vertexStride)
	for i, p := range points {
		off := i * vertexStride
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(p.X))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(p.Y))
	}
	return buf
}

// minEllipseSegments is the smallest tessellation that still encloses area
// on both axes.
const minEllipseSegments = 4

func mustEllipseSegments(segments int) {
	if segments < minEllipseSegments {
		panic(fmt.Sprintf("shapes: ellipse needs at least %d segments, got %d", minEllipseSegments, segments))
	}
}

func mustPositiveSize(kind string, size Size) {
	if !size.positive() {
		panic(fmt.Sprintf("shapes: %s size must be positive, got %gx%g", kind, size.W, size.H))
	}
}
