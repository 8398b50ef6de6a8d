package shapes

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/chewxy/math32"
)

// triangleArea returns the signed area of a triangle (positive when CCW).
func triangleArea(a, b, c Point) float32 {
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}

func TestRectangleVertices_CoversBox(t *testing.T) {
	tests := []struct {
		name     string
		position Point
		size     Size
	}{
		{"unit at origin", Pt(0, 0), Sz(1, 1)},
		{"full surface", Pt(0, 0), Sz(2, 2)},
		{"offset", Pt(0.25, -0.5), Sz(0.5, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verts := RectangleVertices(tt.position, tt.size)
			if len(verts) != 6 {
				t.Fatalf("len = %d, want 6", len(verts))
			}

			minX, maxX := tt.position.X-tt.size.W/2, tt.position.X+tt.size.W/2
			minY, maxY := tt.position.Y-tt.size.H/2, tt.position.Y+tt.size.H/2
			for i, v := range verts {
				if v.X != minX && v.X != maxX {
					t.Errorf("vertex %d X = %g, want %g or %g", i, v.X, minX, maxX)
				}
				if v.Y != minY && v.Y != maxY {
					t.Errorf("vertex %d Y = %g, want %g or %g", i, v.Y, minY, maxY)
				}
			}

			a1 := triangleArea(verts[0], verts[1], verts[2])
			a2 := triangleArea(verts[3], verts[4], verts[5])
			if a1 <= 0 || a2 <= 0 {
				t.Errorf("triangles not counter-clockwise: areas %g, %g", a1, a2)
			}
			want := tt.size.W * tt.size.H
			if got := a1 + a2; math32.Abs(got-want) > 1e-6 {
				t.Errorf("covered area = %g, want %g", got, want)
			}
		})
	}
}

func TestRectangleVertices_Order(t *testing.T) {
	verts := RectangleVertices(Pt(0, 0), Sz(2, 2))
	want := []Point{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}
	for i := range want {
		if verts[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, verts[i], want[i])
		}
	}
}

func TestEllipseVertices_CountAndWedgeAngle(t *testing.T) {
	tests := []struct {
		name     string
		segments int
	}{
		{"minimum", 4},
		{"default", DefaultEllipseSegments},
		{"fine", 100},
	}
	center := Pt(0.1, -0.2)
	size := Sz(0.25, 0.5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verts := EllipseVertices(center, size, tt.segments)
			if len(verts) != tt.segments*3 {
				t.Fatalf("len = %d, want %d", len(verts), tt.segments*3)
			}

			step := 2 * math.Pi / float64(tt.segments)
			for i := 0; i < tt.segments; i++ {
				w := verts[i*3 : i*3+3]
				if w[0] != center {
					t.Fatalf("wedge %d apex = %v, want center %v", i, w[0], center)
				}
				a0 := math.Atan2(float64((w[1].Y-center.Y)/size.H), float64((w[1].X-center.X)/size.W))
				a1 := math.Atan2(float64((w[2].Y-center.Y)/size.H), float64((w[2].X-center.X)/size.W))
				d := math.Mod(a1-a0+4*math.Pi, 2*math.Pi)
				if math.Abs(d-step) > 1e-4 {
					t.Errorf("wedge %d angle = %g, want %g", i, d, step)
				}
			}

			// The last wedge closes on the first rim vertex.
			if last := verts[len(verts)-1]; last != verts[1] {
				t.Errorf("closing vertex = %v, want %v", last, verts[1])
			}
		})
	}
}

func TestEllipseVertices_Deterministic(t *testing.T) {
	a := EllipseVertices(Pt(0, 0), Sz(0.25, 0.5), 64)
	b := EllipseVertices(Pt(0, 0), Sz(0.25, 0.5), 64)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vertex %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestEllipseVertices_TooFewSegments(t *testing.T) {
	for _, segments := range []int{-1, 0, 3} {
		t.Run(fmt.Sprint(segments), func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("EllipseVertices(%d segments) did not panic", segments)
				}
				if msg := fmt.Sprint(r); !strings.HasPrefix(msg, "shapes: ellipse needs at least 4 segments") {
					t.Errorf("panic = %q", msg)
				}
			}()
			EllipseVertices(Pt(0, 0), Sz(1, 1), segments)
		})
	}
}

func TestEllipseVertices_Radii(t *testing.T) {
	verts := EllipseVertices(Pt(0, 0), Sz(0.25, 0.5), 4)
	// θ = 0 and θ = π/2 land on the radii.
	if p := verts[1]; math32.Abs(p.X-0.25) > 1e-6 || math32.Abs(p.Y) > 1e-6 {
		t.Errorf("rim at 0 = %v, want (0.25, 0)", p)
	}
	if p := verts[4]; math32.Abs(p.X) > 1e-6 || math32.Abs(p.Y-0.5) > 1e-6 {
		t.Errorf("rim at π/2 = %v, want (0, 0.5)", p)
	}
}

func TestEncodeVertices(t *testing.T) {
	data := encodeVertices([]Point{{1, -1}, {0.5, 0.25}})
	if len(data) != 2*vertexStride {
		t.Fatalf("len = %d, want %d", len(data), 2*vertexStride)
	}
	want := []float32{1, -1, 0.5, 0.25}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		if got != w {
			t.Errorf("float %d = %g, want %g", i, got, w)
		}
	}
}
