package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/shapes"
)

// call records one Registrar invocation.
type call struct {
	kind     string
	color    shapes.Color
	size     shapes.Size
	position shapes.Point
	vertices [3]shapes.Point
	segments int
}

// recorder is a Registrar that records calls instead of creating GPU
// resources.
type recorder struct {
	calls []call
	fail  error
}

func (r *recorder) Rectangle(c shapes.Color, size shapes.Size, pos shapes.Point) (*shapes.Rectangle, error) {
	r.calls = append(r.calls, call{kind: KindRectangle, color: c, size: size, position: pos})
	return nil, r.fail
}

func (r *recorder) Triangle(c shapes.Color, vertices [3]shapes.Point) (*shapes.Triangle, error) {
	r.calls = append(r.calls, call{kind: KindTriangle, color: c, vertices: vertices})
	return nil, r.fail
}

func (r *recorder) EllipseSegments(c shapes.Color, size shapes.Size, pos shapes.Point, segments int) (*shapes.Ellipse, error) {
	r.calls = append(r.calls, call{kind: KindEllipse, color: c, size: size, position: pos, segments: segments})
	return nil, r.fail
}

func TestDefaultScene(t *testing.T) {
	s := Default()

	bg, err := s.BackgroundColor()
	if err != nil {
		t.Fatalf("BackgroundColor: %v", err)
	}
	if bg != shapes.White {
		t.Errorf("background = %v, want white", bg)
	}

	var r recorder
	if err := s.Apply(&r); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	translucentGreen := shapes.FromHex(0x00ff0066)
	want := []call{
		{kind: KindRectangle, color: shapes.White, size: shapes.Sz(1, 1)},
		{kind: KindRectangle, color: translucentGreen, size: shapes.Sz(0.5, 1)},
		{kind: KindEllipse, color: translucentGreen, size: shapes.Sz(0.25, 0.5), segments: shapes.DefaultEllipseSegments},
	}
	if len(r.calls) != len(want) {
		t.Fatalf("got %d registrations, want %d", len(r.calls), len(want))
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("registration %d = %+v, want %+v", i, r.calls[i], want[i])
		}
	}
}

func TestLoadTriangleAndSegments(t *testing.T) {
	const src = `
background = "#202020"

[[shape]]
kind = "triangle"
color = "red"
vertices = [[-0.5, -0.5], [0.5, -0.5], [0.0, 0.5]]

[[shape]]
kind = "ellipse"
color = "Teal"
size = [0.25, 0.5]
position = [0.5, -0.25]
segments = 12
`
	s, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var r recorder
	if err := s.Apply(&r); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(r.calls) != 2 {
		t.Fatalf("got %d registrations, want 2", len(r.calls))
	}

	tri := r.calls[0]
	wantVerts := [3]shapes.Point{{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0, Y: 0.5}}
	if tri.kind != KindTriangle || tri.color != shapes.Red || tri.vertices != wantVerts {
		t.Errorf("triangle = %+v", tri)
	}

	e := r.calls[1]
	if e.kind != KindEllipse || e.color != shapes.Teal || e.segments != 12 || e.position != shapes.Pt(0.5, -0.25) {
		t.Errorf("ellipse = %+v", e)
	}

	bg, err := s.BackgroundColor()
	if err != nil {
		t.Fatalf("BackgroundColor: %v", err)
	}
	if bg != shapes.FromHex(0x202020ff) {
		t.Errorf("background = %v", bg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{
			name:    "unknown kind",
			src:     "[[shape]]\nkind = \"star\"\ncolor = \"red\"\nsize = [1.0, 1.0]\n",
			wantErr: ErrUnknownKind,
		},
		{
			name: "unknown key",
			src:  "[[shape]]\nkind = \"rectangle\"\ncolor = \"red\"\nsize = [1.0, 1.0]\nradius = 2\n",
		},
		{
			name: "bad color",
			src:  "[[shape]]\nkind = \"rectangle\"\ncolor = \"chartreuse\"\nsize = [1.0, 1.0]\n",
		},
		{
			name: "missing color",
			src:  "[[shape]]\nkind = \"rectangle\"\nsize = [1.0, 1.0]\n",
		},
		{
			name: "zero size",
			src:  "[[shape]]\nkind = \"ellipse\"\ncolor = \"red\"\nsize = [0.0, 1.0]\n",
		},
		{
			name: "nan size",
			src:  "[[shape]]\nkind = \"rectangle\"\ncolor = \"red\"\nsize = [nan, 1.0]\n",
		},
		{
			name: "negative nan size",
			src:  "[[shape]]\nkind = \"ellipse\"\ncolor = \"red\"\nsize = [1.0, -nan]\n",
		},
		{
			name: "triangle with size",
			src:  "[[shape]]\nkind = \"triangle\"\ncolor = \"red\"\nsize = [1.0, 1.0]\nvertices = [[0.0, 0.0], [1.0, 0.0], [0.0, 1.0]]\n",
		},
		{
			name: "triangle with position",
			src:  "[[shape]]\nkind = \"triangle\"\ncolor = \"red\"\nposition = [0.5, 0.0]\nvertices = [[0.0, 0.0], [1.0, 0.0], [0.0, 1.0]]\n",
		},
		{
			name: "too few segments",
			src:  "[[shape]]\nkind = \"ellipse\"\ncolor = \"red\"\nsize = [1.0, 1.0]\nsegments = 3\n",
		},
		{
			name: "two vertices",
			src:  "[[shape]]\nkind = \"triangle\"\ncolor = \"red\"\nvertices = [[0.0, 0.0], [1.0, 0.0]]\n",
		},
		{
			name: "bad background",
			src:  "background = \"#12\"\n",
		},
		{
			name: "not toml",
			src:  "[[shape\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyInvalidRegistersNothing(t *testing.T) {
	s := &Scene{Shapes: []Shape{
		{Kind: KindRectangle, Color: "white", Size: [2]float32{1, 1}},
		{Kind: KindRectangle, Color: "white", Size: [2]float32{-1, 1}},
	}}
	var r recorder
	if err := s.Apply(&r); err == nil {
		t.Fatal("expected error")
	}
	if len(r.calls) != 0 {
		t.Errorf("got %d registrations, want 0", len(r.calls))
	}
}

func TestApplyNaNSizeRegistersNothing(t *testing.T) {
	nan := float32(math.NaN())
	s := &Scene{Shapes: []Shape{
		{Kind: KindRectangle, Color: "white", Size: [2]float32{1, 1}},
		{Kind: KindEllipse, Color: "white", Size: [2]float32{nan, 0.5}},
	}}
	var r recorder
	if err := s.Apply(&r); err == nil {
		t.Fatal("expected error for NaN size")
	}
	if len(r.calls) != 0 {
		t.Errorf("got %d registrations, want 0", len(r.calls))
	}
}

func TestApplyPropagatesRegistrarError(t *testing.T) {
	errOOM := errors.New("out of memory")
	r := recorder{fail: errOOM}
	if err := Default().Apply(&r); !errors.Is(err, errOOM) {
		t.Errorf("err = %v, want %v", err, errOOM)
	}
	if len(r.calls) != 1 {
		t.Errorf("got %d registrations, want 1", len(r.calls))
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, defaultScene, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(s.Shapes) != 3 {
		t.Errorf("got %d shapes, want 3", len(s.Shapes))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExampleSunsetScene(t *testing.T) {
	s, err := LoadFile(filepath.Join("..", "examples", "scene", "sunset.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	var r recorder
	if err := s.Apply(&r); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	kinds := make([]string, len(r.calls))
	for i, c := range r.calls {
		kinds[i] = c.kind
	}
	want := []string{KindRectangle, KindRectangle, KindEllipse, KindRectangle, KindTriangle, KindTriangle}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
	if r.calls[2].color != shapes.Gold || r.calls[2].segments != 96 {
		t.Errorf("sun = %+v", r.calls[2])
	}
}
