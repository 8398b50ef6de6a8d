// Package scene describes a set of shapes in TOML and registers them on a
// shapes.Manager in one setup step.
//
// A scene file lists a background color and an ordered array of shapes:
//
//	background = "#202020"
//
//	[[shape]]
//	kind = "rectangle"
//	color = "white"
//	size = [1.0, 1.0]
//	position = [0.0, 0.0]
//
//	[[shape]]
//	kind = "triangle"
//	color = "#ff000080"
//	vertices = [[-0.5, -0.5], [0.5, -0.5], [0.0, 0.5]]
//
//	[[shape]]
//	kind = "ellipse"
//	color = "teal"
//	size = [0.25, 0.5]
//	segments = 32
//
// Colors are preset names or hex strings. Shapes are drawn in file order.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/shapes"
)

//go:embed default.toml
var defaultScene []byte

// Shape kinds.
const (
	KindRectangle = "rectangle"
	KindTriangle  = "triangle"
	KindEllipse   = "ellipse"
)

// ErrUnknownKind is returned for a shape whose kind is not one of the Kind
// constants.
var ErrUnknownKind = errors.New("scene: unknown shape kind")

// Registrar creates shapes. *shapes.Manager implements it.
type Registrar interface {
	Rectangle(color shapes.Color, size shapes.Size, position shapes.Point) (*shapes.Rectangle, error)
	Triangle(color shapes.Color, vertices [3]shapes.Point) (*shapes.Triangle, error)
	EllipseSegments(color shapes.Color, size shapes.Size, position shapes.Point, segments int) (*shapes.Ellipse, error)
}

var _ Registrar = (*shapes.Manager)(nil)

// Scene is a decoded scene file.
type Scene struct {
	Background string  `toml:"background"`
	Shapes     []Shape `toml:"shape"`
}

// Shape is one shape entry. Which fields apply depends on Kind:
// rectangles and ellipses use Size and Position, triangles use Vertices
// only.
// Segments is optional for ellipses.
type Shape struct {
	Kind     string       `toml:"kind"`
	Color    string       `toml:"color"`
	Size     [2]float32   `toml:"size"`
	Position [2]float32   `toml:"position"`
	Vertices [][2]float32 `toml:"vertices"`
	Segments int          `toml:"segments"`
}

// Load decodes and validates a scene. Unknown keys are rejected.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile is Load for a file path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in demo scene.
func Default() *Scene {
	s, err := Load(bytes.NewReader(defaultScene))
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks every entry so that Apply cannot hit a geometry panic.
func (s *Scene) Validate() error {
	if _, err := s.BackgroundColor(); err != nil {
		return err
	}
	for i, sh := range s.Shapes {
		if err := sh.validate(); err != nil {
			return fmt.Errorf("scene: shape %d: %w", i, err)
		}
	}
	return nil
}

func (sh Shape) validate() error {
	if _, err := parseColor(sh.Color); err != nil {
		return err
	}
	switch sh.Kind {
	case KindRectangle, KindEllipse:
		if !(sh.Size[0] > 0 && sh.Size[1] > 0) {
			return fmt.Errorf("size must be positive, got %v", sh.Size)
		}
		if len(sh.Vertices) != 0 {
			return fmt.Errorf("%s does not take vertices", sh.Kind)
		}
		if sh.Kind == KindEllipse && sh.Segments != 0 && sh.Segments < 4 {
			return fmt.Errorf("ellipse needs at least 4 segments, got %d", sh.Segments)
		}
	case KindTriangle:
		if len(sh.Vertices) != 3 {
			return fmt.Errorf("triangle needs 3 vertices, got %d", len(sh.Vertices))
		}
		if sh.Size != [2]float32{} || sh.Position != [2]float32{} {
			return errors.New("triangle takes vertices, not size or position")
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, sh.Kind)
	}
	return nil
}

// BackgroundColor returns the parsed background, white when unset.
func (s *Scene) BackgroundColor() (shapes.Color, error) {
	if s.Background == "" {
		return shapes.White, nil
	}
	c, err := parseColor(s.Background)
	if err != nil {
		return shapes.Color{}, fmt.Errorf("scene: background: %w", err)
	}
	return c, nil
}

// Apply registers every shape on m in file order. It validates first, so
// an invalid scene registers nothing.
func (s *Scene) Apply(m Registrar) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for i, sh := range s.Shapes {
		if err := sh.register(m); err != nil {
			return fmt.Errorf("scene: shape %d: %w", i, err)
		}
	}
	shapes.Logger().Debug("scene applied", "shapes", len(s.Shapes))
	return nil
}

func (sh Shape) register(m Registrar) error {
	c, err := parseColor(sh.Color)
	if err != nil {
		return err
	}
	size := shapes.Sz(sh.Size[0], sh.Size[1])
	pos := shapes.Pt(sh.Position[0], sh.Position[1])

	switch sh.Kind {
	case KindRectangle:
		_, err = m.Rectangle(c, size, pos)
	case KindEllipse:
		segments := sh.Segments
		if segments == 0 {
			segments = shapes.DefaultEllipseSegments
		}
		_, err = m.EllipseSegments(c, size, pos, segments)
	case KindTriangle:
		var verts [3]shapes.Point
		for i, v := range sh.Vertices {
			verts[i] = shapes.Pt(v[0], v[1])
		}
		_, err = m.Triangle(c, verts)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownKind, sh.Kind)
	}
	return err
}

// parseColor accepts a preset name or a hex string.
func parseColor(s string) (shapes.Color, error) {
	if s == "" {
		return shapes.Color{}, errors.New("missing color")
	}
	if c, ok := shapes.NamedColor(s); ok {
		return c, nil
	}
	return shapes.ParseHex(s)
}
