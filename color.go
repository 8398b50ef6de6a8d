package shapes

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// colorUniformSize is the byte size of a Color in a uniform buffer (vec4<f32>).
const colorUniformSize = 16

// Color is a normalized RGBA color. Each channel is conventionally in [0, 1];
// no clamping is applied, producers are expected to clamp.
type Color struct {
	R, G, B, A float32
}

// RGBA creates a color from normalized components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Bytes returns the color packed as four little-endian float32 values,
// the layout of the fragment shader's color uniform.
func (c Color) Bytes() []byte {
	buf := make([]byte, colorUniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(c.R))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(c.G))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(c.B))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(c.A))
	return buf
}

// String formats the color as its channel values.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// FromRGBA converts 8-bit channels to a normalized color.
func FromRGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// FromHex converts a packed 0xRRGGBBAA value to a normalized color.
func FromHex(code uint32) Color {
	return FromRGBA(uint8(code>>24), uint8(code>>16), uint8(code>>8), uint8(code))
}

// ParseHex parses a hex color string.
// Supports "RGB", "RGBA", "RRGGBB" and "RRGGBBAA", with or without a leading '#'.
// Missing alpha is opaque.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4:
		var expanded strings.Builder
		for i := 0; i < len(hex); i++ {
			expanded.WriteByte(hex[i])
			expanded.WriteByte(hex[i])
		}
		hex = expanded.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("shapes: invalid hex color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	code, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("shapes: invalid hex color %q: %w", s, err)
	}
	return FromHex(uint32(code)), nil
}

// FromHSLA converts hue (degrees), saturation and lightness (percent) to a
// normalized color. Hue wraps at 360.
func FromHSLA(hue uint16, saturation, lightness uint8, alpha float32) Color {
	s := float32(saturation) / 100
	l := float32(lightness) / 100

	chroma := (1 - math32.Abs(2*l-1)) * s
	r, g, b := hueToRGB(float32(hue%360), chroma)
	m := l - chroma/2
	return Color{R: r + m, G: g + m, B: b + m, A: alpha}
}

// FromHSVA converts hue (degrees), saturation and value (percent) to a
// normalized color. Hue wraps at 360; channels are clamped to [0, 1].
func FromHSVA(hue uint16, saturation, value uint8, alpha float32) Color {
	s := float32(saturation) / 100
	v := float32(value) / 100

	chroma := s * v
	r, g, b := hueToRGB(float32(hue%360), chroma)
	m := v - chroma
	return Color{R: clamp01(r + m), G: clamp01(g + m), B: clamp01(b + m), A: alpha}
}

// FromCMYKA converts 8-bit cyan, magenta, yellow and key channels to a
// normalized color.
func FromCMYKA(cyan, magenta, yellow, key uint8, alpha float32) Color {
	k := float32(key) / 255
	conv := func(v uint8) float32 {
		c := float32(v) / 255
		return 1 - (c*(1-k) + k)
	}
	return Color{R: conv(cyan), G: conv(magenta), B: conv(yellow), A: alpha}
}

// FromHWBA converts hue (degrees), whiteness and blackness (percent) to a
// normalized color.
//
// Panics unless hue <= 360, whiteness and blackness are in [0, 100] and
// alpha is in [0, 1].
func FromHWBA(hue uint16, whiteness, blackness, alpha float32) Color {
	if hue > 360 || whiteness < 0 || whiteness > 100 || blackness < 0 || blackness > 100 || alpha < 0 || alpha > 1 {
		panic(fmt.Sprintf("shapes: FromHWBA(%d, %g, %g, %g) out of range", hue, whiteness, blackness, alpha))
	}
	w := whiteness / 100
	b := blackness / 100
	if w+b >= 1 {
		gray := w / (w + b)
		return Color{R: gray, G: gray, B: gray, A: alpha}
	}

	r, g, bl := hueToRGB(float32(hue%360), 1)
	scale := 1 - w - b
	return Color{R: r*scale + w, G: g*scale + w, B: bl*scale + w, A: alpha}
}

// hueToRGB returns the chroma-scaled RGB triple for a hue in [0, 360).
func hueToRGB(hue, chroma float32) (r, g, b float32) {
	h := hue / 60
	x := chroma * (1 - math32.Abs(math32.Mod(h, 2)-1))
	switch {
	case h < 1:
		return chroma, x, 0
	case h < 2:
		return x, chroma, 0
	case h < 3:
		return 0, chroma, x
	case h < 4:
		return 0, x, chroma
	case h < 5:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Named colors.
var (
	Red     = FromHex(0xff0000ff)
	Green   = FromHex(0x00ff00ff)
	Blue    = FromHex(0x0000ffff)
	Yellow  = FromHex(0xffff00ff)
	Cyan    = FromHex(0x00ffffff)
	Magenta = FromHex(0xff00ffff)
	Black   = FromHex(0x000000ff)
	White   = FromHex(0xffffffff)
	Gray    = FromHex(0x808080ff)
	Purple  = FromHex(0x800080ff)
	Pink    = FromHex(0xffc0cbff)
	Orange  = FromHex(0xffa500ff)
	Brown   = FromHex(0xa52a2aff)
	Beige   = FromHex(0xf5f5dcff)
	Violet  = FromHex(0xee82eeff)
	Indigo  = FromHex(0x4b0082ff)
	Scarlet = FromHex(0xff2400ff)
	Crimson = FromHex(0xdc143cff)
	Maroon  = FromHex(0x800000ff)
	Olive   = FromHex(0x808000ff)
	Lime    = FromHex(0x00ff00ff)
	Teal    = FromHex(0x008080ff)
	Aqua    = FromHex(0x00ffffff)
	Silver  = FromHex(0xc0c0c0ff)
	Gold    = FromHex(0xffd700ff)
	Ivory   = FromHex(0xfffff0ff)

	Transparent = Color{}
)

// namedColors maps lowercase color names to the presets above.
var namedColors = map[string]Color{
	"red": Red, "green": Green, "blue": Blue, "yellow": Yellow,
	"cyan": Cyan, "magenta": Magenta, "black": Black, "white": White,
	"gray": Gray, "purple": Purple, "pink": Pink, "orange": Orange,
	"brown": Brown, "beige": Beige, "violet": Violet, "indigo": Indigo,
	"scarlet": Scarlet, "crimson": Crimson, "maroon": Maroon, "olive": Olive,
	"lime": Lime, "teal": Teal, "aqua": Aqua, "silver": Silver,
	"gold": Gold, "ivory": Ivory, "transparent": Transparent,
}

// NamedColor looks up a preset by case-insensitive name.
func NamedColor(name string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}
