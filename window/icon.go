package window

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// IconSizes are the square sizes LoadIcon produces. The window system picks
// the closest match for each place the icon is shown.
var IconSizes = []int{16, 32, 48, 256}

// LoadIcon decodes a PNG or WebP image and returns it scaled to each of
// IconSizes as RGBA images.
func LoadIcon(r io.Reader) ([]image.Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("window: decode icon: %w", err)
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("window: empty %s icon", format)
	}

	icons := make([]image.Image, 0, len(IconSizes))
	for _, size := range IconSizes {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		icons = append(icons, dst)
	}
	return icons, nil
}

// LoadIconFile is LoadIcon for a file path.
func LoadIconFile(path string) ([]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	defer f.Close()
	return LoadIcon(f)
}
