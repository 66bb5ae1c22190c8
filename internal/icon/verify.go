package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Verify decodes the PNG at filename and checks that it is a size×size icon:
// accent corner, accent center and a white ring between the two discs.
func Verify(filename string, size int) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", filename, err)
	}
	b := img.Bounds()
	if b.Dx() != size || b.Dy() != size {
		return fmt.Errorf("%s: got %dx%d, want %dx%d", filename, b.Dx(), b.Dy(), size, size)
	}

	for _, s := range samples(size) {
		got := color.RGBAModel.Convert(img.At(b.Min.X+s.pt.X, b.Min.Y+s.pt.Y)).(color.RGBA)
		if got != s.want {
			return fmt.Errorf("%s: pixel %s (%s) = %v, want %v", filename, s.pt, s.name, got, s.want)
		}
	}
	return nil
}

type sample struct {
	name string
	pt   image.Point
	want color.RGBA
}

// samples returns the probe points for an icon of the given size. The ring
// probe sits halfway between the inner and outer disc radii on the center row.
func samples(size int) []sample {
	outer, inner := Margins(size)
	c := size / 2
	ring := c + ((size-2*outer)+(size-2*inner))/4
	return []sample{
		{"corner", image.Pt(0, 0), Accent},
		{"center", image.Pt(c, c), Accent},
		{"ring", image.Pt(ring, c), White},
	}
}
