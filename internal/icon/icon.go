// Package icon draws the app's PWA icons: an accent-colored square with a
// white disc and a smaller accent disc, all concentric.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/Mavwarf/mkicon/internal/paths"
)

// Accent is the background and inner disc color (#10b981).
var Accent = color.RGBA{0x10, 0xb9, 0x81, 0xff}

// White is the ring color.
var White = color.RGBA{0xff, 0xff, 0xff, 0xff}

// ErrInvalidSize is returned for a non-positive edge length.
var ErrInvalidSize = errors.New("icon size must be positive")

// Target is one icon to produce.
type Target struct {
	Size int
	Path string
}

// Targets are the icons written by mkicon, in order.
var Targets = []Target{
	{Size: 192, Path: "public/icon-192.png"},
	{Size: 512, Path: "public/icon-512.png"},
}

// Margins returns the inset of the white disc and of the inner disc.
func Margins(size int) (outer, inner int) {
	return size / 6, size / 3
}

// Draw renders a size×size icon. Every pixel is opaque, so the PNG encoder
// writes it as 8-bit RGB.
func Draw(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Accent), image.Point{}, draw.Src)

	outer, inner := Margins(size)
	FillEllipse(img, image.Rect(outer, outer, size-outer, size-outer), White)
	FillEllipse(img, image.Rect(inner, inner, size-inner, size-inner), Accent)
	return img, nil
}

// FillEllipse fills the ellipse inscribed in box. Both corners of box are
// inclusive, so the ellipse spans box.Max.X-box.Min.X+1 pixels across.
// Pixels outside img are skipped.
func FillEllipse(img *image.RGBA, box image.Rectangle, c color.Color) {
	box = box.Canon()
	rx := float64(box.Dx()+1) / 2
	ry := float64(box.Dy()+1) / 2
	cx := float64(box.Min.X) + rx
	cy := float64(box.Min.Y) + ry

	clip := image.Rect(box.Min.X, box.Min.Y, box.Max.X+1, box.Max.Y+1).Intersect(img.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := clip.Min.X; x < clip.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, c)
			}
		}
	}
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Create draws a size×size icon and writes it to filename, replacing any
// existing file. The parent directory must already exist.
func Create(size int, filename string) error {
	img, err := Draw(size)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return paths.WriteFile(filename, buf.Bytes())
}
