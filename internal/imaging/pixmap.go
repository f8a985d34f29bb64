package imaging

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Color is one 8-bit RGB sample.
type Color struct {
	R, G, B uint8
}

// Pixmap is an immutable row-major RGB grid. len(Pix) is always
// Width*Height.
type Pixmap struct {
	Width  int
	Height int
	Pix    []Color
}

// At returns the sample at (x, y). Callers keep x and y in range.
func (p *Pixmap) At(x, y int) Color {
	return p.Pix[y*p.Width+x]
}

// Decode converts raw image bytes into a Pixmap. Any format registered
// with the stdlib image package is accepted; everything else is an error.
func Decode(data []byte) (*Pixmap, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pix := make([]Color, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pix = append(pix, Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}
	return &Pixmap{Width: width, Height: height, Pix: pix}, nil
}

// Resample maps src onto a width x height grid with nearest-neighbor
// sampling: each target cell takes the single source sample at
// (x*srcW/width, y*srcH/height). A non-positive target dimension yields an
// empty pixmap without touching src. Cost is O(width*height) regardless of
// source size.
func Resample(src *Pixmap, width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		return &Pixmap{}
	}

	pix := make([]Color, 0, width*height)
	for y := 0; y < height; y++ {
		srcY := y * src.Height / height
		for x := 0; x < width; x++ {
			srcX := x * src.Width / width
			pix = append(pix, src.At(srcX, srcY))
		}
	}
	return &Pixmap{Width: width, Height: height, Pix: pix}
}
