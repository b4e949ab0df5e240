package texture

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
)

// CropStrategy selects how a source image is cut down to a square face
// texture.
type CropStrategy int

const (
	// CropCover scales until the image covers the square, then trims the
	// overhang from the center.
	CropCover CropStrategy = iota
	// CropContain scales until the image fits inside the square and
	// letterboxes the rest.
	CropContain
	// CropFill stretches the image onto the square, ignoring aspect ratio.
	CropFill
)

// ParseStrategy converts a config string into a CropStrategy.
func ParseStrategy(s string) (CropStrategy, error) {
	switch s {
	case "cover":
		return CropCover, nil
	case "contain":
		return CropContain, nil
	case "fill":
		return CropFill, nil
	default:
		return CropCover, fmt.Errorf("unknown crop strategy %q (want cover, contain or fill)", s)
	}
}

func (s CropStrategy) String() string {
	switch s {
	case CropCover:
		return "cover"
	case CropContain:
		return "contain"
	case CropFill:
		return "fill"
	}
	return "unknown"
}

// Square renders img onto a size x size square using the given strategy.
func Square(img image.Image, strategy CropStrategy, size int) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, size, size))
	}

	switch strategy {
	case CropContain:
		scale := minf(float64(size)/float64(w), float64(size)/float64(h))
		sw, sh := roundDim(float64(w)*scale), roundDim(float64(h)*scale)
		scaled := transform.Resize(img, sw, sh, transform.Linear)

		canvas := image.NewRGBA(image.Rect(0, 0, size, size))
		offset := image.Pt((size-sw)/2, (size-sh)/2)
		draw.Draw(canvas, image.Rectangle{Min: offset, Max: offset.Add(image.Pt(sw, sh))}, scaled, image.Point{}, draw.Src)
		return canvas

	case CropFill:
		return transform.Resize(img, size, size, transform.Linear)

	default: // CropCover
		scale := maxf(float64(size)/float64(w), float64(size)/float64(h))
		sw, sh := roundDim(float64(w)*scale), roundDim(float64(h)*scale)
		scaled := transform.Resize(img, sw, sh, transform.Linear)

		x := (sw - size) / 2
		y := (sh - size) / 2
		return transform.Crop(scaled, image.Rect(x, y, x+size, y+size))
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// roundDim rounds a scaled dimension up so cover never underfills.
func roundDim(v float64) int {
	n := int(v)
	if float64(n) < v {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
