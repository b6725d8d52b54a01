// Package icon renders the launcher icon: a rounded tile with a play glyph.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/tc-hib/winres"
)

// Sizes are the resolutions stored in the .ico file.
var Sizes = []int{16, 32, 48, 256}

var (
	tileColor  = color.RGBA{R: 38, G: 110, B: 220, A: 255}
	glyphColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Render draws the icon at size x size pixels with a transparent background.
func Render(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	radius := s * 0.22

	// Play triangle, pointing right, slightly right of center to look balanced.
	ax, ay := s*0.38, s*0.27
	bx, by := s*0.38, s*0.73
	cx, cy := s*0.76, s*0.50

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			cov := roundedRectCoverage(px, py, s, radius)
			if cov <= 0 {
				continue
			}
			c := tileColor
			if insideTriangle(px, py, ax, ay, bx, by, cx, cy) {
				c = glyphColor
			}
			c.A = uint8(cov * 255)
			img.SetRGBA(x, y, premultiply(c))
		}
	}
	return img
}

// ICO encodes the icon at every size in Sizes.
func ICO() ([]byte, error) {
	ic, err := winres.NewIconFromResizedImage(Render(256), Sizes)
	if err != nil {
		return nil, fmt.Errorf("failed to build icon: %w", err)
	}
	var buf bytes.Buffer
	if err := ic.SaveICO(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}
	return buf.Bytes(), nil
}

// roundedRectCoverage returns how much of the pixel centered at (px, py) lies
// inside the rounded tile, with one pixel of anti-aliasing.
func roundedRectCoverage(px, py, s, r float64) float64 {
	dx := math.Max(math.Max(r-px, px-(s-r)), 0)
	dy := math.Max(math.Max(r-py, py-(s-r)), 0)
	d := math.Hypot(dx, dy)
	return math.Min(math.Max(r-d+0.5, 0), 1)
}

func insideTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	d1 := cross(px, py, ax, ay, bx, by)
	d2 := cross(px, py, bx, by, cx, cy)
	d3 := cross(px, py, cx, cy, ax, ay)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(px, py, ax, ay, bx, by float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
