package raster

import (
	"image"
	"image/color"

	"github.com/go-drift/neumorphism/pkg/graphics"
)

// MaskMode selects which pixels a color-match mask keeps.
type MaskMode int

const (
	// MaskInColor sets pixels that match the color.
	MaskInColor MaskMode = iota
	// MaskOutColor sets pixels that do not match the color.
	MaskOutColor
)

// Mask is a binary coverage map backed by an [image.Alpha] holding only 0
// and 0xFF, so it can be passed straight to draw.DrawMask.
type Mask struct {
	alpha *image.Alpha
}

// NewMask returns an empty mask of the given size.
func NewMask(w, h int) *Mask {
	return &Mask{alpha: image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// MaskWhere builds a mask of img's pixels for which keep returns true.
// Pixels are presented premultiplied.
func MaskWhere(img image.Image, keep func(c color.RGBA) bool) *Mask {
	src := toRGBA(img)
	b := src.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+b.Dx()*4]
		out := m.alpha.Pix[y*m.alpha.Stride:]
		for x := 0; x < b.Dx(); x++ {
			p := row[x*4 : x*4+4 : x*4+4]
			if keep(color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}) {
				out[x] = 0xFF
			}
		}
	}
	return m
}

// AlphaMask marks every pixel of img with non-zero alpha: the silhouette
// of whatever was painted.
func AlphaMask(img image.Image) *Mask {
	return MaskWhere(img, func(c color.RGBA) bool { return c.A > 0 })
}

// MaskFromColor marks pixels that match c exactly (MaskInColor) or that
// differ from it (MaskOutColor).
func MaskFromColor(img image.Image, c graphics.Color, mode MaskMode) *Mask {
	want := c.Premultiplied()
	return MaskWhere(img, func(px color.RGBA) bool {
		return (px == want) == (mode == MaskInColor)
	})
}

// Bounds returns the mask bounds, always anchored at (0, 0).
func (m *Mask) Bounds() image.Rectangle {
	return m.alpha.Bounds()
}

// Alpha exposes the backing image for use as a draw mask.
func (m *Mask) Alpha() *image.Alpha {
	return m.alpha
}

// At reports whether (x, y) is set. Out-of-bounds points are unset.
func (m *Mask) At(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(m.alpha.Rect) {
		return false
	}
	return m.alpha.Pix[y*m.alpha.Stride+x] != 0
}

// Set sets or clears (x, y). Out-of-bounds points are ignored.
func (m *Mask) Set(x, y int, on bool) {
	if !(image.Point{X: x, Y: y}).In(m.alpha.Rect) {
		return
	}
	var v uint8
	if on {
		v = 0xFF
	}
	m.alpha.Pix[y*m.alpha.Stride+x] = v
}

// Invert returns the complement of m.
func (m *Mask) Invert() *Mask {
	b := m.Bounds()
	out := NewMask(b.Dx(), b.Dy())
	for i, v := range m.alpha.Pix {
		out.alpha.Pix[i] = ^v
	}
	return out
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.alpha.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}
