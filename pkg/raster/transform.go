package raster

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/go-drift/neumorphism/pkg/graphics"
)

// CompositeAt draws src translated by a possibly fractional offset.
// Whole-pixel offsets are copied exactly; fractional offsets are resampled
// bilinearly first.
func (s *Surface) CompositeAt(src image.Image, offset graphics.Offset, mode graphics.BlendMode) {
	if offset.X == math.Trunc(offset.X) && offset.Y == math.Trunc(offset.Y) {
		s.Composite(src, image.Pt(int(offset.X), int(offset.Y)), mode)
		return
	}
	shifted := Translated(src, offset)
	s.Composite(shifted, shifted.Bounds().Min, mode)
}

// Translated returns src resampled at a fractional offset. The result keeps
// src's size plus one pixel of slack on each side so partially covered
// edge pixels survive; its bounds are in destination coordinates.
func Translated(src image.Image, offset graphics.Offset) *image.RGBA {
	sb := src.Bounds()
	ox, oy := math.Floor(offset.X), math.Floor(offset.Y)
	db := image.Rect(sb.Min.X-1, sb.Min.Y-1, sb.Max.X+1, sb.Max.Y+1).Add(image.Pt(int(ox), int(oy)))
	dst := image.NewRGBA(db)
	m := f64.Aff3{
		1, 0, offset.X,
		0, 1, offset.Y,
	}
	xdraw.BiLinear.Transform(dst, m, src, sb, xdraw.Src, nil)
	return dst
}
