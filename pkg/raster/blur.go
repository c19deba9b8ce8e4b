package raster

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Blur applies a Gaussian blur with sigma = radius * 0.5 in place.
// A radius of zero or less leaves the surface unchanged.
func (s *Surface) Blur(radius float64) {
	if radius <= 0 || s.IsEmpty() {
		return
	}
	blurred := imaging.Blur(s.img, radius*0.5)
	draw.Draw(s.img, s.img.Rect, blurred, image.Point{}, draw.Src)
}
