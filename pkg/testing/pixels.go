package testing

import (
	"image"
	"image/color"
)

// Coverage returns the smallest rectangle holding every pixel of img with
// non-zero alpha. It is empty when img is fully transparent.
func Coverage(img image.Image) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alphaAt(img, x, y) == 0 {
				continue
			}
			r = r.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return r
}

// CountVisible returns the number of pixels in img with non-zero alpha.
func CountVisible(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alphaAt(img, x, y) != 0 {
				n++
			}
		}
	}
	return n
}

// VisibleWhere returns how many pixels with non-zero alpha satisfy in.
func VisibleWhere(img image.Image, in func(x, y int) bool) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alphaAt(img, x, y) != 0 && in(x, y) {
				n++
			}
		}
	}
	return n
}

// SameImage reports whether a and b have equal bounds and pixels.
func SameImage(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if color.RGBAModel.Convert(a.At(x, y)) != color.RGBAModel.Convert(b.At(x, y)) {
				return false
			}
		}
	}
	return true
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}
