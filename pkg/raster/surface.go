package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/go-drift/neumorphism/pkg/graphics"
)

// Surface is a premultiplied RGBA canvas with its origin at (0, 0).
type Surface struct {
	img *image.RGBA
}

// NewSurface returns a transparent surface of the given size. Non-positive
// dimensions yield an empty surface.
func NewSurface(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// FromImage copies img into a new surface anchored at (0, 0).
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	draw.Draw(s.img, s.img.Bounds(), img, b.Min, draw.Src)
	return s
}

// Image returns the backing image. It is owned by the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Bounds returns the surface bounds.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// IsEmpty reports whether the surface has no pixels.
func (s *Surface) IsEmpty() bool {
	return s.img.Rect.Empty()
}

// Clone returns an independent copy.
func (s *Surface) Clone() *Surface {
	out := &Surface{img: image.NewRGBA(s.img.Rect)}
	copy(out.img.Pix, s.img.Pix)
	return out
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Fill replaces every pixel with c.
func (s *Surface) Fill(c graphics.Color) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Composite draws src with its top-left corner at at using mode.
func (s *Surface) Composite(src image.Image, at image.Point, mode graphics.BlendMode) {
	sb := src.Bounds()
	dr := sb.Sub(sb.Min).Add(at).Intersect(s.img.Rect)
	if dr.Empty() {
		return
	}
	sp := sb.Min.Add(dr.Min.Sub(at))
	switch mode {
	case graphics.BlendModeSrcOver:
		draw.Draw(s.img, dr, src, sp, draw.Over)
	case graphics.BlendModeSrc:
		draw.Draw(s.img, dr, src, sp, draw.Src)
	case graphics.BlendModeClear:
		draw.Draw(s.img, dr, image.Transparent, image.Point{}, draw.Src)
	case graphics.BlendModeDstIn:
		s.scaleByAlpha(dr, src, sp, false)
	case graphics.BlendModeDstOut:
		s.scaleByAlpha(dr, src, sp, true)
	}
}

// scaleByAlpha multiplies destination pixels in dr by the source alpha
// (destination-in) or its complement (destination-out).
func (s *Surface) scaleByAlpha(dr image.Rectangle, src image.Image, sp image.Point, invert bool) {
	rgba := toRGBA(src)
	offset := sp.Sub(dr.Min)
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			sa := uint32(rgba.RGBAAt(x+offset.X, y+offset.Y).A)
			if invert {
				sa = 0xFF - sa
			}
			if sa == 0xFF {
				continue
			}
			i := s.img.PixOffset(x, y)
			p := s.img.Pix[i : i+4 : i+4]
			for c := range p {
				p[c] = uint8((uint32(p[c])*sa + 0x7F) / 0xFF)
			}
		}
	}
}

// Stencil paints c over every pixel set in m, with the mask's origin placed
// at at. Unset pixels are left untouched.
func (s *Surface) Stencil(m *Mask, at image.Point, c graphics.Color) {
	mb := m.Bounds()
	dr := mb.Add(at).Intersect(s.img.Rect)
	if dr.Empty() {
		return
	}
	draw.DrawMask(s.img, dr, image.NewUniform(c), image.Point{}, m.Alpha(), dr.Min.Sub(at), draw.Over)
}

// Keep clears every pixel not set in m (destination-in through the mask).
func (s *Surface) Keep(m *Mask) {
	s.Composite(m.Alpha(), image.Point{}, graphics.BlendModeDstIn)
	if mb := m.Bounds(); !s.img.Rect.In(mb) {
		s.clearOutside(mb)
	}
}

// Punch clears every pixel set in m (destination-out through the mask).
func (s *Surface) Punch(m *Mask) {
	s.Composite(m.Alpha(), image.Point{}, graphics.BlendModeDstOut)
}

func (s *Surface) clearOutside(keep image.Rectangle) {
	b := s.img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !(image.Point{X: x, Y: y}).In(keep) {
				s.img.SetRGBA(x, y, color.RGBA{})
			}
		}
	}
}

// Tinted returns a silhouette of s in color c: every pixel becomes c with
// its coverage scaled by the pixel's own alpha.
func (s *Surface) Tinted(c graphics.Color) *Surface {
	out := NewSurface(s.Width(), s.Height())
	out.Fill(c)
	out.Composite(s.img, image.Point{}, graphics.BlendModeDstIn)
	return out
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}
