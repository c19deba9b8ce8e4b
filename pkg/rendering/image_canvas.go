package rendering

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/neumorphism/pkg/graphics"
)

// transform is a scale followed by a translation; rotation is not needed by
// anything that paints through ImageCanvas.
type transform struct {
	tx, ty float64
	sx, sy float64
}

var identity = transform{sx: 1, sy: 1}

func (t transform) apply(r graphics.Rect) graphics.Rect {
	return graphics.Rect{
		Left:   t.tx + r.Left*t.sx,
		Top:    t.ty + r.Top*t.sy,
		Right:  t.tx + r.Right*t.sx,
		Bottom: t.ty + r.Bottom*t.sy,
	}
}

// ImageCanvas is a software Canvas that composites source-over into an
// [image.RGBA].
type ImageCanvas struct {
	dst   *image.RGBA
	state transform
	stack []transform
}

// NewImageCanvas returns a canvas drawing into dst.
func NewImageCanvas(dst *image.RGBA) *ImageCanvas {
	return &ImageCanvas{dst: dst, state: identity}
}

// Image returns the destination image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.dst
}

// Depth returns the number of unmatched Save calls.
func (c *ImageCanvas) Depth() int {
	return len(c.stack)
}

func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recent state. Unbalanced calls are ignored.
func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *ImageCanvas) Translate(dx, dy float64) {
	c.state.tx += dx * c.state.sx
	c.state.ty += dy * c.state.sy
}

func (c *ImageCanvas) Scale(sx, sy float64) {
	c.state.sx *= sx
	c.state.sy *= sy
}

func (c *ImageCanvas) DrawImage(img image.Image, position graphics.Offset) {
	b := img.Bounds()
	c.DrawImageRect(img, graphics.Rect{}, graphics.RectFromLTWH(position.X, position.Y, float64(b.Dx()), float64(b.Dy())), FilterQualityLow)
}

func (c *ImageCanvas) DrawImageRect(img image.Image, srcRect, dstRect graphics.Rect, quality FilterQuality) {
	sr := img.Bounds()
	if !srcRect.IsEmpty() {
		sr = srcRect.ImageRect().Add(sr.Min).Intersect(sr)
	}
	mapped := c.state.apply(dstRect)
	if sr.Empty() || mapped.IsEmpty() {
		return
	}
	dr := mapped.ImageRect()
	if isWhole(mapped) && dr.Dx() == sr.Dx() && dr.Dy() == sr.Dy() {
		draw.Draw(c.dst, dr, img, sr.Min, draw.Over)
		return
	}
	scaler(quality).Scale(c.dst, dr, img, sr, xdraw.Over, nil)
}

func (c *ImageCanvas) Size() graphics.Size {
	b := c.dst.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func isWhole(r graphics.Rect) bool {
	return r.Left == math.Trunc(r.Left) && r.Top == math.Trunc(r.Top) &&
		r.Right == math.Trunc(r.Right) && r.Bottom == math.Trunc(r.Bottom)
}

func scaler(q FilterQuality) xdraw.Scaler {
	switch q {
	case FilterQualityNone:
		return xdraw.NearestNeighbor
	case FilterQualityMedium:
		return xdraw.BiLinear
	case FilterQualityHigh:
		return xdraw.CatmullRom
	default:
		return xdraw.ApproxBiLinear
	}
}

var _ Canvas = (*ImageCanvas)(nil)
