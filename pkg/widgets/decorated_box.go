package widgets

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/layout"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// DecoratedBox is a leaf render box that paints a filled rounded rectangle.
//
// Width and Height are the preferred size; a zero value takes the largest
// size the constraints allow. Radius is clamped to half the shorter side.
//
//	box := widgets.NewDecoratedBox(graphics.RGB(46, 52, 64), 12, 120, 80)
type DecoratedBox struct {
	layout.RenderBoxBase
	Color  graphics.Color
	Radius float64
	Width  float64
	Height float64
}

// NewDecoratedBox returns a box ready to be wrapped or attached.
func NewDecoratedBox(c graphics.Color, radius, width, height float64) *DecoratedBox {
	b := &DecoratedBox{Color: c, Radius: radius, Width: width, Height: height}
	b.SetSelf(b)
	return b
}

// SetColor changes the fill color.
func (r *DecoratedBox) SetColor(c graphics.Color) {
	if r.Color == c {
		return
	}
	r.Color = c
	r.MarkNeedsPaint()
}

// SetRadius changes the corner radius.
func (r *DecoratedBox) SetRadius(radius float64) {
	if r.Radius == radius {
		return
	}
	r.Radius = radius
	r.MarkNeedsPaint()
}

func (r *DecoratedBox) PerformLayout() {
	constraints := r.Constraints()
	preferred := graphics.Size{Width: r.Width, Height: r.Height}
	if preferred.Width <= 0 && constraints.HasBoundedWidth() {
		preferred.Width = constraints.MaxWidth
	}
	if preferred.Height <= 0 && constraints.HasBoundedHeight() {
		preferred.Height = constraints.MaxHeight
	}
	r.SetSize(constraints.Constrain(preferred))
}

func (r *DecoratedBox) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	if size.Width <= 0 || size.Height <= 0 || r.Color.Alpha() == 0 {
		return
	}
	ctx.Canvas.DrawImage(roundedRect(size, r.Radius, r.Color), graphics.Offset{})
}

// roundedRect rasterizes a filled rounded rectangle of the given size.
func roundedRect(size graphics.Size, radius float64, c graphics.Color) *image.RGBA {
	w, h := int(size.Width+0.5), int(size.Height+0.5)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	fw, fh := float32(size.Width), float32(size.Height)
	rad := float32(min(max(radius, 0), size.Width/2, size.Height/2))
	k := rad * kappa

	z := vector.NewRasterizer(w, h)
	z.MoveTo(rad, 0)
	z.LineTo(fw-rad, 0)
	z.CubeTo(fw-rad+k, 0, fw, rad-k, fw, rad)
	z.LineTo(fw, fh-rad)
	z.CubeTo(fw, fh-rad+k, fw-rad+k, fh, fw-rad, fh)
	z.LineTo(rad, fh)
	z.CubeTo(rad-k, fh, 0, fh-rad+k, 0, fh-rad)
	z.LineTo(0, rad)
	z.CubeTo(0, rad-k, rad-k, 0, rad, 0)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	return img
}
