package testbed

import (
	"image"
	"image/draw"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/layout"
)

// LayoutBox is a fixed-size colored box for layout testing.
type LayoutBox struct {
	layout.RenderBoxBase
	Width  float64
	Height float64
	Color  graphics.Color
}

// NewLayoutBox returns a box ready to be attached.
func NewLayoutBox(width, height float64, c graphics.Color) *LayoutBox {
	b := &LayoutBox{Width: width, Height: height, Color: c}
	b.SetSelf(b)
	return b
}

func (r *LayoutBox) PerformLayout() {
	constraints := r.Constraints()
	r.SetSize(constraints.Constrain(graphics.Size{Width: r.Width, Height: r.Height}))
}

func (r *LayoutBox) Paint(ctx *layout.PaintContext) {
	if r.Color == 0 {
		return
	}
	size := r.Size()
	fill := image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))
	draw.Draw(fill, fill.Rect, image.NewUniform(r.Color), image.Point{}, draw.Src)
	ctx.Canvas.DrawImage(fill, graphics.Offset{})
}
