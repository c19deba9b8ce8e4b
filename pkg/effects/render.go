package effects

import (
	"image"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/raster"
	"github.com/go-drift/neumorphism/pkg/rendering"
)

// Render paints source with its shadows into target on canvas. The outside
// layer is drawn first, then the source, then the inside layer inset by
// the border inset on every side. source is expected to already carry the
// transparent padding from SourceFor. Empty sources or targets draw
// nothing. The canvas state is restored before returning.
func (e *ShadowEffect) Render(source image.Image, canvas rendering.Canvas, target graphics.Rect) {
	if source == nil || canvas == nil || source.Bounds().Empty() || target.IsEmpty() {
		return
	}
	src := raster.FromImage(source)
	l := e.compose(src)

	canvas.Save()
	defer canvas.Restore()

	if l.outside != nil {
		canvas.DrawImageRect(l.outside.Image(), graphics.Rect{}, target, rendering.FilterQualityMedium)
	}
	canvas.DrawImageRect(src.Image(), graphics.Rect{}, target, rendering.FilterQualityMedium)
	if l.inside != nil {
		b := float64(e.borderInset)
		inset := target.Inflate(-b, -b)
		if inset.IsEmpty() {
			return
		}
		canvas.DrawImageRect(l.inside.Image(), graphics.Rect{}, inset, rendering.FilterQualityMedium)
	}
}
