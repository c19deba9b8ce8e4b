package effects

import (
	"image"
	"math"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/raster"
)

// maskedPipeline builds shadows from a binary mask of the source's
// non-transparent pixels. Offsets are rounded to whole pixels.
type maskedPipeline struct{}

func (maskedPipeline) outside(src *raster.Surface, specs graphics.ShadowConfig) *raster.Surface {
	silhouette := raster.AlphaMask(src.Image())
	w, h := src.Width(), src.Height()
	out := raster.NewSurface(w, h)
	for _, s := range specs {
		layer := raster.NewSurface(w, h)
		layer.Stencil(silhouette, pixelOffset(s.Offset), s.Color)
		layer.Blur(s.BlurRadius)
		out.Composite(layer.Image(), image.Point{}, graphics.BlendModeSrcOver)
	}
	out.Punch(silhouette)
	return out
}

func (maskedPipeline) inside(src *raster.Surface, specs graphics.ShadowConfig) *raster.Surface {
	silhouette := raster.AlphaMask(src.Image())
	w, h := src.Width(), src.Height()
	out := raster.NewSurface(w, h)
	for _, s := range specs {
		layer := raster.NewSurface(w, h)
		layer.Stencil(silhouette, image.Point{}, s.Color)
		layer.Stencil(silhouette, pixelOffset(s.Offset), markerFor(s.Color))
		// Pixels still holding the shadow color form the crescent the
		// shifted silhouette did not cover.
		ring := raster.MaskFromColor(layer.Image(), s.Color, raster.MaskInColor)
		layer.Clear()
		layer.Stencil(ring, image.Point{}, s.Color)
		layer.Blur(s.BlurRadius)
		out.Composite(layer.Image(), image.Point{}, graphics.BlendModeSrcOver)
	}
	out.Keep(silhouette)
	return out
}

// markerFor returns an opaque color guaranteed to differ from c: black,
// or white when c's RGB is already black.
func markerFor(c graphics.Color) graphics.Color {
	if c.Name() == "#000000" {
		return graphics.ColorWhite
	}
	return graphics.ColorBlack
}

func pixelOffset(o graphics.Offset) image.Point {
	return image.Pt(int(math.Round(o.X)), int(math.Round(o.Y)))
}
