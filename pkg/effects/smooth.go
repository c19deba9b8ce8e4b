package effects

import (
	"image"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/raster"
)

// smoothPipeline builds shadows from tinted copies of the source, keeping
// its per-pixel alpha.
type smoothPipeline struct{}

func (smoothPipeline) outside(src *raster.Surface, specs graphics.ShadowConfig) *raster.Surface {
	out := raster.NewSurface(src.Width(), src.Height())
	for _, s := range specs {
		layer := raster.NewSurface(src.Width(), src.Height())
		layer.CompositeAt(src.Tinted(s.Color).Image(), s.Offset, graphics.BlendModeSrcOver)
		layer.Blur(s.BlurRadius)
		out.Composite(layer.Image(), image.Point{}, graphics.BlendModeSrcOver)
	}
	out.Composite(src.Image(), image.Point{}, graphics.BlendModeDstOut)
	return out
}

func (smoothPipeline) inside(src *raster.Surface, specs graphics.ShadowConfig) *raster.Surface {
	out := raster.NewSurface(src.Width(), src.Height())
	for _, s := range specs {
		layer := src.Tinted(s.Color)
		layer.CompositeAt(src.Image(), s.Offset.Scale(0.5), graphics.BlendModeDstOut)
		layer.Blur(s.BlurRadius)
		out.Composite(layer.Image(), image.Point{}, graphics.BlendModeSrcOver)
	}
	out.Composite(src.Image(), image.Point{}, graphics.BlendModeDstIn)
	return out
}
