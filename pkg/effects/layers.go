package effects

import (
	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/raster"
)

// layers is a composed pair of shadow images for one source. Either side
// is nil when the configuration has no shadows of that placement.
type layers struct {
	outside *raster.Surface
	inside  *raster.Surface
}

// pipeline composes the outside and inside layers for a source surface.
type pipeline interface {
	outside(src *raster.Surface, specs graphics.ShadowConfig) *raster.Surface
	inside(src *raster.Surface, specs graphics.ShadowConfig) *raster.Surface
}

func (e *ShadowEffect) pipeline() pipeline {
	if e.smooth {
		return smoothPipeline{}
	}
	return maskedPipeline{}
}

// compose builds both layers, consulting the cache first.
func (e *ShadowEffect) compose(src *raster.Surface) layers {
	key := ""
	if e.cache != nil {
		key = layerKey(e.shadows, e.smooth, src)
		if l, ok := e.cache.get(key); ok {
			e.logger.Debug("shadow layers cache hit", "size", src.Bounds().Size())
			return l
		}
	}

	p := e.pipeline()
	var l layers
	if specs := e.shadows.Filter(graphics.PlacementOutside); len(specs) > 0 {
		l.outside = p.outside(src, specs)
	}
	if specs := e.shadows.Filter(graphics.PlacementInside); len(specs) > 0 {
		l.inside = p.inside(src, specs)
	}

	if e.cache != nil {
		e.cache.add(key, l)
	}
	return l
}
