package effects

import (
	"image"
	"image/draw"
	"math"

	"github.com/charmbracelet/log"

	"github.com/go-drift/neumorphism/pkg/errors"
	"github.com/go-drift/neumorphism/pkg/graphics"
)

// DefaultCacheSize is the number of composed shadow layer pairs kept per
// effect.
const DefaultCacheSize = 8

// ShadowEffect renders outside and inside shadows for one element.
type ShadowEffect struct {
	shadows     graphics.ShadowConfig
	borderInset int
	smooth      bool
	maxXMargin  float64
	maxYMargin  float64
	cache       *layerCache
	logger      *log.Logger
}

// Option configures a ShadowEffect.
type Option func(*ShadowEffect)

// WithBorderInset sets how far inside shadows are inset from the element's
// edge. Negative values are clamped to zero.
func WithBorderInset(n int) Option {
	return func(e *ShadowEffect) { e.SetBorderInset(n) }
}

// WithSmooth selects the smooth pipeline.
func WithSmooth(smooth bool) Option {
	return func(e *ShadowEffect) { e.smooth = smooth }
}

// WithCacheSize sets how many composed layer pairs are cached. Zero
// disables caching.
func WithCacheSize(n int) Option {
	return func(e *ShadowEffect) { e.cache = newLayerCache(n) }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *ShadowEffect) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an effect configured with shadows.
func New(shadows graphics.ShadowConfig, opts ...Option) (*ShadowEffect, error) {
	e := &ShadowEffect{
		cache:  newLayerCache(DefaultCacheSize),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.Configure(shadows); err != nil {
		return nil, err
	}
	return e, nil
}

// Configure replaces the shadow list and recomputes the required margin.
// A nil or empty list means no shadows. On error the previous
// configuration is kept.
func (e *ShadowEffect) Configure(shadows graphics.ShadowConfig) error {
	if err := shadows.Validate(); err != nil {
		return &errors.Error{Op: "effects.Configure", Kind: errors.KindConfig, Err: err}
	}
	e.shadows = shadows.Clone()
	e.maxXMargin, e.maxYMargin = requiredMargin(e.shadows)
	e.cache.purge()
	e.logger.Debug("shadow effect configured",
		"outside", len(e.shadows.Filter(graphics.PlacementOutside)),
		"inside", len(e.shadows.Filter(graphics.PlacementInside)),
		"margin_x", e.maxXMargin,
		"margin_y", e.maxYMargin,
	)
	return nil
}

// requiredMargin is the largest extent of any outside shadow on each axis.
// Inside shadows never leave the silhouette and contribute nothing.
func requiredMargin(shadows graphics.ShadowConfig) (x, y float64) {
	for _, s := range shadows {
		if s.Placement != graphics.PlacementOutside {
			continue
		}
		ex, ey := s.Extent()
		x = math.Max(x, ex)
		y = math.Max(y, ey)
	}
	return x, y
}

// Shadows returns a copy of the current shadow list.
func (e *ShadowEffect) Shadows() graphics.ShadowConfig {
	return e.shadows.Clone()
}

// SetBorderInset sets the inside-shadow inset, clamped to zero.
func (e *ShadowEffect) SetBorderInset(n int) {
	e.borderInset = max(0, n)
}

// BorderInset returns the inside-shadow inset in pixels.
func (e *ShadowEffect) BorderInset() int {
	return e.borderInset
}

// SetSmooth switches between the masked and smooth pipelines. The required
// margin does not depend on the pipeline.
func (e *ShadowEffect) SetSmooth(smooth bool) {
	if e.smooth == smooth {
		return
	}
	e.smooth = smooth
	e.cache.purge()
}

// Smooth reports whether the smooth pipeline is selected.
func (e *ShadowEffect) Smooth() bool {
	return e.smooth
}

// RequiredMargin returns the extra space needed on each side of the element
// to show every outside shadow without clipping.
func (e *ShadowEffect) RequiredMargin() (x, y float64) {
	return e.maxXMargin, e.maxYMargin
}

// BoundsFor expands content by the required margin on every side, giving
// the total area the effect paints.
func (e *ShadowEffect) BoundsFor(content graphics.Rect) graphics.Rect {
	return content.Inflate(e.maxXMargin, e.maxYMargin)
}

// SourceFor pads a rasterized element with transparent pixels so every
// outside shadow fits. Padding is the required margin rounded up to whole
// pixels. It returns the padded image and where the element's top-left
// corner sits inside it.
func (e *ShadowEffect) SourceFor(child image.Image) (*image.RGBA, graphics.Offset) {
	mx := int(math.Ceil(e.maxXMargin))
	my := int(math.Ceil(e.maxYMargin))
	b := child.Bounds()
	if b.Empty() {
		return image.NewRGBA(image.Rectangle{}), graphics.Offset{}
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*mx, b.Dy()+2*my))
	draw.Draw(out, image.Rect(mx, my, mx+b.Dx(), my+b.Dy()), child, b.Min, draw.Src)
	return out, graphics.Offset{X: float64(mx), Y: float64(my)}
}
