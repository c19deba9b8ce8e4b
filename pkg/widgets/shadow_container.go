package widgets

import (
	"image"
	"math"

	"github.com/go-drift/neumorphism/pkg/effects"
	"github.com/go-drift/neumorphism/pkg/errors"
	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/layout"
	"github.com/go-drift/neumorphism/pkg/rendering"
)

// ShadowContainer wraps a child render box with a ShadowEffect and reserves
// room around the child so outside shadows are not clipped.
//
// Margins follow the effect's required margin unless they are overridden or
// disabled:
//
//	box, err := widgets.Wrap(child, shadows)                      // auto margins
//	box, err := widgets.Wrap(child, shadows, widgets.WithMargins(4, 4)) // fixed
//	box, err := widgets.Wrap(child, shadows, widgets.WithoutMargins())  // none
type ShadowContainer struct {
	layout.RenderBoxBase
	child           layout.RenderBox
	effect          *effects.ShadowEffect
	margins         layout.EdgeInsets
	marginsDisabled bool
}

// Option configures a ShadowContainer.
type Option func(*containerConfig) error

type containerConfig struct {
	effectOpts []effects.Option
	margins    *layout.EdgeInsets
	disabled   bool
}

// WithBorderInset sets the effect's inside-shadow inset.
func WithBorderInset(n int) Option {
	return func(c *containerConfig) error {
		c.effectOpts = append(c.effectOpts, effects.WithBorderInset(n))
		return nil
	}
}

// WithSmooth selects the effect's smooth pipeline.
func WithSmooth(smooth bool) Option {
	return func(c *containerConfig) error {
		c.effectOpts = append(c.effectOpts, effects.WithSmooth(smooth))
		return nil
	}
}

// WithEffectOptions passes options straight to the wrapped effect.
func WithEffectOptions(opts ...effects.Option) Option {
	return func(c *containerConfig) error {
		c.effectOpts = append(c.effectOpts, opts...)
		return nil
	}
}

// WithMargins fixes the margins instead of deriving them from the shadows.
// Two values are horizontal and vertical; four are left, top, right and
// bottom. Fixed margins imply disabled auto margins.
func WithMargins(values ...float64) Option {
	return func(c *containerConfig) error {
		m, err := marginsFrom(values)
		if err != nil {
			return err
		}
		c.margins = &m
		c.disabled = true
		return nil
	}
}

// WithoutMargins disables auto margins. Without an override the margins
// are zero.
func WithoutMargins() Option {
	return func(c *containerConfig) error {
		c.disabled = true
		return nil
	}
}

func marginsFrom(values []float64) (layout.EdgeInsets, error) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return layout.EdgeInsets{}, errors.InvalidConfig("margins", values, "value %d must be a finite non-negative number", i)
		}
	}
	switch len(values) {
	case 2:
		return layout.EdgeInsetsSymmetric(values[0], values[1]), nil
	case 4:
		return layout.EdgeInsetsOnly(values[0], values[1], values[2], values[3]), nil
	}
	return layout.EdgeInsets{}, errors.InvalidConfig("margins", values, "need 2 or 4 values, got %d", len(values))
}

// Wrap creates a container around child with the given shadows.
func Wrap(child layout.RenderBox, shadows graphics.ShadowConfig, opts ...Option) (*ShadowContainer, error) {
	var cfg containerConfig
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, &errors.Error{Op: "widgets.Wrap", Kind: errors.KindConfig, Err: err}
		}
	}
	effect, err := effects.New(shadows, cfg.effectOpts...)
	if err != nil {
		return nil, err
	}
	c := &ShadowContainer{effect: effect, marginsDisabled: cfg.disabled}
	if cfg.margins != nil {
		c.margins = *cfg.margins
	}
	c.SetSelf(c)
	c.syncMargins()
	c.SetChild(child)
	return c, nil
}

// syncMargins re-derives auto margins from the effect. It reports whether
// the margins changed.
func (r *ShadowContainer) syncMargins() bool {
	if r.marginsDisabled {
		return false
	}
	x, y := r.effect.RequiredMargin()
	next := layout.EdgeInsetsSymmetric(x, y)
	if next == r.margins {
		return false
	}
	r.margins = next
	return true
}

// SetShadows reconfigures the effect. Auto margins follow the new shadows;
// a margin change triggers relayout.
func (r *ShadowContainer) SetShadows(shadows graphics.ShadowConfig) error {
	if err := r.effect.Configure(shadows); err != nil {
		return err
	}
	if r.syncMargins() {
		r.MarkNeedsLayout()
	}
	r.MarkNeedsPaint()
	return nil
}

// SetBorderInset updates the effect's inside-shadow inset.
func (r *ShadowContainer) SetBorderInset(n int) {
	r.effect.SetBorderInset(n)
	r.MarkNeedsPaint()
}

// SetSmooth switches the effect's pipeline.
func (r *ShadowContainer) SetSmooth(smooth bool) {
	r.effect.SetSmooth(smooth)
	r.MarkNeedsPaint()
}

// Child returns the wrapped render box.
func (r *ShadowContainer) Child() layout.RenderBox {
	return r.child
}

// Effect returns the owned shadow effect.
func (r *ShadowContainer) Effect() *effects.ShadowEffect {
	return r.effect
}

// Margins returns the space reserved around the child.
func (r *ShadowContainer) Margins() layout.EdgeInsets {
	return r.margins
}

// MarginsDisabled reports whether margins are fixed rather than derived.
func (r *ShadowContainer) MarginsDisabled() bool {
	return r.marginsDisabled
}

// SetChild replaces the wrapped render box.
func (r *ShadowContainer) SetChild(child layout.RenderObject) {
	r.child = replaceChild(r, r.Owner(), r.child, child)
	r.MarkNeedsLayout()
}

// SetOwner attaches the container and its child to owner.
func (r *ShadowContainer) SetOwner(owner *layout.PipelineOwner) {
	r.RenderBoxBase.SetOwner(owner)
	if r.child != nil {
		r.child.SetOwner(owner)
	}
}

func (r *ShadowContainer) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

// IsRepaintBoundary isolates shadow repaints, which re-rasterize the child.
func (r *ShadowContainer) IsRepaintBoundary() bool {
	return true
}

func (r *ShadowContainer) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{
			Width:  r.margins.Horizontal(),
			Height: r.margins.Vertical(),
		}))
		return
	}
	childConstraints := constraints.Deflate(r.margins)
	r.child.Layout(childConstraints, true) // true: we read child.Size()
	childSize := r.child.Size()
	size := constraints.Constrain(graphics.Size{
		Width:  childSize.Width + r.margins.Horizontal(),
		Height: childSize.Height + r.margins.Vertical(),
	})
	r.SetSize(size)
	r.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{X: r.margins.Left, Y: r.margins.Top},
	})
}

// Paint rasterizes the child, pads it for the shadows and renders the
// effect around the child's position.
func (r *ShadowContainer) Paint(ctx *layout.PaintContext) {
	defer errors.Recover("widgets.ShadowContainer.Paint")
	if r.child == nil {
		return
	}
	size := r.child.Size()
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		return
	}
	raster := image.NewRGBA(image.Rect(0, 0, w, h))
	r.child.Paint(&layout.PaintContext{Canvas: rendering.NewImageCanvas(raster)})

	source, at := r.effect.SourceFor(raster)
	offset := layout.ChildOffset(r.child)
	b := source.Bounds()
	target := graphics.RectFromLTWH(offset.X-at.X, offset.Y-at.Y, float64(b.Dx()), float64(b.Dy()))
	r.effect.Render(source, ctx.Canvas, target)
}
