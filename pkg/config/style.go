package config

import (
	"fmt"

	"github.com/go-drift/neumorphism/pkg/effects"
	"github.com/go-drift/neumorphism/pkg/errors"
	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/widgets"
)

// Style is one named entry of a style document.
type Style struct {
	BorderInset    int       `yaml:"border_inset,omitempty" toml:"border_inset"`
	Smooth         bool      `yaml:"smooth,omitempty" toml:"smooth"`
	DisableMargins bool      `yaml:"disable_margins,omitempty" toml:"disable_margins"`
	Margins        []float64 `yaml:"margins,omitempty" toml:"margins"`
	Shadows        []Shadow  `yaml:"shadows" toml:"shadows"`
}

// Shadow is one shadow entry. Placement is given either as
// placement: outside|inside or with a legacy marker (outside: true or
// inside: true).
type Shadow struct {
	Placement string     `yaml:"placement,omitempty" toml:"placement"`
	Outside   *bool      `yaml:"outside,omitempty" toml:"outside"`
	Inside    *bool      `yaml:"inside,omitempty" toml:"inside"`
	Offset    []float64  `yaml:"offset,flow" toml:"offset"`
	Blur      float64    `yaml:"blur" toml:"blur"`
	Color     ColorValue `yaml:"color" toml:"color"`
}

func marked(b *bool) bool {
	return b != nil && *b
}

// placement resolves the explicit field and the legacy markers.
func (s Shadow) placement() (graphics.Placement, error) {
	outside, inside := marked(s.Outside), marked(s.Inside)
	if outside && inside {
		return graphics.PlacementUnset, errors.InvalidConfig("placement", nil, "both outside and inside markers are set")
	}
	var legacy graphics.Placement
	switch {
	case outside:
		legacy = graphics.PlacementOutside
	case inside:
		legacy = graphics.PlacementInside
	}
	if s.Placement == "" {
		if legacy == graphics.PlacementUnset {
			return graphics.PlacementUnset, errors.InvalidConfig("placement", nil, "neither outside nor inside is set")
		}
		return legacy, nil
	}
	p, err := graphics.ParsePlacement(s.Placement)
	if err != nil {
		return graphics.PlacementUnset, err
	}
	if legacy != graphics.PlacementUnset && legacy != p {
		return graphics.PlacementUnset, errors.InvalidConfig("placement", s.Placement, "conflicts with the %s marker", legacy)
	}
	return p, nil
}

// Spec converts the entry to a graphics.ShadowSpec.
func (s Shadow) Spec() (graphics.ShadowSpec, error) {
	placement, err := s.placement()
	if err != nil {
		return graphics.ShadowSpec{}, err
	}
	var offset graphics.Offset
	switch len(s.Offset) {
	case 0:
	case 2:
		offset = graphics.Offset{X: s.Offset[0], Y: s.Offset[1]}
	default:
		return graphics.ShadowSpec{}, errors.InvalidConfig("offset", s.Offset, "need 2 values, got %d", len(s.Offset))
	}
	color, err := s.Color.Color()
	if err != nil {
		return graphics.ShadowSpec{}, err
	}
	spec := graphics.ShadowSpec{
		Placement:  placement,
		Offset:     offset,
		BlurRadius: s.Blur,
		Color:      color,
	}
	if err := spec.Validate(); err != nil {
		return graphics.ShadowSpec{}, err
	}
	return spec, nil
}

// ShadowConfig converts every shadow entry, in order.
func (s Style) ShadowConfig() (graphics.ShadowConfig, error) {
	if len(s.Shadows) == 0 {
		return nil, nil
	}
	out := make(graphics.ShadowConfig, 0, len(s.Shadows))
	for i, sh := range s.Shadows {
		spec, err := sh.Spec()
		if err != nil {
			return nil, errors.WithField(fmt.Sprintf("shadows[%d]", i), err)
		}
		out = append(out, spec)
	}
	return out, nil
}

// Validate checks the style without building anything.
func (s Style) Validate() error {
	if s.BorderInset < 0 {
		return errors.InvalidConfig("border_inset", s.BorderInset, "must not be negative")
	}
	if n := len(s.Margins); n != 0 && n != 2 && n != 4 {
		return errors.InvalidConfig("margins", s.Margins, "need 2 or 4 values, got %d", n)
	}
	_, err := s.ShadowConfig()
	return err
}

// EffectOptions returns the effect settings of the style.
func (s Style) EffectOptions() []effects.Option {
	return []effects.Option{
		effects.WithBorderInset(s.BorderInset),
		effects.WithSmooth(s.Smooth),
	}
}

// ContainerOptions returns the container settings of the style. Explicit
// margins take precedence over DisableMargins.
func (s Style) ContainerOptions() []widgets.Option {
	opts := []widgets.Option{
		widgets.WithBorderInset(s.BorderInset),
		widgets.WithSmooth(s.Smooth),
	}
	switch {
	case len(s.Margins) > 0:
		opts = append(opts, widgets.WithMargins(s.Margins...))
	case s.DisableMargins:
		opts = append(opts, widgets.WithoutMargins())
	}
	return opts
}
