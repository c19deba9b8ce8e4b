package graphics

import (
	"fmt"
	"math"

	"github.com/go-drift/neumorphism/pkg/errors"
)

// Placement selects which side of the element's silhouette a shadow is
// drawn on.
type Placement int

const (
	// PlacementUnset is the zero value and is rejected by Validate.
	PlacementUnset Placement = iota
	// PlacementOutside draws the shadow around the element, never over it.
	PlacementOutside
	// PlacementInside draws the shadow within the element's silhouette.
	PlacementInside
)

// String returns a human-readable representation of the placement.
func (p Placement) String() string {
	switch p {
	case PlacementUnset:
		return "unset"
	case PlacementOutside:
		return "outside"
	case PlacementInside:
		return "inside"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}

// ParsePlacement converts "outside" or "inside" to a Placement.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "outside":
		return PlacementOutside, nil
	case "inside":
		return PlacementInside, nil
	default:
		return PlacementUnset, errors.InvalidConfig("placement", s, `must be "outside" or "inside"`)
	}
}

// ShadowSpec describes one neumorphic shadow layer.
//
// BlurRadius controls softness. Sigma for the Gaussian is BlurRadius * 0.5;
// a radius of 0 draws a sharp shadow. Offset may be negative to shift the
// shadow up or left.
type ShadowSpec struct {
	Placement  Placement
	Offset     Offset
	BlurRadius float64
	Color      Color
}

// OutsideShadow creates a shadow drawn around the element.
func OutsideShadow(dx, dy, blurRadius float64, color Color) ShadowSpec {
	return ShadowSpec{
		Placement:  PlacementOutside,
		Offset:     Offset{X: dx, Y: dy},
		BlurRadius: blurRadius,
		Color:      color,
	}
}

// InsideShadow creates a shadow drawn within the element.
func InsideShadow(dx, dy, blurRadius float64, color Color) ShadowSpec {
	return ShadowSpec{
		Placement:  PlacementInside,
		Offset:     Offset{X: dx, Y: dy},
		BlurRadius: blurRadius,
		Color:      color,
	}
}

// Sigma returns the Gaussian blur sigma.
// Returns 0 if BlurRadius is zero or negative.
func (s ShadowSpec) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// Extent returns how far the shadow reaches past the element's edge on
// each axis: |offset| + 2*blur.
func (s ShadowSpec) Extent() (x, y float64) {
	return math.Abs(s.Offset.X) + 2*s.BlurRadius, math.Abs(s.Offset.Y) + 2*s.BlurRadius
}

// Validate checks that the spec can be rendered.
func (s ShadowSpec) Validate() error {
	if s.Placement != PlacementOutside && s.Placement != PlacementInside {
		return errors.InvalidConfig("placement", s.Placement, "must be outside or inside")
	}
	if math.IsNaN(s.BlurRadius) || math.IsInf(s.BlurRadius, 0) || s.BlurRadius < 0 {
		return errors.InvalidConfig("blur", s.BlurRadius, "must be a finite non-negative number")
	}
	if !isFinite(s.Offset.X) || !isFinite(s.Offset.Y) {
		return errors.InvalidConfig("offset", s.Offset, "must be finite")
	}
	return nil
}

// ShadowConfig is an ordered list of shadows. Later entries are drawn over
// earlier ones within the same placement.
type ShadowConfig []ShadowSpec

// Validate checks every spec, reporting the index of the first bad one.
func (c ShadowConfig) Validate() error {
	for i, s := range c {
		if err := s.Validate(); err != nil {
			return errors.WithField(fmt.Sprintf("shadows[%d]", i), err)
		}
	}
	return nil
}

// Filter returns the specs with the given placement, preserving order.
func (c ShadowConfig) Filter(p Placement) ShadowConfig {
	var out ShadowConfig
	for _, s := range c {
		if s.Placement == p {
			out = append(out, s)
		}
	}
	return out
}

// Clone returns an independent copy.
func (c ShadowConfig) Clone() ShadowConfig {
	if c == nil {
		return nil
	}
	out := make(ShadowConfig, len(c))
	copy(out, c)
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
