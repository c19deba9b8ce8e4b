package layout

import (
	"math"

	"github.com/go-drift/neumorphism/pkg/graphics"
)

// Constraints bound the size a render box may choose.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow any size up to size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no maximum.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Deflate shrinks the constraints by insets, never below zero.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	h := insets.Horizontal()
	v := insets.Vertical()
	minW := math.Max(0, c.MinWidth-h)
	minH := math.Max(0, c.MinHeight-v)
	return Constraints{
		MinWidth:  minW,
		MaxWidth:  math.Max(minW, c.MaxWidth-h),
		MinHeight: minH,
		MaxHeight: math.Max(minH, c.MaxHeight-v),
	}
}

// Loosen drops the minimums.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// IsTight reports whether exactly one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
