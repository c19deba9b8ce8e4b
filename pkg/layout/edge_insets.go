package layout

// EdgeInsets is spacing on each side of a box.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll returns insets of v on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsSymmetric returns horizontal insets on the left and right and
// vertical insets on the top and bottom.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly returns insets with each side given explicitly.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal is the sum of the left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical is the sum of the top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero reports whether every side is zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}
