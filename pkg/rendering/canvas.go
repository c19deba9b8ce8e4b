package rendering

import (
	"image"

	"github.com/go-drift/neumorphism/pkg/graphics"
)

// FilterQuality controls image sampling quality during scaling.
type FilterQuality int

const (
	FilterQualityNone   FilterQuality = iota // Nearest neighbor (pixelated)
	FilterQualityLow                         // Approximate bilinear
	FilterQualityMedium                      // Bilinear
	FilterQualityHigh                        // Bicubic (Catmull-Rom)
)

// Canvas is the host painting context an effect draws into.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// DrawImage draws an image with its top-left corner at the given position.
	DrawImage(img image.Image, position graphics.Offset)

	// DrawImageRect draws an image from srcRect to dstRect with sampling quality.
	// srcRect selects the source region (zero rect = entire image).
	DrawImageRect(img image.Image, srcRect, dstRect graphics.Rect, quality FilterQuality)

	// Size returns the size of the canvas in pixels.
	Size() graphics.Size
}
