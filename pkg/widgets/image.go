package widgets

import (
	"fmt"
	"image"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/layout"
	"github.com/go-drift/neumorphism/pkg/rendering"
)

// ImageFit controls how an image is scaled within its box.
type ImageFit int

const (
	// ImageFitContain scales the image to fit within its bounds.
	// This is the zero value, making it the default for [ImageBox].
	ImageFitContain ImageFit = iota
	// ImageFitFill stretches the image to fill its bounds.
	ImageFitFill
	// ImageFitCover scales the image to cover its bounds.
	ImageFitCover
	// ImageFitNone leaves the image at its intrinsic size.
	ImageFitNone
	// ImageFitScaleDown fits the image if needed, otherwise keeps intrinsic size.
	ImageFitScaleDown
)

// String returns a human-readable representation of the image fit mode.
func (f ImageFit) String() string {
	switch f {
	case ImageFitFill:
		return "fill"
	case ImageFitContain:
		return "contain"
	case ImageFitCover:
		return "cover"
	case ImageFitNone:
		return "none"
	case ImageFitScaleDown:
		return "scale_down"
	default:
		return fmt.Sprintf("ImageFit(%d)", int(f))
	}
}

// ImageBox is a leaf render box that paints a bitmap, centered within its
// bounds according to Fit.
//
// The box takes the image's intrinsic size unless Width or Height is set;
// setting one of them scales the other to keep the aspect ratio.
type ImageBox struct {
	layout.RenderBoxBase
	// Image is the bitmap to paint.
	Image image.Image
	// Width overrides the image width if non-zero.
	Width float64
	// Height overrides the image height if non-zero.
	Height float64
	// Fit controls how the image is scaled within its bounds.
	Fit ImageFit

	intrinsic graphics.Size
}

// NewImageBox returns a box showing img at its intrinsic size.
func NewImageBox(img image.Image) *ImageBox {
	b := &ImageBox{Image: img}
	b.SetSelf(b)
	return b
}

// SetImage replaces the bitmap.
func (r *ImageBox) SetImage(img image.Image) {
	r.Image = img
	r.MarkNeedsLayout()
	r.MarkNeedsPaint()
}

func (r *ImageBox) PerformLayout() {
	constraints := r.Constraints()
	if r.Image == nil {
		r.intrinsic = graphics.Size{}
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}

	bounds := r.Image.Bounds()
	intrinsic := graphics.Size{
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
	}
	r.intrinsic = intrinsic

	size := intrinsic
	if r.Width > 0 && r.Height > 0 {
		size = graphics.Size{Width: r.Width, Height: r.Height}
	} else if r.Width > 0 && intrinsic.Width > 0 {
		scale := r.Width / intrinsic.Width
		size = graphics.Size{Width: r.Width, Height: intrinsic.Height * scale}
	} else if r.Height > 0 && intrinsic.Height > 0 {
		scale := r.Height / intrinsic.Height
		size = graphics.Size{Width: intrinsic.Width * scale, Height: r.Height}
	}

	r.SetSize(constraints.Constrain(size))
}

func (r *ImageBox) Paint(ctx *layout.PaintContext) {
	if r.Image == nil {
		return
	}
	size := r.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	if r.intrinsic.Width <= 0 || r.intrinsic.Height <= 0 {
		return
	}

	srcRect, dstRect := r.computeFitRects(r.Fit, size)
	if srcRect.IsEmpty() || dstRect.IsEmpty() {
		return
	}
	ctx.Canvas.DrawImageRect(r.Image, srcRect, dstRect, rendering.FilterQualityLow)
}

// centered returns the offset that centers content of size inner in box.
func centered(box, inner graphics.Size) graphics.Offset {
	return graphics.Offset{X: (box.Width - inner.Width) / 2, Y: (box.Height - inner.Height) / 2}
}

func (r *ImageBox) computeFitRects(fit ImageFit, box graphics.Size) (src, dst graphics.Rect) {
	intrinsic := r.intrinsic
	fullSrc := graphics.RectFromLTWH(0, 0, intrinsic.Width, intrinsic.Height)

	switch fit {
	case ImageFitFill:
		return fullSrc, graphics.RectFromLTWH(0, 0, box.Width, box.Height)

	case ImageFitContain, ImageFitScaleDown:
		scale := min(box.Width/intrinsic.Width, box.Height/intrinsic.Height)
		if fit == ImageFitScaleDown && scale > 1 {
			scale = 1
		}
		drawSize := graphics.Size{Width: intrinsic.Width * scale, Height: intrinsic.Height * scale}
		offset := centered(box, drawSize)
		return fullSrc, graphics.RectFromLTWH(offset.X, offset.Y, drawSize.Width, drawSize.Height)

	case ImageFitCover:
		scale := max(box.Width/intrinsic.Width, box.Height/intrinsic.Height)
		scaledSize := graphics.Size{Width: intrinsic.Width * scale, Height: intrinsic.Height * scale}
		offset := centered(box, scaledSize)
		// Convert back to source coordinates
		srcX, srcY := -offset.X/scale, -offset.Y/scale
		srcW, srcH := box.Width/scale, box.Height/scale
		return graphics.RectFromLTWH(srcX, srcY, srcW, srcH), graphics.RectFromLTWH(0, 0, box.Width, box.Height)

	case ImageFitNone:
		// Larger images are cropped to the box.
		visible := graphics.Size{Width: min(intrinsic.Width, box.Width), Height: min(intrinsic.Height, box.Height)}
		srcOff := centered(intrinsic, visible)
		dstOff := centered(box, visible)
		return graphics.RectFromLTWH(srcOff.X, srcOff.Y, visible.Width, visible.Height),
			graphics.RectFromLTWH(dstOff.X, dstOff.Y, visible.Width, visible.Height)
	}
	return fullSrc, graphics.RectFromLTWH(0, 0, box.Width, box.Height)
}
