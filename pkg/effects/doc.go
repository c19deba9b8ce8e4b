// Package effects implements ShadowEffect, a post-render effect that paints
// neumorphic shadows around and inside a rasterized element.
//
// A ShadowEffect holds an ordered list of [graphics.ShadowSpec]. Outside
// shadows are drawn beneath the element and never over its silhouette;
// inside shadows are drawn over the element and never outside it. Two
// pipelines are available:
//
//   - masked (default): shadows are stenciled through a binary mask of the
//     element's opaque pixels, giving hard-edged silhouettes before blur.
//   - smooth: shadows are tinted copies of the element that keep its
//     per-pixel alpha, so antialiased edges stay soft. Cheaper, and exact
//     for translucent elements.
//
// Typical use:
//
//	effect, err := effects.New(graphics.ShadowConfig{
//	    graphics.OutsideShadow(6, 6, 8, graphics.RGBA8(0, 0, 0, 178)),
//	    graphics.OutsideShadow(-6, -6, 8, graphics.RGB(58, 58, 58)),
//	})
//	source, at := effect.SourceFor(childImage)
//	b := source.Bounds()
//	effect.Render(source, canvas, graphics.RectFromLTWH(x-at.X, y-at.Y, float64(b.Dx()), float64(b.Dy())))
//
// Effects are not safe for concurrent use; configure and render from the
// same goroutine.
package effects
