// Package widgets provides render boxes that host shadow effects.
//
// [ShadowContainer] wraps any [layout.RenderBox] with a
// [effects.ShadowEffect]. It lays the child out inside margins large enough
// for the outside shadows, rasterizes the child on paint and renders the
// effect around it.
//
// Two leaf boxes cover the common children:
//
//   - [DecoratedBox]: a filled rounded rectangle
//   - [ImageBox]: a bitmap, scaled by an [ImageFit] mode
//
// Example:
//
//	card := widgets.NewDecoratedBox(graphics.RGB(46, 52, 64), 12, 120, 80)
//	box, err := widgets.Wrap(card, graphics.ShadowConfig{
//	    graphics.OutsideShadow(6, 6, 8, graphics.RGBA8(0, 0, 0, 178)),
//	    graphics.OutsideShadow(-6, -6, 8, graphics.RGB(58, 58, 58)),
//	})
package widgets
