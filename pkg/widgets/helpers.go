package widgets

import (
	"github.com/go-drift/neumorphism/pkg/layout"
)

// replaceChild detaches old from parent and attaches next in its place,
// sharing the parent's pipeline owner.
func replaceChild(parent layout.RenderObject, owner *layout.PipelineOwner, old layout.RenderBox, next layout.RenderObject) layout.RenderBox {
	if old != nil {
		layout.SetParentOnChild(old, nil)
	}
	child := layout.AsRenderBox(next)
	if child == nil {
		return nil
	}
	child.SetOwner(owner)
	layout.SetParentOnChild(child, parent)
	return child
}
