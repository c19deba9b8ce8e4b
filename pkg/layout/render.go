package layout

import (
	"github.com/go-drift/neumorphism/pkg/graphics"
)

// RenderObject is a node of the render tree: it sizes itself under
// constraints and paints onto a canvas.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
	IsRepaintBoundary() bool
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset a parent assigned to a child.
type BoxParentData struct {
	Offset graphics.Offset
}

// Walk calls fn for root and then each descendant, parents first.
func Walk(root RenderObject, fn func(RenderObject)) {
	if root == nil {
		return
	}
	fn(root)
	if v, ok := root.(ChildVisitor); ok {
		v.VisitChildren(func(child RenderObject) {
			Walk(child, fn)
		})
	}
}

// Attach hands owner to root and all its descendants. A nil owner detaches
// the tree.
func Attach(root RenderObject, owner *PipelineOwner) {
	Walk(root, func(o RenderObject) {
		o.SetOwner(owner)
	})
}

// SetParentOnChild links child under parent. When the link changes, both
// the old and the new parent are marked for layout.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	linker, ok := child.(interface {
		Parent() RenderObject
		SetParent(RenderObject)
	})
	if !ok {
		return
	}
	previous := linker.Parent()
	if previous == parent {
		return
	}
	linker.SetParent(parent)
	for _, p := range []RenderObject{previous, parent} {
		if p != nil {
			p.MarkNeedsLayout()
		}
	}
}

// AsRenderBox returns child as a RenderBox, or nil.
func AsRenderBox(child RenderObject) RenderBox {
	box, _ := child.(RenderBox)
	return box
}

// ChildOffset returns the offset a parent assigned to child, or zero.
func ChildOffset(child RenderObject) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}

func depthOf(o RenderObject) int {
	if d, ok := o.(interface{ Depth() int }); ok {
		return d.Depth()
	}
	return 0
}

func relayoutBoundaryOf(o RenderObject) RenderObject {
	if b, ok := o.(interface{ RelayoutBoundary() RenderObject }); ok {
		return b.RelayoutBoundary()
	}
	return nil
}

func repaintBoundaryOf(o RenderObject) RenderObject {
	if b, ok := o.(interface{ RepaintBoundary() RenderObject }); ok {
		return b.RepaintBoundary()
	}
	return nil
}
