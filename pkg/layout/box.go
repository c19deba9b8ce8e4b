package layout

import "github.com/go-drift/neumorphism/pkg/graphics"

type dirtyFlags uint8

const (
	dirtyLayout dirtyFlags = 1 << iota
	dirtyPaint
)

// RenderBoxBase carries the bookkeeping every render box shares: size,
// parent data, tree links, dirty flags and the nearest relayout and repaint
// boundaries. Embedders call SetSelf once, then implement PerformLayout
// and Paint.
//
// Dirty marks travel up the tree. MarkNeedsLayout stops at the nearest
// relayout boundary and MarkNeedsPaint at the nearest repaint boundary;
// the boundary is handed to the PipelineOwner.
type RenderBoxBase struct {
	self        RenderObject
	parent      RenderObject
	owner       *PipelineOwner
	depth       int
	size        graphics.Size
	parentData  any
	constraints Constraints
	dirty       dirtyFlags
	layoutRoot  RenderObject
	paintRoot   RenderObject
}

// SetSelf registers the embedding render object. A new object starts dirty
// for both layout and paint.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.dirty = dirtyLayout | dirtyPaint
}

// Self returns the object registered with SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize records the laid out size; a change needs repaint.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData stores parent-owned data. A moved child repaints its parent.
func (r *RenderBoxBase) SetParentData(data any) {
	if next, ok := data.(*BoxParentData); ok && r.parent != nil {
		prev, had := r.parentData.(*BoxParentData)
		if !had || prev.Offset != next.Offset {
			r.parent.MarkNeedsPaint()
		}
	}
	r.parentData = data
}

func (r *RenderBoxBase) Owner() *PipelineOwner {
	return r.owner
}

func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent relinks the box. Cached boundaries and constraints belong to
// the old position in the tree, so they are dropped and the box is dirtied.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	previous := r.parent
	r.parent = parent
	r.depth = 0
	if parent != nil {
		r.depth = depthOf(parent) + 1
	}
	r.layoutRoot = nil
	r.paintRoot = nil
	r.constraints = Constraints{}
	r.dirty = dirtyLayout | dirtyPaint

	if previous != nil {
		previous.MarkNeedsPaint()
	}
	if parent != nil {
		parent.MarkNeedsPaint()
	}
}

// Depth is the distance from the root, which has depth 0.
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// Constraints returns the constraints of the last layout.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

func (r *RenderBoxBase) NeedsLayout() bool {
	return r.dirty&dirtyLayout != 0
}

func (r *RenderBoxBase) NeedsPaint() bool {
	return r.dirty&dirtyPaint != 0
}

// ClearNeedsPaint marks the box as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.dirty &^= dirtyPaint
}

// IsRepaintBoundary reports false; boxes that isolate their paint override it.
func (r *RenderBoxBase) IsRepaintBoundary() bool {
	return false
}

func (r *RenderBoxBase) RelayoutBoundary() RenderObject {
	return r.layoutRoot
}

func (r *RenderBoxBase) RepaintBoundary() RenderObject {
	return r.paintRoot
}

// MarkNeedsLayout dirties the box and every ancestor up to the relayout
// boundary, which is scheduled with the owner.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.NeedsLayout() {
		return
	}
	r.dirty |= dirtyLayout
	if r.owner == nil || r.self == nil {
		return
	}
	if r.parent != nil && r.layoutRoot != r.self {
		r.parent.MarkNeedsLayout()
		return
	}
	r.owner.ScheduleLayout(r.self)
}

// MarkNeedsPaint dirties the box and walks up to the repaint boundary. It
// does not stop early on an already dirty box: SetSelf dirties without
// scheduling, and the owner deduplicates.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.dirty |= dirtyPaint
	if r.owner == nil || r.self == nil {
		return
	}
	if r.parent != nil && !r.self.IsRepaintBoundary() {
		r.parent.MarkNeedsPaint()
		return
	}
	r.owner.SchedulePaint(r.self)
}

// Layout resolves the boundaries for this position in the tree and runs
// PerformLayout unless the box is clean and the constraints are unchanged.
//
// The box is its own relayout boundary when it is the root, receives tight
// constraints, or its parent ignores its size.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	r.layoutRoot = r.self
	if r.parent != nil && parentUsesSize && !constraints.IsTight() {
		r.layoutRoot = relayoutBoundaryOf(r.parent)
	}

	switch {
	case r.self != nil && r.self.IsRepaintBoundary():
		r.paintRoot = r.self
		// First layout is the earliest point a boundary can be scheduled.
		if r.NeedsPaint() && r.owner != nil {
			r.owner.SchedulePaint(r.self)
		}
	case r.parent != nil:
		r.paintRoot = repaintBoundaryOf(r.parent)
	}

	if !r.NeedsLayout() && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.dirty &^= dirtyLayout

	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}
