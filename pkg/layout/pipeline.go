package layout

import (
	"slices"

	"github.com/go-drift/neumorphism/pkg/rendering"
)

// dirtySet is a deduplicated queue of render objects.
type dirtySet struct {
	items []RenderObject
	seen  map[RenderObject]struct{}
}

func (s *dirtySet) add(o RenderObject) {
	if _, ok := s.seen[o]; ok {
		return
	}
	if s.seen == nil {
		s.seen = make(map[RenderObject]struct{})
	}
	s.seen[o] = struct{}{}
	s.items = append(s.items, o)
}

func (s *dirtySet) empty() bool {
	return len(s.items) == 0
}

// take empties the set and returns its items, shallowest first.
func (s *dirtySet) take() []RenderObject {
	items := s.items
	s.items, s.seen = nil, nil
	slices.SortStableFunc(items, func(a, b RenderObject) int {
		return depthOf(a) - depthOf(b)
	})
	return items
}

// PipelineOwner collects the boundaries that need layout or paint and
// flushes them once per frame.
type PipelineOwner struct {
	layout dirtySet
	paint  dirtySet
}

// ScheduleLayout queues a relayout boundary. Intermediate nodes are only
// marked, never scheduled.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	p.layout.add(object)
}

// SchedulePaint queues a repaint boundary.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	p.paint.add(object)
}

// NeedsLayout reports whether a boundary is queued for layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return !p.layout.empty()
}

// NeedsPaint reports whether the next frame must repaint. Pending layout
// always implies a repaint.
func (p *PipelineOwner) NeedsPaint() bool {
	return !p.paint.empty() || !p.layout.empty()
}

// FlushLayoutForRoot lays out root under constraints, then every boundary
// still dirty, parents first. Boundaries dirtied during the pass are
// picked up by the next round.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if root == nil || p.layout.empty() {
		return
	}
	root.Layout(constraints, false)

	for !p.layout.empty() {
		for _, node := range p.layout.take() {
			l, ok := node.(interface {
				NeedsLayout() bool
				Constraints() Constraints
			})
			if ok && l.NeedsLayout() {
				node.Layout(l.Constraints(), false)
			}
		}
	}
}

// FlushPaint drains the paint queue and returns the boundaries that are
// still dirty, parents first.
func (p *PipelineOwner) FlushPaint() []RenderObject {
	var dirty []RenderObject
	for _, node := range p.paint.take() {
		if np, ok := node.(interface{ NeedsPaint() bool }); ok && np.NeedsPaint() {
			dirty = append(dirty, node)
		}
	}
	return dirty
}

// PaintRoot paints root onto canvas and marks the whole tree as painted.
func (p *PipelineOwner) PaintRoot(root RenderObject, canvas rendering.Canvas) {
	if root == nil || canvas == nil {
		return
	}
	root.Paint(&PaintContext{Canvas: canvas})
	Walk(root, func(o RenderObject) {
		if c, ok := o.(interface{ ClearNeedsPaint() }); ok {
			c.ClearNeedsPaint()
		}
	})
}
