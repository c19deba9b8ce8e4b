package testing

import (
	"image"
	"testing"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/layout"
	"github.com/go-drift/neumorphism/pkg/rendering"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 200
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 200
)

// BoxTester drives layout and paint for a render box without a host. It
// runs the same pipeline phases a host would and paints into an in-memory
// image.
type BoxTester struct {
	owner       *layout.PipelineOwner
	root        layout.RenderBox
	size        graphics.Size
	constraints *layout.Constraints
	surface     *image.RGBA
}

// NewBoxTester creates a tester with the default surface size.
func NewBoxTester() *BoxTester {
	return &BoxTester{
		owner: &layout.PipelineOwner{},
		size:  graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// NewBoxTesterWithT creates a tester that detaches its root via t.Cleanup().
func NewBoxTesterWithT(t *testing.T) *BoxTester {
	tester := NewBoxTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup detaches the root from the pipeline owner.
func (t *BoxTester) Cleanup() {
	if t.root != nil {
		layout.Attach(t.root, nil)
		t.root = nil
	}
}

// SetSize sets the surface size. Must be called before PumpBox.
func (t *BoxTester) SetSize(size graphics.Size) {
	t.size = size
}

// SetConstraints overrides the root constraints. By default the root is
// laid out loosely within the surface size.
func (t *BoxTester) SetConstraints(c layout.Constraints) {
	t.constraints = &c
}

// Owner returns the pipeline owner driving the tree.
func (t *BoxTester) Owner() *layout.PipelineOwner {
	return t.owner
}

// PumpBox attaches root and runs one full frame.
func (t *BoxTester) PumpBox(root layout.RenderBox) {
	t.Cleanup()
	t.root = root
	layout.Attach(root, t.owner)
	t.owner.ScheduleLayout(root)
	t.owner.SchedulePaint(root)
	t.Pump()
}

// Pump runs layout and, if anything is dirty, repaints the whole surface.
func (t *BoxTester) Pump() {
	if t.root == nil {
		return
	}
	constraints := layout.Loose(t.size)
	if t.constraints != nil {
		constraints = *t.constraints
	}
	t.owner.FlushLayoutForRoot(t.root, constraints)
	if dirty := t.owner.FlushPaint(); len(dirty) > 0 || t.surface == nil {
		t.paint()
	}
}

func (t *BoxTester) paint() {
	t.surface = image.NewRGBA(image.Rect(0, 0, int(t.size.Width), int(t.size.Height)))
	t.owner.PaintRoot(t.root, rendering.NewImageCanvas(t.surface))
}

// Image returns the last painted frame.
func (t *BoxTester) Image() *image.RGBA {
	return t.surface
}

// Root returns the attached root render box.
func (t *BoxTester) Root() layout.RenderBox {
	return t.root
}

// Record paints the root into a recording canvas and returns it.
func (t *BoxTester) Record() *RecordingCanvas {
	canvas := NewRecordingCanvas(t.size)
	if t.root != nil {
		t.root.Paint(&layout.PaintContext{Canvas: canvas})
	}
	return canvas
}
