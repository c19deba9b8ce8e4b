package layout

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/rendering"
)

type testRenderBox struct {
	RenderBoxBase
	paintCalls  int
	layoutCalls int
	boundary    bool
}

func (r *testRenderBox) PerformLayout() {
	r.layoutCalls++
	r.SetSize(r.Constraints().Constrain(graphics.Size{Width: 10, Height: 10}))
}

func (r *testRenderBox) Paint(ctx *PaintContext) {
	r.paintCalls++
	dot := image.NewRGBA(image.Rect(0, 0, 1, 1))
	dot.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	ctx.Canvas.DrawImage(dot, graphics.Offset{})
}

func (r *testRenderBox) IsRepaintBoundary() bool {
	return r.boundary
}

func newTestBox() *testRenderBox {
	box := &testRenderBox{}
	box.SetSelf(box)
	return box
}

func TestPaintChild_TranslatesAndRestores(t *testing.T) {
	child := newTestBox()
	canvas := rendering.NewImageCanvas(image.NewRGBA(image.Rect(0, 0, 10, 10)))
	ctx := &PaintContext{Canvas: canvas}

	ctx.PaintChild(child, graphics.Offset{X: 4, Y: 3})

	if child.paintCalls != 1 {
		t.Fatalf("expected child.Paint to be called once, got %d", child.paintCalls)
	}
	if got := canvas.Image().RGBAAt(4, 3).A; got != 255 {
		t.Errorf("pixel at child offset: got alpha %d, want 255", got)
	}
	if got := canvas.Image().RGBAAt(0, 0).A; got != 0 {
		t.Errorf("pixel at origin: got alpha %d, want 0", got)
	}
	if canvas.Depth() != 0 {
		t.Errorf("canvas depth after PaintChild: got %d, want 0", canvas.Depth())
	}
}

func TestPaintChild_NilChild(t *testing.T) {
	canvas := rendering.NewImageCanvas(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	ctx := &PaintContext{Canvas: canvas}
	ctx.PaintChild(nil, graphics.Offset{})
	if canvas.Depth() != 0 {
		t.Errorf("nil child should not touch the canvas")
	}
}
