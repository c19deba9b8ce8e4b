package testing

import (
	"image"
	"reflect"
	"testing"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/rendering"
)

func TestRecordingCanvas_RecordsOps(t *testing.T) {
	canvas := NewRecordingCanvas(graphics.Size{Width: 10, Height: 10})
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	canvas.Save()
	canvas.Translate(1.234, 2)
	canvas.Scale(2, 2)
	canvas.DrawImage(img, graphics.Offset{X: 1, Y: 1})
	canvas.DrawImageRect(img, graphics.Rect{}, graphics.RectFromLTWH(0, 0, 8, 6), rendering.FilterQualityHigh)
	canvas.Restore()

	want := []string{"save", "translate", "scale", "drawImage", "drawImageRect", "restore"}
	if got := canvas.OpNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ops: got %v, want %v", got, want)
	}
	if dx := canvas.Ops()[1].Params["dx"]; dx != 1.23 {
		t.Errorf("translate dx: got %v, want 1.23", dx)
	}
	dst := canvas.Ops()[4].Params["dst"].(map[string]any)
	if dst["right"] != 8.0 || dst["bottom"] != 6.0 {
		t.Errorf("dst rect: got %v", dst)
	}
	if len(canvas.Images()) != 2 || canvas.Images()[0] != image.Image(img) {
		t.Errorf("images: got %d, want 2", len(canvas.Images()))
	}
	if canvas.Size() != (graphics.Size{Width: 10, Height: 10}) {
		t.Errorf("size: got %v", canvas.Size())
	}

	canvas.Reset()
	if len(canvas.Ops()) != 0 || len(canvas.Images()) != 0 {
		t.Error("Reset should discard ops and images")
	}
}

func TestSerializeColor(t *testing.T) {
	if got := serializeColor(graphics.RGBA8(1, 2, 3, 4)); got != "0x04010203" {
		t.Errorf("serializeColor: got %s", got)
	}
}

func TestPixelHelpers(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	img.Set(1, 1, graphics.ColorRed)
	img.Set(3, 2, graphics.ColorRed)

	if got := Coverage(img); got != image.Rect(1, 1, 4, 3) {
		t.Errorf("Coverage: got %v", got)
	}
	if got := CountVisible(img); got != 2 {
		t.Errorf("CountVisible: got %d, want 2", got)
	}
	if got := VisibleWhere(img, func(x, _ int) bool { return x > 2 }); got != 1 {
		t.Errorf("VisibleWhere: got %d, want 1", got)
	}
	if !SameImage(img, img) {
		t.Error("SameImage should match itself")
	}
	other := image.NewRGBA(img.Rect)
	if SameImage(img, other) {
		t.Error("SameImage should detect differing pixels")
	}
	if !Coverage(other).Empty() {
		t.Error("transparent image should have empty coverage")
	}
}
