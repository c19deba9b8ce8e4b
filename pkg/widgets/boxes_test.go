package widgets_test

import (
	"image"
	"image/draw"
	"testing"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/layout"
	neutest "github.com/go-drift/neumorphism/pkg/testing"
	"github.com/go-drift/neumorphism/pkg/widgets"
)

func TestDecoratedBox_Square(t *testing.T) {
	tester := neutest.NewBoxTesterWithT(t)
	box := widgets.NewDecoratedBox(graphics.ColorBlue, 0, 20, 10)
	tester.PumpBox(box)

	if got := neutest.Coverage(tester.Image()); got != image.Rect(0, 0, 20, 10) {
		t.Errorf("coverage = %v, want 20x10", got)
	}
	if got := tester.Image().RGBAAt(0, 0); got != graphics.ColorBlue.Premultiplied() {
		t.Errorf("corner pixel = %v, want opaque blue", got)
	}
}

func TestDecoratedBox_RoundedCorners(t *testing.T) {
	tester := neutest.NewBoxTesterWithT(t)
	box := widgets.NewDecoratedBox(graphics.ColorBlue, 8, 40, 40)
	tester.PumpBox(box)

	img := tester.Image()
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(20, 20).A; a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := img.RGBAAt(20, 0).A; a != 255 {
		t.Errorf("top edge alpha = %d, want 255", a)
	}
}

func TestDecoratedBox_FillsConstraints(t *testing.T) {
	tester := neutest.NewBoxTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 30, Height: 25})
	box := widgets.NewDecoratedBox(graphics.ColorBlue, 100, 0, 0)
	tester.PumpBox(box)

	if got := box.Size(); got != (graphics.Size{Width: 30, Height: 25}) {
		t.Errorf("size = %v, want 30x25", got)
	}

	box.SetColor(graphics.ColorTransparent)
	tester.Pump()
	if n := neutest.CountVisible(tester.Image()); n != 0 {
		t.Errorf("transparent box painted %d pixels", n)
	}
}

func solid(w, h int, c graphics.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestImageBox_Sizing(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          graphics.Size
	}{
		{"intrinsic", 0, 0, graphics.Size{Width: 40, Height: 20}},
		{"width scales height", 80, 0, graphics.Size{Width: 80, Height: 40}},
		{"height scales width", 0, 10, graphics.Size{Width: 20, Height: 10}},
		{"both", 30, 30, graphics.Size{Width: 30, Height: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := neutest.NewBoxTesterWithT(t)
			box := widgets.NewImageBox(solid(40, 20, graphics.ColorGreen))
			box.Width, box.Height = tt.width, tt.height
			tester.PumpBox(box)
			if got := box.Size(); got != tt.want {
				t.Errorf("size = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImageBox_FitContainCenters(t *testing.T) {
	tester := neutest.NewBoxTesterWithT(t)
	tester.SetConstraints(layout.Tight(graphics.Size{Width: 40, Height: 40}))
	box := widgets.NewImageBox(solid(40, 20, graphics.ColorGreen))
	tester.PumpBox(box)

	if got := neutest.Coverage(tester.Image()); got != image.Rect(0, 10, 40, 30) {
		t.Errorf("coverage = %v, want centered 40x20", got)
	}
}

func TestImageBox_FitNoneCrops(t *testing.T) {
	tester := neutest.NewBoxTesterWithT(t)
	tester.SetConstraints(layout.Tight(graphics.Size{Width: 10, Height: 10}))
	box := widgets.NewImageBox(solid(40, 20, graphics.ColorGreen))
	box.Fit = widgets.ImageFitNone
	tester.PumpBox(box)

	if got := neutest.Coverage(tester.Image()); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("coverage = %v, want cropped 10x10", got)
	}
}

func TestImageBox_NilImage(t *testing.T) {
	tester := neutest.NewBoxTesterWithT(t)
	box := widgets.NewImageBox(nil)
	tester.PumpBox(box)
	if box.Size() != (graphics.Size{}) {
		t.Errorf("size = %v, want zero", box.Size())
	}
	box.SetImage(solid(5, 5, graphics.ColorGreen))
	tester.Pump()
	if box.Size() != (graphics.Size{Width: 5, Height: 5}) {
		t.Errorf("size after SetImage = %v, want 5x5", box.Size())
	}
}

func TestImageFitString(t *testing.T) {
	if widgets.ImageFitScaleDown.String() != "scale_down" || widgets.ImageFit(99).String() != "ImageFit(99)" {
		t.Error("ImageFit.String mismatch")
	}
}
