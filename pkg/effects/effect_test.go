package effects

import (
	stderrors "errors"
	"image"
	"io"
	"image/draw"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/go-drift/neumorphism/pkg/errors"
	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/rendering"
	neutest "github.com/go-drift/neumorphism/pkg/testing"
)

// squareSource returns a w x h transparent image with an opaque square of
// side n at (x, y).
func squareSource(w, h, x, y, n int, c graphics.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, image.Rect(x, y, x+n, y+n), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func mustNew(t *testing.T, shadows graphics.ShadowConfig, opts ...Option) *ShadowEffect {
	t.Helper()
	e, err := New(shadows, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestRequiredMargin(t *testing.T) {
	black := graphics.ColorBlack
	tests := []struct {
		name    string
		shadows graphics.ShadowConfig
		wantX   float64
		wantY   float64
	}{
		{"empty", nil, 0, 0},
		{"single outside", graphics.ShadowConfig{graphics.OutsideShadow(6, 6, 8, black)}, 22, 22},
		{"negative offsets", graphics.ShadowConfig{graphics.OutsideShadow(-3, -10, 2, black)}, 7, 14},
		{"max over entries", graphics.ShadowConfig{
			graphics.OutsideShadow(6, 0, 8, black),
			graphics.OutsideShadow(0, 2, 12, black),
		}, 24, 26},
		{"inside only", graphics.ShadowConfig{graphics.InsideShadow(20, 20, 30, black)}, 0, 0},
		{"inside ignored", graphics.ShadowConfig{
			graphics.OutsideShadow(1, 1, 1, black),
			graphics.InsideShadow(50, 50, 50, black),
		}, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustNew(t, tt.shadows)
			x, y := e.RequiredMargin()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("RequiredMargin() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestBoundsForScenario(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{graphics.OutsideShadow(6, 6, 8, graphics.ColorBlack)})
	got := e.BoundsFor(graphics.RectFromLTWH(0, 0, 100, 100))
	want := graphics.RectFromLTWH(-22, -22, 144, 144)
	if !got.Equal(want) {
		t.Errorf("BoundsFor = %+v, want %+v", got, want)
	}
}

func TestConfigureRejectsInvalidAndKeepsState(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{graphics.OutsideShadow(6, 6, 8, graphics.ColorBlack)})

	bad := graphics.ShadowConfig{{Placement: graphics.PlacementOutside, BlurRadius: -1}}
	err := e.Configure(bad)
	if err == nil {
		t.Fatal("expected error for negative blur")
	}
	if !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("error should match ErrInvalidConfig: %v", err)
	}
	var opErr *errors.Error
	if !stderrors.As(err, &opErr) || opErr.Kind != errors.KindConfig {
		t.Errorf("expected config-kind *errors.Error, got %T", err)
	}
	if x, y := e.RequiredMargin(); x != 22 || y != 22 {
		t.Errorf("margin after failed Configure = (%v, %v), want (22, 22)", x, y)
	}
	if len(e.Shadows()) != 1 {
		t.Errorf("shadows after failed Configure: got %d, want 1", len(e.Shadows()))
	}

	if _, err := New(graphics.ShadowConfig{{Color: graphics.ColorBlack}}); err == nil {
		t.Error("New should reject a shadow without placement")
	}
}

func TestConfigureReplacesWholesale(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{graphics.OutsideShadow(6, 6, 8, graphics.ColorBlack)})
	if err := e.Configure(nil); err != nil {
		t.Fatalf("Configure(nil): %v", err)
	}
	if x, y := e.RequiredMargin(); x != 0 || y != 0 {
		t.Errorf("margin after clearing = (%v, %v), want zero", x, y)
	}
}

func TestShadowsReturnsCopy(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{graphics.OutsideShadow(1, 1, 1, graphics.ColorBlack)})
	got := e.Shadows()
	got[0].BlurRadius = 99
	if e.Shadows()[0].BlurRadius != 1 {
		t.Error("mutating Shadows() result changed the effect")
	}
}

func TestBorderInsetClamps(t *testing.T) {
	e := mustNew(t, nil, WithBorderInset(-5))
	if e.BorderInset() != 0 {
		t.Errorf("BorderInset = %d, want 0", e.BorderInset())
	}
	e.SetBorderInset(3)
	if e.BorderInset() != 3 {
		t.Errorf("BorderInset = %d, want 3", e.BorderInset())
	}
}

func TestSmoothDoesNotChangeMargin(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{
		graphics.OutsideShadow(6, 6, 8, graphics.ColorBlack),
		graphics.OutsideShadow(-6, -6, 8, graphics.ColorWhite),
	})
	x0, y0 := e.RequiredMargin()
	e.SetSmooth(true)
	if !e.Smooth() {
		t.Fatal("Smooth() should report true")
	}
	x1, y1 := e.RequiredMargin()
	if x0 != x1 || y0 != y1 {
		t.Errorf("margin changed with smooth: (%v,%v) -> (%v,%v)", x0, y0, x1, y1)
	}
}

func TestSourceForPadsByCeiledMargin(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{graphics.OutsideShadow(1.5, 0, 1, graphics.ColorBlack)})
	child := squareSource(10, 10, 0, 0, 10, graphics.ColorRed)

	src, at := e.SourceFor(child)

	// margin is (3.5, 2), padded to (4, 2)
	if got := src.Bounds(); got != image.Rect(0, 0, 18, 14) {
		t.Errorf("padded bounds = %v, want 18x14", got)
	}
	if at != (graphics.Offset{X: 4, Y: 2}) {
		t.Errorf("child position = %v, want (4, 2)", at)
	}
	if got := neutest.Coverage(src); got != image.Rect(4, 2, 14, 12) {
		t.Errorf("child coverage = %v, want (4,2)-(14,12)", got)
	}

	empty, _ := e.SourceFor(image.NewRGBA(image.Rectangle{}))
	if !empty.Bounds().Empty() {
		t.Error("empty child should produce an empty source")
	}
}

func TestRenderEmptyListIsIdentity(t *testing.T) {
	e := mustNew(t, nil)
	source := squareSource(20, 20, 5, 5, 8, graphics.RGBA8(10, 20, 30, 200))

	canvas := rendering.NewImageCanvas(image.NewRGBA(image.Rect(0, 0, 20, 20)))
	e.Render(source, canvas, graphics.RectFromLTWH(0, 0, 20, 20))

	if !neutest.SameImage(canvas.Image(), source) {
		t.Error("render with no shadows should reproduce the source")
	}
	if canvas.Depth() != 0 {
		t.Errorf("canvas depth after Render = %d, want 0", canvas.Depth())
	}

	rec := neutest.NewRecordingCanvas(graphics.Size{Width: 20, Height: 20})
	e.Render(source, rec, graphics.RectFromLTWH(0, 0, 20, 20))
	want := []string{"save", "drawImageRect", "restore"}
	if got := rec.OpNames(); len(got) != len(want) || got[1] != want[1] {
		t.Errorf("ops = %v, want %v", got, want)
	}
}

func TestRenderSkipsEmptyInput(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{graphics.OutsideShadow(2, 2, 2, graphics.ColorBlack)})
	rec := neutest.NewRecordingCanvas(graphics.Size{Width: 10, Height: 10})

	e.Render(image.NewRGBA(image.Rectangle{}), rec, graphics.RectFromLTWH(0, 0, 10, 10))
	e.Render(squareSource(4, 4, 0, 0, 4, graphics.ColorRed), rec, graphics.Rect{})
	e.Render(nil, rec, graphics.RectFromLTWH(0, 0, 10, 10))

	if len(rec.Ops()) != 0 {
		t.Errorf("expected nothing drawn, got %v", rec.OpNames())
	}
}

func TestRenderPaintOrder(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{
		graphics.OutsideShadow(2, 2, 2, graphics.ColorBlack),
		graphics.InsideShadow(2, 2, 2, graphics.ColorWhite),
	}, WithBorderInset(3))
	source := squareSource(30, 30, 5, 5, 20, graphics.ColorRed)
	rec := neutest.NewRecordingCanvas(graphics.Size{Width: 30, Height: 30})

	e.Render(source, rec, graphics.RectFromLTWH(10, 10, 30, 30))

	names := rec.OpNames()
	want := []string{"save", "drawImageRect", "drawImageRect", "drawImageRect", "restore"}
	if len(names) != len(want) {
		t.Fatalf("ops = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ops = %v, want %v", names, want)
		}
	}
	if !neutest.SameImage(rec.Images()[1], source) {
		t.Error("second draw should be the source")
	}
	inset := rec.Ops()[3].Params["dst"].(map[string]any)
	if inset["left"] != 13.0 || inset["right"] != 37.0 {
		t.Errorf("inside layer dst = %v, want inset by 3", inset)
	}
}

func TestRenderSkipsInsideWhenInsetCollapses(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{graphics.InsideShadow(2, 2, 0, graphics.ColorBlack)}, WithBorderInset(10))
	source := squareSource(20, 20, 0, 0, 20, graphics.ColorRed)
	rec := neutest.NewRecordingCanvas(graphics.Size{Width: 20, Height: 20})

	e.Render(source, rec, graphics.RectFromLTWH(0, 0, 20, 20))

	if got := len(rec.Images()); got != 1 {
		t.Errorf("expected only the source drawn, got %d images", got)
	}
	if names := rec.OpNames(); names[len(names)-1] != "restore" {
		t.Errorf("canvas state not restored: %v", names)
	}
}

// layersFor renders and returns the outside and inside layers drawn. The
// effect must have outside shadows; inside is nil when it has none.
func layersFor(t *testing.T, e *ShadowEffect, source image.Image) (outside, inside image.Image) {
	t.Helper()
	b := source.Bounds()
	rec := neutest.NewRecordingCanvas(graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())})
	e.Render(source, rec, graphics.RectFromImage(b))
	images := rec.Images()
	switch len(images) {
	case 2:
		return images[0], nil
	case 3:
		return images[0], images[2]
	}
	t.Fatalf("expected outside, source and optional inside; got %d images", len(images))
	return nil, nil
}

func TestShadowContainment(t *testing.T) {
	silhouette := image.Rect(10, 10, 30, 30)
	in := func(x, y int) bool { return image.Pt(x, y).In(silhouette) }
	out := func(x, y int) bool { return !in(x, y) }

	for _, smooth := range []bool{false, true} {
		e := mustNew(t, graphics.ShadowConfig{
			graphics.OutsideShadow(4, 4, 6, graphics.ColorBlack),
			graphics.OutsideShadow(-4, -4, 6, graphics.ColorWhite),
			graphics.InsideShadow(3, 3, 4, graphics.RGBA8(0, 0, 0, 128)),
		}, WithSmooth(smooth))
		outside, inside := layersFor(t, e, squareSource(40, 40, 10, 10, 20, graphics.ColorRed))

		if n := neutest.VisibleWhere(outside, in); n != 0 {
			t.Errorf("smooth=%v: %d outside-shadow pixels overlap the silhouette", smooth, n)
		}
		if n := neutest.VisibleWhere(outside, out); n == 0 {
			t.Errorf("smooth=%v: outside shadow is empty", smooth)
		}
		if n := neutest.VisibleWhere(inside, out); n != 0 {
			t.Errorf("smooth=%v: %d inside-shadow pixels fall outside the silhouette", smooth, n)
		}
		if n := neutest.VisibleWhere(inside, in); n == 0 {
			t.Errorf("smooth=%v: inside shadow is empty", smooth)
		}
	}
}

func TestMaskedLayersSharp(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{
		graphics.OutsideShadow(4, 4, 0, graphics.ColorBlack),
		graphics.InsideShadow(4, 4, 0, graphics.ColorBlue),
	})
	outside, inside := layersFor(t, e, squareSource(40, 40, 10, 10, 20, graphics.ColorRed))

	// Both are the 20x20 square minus a 16x16 overlap with its shifted copy.
	if got := neutest.CountVisible(outside); got != 144 {
		t.Errorf("outside pixels = %d, want 144", got)
	}
	if got := neutest.CountVisible(inside); got != 144 {
		t.Errorf("inside pixels = %d, want 144", got)
	}
	// The inside crescent runs along the top and left edges.
	if a := inside.(*image.RGBA).RGBAAt(10, 10).A; a == 0 {
		t.Error("expected inside shadow at the top-left corner")
	}
	if a := inside.(*image.RGBA).RGBAAt(29, 29).A; a != 0 {
		t.Error("expected no inside shadow at the bottom-right corner")
	}
}

func TestMaskedInsideWithBlackShadow(t *testing.T) {
	// A black shadow needs a white marker to tell the shifted copy apart.
	e := mustNew(t, graphics.ShadowConfig{graphics.InsideShadow(4, 4, 0, graphics.RGBA8(0, 0, 0, 178))})
	rec := neutest.NewRecordingCanvas(graphics.Size{Width: 40, Height: 40})
	e.Render(squareSource(40, 40, 10, 10, 20, graphics.ColorRed), rec, graphics.RectFromLTWH(0, 0, 40, 40))
	if got := neutest.CountVisible(rec.Images()[1]); got != 144 {
		t.Errorf("inside pixels = %d, want 144", got)
	}
}

func TestSmoothInsideUsesHalfOffset(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{graphics.InsideShadow(4, 4, 0, graphics.ColorBlue)}, WithSmooth(true))
	rec := neutest.NewRecordingCanvas(graphics.Size{Width: 40, Height: 40})
	e.Render(squareSource(40, 40, 10, 10, 20, graphics.ColorRed), rec, graphics.RectFromLTWH(0, 0, 40, 40))

	// 20x20 square minus an 18x18 overlap with the copy shifted by (2, 2).
	if got := neutest.CountVisible(rec.Images()[1]); got != 76 {
		t.Errorf("inside pixels = %d, want 76", got)
	}
}

func TestMarkerFor(t *testing.T) {
	tests := []struct {
		in   graphics.Color
		want graphics.Color
	}{
		{graphics.ColorBlack, graphics.ColorWhite},
		{graphics.RGBA8(0, 0, 0, 10), graphics.ColorWhite},
		{graphics.ColorWhite, graphics.ColorBlack},
		{graphics.RGB(58, 58, 58), graphics.ColorBlack},
	}
	for _, tt := range tests {
		if got := markerFor(tt.in); got != tt.want {
			t.Errorf("markerFor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfigureIsIdempotent(t *testing.T) {
	shadows := graphics.ShadowConfig{
		graphics.OutsideShadow(3, 3, 4, graphics.ColorBlack),
		graphics.InsideShadow(-2, -2, 3, graphics.ColorWhite),
	}
	source := squareSource(30, 30, 7, 7, 16, graphics.ColorRed)
	render := func(e *ShadowEffect) *image.RGBA {
		canvas := rendering.NewImageCanvas(image.NewRGBA(image.Rect(0, 0, 30, 30)))
		e.Render(source, canvas, graphics.RectFromLTWH(0, 0, 30, 30))
		return canvas.Image()
	}

	once := mustNew(t, shadows, WithCacheSize(0))
	twice := mustNew(t, shadows, WithCacheSize(0))
	if err := twice.Configure(shadows); err != nil {
		t.Fatal(err)
	}

	x1, y1 := once.RequiredMargin()
	x2, y2 := twice.RequiredMargin()
	if x1 != x2 || y1 != y2 {
		t.Errorf("margins differ: (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}
	if !neutest.SameImage(render(once), render(twice)) {
		t.Error("rendered output differs after reconfiguring with the same list")
	}
}

func TestLayerCache(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{graphics.OutsideShadow(2, 2, 2, graphics.ColorBlack)}, WithCacheSize(2))
	source := squareSource(20, 20, 5, 5, 10, graphics.ColorRed)
	render := func(src image.Image) *image.RGBA {
		canvas := rendering.NewImageCanvas(image.NewRGBA(image.Rect(0, 0, 20, 20)))
		e.Render(src, canvas, graphics.RectFromLTWH(0, 0, 20, 20))
		return canvas.Image()
	}

	first := render(source)
	if e.cache.len() != 1 {
		t.Fatalf("cache entries = %d, want 1", e.cache.len())
	}
	if !neutest.SameImage(render(source), first) {
		t.Error("cached render differs from the first render")
	}
	if e.cache.len() != 1 {
		t.Errorf("cache entries after hit = %d, want 1", e.cache.len())
	}

	render(squareSource(20, 20, 4, 4, 10, graphics.ColorRed))
	if e.cache.len() != 2 {
		t.Errorf("cache entries for new pixels = %d, want 2", e.cache.len())
	}

	e.SetSmooth(true)
	if e.cache.len() != 0 {
		t.Errorf("SetSmooth should purge, got %d entries", e.cache.len())
	}
	render(source)
	if err := e.Configure(e.Shadows()); err != nil {
		t.Fatal(err)
	}
	if e.cache.len() != 0 {
		t.Errorf("Configure should purge, got %d entries", e.cache.len())
	}

	uncached := mustNew(t, nil, WithCacheSize(0))
	if uncached.cache != nil {
		t.Error("WithCacheSize(0) should disable caching")
	}
}

func TestWithLogger(t *testing.T) {
	l := log.New(io.Discard)
	e := mustNew(t, nil, WithLogger(l), WithLogger(nil))
	if e.logger != l {
		t.Error("WithLogger(nil) should keep the previous logger")
	}
}

func TestBlurSpreadsWithinPadding(t *testing.T) {
	e := mustNew(t, graphics.ShadowConfig{graphics.OutsideShadow(6, 6, 8, graphics.ColorBlack)})
	source, at := e.SourceFor(squareSource(20, 20, 0, 0, 20, graphics.ColorRed))
	outside, _ := layersFor(t, e, source)

	// The sharp shifted square would end at the element edge plus the offset.
	sharpEdge := int(at.X) + 20 + 6
	cov := neutest.Coverage(outside)
	if cov.Max.X <= sharpEdge || cov.Max.Y <= sharpEdge {
		t.Errorf("blur should spread past the shifted square, coverage %v", cov)
	}
	if !cov.In(source.Bounds()) {
		t.Errorf("coverage %v escapes the padded source %v", cov, source.Bounds())
	}
}
