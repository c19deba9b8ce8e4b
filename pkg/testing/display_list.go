package testing

import (
	"fmt"
	"image"
	"math"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/rendering"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `yaml:"op"`
	Params map[string]any `yaml:"params,omitempty"`
}

// RecordingCanvas implements rendering.Canvas and records every call as a
// DisplayOp. Images passed to the draw calls are kept in call order so
// tests can inspect the layers an effect produced.
type RecordingCanvas struct {
	ops    []DisplayOp
	images []image.Image
	size   graphics.Size
}

var _ rendering.Canvas = (*RecordingCanvas)(nil)

// NewRecordingCanvas returns an empty recording canvas reporting size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the recorded operations.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// OpNames returns just the operation names, in order.
func (c *RecordingCanvas) OpNames() []string {
	names := make([]string, len(c.ops))
	for i, op := range c.ops {
		names[i] = op.Op
	}
	return names
}

// Images returns the images drawn, in call order.
func (c *RecordingCanvas) Images() []image.Image {
	return c.images
}

// Reset discards everything recorded so far.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
	c.images = nil
}

func (c *RecordingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *RecordingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *RecordingCanvas) Scale(sx, sy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "scale",
		Params: sortedMap("sx", round2(sx), "sy", round2(sy)),
	})
}

func (c *RecordingCanvas) DrawImage(img image.Image, position graphics.Offset) {
	c.images = append(c.images, img)
	c.ops = append(c.ops, DisplayOp{
		Op: "drawImage",
		Params: sortedMap(
			"x", round2(position.X),
			"y", round2(position.Y),
			"image", serializeImageSize(img),
		),
	})
}

func (c *RecordingCanvas) DrawImageRect(img image.Image, _, dstRect graphics.Rect, _ rendering.FilterQuality) {
	c.images = append(c.images, img)
	c.ops = append(c.ops, DisplayOp{
		Op: "drawImageRect",
		Params: sortedMap(
			"dst", serializeRect(dstRect),
			"image", serializeImageSize(img),
		),
	})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeImageSize(img image.Image) []int {
	if img == nil {
		return []int{0, 0}
	}
	b := img.Bounds()
	return []int{b.Dx(), b.Dy()}
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// The YAML encoder sorts map keys, so snapshots are stable.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
