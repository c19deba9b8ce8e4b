package graphics

import "fmt"

// BlendMode controls how a source layer is composited onto a destination.
// Only the Porter-Duff modes the shadow pipeline needs are provided.
type BlendMode int

const (
	BlendModeClear   BlendMode = iota // clear
	BlendModeSrc                      // src
	BlendModeSrcOver                  // src_over
	BlendModeDstIn                    // dst_in
	BlendModeDstOut                   // dst_out
)

var blendModeNames = []string{"clear", "src", "src_over", "dst_in", "dst_out"}

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	if int(b) >= 0 && int(b) < len(blendModeNames) {
		return blendModeNames[b]
	}
	return fmt.Sprintf("BlendMode(%d)", int(b))
}
