// Package testing provides helpers for testing render boxes and effects
// without a host.
//
// # Quick Start
//
// Pump a render box and inspect the painted frame:
//
//	func TestMyBox(t *testing.T) {
//	    tester := neutest.NewBoxTesterWithT(t)
//	    tester.PumpBox(box)
//
//	    if got := neutest.Coverage(tester.Image()); got.Empty() {
//	        t.Error("expected something painted")
//	    }
//	}
//
// # Recording
//
// RecordingCanvas records canvas calls as DisplayOps, and keeps the images
// drawn so effect layers can be inspected directly:
//
//	canvas := neutest.NewRecordingCanvas(size)
//	effect.Render(source, canvas, target)
//	canvas.OpNames() // [save drawImageRect drawImageRect restore]
//
// # Snapshot Testing
//
// Capture and compare render tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_box.snapshot.yaml")
//
// Update snapshots with:
//
//	NEUMORPH_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import neutest "github.com/go-drift/neumorphism/pkg/testing"
package testing
