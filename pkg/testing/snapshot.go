package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/neumorphism/pkg/graphics"
	"github.com/go-drift/neumorphism/pkg/layout"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "NEUMORPH_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a golden record of a frame: the laid out render tree and the
// canvas calls made while painting it.
type Snapshot struct {
	RenderTree *RenderNode `yaml:"render_tree"`
	DisplayOps []DisplayOp `yaml:"display_ops,omitempty"`
}

// RenderNode is one render object in a Snapshot.
type RenderNode struct {
	ID         string         `yaml:"id"`
	Type       string         `yaml:"type"`
	Size       [2]float64     `yaml:"size,flow"`
	Offset     [2]float64     `yaml:"offset,flow"`
	Properties map[string]any `yaml:"props,omitempty"`
	Children   []*RenderNode  `yaml:"children,omitempty"`
}

// snapshotFields lists, per render type, the struct fields copied into
// RenderNode.Properties. Other types record geometry only.
var snapshotFields = map[string][]string{
	"ShadowContainer": {"margins", "marginsDisabled"},
	"DecoratedBox":    {"Color", "Radius", "Width", "Height"},
}

// CaptureSnapshot records the current tree and a fresh paint of it.
func (t *BoxTester) CaptureSnapshot() *Snapshot {
	if t.root == nil {
		return &Snapshot{}
	}
	ids := map[string]int{}
	return &Snapshot{
		RenderTree: captureNode(t.root, ids),
		DisplayOps: t.Record().Ops(),
	}
}

// MatchesFile compares the snapshot with the golden file at path and
// reports a diff on mismatch. With NEUMORPH_UPDATE_SNAPSHOTS=1 the file is
// rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	golden, err := loadSnapshot(path)
	switch {
	case os.IsNotExist(err):
		t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
		return
	case err != nil:
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(golden); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes the snapshot to path, creating parent directories.
func (s *Snapshot) UpdateFile(path string) error {
	data, err := encodeSnapshot(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns the changed lines between other (expected) and s (actual),
// or "" when they encode identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	actual, _ := encodeSnapshot(s)
	expected, _ := encodeSnapshot(other)
	if bytes.Equal(actual, expected) {
		return ""
	}
	return lineDiff(string(expected), string(actual))
}

func captureNode(ro layout.RenderObject, ids map[string]int) *RenderNode {
	typeName := typeNameOf(ro)
	id := fmt.Sprintf("%s#%d", typeName, ids[typeName])
	ids[typeName]++

	size := ro.Size()
	offset := layout.ChildOffset(ro)
	node := &RenderNode{
		ID:         id,
		Type:       typeName,
		Size:       [2]float64{round2(size.Width), round2(size.Height)},
		Offset:     [2]float64{round2(offset.X), round2(offset.Y)},
		Properties: captureFields(ro, snapshotFields[typeName]),
	}
	if v, ok := ro.(layout.ChildVisitor); ok {
		v.VisitChildren(func(child layout.RenderObject) {
			node.Children = append(node.Children, captureNode(child, ids))
		})
	}
	return node
}

// typeNameOf returns the concrete type name with its first letter upper
// cased, so unexported types still match snapshotFields.
func typeNameOf(ro layout.RenderObject) string {
	t := reflect.TypeOf(ro)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func captureFields(ro layout.RenderObject, names []string) map[string]any {
	if len(names) == 0 {
		return nil
	}
	v := reflect.Indirect(reflect.ValueOf(ro))
	props := make(map[string]any, len(names))
	for _, name := range names {
		field := v.FieldByName(name)
		if !field.IsValid() {
			continue
		}
		if val := fieldValue(field); val != nil {
			props[name] = val
		}
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

var colorType = reflect.TypeOf(graphics.Color(0))

// fieldValue converts a field to a plain value. It reads through
// unexported fields without calling Interface.
func fieldValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Type() == colorType {
			return serializeColor(graphics.Color(v.Uint()))
		}
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return round2(v.Float())
	case reflect.String:
		return v.String()
	case reflect.Struct:
		m := make(map[string]any)
		for i := 0; i < v.NumField(); i++ {
			if f := v.Type().Field(i); f.IsExported() {
				if val := fieldValue(v.Field(i)); val != nil {
					m[f.Name] = val
				}
			}
		}
		if len(m) == 0 {
			return nil
		}
		return m
	}
	return nil
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", filepath.Base(path), err)
	}
	return &snap, nil
}

func encodeSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff lists differing lines position by position.
func lineDiff(expected, actual string) string {
	want := strings.Split(expected, "\n")
	got := strings.Split(actual, "\n")

	var b strings.Builder
	b.WriteString("--- expected\n+++ actual\n")
	for i := 0; i < max(len(want), len(got)); i++ {
		w, g := lineAt(want, i), lineAt(got, i)
		if w == g {
			continue
		}
		if i < len(want) {
			fmt.Fprintf(&b, "-%s\n", w)
		}
		if i < len(got) {
			fmt.Fprintf(&b, "+%s\n", g)
		}
	}
	return b.String()
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
