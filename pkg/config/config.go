// Package config reads style documents: named neumorphic shadow styles
// written as YAML or TOML.
//
//	version: v1
//	styles:
//	  light_outside:
//	    border_inset: 1
//	    shadows:
//	      - placement: outside
//	        offset: [6, 6]
//	        blur: 8
//	        color: [111, 140, 176, 105]
//
// A document is validated as a whole when parsed, so every style returned
// by [Document.Style] converts to a ShadowConfig without error.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/neumorphism/pkg/errors"
)

// SchemaVersion is the major document version this package reads.
const SchemaVersion = "v1"

// Format selects the document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// FormatFor picks the format from a file extension. Anything other than
// .toml is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Document is a parsed style document.
type Document struct {
	Version string           `yaml:"version" toml:"version"`
	Styles  map[string]Style `yaml:"styles" toml:"styles"`
}

//go:embed styles.yaml
var builtinStyles []byte

// Builtin returns the embedded default styles.
func Builtin() *Document {
	doc, err := Parse(builtinStyles, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded styles: %v", err))
	}
	return doc
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: "config.Load", Kind: errors.KindIO, Err: err}
	}
	doc, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// Parse decodes and validates a document.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &errors.Error{Op: "config.Parse", Kind: errors.KindConfig, Err: fmt.Errorf("decode %s: %w", format, err)}
	}
	if err := doc.Validate(); err != nil {
		return nil, &errors.Error{Op: "config.Parse", Kind: errors.KindConfig, Err: err}
	}
	return &doc, nil
}

// Validate checks the schema version and every style.
func (d *Document) Validate() error {
	if err := checkVersion(d.Version); err != nil {
		return err
	}
	for _, name := range d.Names() {
		if err := d.Styles[name].Validate(); err != nil {
			return errors.WithField("styles."+name, err)
		}
	}
	return nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	canonical := v
	if !strings.HasPrefix(canonical, "v") {
		canonical = "v" + canonical
	}
	if !semver.IsValid(canonical) {
		return errors.InvalidConfig("version", v, "not a semantic version")
	}
	if semver.Major(canonical) != SchemaVersion {
		return errors.InvalidConfig("version", v, "unsupported major version, want %s", SchemaVersion)
	}
	return nil
}

// Names returns the style names in sorted order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Styles))
	for name := range d.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style looks up a style by name.
func (d *Document) Style(name string) (Style, error) {
	s, ok := d.Styles[name]
	if !ok {
		return Style{}, errors.InvalidConfig("style", name, "not defined (have %s)", strings.Join(d.Names(), ", "))
	}
	return s, nil
}

// Merge returns a document holding d's styles overridden by other's.
func (d *Document) Merge(other *Document) *Document {
	out := &Document{Version: d.Version, Styles: make(map[string]Style, len(d.Styles))}
	for name, s := range d.Styles {
		out.Styles[name] = s
	}
	if other == nil {
		return out
	}
	if other.Version != "" {
		out.Version = other.Version
	}
	for name, s := range other.Styles {
		out.Styles[name] = s
	}
	return out
}

// Encode writes the document as YAML.
func (d *Document) Encode() ([]byte, error) {
	return yaml.Marshal(d)
}
