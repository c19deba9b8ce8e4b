package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/neumorphism/pkg/errors"
	"github.com/go-drift/neumorphism/pkg/graphics"
)

// ColorValue holds a color as written in a style document: either a string
// ("#C1D5EE", "white", "rgba(0,0,0,178)") or a 3/4 element integer tuple.
// It is resolved to a graphics.Color during validation so errors carry the
// full field path.
type ColorValue struct {
	text  string
	tuple []int
	set   bool
}

// ColorString returns a ColorValue for textual input.
func ColorString(s string) ColorValue {
	return ColorValue{text: s, set: true}
}

// ColorTuple returns a ColorValue for component input.
func ColorTuple(components ...int) ColorValue {
	return ColorValue{tuple: append([]int(nil), components...), set: true}
}

// IsZero reports whether no color was given.
func (c ColorValue) IsZero() bool {
	return !c.set
}

// Color resolves the value.
func (c ColorValue) Color() (graphics.Color, error) {
	switch {
	case !c.set:
		return 0, errors.InvalidConfig("color", nil, "is required")
	case c.tuple != nil:
		return graphics.ColorFromTuple(c.tuple...)
	default:
		return graphics.ParseColor(c.text)
	}
}

func (c ColorValue) String() string {
	switch {
	case !c.set:
		return ""
	case c.tuple != nil:
		return fmt.Sprint(c.tuple)
	default:
		return c.text
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = ColorString(node.Value)
		return nil
	case yaml.SequenceNode:
		var components []int
		if err := node.Decode(&components); err != nil {
			return fmt.Errorf("line %d: color tuple: %w", node.Line, err)
		}
		*c = ColorTuple(components...)
		return nil
	default:
		return fmt.Errorf("line %d: color must be a string or a list of integers", node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (c ColorValue) MarshalYAML() (any, error) {
	if c.tuple != nil {
		return c.tuple, nil
	}
	return c.text, nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (c *ColorValue) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*c = ColorString(v)
		return nil
	case []any:
		components := make([]int, len(v))
		for i, item := range v {
			n, ok := item.(int64)
			if !ok {
				return fmt.Errorf("color tuple element %d: expected integer, got %T", i, item)
			}
			components[i] = int(n)
		}
		*c = ColorTuple(components...)
		return nil
	default:
		return fmt.Errorf("color must be a string or an array of integers, got %T", data)
	}
}
