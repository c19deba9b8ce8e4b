package graphics

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-drift/neumorphism/pkg/errors"
)

// ParseColor normalizes a textual color to a Color.
//
// Accepted forms:
//
//	"white", "slategray", "transparent"   CSS/SVG color names
//	"#rgb", "#rrggbb"                     opaque hex
//	"#aarrggbb"                           hex with leading alpha
//	"rgb(r, g, b)", "rgba(r, g, b, a)"    components 0-255; a may be 0-1 with a decimal point
//
// Unrecognized input returns a *errors.ConfigError.
func ParseColor(s string) (Color, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "" {
		return 0, errors.InvalidConfig("color", s, "empty color")
	}
	if str == "transparent" {
		return ColorTransparent, nil
	}
	if hex, ok := strings.CutPrefix(str, "#"); ok {
		return parseHexColor(s, hex)
	}
	if body, ok := cutFunc(str, "rgba"); ok {
		return parseFuncColor(s, body, 4)
	}
	if body, ok := cutFunc(str, "rgb"); ok {
		return parseFuncColor(s, body, 3)
	}
	if named, ok := colornames.Map[str]; ok {
		return RGBA8(named.R, named.G, named.B, named.A), nil
	}
	return 0, errors.InvalidConfig("color", s, "unknown color name")
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level presets.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorFromTuple builds a Color from 3 (opaque) or 4 byte components.
func ColorFromTuple(values ...int) (Color, error) {
	if len(values) != 3 && len(values) != 4 {
		return 0, errors.InvalidConfig("color", values, "expected 3 or 4 components, got %d", len(values))
	}
	var b [4]uint8
	b[3] = 0xFF
	for i, v := range values {
		if v < 0 || v > 255 {
			return 0, errors.InvalidConfig("color", values, "component %d out of range 0-255", i)
		}
		b[i] = uint8(v)
	}
	return RGBA8(b[0], b[1], b[2], b[3]), nil
}

func cutFunc(s, name string) (string, bool) {
	rest, ok := strings.CutPrefix(s, name+"(")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ")")
}

func parseHexColor(orig, hex string) (Color, error) {
	switch len(hex) {
	case 3:
		var v [3]uint8
		for i := range v {
			n, err := parseHexNibble(hex[i])
			if err != nil {
				return 0, errors.InvalidConfig("color", orig, "%v", err)
			}
			v[i] = n<<4 | n
		}
		return RGB(v[0], v[1], v[2]), nil
	case 6, 8:
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, errors.InvalidConfig("color", orig, "invalid hex digits")
		}
		if len(hex) == 6 {
			n |= 0xFF000000
		}
		return Color(n), nil
	default:
		return 0, errors.InvalidConfig("color", orig, "hex color must have 3, 6 or 8 digits")
	}
}

func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, strconv.ErrSyntax
	}
}

func parseFuncColor(orig, body string, want int) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return 0, errors.InvalidConfig("color", orig, "expected %d components, got %d", want, len(parts))
	}
	values := make([]int, want)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, errors.InvalidConfig("color", orig, "component %q is not a number", p)
		}
		if i == 3 && strings.Contains(p, ".") && f <= 1 {
			f *= maxByte
		}
		values[i] = int(math.Round(f))
	}
	return ColorFromTuple(values...)
}
