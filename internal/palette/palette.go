// Package palette turns the color strings stored in a drawing into colors.
//
// Drawings store colors the way the user picked them: a name such as "red" or
// "lightgray", or a hex value like "#ff8800". Names follow the SVG/X11 list.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned for strings that are neither a known name nor a hex color.
var ErrUnknownColor = errors.New("unknown color")

// Parse resolves a color string. Names are case-insensitive and may contain spaces ("Light Gray").
func Parse(s string) (color.RGBA, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if strings.HasPrefix(key, "#") {
		return parseHex(key[1:], s)
	}
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// MustParse is Parse for package-level defaults. It falls back to black on bad input.
func MustParse(s string) color.RGBA {
	c, err := Parse(s)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

func parseHex(h, orig string) (color.RGBA, error) {
	switch len(h) {
	case 3:
		// #rgb expands each digit: #f80 == #ff8800
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Same reports whether two color strings name the same color, so "white" and "#FFFFFF" match.
// Unparseable strings only match themselves.
func Same(a, b string) bool {
	if a == b {
		return true
	}
	ca, errA := Parse(a)
	cb, errB := Parse(b)
	if errA != nil || errB != nil {
		return false
	}
	return ca == cb
}
