// Package palette parses the hex colours used in configuration files.
package palette

import (
	"fmt"
	"image/color"
	"strings"
)

// Palette is the fixed set of colours a frame is drawn with
type Palette struct {
	Background color.RGBA
	Ray        color.RGBA
	Shape      color.RGBA
}

// Default returns the black / amber / white scheme
func Default() Palette {
	return Palette{
		Background: color.RGBA{0x00, 0x00, 0x00, 0xff},
		Ray:        color.RGBA{0xff, 0xd4, 0x3b, 0xff},
		Shape:      color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
}

// ParseHex parses "RRGGBB" or "RRGGBBAA", with or without a leading '#'.
// Alpha defaults to opaque.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var r, g, b uint8
	a := uint8(0xff)
	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid colour %q: expected 6 or 8 hex digits", s)
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
