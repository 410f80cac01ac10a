package graphics

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// Common colors used by default widget drawing.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
)

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float32) {
	return float32(uint8(c>>16)) / maxByte,
		float32(uint8(c>>8)) / maxByte,
		float32(uint8(c)) / maxByte,
		float32(uint8(c>>24)) / maxByte
}

// WithAlpha8 returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" hex notation, or an SVG 1.1
// color name ("white", "cornflowerblue", ...).
func ParseColor(s string) (Color, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		var r, g, b, a uint8
		switch len(hex) {
		case 6:
			if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
				return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
			}
			a = 0xFF
		case 8:
			if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
				return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
			}
		default:
			return 0, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", s)
		}
		return RGBA8(r, g, b, a), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBA8(c.R, c.G, c.B, c.A), nil
	}
	return 0, fmt.Errorf("unknown color name %q", s)
}
