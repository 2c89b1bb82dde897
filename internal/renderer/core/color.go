package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a color value.
// Supports true color (RGB) and terminal palette colors.
type Color struct {
	R, G, B uint8
	// If Indexed is true, R contains the palette index (0-255).
	// G and B are ignored in indexed mode.
	Indexed bool
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack   = Color{R: 0, G: 0, B: 0}
	ColorWhite   = Color{R: 255, G: 255, B: 255}
	ColorRed     = Color{R: 255, G: 0, B: 0}
	ColorGreen   = Color{R: 0, G: 255, B: 0}
	ColorBlue    = Color{R: 0, G: 0, B: 255}
	ColorYellow  = Color{R: 255, G: 255, B: 0}
	ColorCyan    = Color{R: 0, G: 255, B: 255}
	ColorMagenta = Color{R: 255, G: 0, B: 255}
	ColorGray    = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex creates an indexed palette color.
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ColorFromHex parses "#RRGGBB" or "#RGB". The leading '#' is optional.
func ColorFromHex(hex string) (Color, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return ColorFromRGB(r, g, b), nil
}

// ParseColor accepts "default", a palette index ("idx(N)" or a bare number
// 0-255), or a hex color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "default" {
		return ColorDefault, nil
	}
	var idx int
	if _, err := fmt.Sscanf(s, "idx(%d)", &idx); err == nil {
		if idx < 0 || idx > 255 {
			return Color{}, fmt.Errorf("palette index out of range: %d", idx)
		}
		return ColorFromIndex(uint8(idx)), nil
	}
	if len(s) <= 3 && !strings.HasPrefix(s, "#") {
		if _, err := fmt.Sscanf(s, "%d", &idx); err == nil {
			if idx < 0 || idx > 255 {
				return Color{}, fmt.Errorf("palette index out of range: %d", idx)
			}
			return ColorFromIndex(uint8(idx)), nil
		}
	}
	return ColorFromHex(s)
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend mixes two true colors in Lab space. Palette and default colors
// cannot be mixed, so the nearer endpoint is returned instead.
func (c Color) Blend(other Color, amount float64) Color {
	amount = min(max(amount, 0), 1)
	if c.Indexed || other.Indexed || c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	r, g, b := c.colorful().BlendLab(other.colorful(), amount).Clamped().RGB255()
	return ColorFromRGB(r, g, b)
}
