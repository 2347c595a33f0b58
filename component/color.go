package component

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied RGBA color
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
)

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" or a named color ("red", "white")
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if !strings.HasPrefix(s, "#") {
		tc, ok := tcell.ColorNames[strings.ToLower(s)]
		if !ok {
			return Color{}, fmt.Errorf("unknown color name %q", s)
		}
		r, g, b := tc.RGB()
		if r < 0 {
			return Color{}, fmt.Errorf("color %q has no rgb value", s)
		}
		return RGB(uint8(r), uint8(g), uint8(b)), nil
	}

	alpha := uint8(255)
	hex := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = s[:7]
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseColor is ParseColor for compile-time constants, panics on error
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns the color with its alpha scaled by factor in [0, 1]
func (c Color) WithAlpha(factor float64) Color {
	if factor <= 0 {
		c.A = 0
		return c
	}
	if factor >= 1 {
		return c
	}
	c.A = uint8(float64(c.A)*factor + 0.5)
	return c
}

// Opacity returns alpha as a fraction in [0, 1]
func (c Color) Opacity() float64 {
	return float64(c.A) / 255
}

// Colorful converts to go-colorful for blending, alpha is dropped
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Over composites c over dst and returns an opaque result
func (c Color) Over(dst Color) Color {
	if c.A == 255 {
		return c
	}
	if c.A == 0 {
		return dst
	}
	r, g, b := dst.Colorful().BlendRgb(c.Colorful(), c.Opacity()).Clamped().RGB255()
	return RGB(r, g, b)
}

// NRGBA converts to the image/color non-premultiplied type
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String returns "#rrggbb" or "#rrggbbaa" when translucent
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
