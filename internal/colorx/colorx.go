// Package colorx implements the color conversions behind the color_info tool.
//
// Colors are reported in several representations:
//   - Hex: 6-character format "#RRGGBB"
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-359), Saturation (0-100), Lightness (0-100)
//   - Lab: CIE L*a*b* (D65 reference white)
//
// Contrast ratios follow the WCAG 2.x definition based on relative luminance.
package colorx

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor represents a color in HSL space.
//
// Hue is in degrees; saturation and lightness are percentages.
type HSLColor struct {
	H int `json:"h"` // 0-359
	S int `json:"s"` // 0-100
	L int `json:"l"` // 0-100
}

// LabColor represents a color in CIE L*a*b* space.
type LabColor struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Info contains one color in every representation the tool reports,
// plus its WCAG contrast ratios against black and white.
type Info struct {
	Hex           string   `json:"hex"`
	RGB           RGBColor `json:"rgb"`
	HSL           HSLColor `json:"hsl"`
	Lab           LabColor `json:"lab"`
	ContrastBlack float64  `json:"contrast_black"`
	ContrastWhite float64  `json:"contrast_white"`
}

// Parse interprets a hex color string ("#RRGGBB", leading '#' optional,
// case-insensitive) and returns it in all supported representations.
func Parse(hex string) (*Info, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q", hex)
	}

	r, g, b := c.RGB255()
	h, sat, l := c.Hsl()
	labL, labA, labB := c.Lab()

	return &Info{
		Hex: fmt.Sprintf("#%02X%02X%02X", r, g, b),
		RGB: RGBColor{R: r, G: g, B: b},
		HSL: HSLColor{
			// Hues in [359.5, 360) round up to the 360 alias of 0.
			H: int(h+0.5) % 360,
			S: int(sat*100 + 0.5),
			L: int(l*100 + 0.5),
		},
		Lab: LabColor{
			L: round2(labL * 100),
			A: round2(labA * 100),
			B: round2(labB * 100),
		},
		ContrastBlack: round2(ContrastRatio(c, colorful.Color{R: 0, G: 0, B: 0})),
		ContrastWhite: round2(ContrastRatio(c, colorful.Color{R: 1, G: 1, B: 1})),
	}, nil
}

// ContrastRatio computes the WCAG contrast ratio between two colors.
// The result ranges from 1 (identical luminance) to 21 (black on white).
func ContrastRatio(a, b colorful.Color) float64 {
	la := relativeLuminance(a)
	lb := relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// relativeLuminance implements the WCAG luminance formula on linearized
// sRGB components.
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func round2(v float64) float64 {
	if v < 0 {
		return float64(int(v*100-0.5)) / 100
	}
	return float64(int(v*100+0.5)) / 100
}
