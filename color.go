package marquee

import "fmt"

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// luminance returns the relative luminance in [0, 255].
func (c RGB) luminance() float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// blend moves c toward target by t in [0, 1].
func (c RGB) blend(target RGB, t float64) RGB {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return RGB{mix(c.R, target.R), mix(c.G, target.G), mix(c.B, target.B)}
}

type messageColorKind int

const (
	colorText messageColorKind = iota
	colorSystem
	colorLink
	colorCustom
)

// MessageColor is a semantic or custom text color. Semantic colors are
// resolved against the active theme; custom colors are normalized for
// readability against the theme's background.
type MessageColor struct {
	kind   messageColorKind
	custom RGB
}

// The semantic colors.
var (
	ColorText   = MessageColor{kind: colorText}
	ColorSystem = MessageColor{kind: colorSystem}
	ColorLink   = MessageColor{kind: colorLink}
)

// CustomColor returns a MessageColor carrying an explicit RGB value, e.g.
// a user's name color.
func CustomColor(c RGB) MessageColor {
	return MessageColor{kind: colorCustom, custom: c}
}

// IsCustom reports whether the color carries an explicit RGB value.
func (m MessageColor) IsCustom() bool { return m.kind == colorCustom }

// Custom returns the explicit RGB value; meaningful only when IsCustom.
func (m MessageColor) Custom() RGB { return m.custom }

// TermColor is a resolved terminal color: either an ANSI palette index or
// a concrete RGB value.
type TermColor struct {
	ANSI  int
	RGB   RGB
	IsRGB bool
}

// Theme maps semantic colors to the terminal palette and normalizes
// custom colors against the background. ANSI indices follow the usual
// 0-15 convention so the user's terminal scheme decides the actual hues.
type Theme struct {
	Dark   bool
	Text   int
	System int
	Link   int
	Accent int
	Muted  int
}

// DefaultTheme returns the dark-background mapping.
func DefaultTheme() Theme {
	return Theme{
		Dark:   true,
		Text:   7,
		System: 8,
		Link:   4,
		Accent: 5,
		Muted:  8,
	}
}

// Resolve maps a MessageColor to a concrete terminal color, normalizing
// custom values.
func (t Theme) Resolve(c MessageColor) TermColor {
	switch c.kind {
	case colorSystem:
		return TermColor{ANSI: t.System}
	case colorLink:
		return TermColor{ANSI: t.Link}
	case colorCustom:
		return TermColor{RGB: t.NormalizeColor(c.custom), IsRGB: true}
	default:
		return TermColor{ANSI: t.Text}
	}
}

// Luminance bounds for normalized custom colors. Colors darker than
// minDarkLuminance are illegible on a dark background, brighter than
// maxLightLuminance on a light one.
const (
	minDarkLuminance  = 80.0
	maxLightLuminance = 180.0
)

// NormalizeColor nudges a custom color into the legible luminance range
// for the theme's background, preserving hue.
func (t Theme) NormalizeColor(c RGB) RGB {
	lum := c.luminance()
	if t.Dark {
		if lum >= minDarkLuminance {
			return c
		}
		span := 255.0 - lum
		if span <= 0 {
			return c
		}
		return c.blend(RGB{255, 255, 255}, (minDarkLuminance-lum)/span)
	}
	if lum <= maxLightLuminance {
		return c
	}
	if lum <= 0 {
		return c
	}
	return c.blend(RGB{}, (lum-maxLightLuminance)/lum)
}
