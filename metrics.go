package marquee

import (
	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// FontStyle selects a font variant for text measurement and styling.
type FontStyle int

const (
	FontChatMedium FontStyle = iota
	FontChatMediumBold
	FontChatSmall
	FontChatLarge
)

// FontMetrics measures text at one style and scale. Widths and heights
// are in scaled cells.
type FontMetrics interface {
	Width(text string) float64
	Height() float64
}

// FontSource produces metrics for a style at a render scale.
type FontSource interface {
	Metrics(style FontStyle, scale float64) FontMetrics
}

// CellMetrics measures text by terminal cells: one per grapheme cluster,
// two for East Asian wide clusters, multiplied by the scale factor.
type CellMetrics struct {
	scale float64
}

// NewCellMetrics returns metrics at the given scale. Non-positive scales
// are treated as 1.
func NewCellMetrics(scale float64) CellMetrics {
	if scale <= 0 {
		scale = 1
	}
	return CellMetrics{scale: scale}
}

// Width returns the scaled cell width of text, measured per grapheme
// cluster so that combining sequences and emoji count once.
func (m CellMetrics) Width(text string) float64 {
	if text == "" {
		return 0
	}
	total := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := rw.StringWidth(g.Str())
		if w < 1 {
			w = 1
		}
		total += w
	}
	return float64(total) * m.scale
}

// Height returns the scaled line height.
func (m CellMetrics) Height() float64 { return m.scale }

var _ FontMetrics = CellMetrics{}

// CellFontSource derives per-style metrics from cell measurement. Small
// and large styles shrink or grow the effective scale the way a font
// subsystem would pick a different point size.
type CellFontSource struct{}

func (CellFontSource) Metrics(style FontStyle, scale float64) FontMetrics {
	switch style {
	case FontChatSmall:
		scale *= 0.8
	case FontChatLarge:
		scale *= 1.2
	}
	return NewCellMetrics(scale)
}

var _ FontSource = CellFontSource{}
