// Package term renders laid-out chat lines as ANSI-styled strings for a
// terminal. Images have no cell representation, so they render as their
// alt text; badge backgrounds and name colors come through lipgloss.
package term

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mwielgus/marquee"
)

// DetectTheme returns the default theme for the terminal's background,
// flipping to the light variant when the background is light.
func DetectTheme() marquee.Theme {
	theme := marquee.DefaultTheme()
	if !termenv.HasDarkBackground() {
		theme.Dark = false
		theme.Text = 0
	}
	return theme
}

// Flush renders the container's lines to one string per visual line.
func Flush(c *marquee.Container) []string {
	theme := c.Theme()
	lines := c.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = renderLine(line, theme)
	}
	return out
}

func renderLine(line marquee.Line, theme marquee.Theme) string {
	var b strings.Builder
	for i, p := range line.Primitives {
		last := i == len(line.Primitives)-1
		switch p := p.(type) {
		case marquee.TextPrimitive:
			b.WriteString(textStyle(p).Render(p.Text))
			if p.TrailingSpace && !last {
				b.WriteByte(' ')
			}

		case marquee.ImagePrimitive:
			b.WriteString(imageStyle(p).Render(p.Alt))
			if !last {
				b.WriteByte(' ')
			}

		case marquee.LayeredImagePrimitive:
			b.WriteString(lipgloss.NewStyle().Render(p.Alt))
			if !last {
				b.WriteByte(' ')
			}

		case marquee.CurvePrimitive:
			curve := lipgloss.NewStyle().Foreground(ansiColor(theme.Muted))
			b.WriteString(curve.Render("╭─"))
			b.WriteByte(' ')

		case marquee.TextIconPrimitive:
			icon := "[" + p.Line1
			if p.Line2 != "" {
				icon += p.Line2
			}
			icon += "]"
			style := lipgloss.NewStyle().Foreground(ansiColor(theme.System))
			b.WriteString(style.Render(icon))
			if !last {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

func textStyle(p marquee.TextPrimitive) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(toLipgloss(p.Color))
	if p.Style == marquee.FontChatMediumBold {
		s = s.Bold(true)
	}
	return s
}

func imageStyle(p marquee.ImagePrimitive) lipgloss.Style {
	s := lipgloss.NewStyle()
	if p.Background != nil {
		s = s.Background(lipgloss.Color(p.Background.Hex()))
	}
	return s
}

// toLipgloss converts a resolved terminal color to a lipgloss color.
func toLipgloss(c marquee.TermColor) lipgloss.TerminalColor {
	if c.IsRGB {
		return lipgloss.Color(c.RGB.Hex())
	}
	return ansiColor(c.ANSI)
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
