// Package goldmark turns markdown text into message elements, using
// goldmark for parsing. Chat platforms deliver announcements and pinned
// notices as markdown; Elements lets those flow through the same layout
// pipeline as regular messages, and Render is a convenience that runs
// that pipeline straight to styled terminal lines.
package goldmark

import (
	"strings"

	"github.com/mwielgus/marquee"
	"github.com/mwielgus/marquee/term"
)

// Render parses markdown source, lays the resulting elements out at
// width and returns the styled terminal lines joined by newlines.
func Render(source string, width int, theme marquee.Theme) string {
	if width <= 0 {
		width = 80
	}
	elements := Elements(source)
	if len(elements) == 0 {
		return ""
	}
	c := marquee.NewContainer(marquee.ContainerConfig{
		Width: float64(width),
		Theme: theme,
	})
	for _, e := range elements {
		e.AddToContainer(c, marquee.FlagsDefault)
	}
	return strings.Join(term.Flush(c), "\n")
}
