package marquee

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Word is one whitespace-delimited fragment of a text element, with its
// measured width cached. A negative width means not yet measured.
type Word struct {
	Text  string
	Width float64
}

// NewWord returns an unmeasured word.
func NewWord(text string) Word {
	return Word{Text: text, Width: -1}
}

func splitWords(text string) []Word {
	parts := strings.Split(text, " ")
	words := make([]Word, len(parts))
	for i, p := range parts {
		words[i] = NewWord(p)
	}
	return words
}

// TextElement renders a sequence of words with greedy line-wrapping.
// A word that alone exceeds a full line is split at grapheme-cluster
// boundaries.
type TextElement struct {
	elem
	color MessageColor
	style FontStyle
	words []Word
}

// NewText returns a text element, splitting text on single spaces.
func NewText(text string, flags ElementFlags, color MessageColor, style FontStyle) *TextElement {
	return &TextElement{
		elem:  newElem(flags),
		color: color,
		style: style,
		words: splitWords(text),
	}
}

// NewTextFromWords returns a text element over pre-split words.
func NewTextFromWords(words []Word, flags ElementFlags, color MessageColor, style FontStyle) *TextElement {
	return &TextElement{
		elem:  newElem(flags),
		color: color,
		style: style,
		words: words,
	}
}

// Color returns the element's color.
func (e *TextElement) Color() MessageColor { return e.color }

// Style returns the element's font style.
func (e *TextElement) Style() FontStyle { return e.style }

// Words returns the element's words with whatever widths are cached.
func (e *TextElement) Words() []Word { return e.words }

func (e *TextElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}

	m := c.Metrics(e.style)
	color := c.Theme().Resolve(e.color)

	textPrim := func(text string, width float64, trailingSpace bool) TextPrimitive {
		return TextPrimitive{
			Text:          text,
			W:             width,
			Color:         color,
			Style:         e.style,
			TrailingSpace: trailingSpace,
			Link:          e.link,
		}
	}

	for i := range e.words {
		word := &e.words[i]
		word.Width = m.Width(word.Text)

		// The word fits on the current line.
		if c.FitsInLine(word.Width) {
			c.AddPrimitiveNoLineBreak(textPrim(word.Text, word.Width, e.HasTrailingSpace()))
			continue
		}

		// The word fits on a fresh line.
		if !c.AtStartOfLine() {
			c.BreakLine()
			if c.FitsInLine(word.Width) {
				c.AddPrimitiveNoLineBreak(textPrim(word.Text, word.Width, e.HasTrailingSpace()))
				continue
			}
		}

		// The word alone exceeds a full line: split at grapheme-cluster
		// boundaries, flushing each run that would overflow. Forced
		// fragments carry no trailing space; the final fragment keeps
		// the element's.
		text := word.Text
		start := 0
		off := 0
		width := 0.0
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			cluster := g.Str()
			cw := m.Width(cluster)
			if !c.FitsInLine(width+cw) && off > start {
				c.AddPrimitiveNoLineBreak(textPrim(text[start:off], width, false))
				c.BreakLine()
				start = off
				width = cw
			} else {
				width += cw
			}
			off += len(cluster)
		}
		c.AddPrimitiveNoLineBreak(textPrim(text[start:], width, e.HasTrailingSpace()))
	}
}

func (e *TextElement) Clone() Element {
	words := make([]Word, len(e.words))
	copy(words, e.words)
	return &TextElement{
		elem:  e.cloneBase(),
		color: e.color,
		style: e.style,
		words: words,
	}
}

var _ Element = (*TextElement)(nil)

// ellipsis terminates elided single-line text.
const ellipsis = "…"

// SingleLineTextElement renders text onto exactly one visual line,
// eliding with an ellipsis and interleaving inline emote images found by
// the container's tokenizer.
type SingleLineTextElement struct {
	elem
	color MessageColor
	style FontStyle
	words []Word
}

// NewSingleLineText returns a single-line text element, splitting text
// on single spaces.
func NewSingleLineText(text string, flags ElementFlags, color MessageColor, style FontStyle) *SingleLineTextElement {
	return &SingleLineTextElement{
		elem:  newElem(flags),
		color: color,
		style: style,
		words: splitWords(text),
	}
}

// Color returns the element's color.
func (e *SingleLineTextElement) Color() MessageColor { return e.color }

// Style returns the element's font style.
func (e *SingleLineTextElement) Style() FontStyle { return e.style }

func (e *SingleLineTextElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}

	m := c.Metrics(e.style)
	color := c.Theme().Resolve(e.color)

	textPrim := func(text string, width float64) TextPrimitive {
		return TextPrimitive{
			Text:  text,
			W:     width,
			Color: color,
			Style: e.style,
			Link:  e.link,
		}
	}

	// Pending text accumulates until an emote flushes it or the message
	// ends. Once anything is elided no further content is considered.
	pending := ""
	stop := false

	for _, word := range e.words {
		for _, tok := range c.Tokenizer().Parse(word.Text) {
			switch tok := tok.(type) {
			case TextToken:
				if pending != "" {
					pending += " "
				}
				pending += tok.Text
				elided := elideRight(m, pending, c.RemainingWidth())
				if elided != pending {
					pending = elided
					stop = true
				}

			case EmoteToken:
				img := tok.Emote.Images.ImageOrLoaded(c.Scale())
				if img.Empty() {
					continue
				}
				scale := c.Settings().EmoteScale * c.Scale()
				ew := float64(img.Width()) * scale
				eh := float64(img.Height()) * scale
				pendingWidth := m.Width(pending)
				if !c.FitsInLine(pendingWidth + ew) {
					pending += ellipsis
					stop = true
					break
				}
				if pending != "" {
					c.AddPrimitiveNoLineBreak(textPrim(pending, pendingWidth))
					pending = ""
				}
				c.AddPrimitiveNoLineBreak(ImagePrimitive{
					Image: img,
					W:     ew,
					H:     eh,
					Alt:   tok.Emote.Name,
					Link:  e.link,
				})
			}
			if stop {
				break
			}
		}
		if stop {
			break
		}
	}

	if pending != "" {
		pending = strings.TrimRight(pending, " ")
		c.AddPrimitiveNoLineBreak(textPrim(pending, m.Width(pending)))
	}

	c.BreakLine()
}

func (e *SingleLineTextElement) Clone() Element {
	words := make([]Word, len(e.words))
	copy(words, e.words)
	return &SingleLineTextElement{
		elem:  e.cloneBase(),
		color: e.color,
		style: e.style,
		words: words,
	}
}

var _ Element = (*SingleLineTextElement)(nil)

// elideRight truncates text at grapheme-cluster boundaries so that it
// fits in width together with a trailing ellipsis. Text that already
// fits is returned unchanged.
func elideRight(m FontMetrics, text string, width float64) string {
	if m.Width(text) <= width {
		return text
	}
	ellWidth := m.Width(ellipsis)
	end := 0
	used := 0.0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cw := m.Width(g.Str())
		if used+cw+ellWidth > width {
			break
		}
		used += cw
		end += len(g.Str())
	}
	return text[:end] + ellipsis
}
