package goldmark

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mwielgus/marquee"
)

// Elements parses markdown source into message elements: one text
// element per block with a linebreak between blocks. Headings render
// bold in the system color; everything else in the regular text color.
// Inline styling is flattened to plain text, since chat lines carry one
// style per element.
func Elements(source string) []marquee.Element {
	if source == "" {
		return nil
	}

	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var out []marquee.Element
	emit := func(e marquee.Element) {
		if len(out) > 0 {
			out = append(out, marquee.NewLinebreak(marquee.FlagText))
		}
		out = append(out, e)
	}

	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		blockElements(c, src, emit)
	}
	return out
}

func blockElements(node ast.Node, src []byte, emit func(marquee.Element)) {
	switch n := node.(type) {
	case *ast.Heading:
		if t := plainInline(n, src); t != "" {
			emit(marquee.NewText(t, marquee.FlagText, marquee.ColorSystem, marquee.FontChatMediumBold))
		}

	case *ast.Paragraph, *ast.TextBlock:
		if t := plainInline(n, src); t != "" {
			emit(marquee.NewText(t, marquee.FlagText, marquee.ColorText, marquee.FontChatMedium))
		}

	case *ast.List:
		listElements(n, src, emit)

	case *ast.FencedCodeBlock:
		codeLines(n.Lines(), src, emit)

	case *ast.CodeBlock:
		codeLines(n.Lines(), src, emit)

	case *ast.ThematicBreak:
		emit(marquee.NewText("---", marquee.FlagText, marquee.ColorSystem, marquee.FontChatMedium))

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			blockElements(c, src, emit)
		}
	}
}

func listElements(node *ast.List, src []byte, emit func(marquee.Element)) {
	num := node.Start
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "- "
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if t := plainInline(in, src); t != "" {
					emit(marquee.NewText(marker+t, marquee.FlagText, marquee.ColorText, marquee.FontChatMedium))
				}
			case *ast.List:
				listElements(in, src, emit)
			}
		}
	}
}

func codeLines(lines *text.Segments, src []byte, emit func(marquee.Element)) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(src)), "\n")
		emit(marquee.NewText(line, marquee.FlagText, marquee.ColorSystem, marquee.FontChatMedium))
	}
}

// plainInline flattens a block's inline children to their text content.
func plainInline(node ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch in := c.(type) {
			case *ast.Text:
				buf.Write(in.Segment.Value(src))
				if in.SoftLineBreak() || in.HardLineBreak() {
					buf.WriteByte(' ')
				}
			case *ast.String:
				buf.Write(in.Value)
			case *ast.AutoLink:
				buf.Write(in.URL(src))
			default:
				walk(c)
			}
		}
	}
	walk(node)
	return strings.TrimSpace(buf.String())
}
