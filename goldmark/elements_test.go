package goldmark_test

import (
	"testing"

	"github.com/mwielgus/marquee"
	"github.com/mwielgus/marquee/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textOf(t *testing.T, e marquee.Element) *marquee.TextElement {
	t.Helper()
	te, ok := e.(*marquee.TextElement)
	require.True(t, ok, "expected text element, got %T", e)
	return te
}

func TestElements(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, goldmark.Elements(""))
	})

	t.Run("single paragraph", func(t *testing.T) {
		t.Parallel()
		els := goldmark.Elements("hello chat")
		require.Len(t, els, 1)
		te := textOf(t, els[0])
		assert.Equal(t, "hello chat", te.Text())
		assert.Equal(t, marquee.ColorText, te.Color())
		assert.Equal(t, marquee.FontChatMedium, te.Style())
	})

	t.Run("heading is bold system color", func(t *testing.T) {
		t.Parallel()
		els := goldmark.Elements("# Announcement")
		require.Len(t, els, 1)
		te := textOf(t, els[0])
		assert.Equal(t, "Announcement", te.Text())
		assert.Equal(t, marquee.ColorSystem, te.Color())
		assert.Equal(t, marquee.FontChatMediumBold, te.Style())
	})

	t.Run("blocks are separated by linebreaks", func(t *testing.T) {
		t.Parallel()
		els := goldmark.Elements("# Title\n\nbody text")
		require.Len(t, els, 3)
		textOf(t, els[0])
		assert.IsType(t, &marquee.LinebreakElement{}, els[1])
		assert.Equal(t, "body text", textOf(t, els[2]).Text())
	})

	t.Run("inline styling flattens to plain text", func(t *testing.T) {
		t.Parallel()
		els := goldmark.Elements("some **bold** and *italic* and `code`")
		require.Len(t, els, 1)
		assert.Equal(t, "some bold and italic and code", textOf(t, els[0]).Text())
	})

	t.Run("bullet list keeps markers", func(t *testing.T) {
		t.Parallel()
		els := goldmark.Elements("- one\n- two")
		require.Len(t, els, 3)
		assert.Equal(t, "- one", textOf(t, els[0]).Text())
		assert.IsType(t, &marquee.LinebreakElement{}, els[1])
		assert.Equal(t, "- two", textOf(t, els[2]).Text())
	})

	t.Run("ordered list numbers items", func(t *testing.T) {
		t.Parallel()
		els := goldmark.Elements("1. first\n2. second")
		require.Len(t, els, 3)
		assert.Equal(t, "1. first", textOf(t, els[0]).Text())
		assert.Equal(t, "2. second", textOf(t, els[2]).Text())
	})

	t.Run("code block lines stay unwrapped", func(t *testing.T) {
		t.Parallel()
		els := goldmark.Elements("```\nfirst line\nsecond line\n```")
		require.Len(t, els, 3)
		first := textOf(t, els[0])
		assert.Equal(t, "first line", first.Text())
		assert.Equal(t, marquee.ColorSystem, first.Color())
		assert.Equal(t, "second line", textOf(t, els[2]).Text())
	})

	t.Run("elements lay out through a container", func(t *testing.T) {
		t.Parallel()
		els := goldmark.Elements("# Title\n\nhello world")
		c := marquee.NewContainer(marquee.ContainerConfig{Width: 40})
		for _, e := range els {
			e.AddToContainer(c, marquee.FlagsDefault)
		}
		lines := c.Lines()
		require.Len(t, lines, 2)
	})
}
