package term_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwielgus/marquee"
	"github.com/mwielgus/marquee/term"
)

func stripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	return re.ReplaceAllString(s, "")
}

func TestMain(m *testing.M) {
	// Force ANSI color output so styled primitives produce visible escape
	// codes we can assert against.
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

func layout(width float64, elements ...marquee.Element) *marquee.Container {
	c := marquee.NewContainer(marquee.ContainerConfig{Width: width})
	for _, e := range elements {
		e.AddToContainer(c, marquee.FlagsDefault|marquee.FlagModeratorTools)
	}
	return c
}

func TestFlush_LinesFitWidth(t *testing.T) {
	t.Parallel()

	// Fragments summing exactly to the width must still leave room for
	// the separator spaces the renderer emits between them.
	t.Run("separator spaces never push a line past the width", func(t *testing.T) {
		t.Parallel()
		c := layout(10, marquee.NewText("aaaa bbbb cc", marquee.FlagText, marquee.ColorText, marquee.FontChatMedium))
		lines := term.Flush(c)
		require.Len(t, lines, 2)
		assert.Equal(t, "aaaa bbbb", stripANSI(lines[0]))
		assert.Equal(t, "cc", stripANSI(lines[1]))
		for _, line := range lines {
			assert.LessOrEqual(t, uniseg.StringWidth(stripANSI(line)), 10)
		}
	})

	t.Run("images count toward the width", func(t *testing.T) {
		t.Parallel()
		emote := &marquee.Emote{Name: "Kappa", CopyText: "Kappa", Images: marquee.NewImageSet(marquee.NewStaticImage(5, 2), nil, nil)}
		c := layout(10,
			marquee.NewText("aaaa", marquee.FlagText, marquee.ColorText, marquee.FontChatMedium),
			marquee.NewEmote(emote, marquee.FlagEmoteImages, marquee.ColorText),
			marquee.NewText("bbbb", marquee.FlagText, marquee.ColorText, marquee.FontChatMedium),
		)
		for _, line := range term.Flush(c) {
			assert.LessOrEqual(t, uniseg.StringWidth(stripANSI(line)), 10)
		}
	})
}

func TestFlush_Text(t *testing.T) {
	t.Parallel()

	t.Run("words joined by spaces", func(t *testing.T) {
		t.Parallel()
		c := layout(40, marquee.NewText("hello world", marquee.FlagText, marquee.ColorText, marquee.FontChatMedium))
		lines := term.Flush(c)
		require.Len(t, lines, 1)
		assert.Equal(t, "hello world", stripANSI(lines[0]))
	})

	t.Run("wrap yields one string per line", func(t *testing.T) {
		t.Parallel()
		c := layout(8, marquee.NewText("hello world", marquee.FlagText, marquee.ColorText, marquee.FontChatMedium))
		lines := term.Flush(c)
		require.Len(t, lines, 2)
		assert.Equal(t, "hello", stripANSI(lines[0]))
		assert.Equal(t, "world", stripANSI(lines[1]))
	})

	t.Run("custom colors come through as styling", func(t *testing.T) {
		t.Parallel()
		colored := marquee.NewText("name", marquee.FlagUsername, marquee.CustomColor(marquee.RGB{R: 0xFF, G: 0xFF, B: 0xFF}), marquee.FontChatMediumBold)
		c := layout(40, colored)
		lines := term.Flush(c)
		require.Len(t, lines, 1)
		assert.NotEqual(t, lines[0], stripANSI(lines[0]))
		assert.Equal(t, "name", stripANSI(lines[0]))
	})

	t.Run("no trailing space at line end", func(t *testing.T) {
		t.Parallel()
		c := layout(40, marquee.NewText("tail", marquee.FlagText, marquee.ColorText, marquee.FontChatMedium))
		lines := term.Flush(c)
		require.Len(t, lines, 1)
		assert.False(t, strings.HasSuffix(stripANSI(lines[0]), " "))
	})
}

func TestFlush_Images(t *testing.T) {
	t.Parallel()

	kappa := &marquee.Emote{
		Name:     "Kappa",
		CopyText: "Kappa",
		Images:   marquee.ImageSet{X1: marquee.NewStaticImage(2, 1)},
	}

	t.Run("emote renders as its name", func(t *testing.T) {
		t.Parallel()
		c := layout(40, marquee.NewEmote(kappa, marquee.FlagEmoteImages|marquee.FlagEmoteText, marquee.ColorText))
		lines := term.Flush(c)
		require.Len(t, lines, 1)
		assert.Equal(t, "Kappa", stripANSI(lines[0]))
	})

	t.Run("badge background is styled", func(t *testing.T) {
		t.Parallel()
		badge := &marquee.Emote{
			Name:    "moderator/1",
			Tooltip: "Moderator",
			Images:  marquee.ImageSet{X1: marquee.NewStaticImage(2, 1)},
		}
		c := layout(40, marquee.NewModBadge(badge, marquee.FlagBadgesChannelAuthority))
		lines := term.Flush(c)
		require.Len(t, lines, 1)
		assert.NotEqual(t, lines[0], stripANSI(lines[0]))
	})
}

func TestFlush_CurveAndIcons(t *testing.T) {
	t.Parallel()

	t.Run("reply curve renders a glyph", func(t *testing.T) {
		t.Parallel()
		curve := marquee.NewReplyCurve()
		c := marquee.NewContainer(marquee.ContainerConfig{Width: 40})
		curve.AddToContainer(c, marquee.FlagRepliedMessage)
		lines := term.Flush(c)
		require.Len(t, lines, 1)
		assert.Contains(t, stripANSI(lines[0]), "╭─")
	})

	t.Run("text icon moderation actions render bracketed", func(t *testing.T) {
		t.Parallel()
		settings := marquee.DefaultSettings()
		settings.ModerationActions = []marquee.ModerationAction{
			{Invocation: "/timeout {user} 600", Line1: "10", Line2: "m"},
			{Invocation: "/ban {user}", Line1: "ba", Line2: "n"},
		}
		c := marquee.NewContainer(marquee.ContainerConfig{Width: 40, Settings: settings})
		marquee.NewModeration().AddToContainer(c, marquee.FlagModeratorTools)
		lines := term.Flush(c)
		require.Len(t, lines, 1)
		assert.Contains(t, stripANSI(lines[0]), "[10m]")
		assert.Contains(t, stripANSI(lines[0]), "[ban]")
	})
}

func TestDetectTheme(t *testing.T) {
	t.Parallel()

	theme := term.DetectTheme()
	if theme.Dark {
		assert.Equal(t, marquee.DefaultTheme(), theme)
	} else {
		assert.Equal(t, 0, theme.Text)
	}
}
