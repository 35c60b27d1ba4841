package emotes_test

import (
	"testing"

	"github.com/mwielgus/marquee"
	"github.com/mwielgus/marquee/emotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmote(name string) *marquee.Emote {
	return &marquee.Emote{
		Name:     name,
		CopyText: name,
		Tooltip:  name + " - Emote",
	}
}

func TestStore_Registry(t *testing.T) {
	t.Parallel()

	s := emotes.NewStore()
	kappa := newEmote("Kappa")
	s.Add(kappa)
	s.Add(newEmote("PogChamp"))

	assert.Same(t, kappa, s.Lookup("Kappa"))
	assert.Nil(t, s.Lookup("kappa"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"Kappa", "PogChamp"}, s.Names())

	t.Run("replace keeps one entry per name", func(t *testing.T) {
		replacement := newEmote("Kappa")
		s.Add(replacement)
		assert.Same(t, replacement, s.Lookup("Kappa"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("remove", func(t *testing.T) {
		s.Remove("PogChamp")
		assert.Nil(t, s.Lookup("PogChamp"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("nil and unnamed emotes are ignored", func(t *testing.T) {
		before := s.Len()
		s.Add(nil)
		s.Add(&marquee.Emote{})
		assert.Equal(t, before, s.Len())
	})
}

func TestStore_Parse(t *testing.T) {
	t.Parallel()

	s := emotes.NewStore()
	kappa := newEmote("Kappa")
	pog := newEmote("PogChamp")
	s.Add(kappa)
	s.Add(pog)

	t.Run("plain text is one token", func(t *testing.T) {
		t.Parallel()
		tokens := s.Parse("hello there chat")
		require.Len(t, tokens, 1)
		assert.Equal(t, marquee.TextToken{Text: "hello there chat"}, tokens[0])
	})

	t.Run("emote words become emote tokens", func(t *testing.T) {
		t.Parallel()
		tokens := s.Parse("hello Kappa nice PogChamp")
		require.Len(t, tokens, 4)
		assert.Equal(t, marquee.TextToken{Text: "hello"}, tokens[0])
		assert.Equal(t, marquee.EmoteToken{Emote: kappa}, tokens[1])
		assert.Equal(t, marquee.TextToken{Text: "nice"}, tokens[2])
		assert.Equal(t, marquee.EmoteToken{Emote: pog}, tokens[3])
	})

	t.Run("adjacent text words merge", func(t *testing.T) {
		t.Parallel()
		tokens := s.Parse("a b Kappa c d")
		require.Len(t, tokens, 3)
		assert.Equal(t, marquee.TextToken{Text: "a b"}, tokens[0])
		assert.Equal(t, marquee.EmoteToken{Emote: kappa}, tokens[1])
		assert.Equal(t, marquee.TextToken{Text: "c d"}, tokens[2])
	})

	t.Run("runs of spaces survive the merge", func(t *testing.T) {
		t.Parallel()
		tokens := s.Parse("a  b")
		require.Len(t, tokens, 1)
		assert.Equal(t, marquee.TextToken{Text: "a  b"}, tokens[0])

		tokens = s.Parse(" padded text ")
		require.Len(t, tokens, 1)
		assert.Equal(t, marquee.TextToken{Text: " padded text "}, tokens[0])
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		t.Parallel()
		tokens := s.Parse("kappa")
		require.Len(t, tokens, 1)
		assert.IsType(t, marquee.TextToken{}, tokens[0])
	})

	t.Run("consecutive emotes", func(t *testing.T) {
		t.Parallel()
		tokens := s.Parse("Kappa Kappa")
		require.Len(t, tokens, 2)
		assert.Equal(t, marquee.EmoteToken{Emote: kappa}, tokens[0])
		assert.Equal(t, marquee.EmoteToken{Emote: kappa}, tokens[1])
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, s.Parse(""))
	})
}
