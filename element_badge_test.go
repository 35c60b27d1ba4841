package marquee_test

import (
	"testing"

	"github.com/mwielgus/marquee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeEmote(name string) *marquee.Emote {
	return testEmote(name, 2, 1)
}

func renderOne(t *testing.T, e marquee.Element, flags marquee.ElementFlags) marquee.Primitive {
	t.Helper()
	c := newContainer(40)
	e.AddToContainer(c, flags)
	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Primitives, 1)
	return lines[0].Primitives[0]
}

func TestBadgeElements(t *testing.T) {
	t.Parallel()

	t.Run("plain badge has no background", func(t *testing.T) {
		t.Parallel()
		e := marquee.NewBadge(badgeEmote("sub"), marquee.FlagBadgesSubscription)
		img := renderOne(t, e, marquee.FlagBadges).(marquee.ImagePrimitive)
		assert.Nil(t, img.Background)
		assert.Equal(t, "sub - Emote", img.Alt)
	})

	t.Run("mod badge carries the moderator green", func(t *testing.T) {
		t.Parallel()
		e := marquee.NewModBadge(badgeEmote("mod"), marquee.FlagBadgesChannelAuthority)
		img := renderOne(t, e, marquee.FlagBadges).(marquee.ImagePrimitive)
		require.NotNil(t, img.Background)
		assert.Equal(t, marquee.RGB{R: 0x34, G: 0xAE, B: 0x0A}, *img.Background)
	})

	t.Run("vip badge renders like a plain badge", func(t *testing.T) {
		t.Parallel()
		e := marquee.NewVipBadge(badgeEmote("vip"), marquee.FlagBadgesChannelAuthority)
		img := renderOne(t, e, marquee.FlagBadges).(marquee.ImagePrimitive)
		assert.Nil(t, img.Background)
	})

	t.Run("ffz badge carries its own color", func(t *testing.T) {
		t.Parallel()
		color := marquee.RGB{R: 0x12, G: 0x34, B: 0x56}
		e := marquee.NewFfzBadge(badgeEmote("ffz"), marquee.FlagBadgesFfz, color)
		img := renderOne(t, e, marquee.FlagBadges).(marquee.ImagePrimitive)
		require.NotNil(t, img.Background)
		assert.Equal(t, color, *img.Background)
	})

	t.Run("unloaded badge renders nothing", func(t *testing.T) {
		t.Parallel()
		ghost := &marquee.Emote{Name: "ghost"}
		c := newContainer(40)
		marquee.NewModBadge(ghost, marquee.FlagBadges).AddToContainer(c, marquee.FlagBadges)
		assert.Empty(t, c.Lines())
	})

	t.Run("clones keep variant identity", func(t *testing.T) {
		t.Parallel()
		mod := marquee.NewModBadge(badgeEmote("mod"), marquee.FlagBadges)
		ffz := marquee.NewFfzBadge(badgeEmote("ffz"), marquee.FlagBadges, marquee.RGB{R: 1})

		_, isMod := mod.Clone().(*marquee.ModBadgeElement)
		assert.True(t, isMod)
		ffzClone, isFfz := ffz.Clone().(*marquee.FfzBadgeElement)
		assert.True(t, isFfz)
		assert.Equal(t, marquee.RGB{R: 1}, ffzClone.BadgeColor())
	})
}
