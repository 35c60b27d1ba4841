package marquee_test

import (
	"testing"
	"time"

	"github.com/mwielgus/marquee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMessage() *marquee.Message {
	m := marquee.NewMessage(marquee.MessageHighlighted)
	m.ID = "msg-1"
	m.MessageText = "hello world"
	m.LoginName = "forsen"
	m.DisplayName = "Forsen"
	m.ChannelName = "forsen"
	m.ParseTime = time.Date(2024, 3, 7, 13, 37, 0, 0, time.UTC)
	m.Badges = []marquee.Badge{{Set: "subscriber", Version: "12"}}
	m.BadgeInfos = map[string]string{"subscriber": "14"}
	m.AppendElement(marquee.NewTimestamp(m.ParseTime))
	m.AppendElement(marquee.NewText("hello world", marquee.FlagText, marquee.ColorText, marquee.FontChatMedium))
	return m
}

func TestMessage_CloneWith(t *testing.T) {
	t.Parallel()

	t.Run("mutator runs on the copy only", func(t *testing.T) {
		t.Parallel()
		original := sampleMessage()
		clone := original.CloneWith(func(m *marquee.Message) {
			m.MessageText = "<message deleted>"
			m.Flags.Set(marquee.MessageDisabled)
		})

		assert.Equal(t, "hello world", original.MessageText)
		assert.Equal(t, "<message deleted>", clone.MessageText)
		assert.False(t, original.Flags.Has(marquee.MessageDisabled))
		assert.True(t, clone.Flags.Has(marquee.MessageDisabled))
	})

	t.Run("elements are deep copies", func(t *testing.T) {
		t.Parallel()
		original := sampleMessage()
		clone := original.CloneWith(nil)

		require.Len(t, clone.Elements, len(original.Elements))
		clone.Elements[1].AddFlags(marquee.FlagMention)
		assert.Equal(t, marquee.FlagText, original.Elements[1].Flags())
	})

	t.Run("badge state does not alias", func(t *testing.T) {
		t.Parallel()
		original := sampleMessage()
		clone := original.CloneWith(func(m *marquee.Message) {
			m.Badges[0].Version = "24"
			m.BadgeInfos["subscriber"] = "99"
		})

		assert.Equal(t, "12", original.Badges[0].Version)
		assert.Equal(t, "14", original.BadgeInfos["subscriber"])
		assert.Equal(t, "24", clone.Badges[0].Version)
	})

	t.Run("reply linkage is shared", func(t *testing.T) {
		t.Parallel()
		root := sampleMessage()
		thread := marquee.NewThread(root)
		reply := sampleMessage()
		thread.AddReply(reply)

		clone := reply.CloneWith(nil)
		assert.Same(t, thread, clone.ReplyThread)
		assert.Same(t, root, clone.ReplyParent)
	})
}

func TestMessage_Layout(t *testing.T) {
	t.Parallel()

	m := sampleMessage()
	c := marquee.NewContainer(marquee.ContainerConfig{Width: 40})
	m.Layout(c, marquee.FlagsDefault)

	lines := c.Lines()
	require.Len(t, lines, 1)
	// Timestamp plus two words.
	assert.Len(t, lines[0].Primitives, 3)
}

func TestFlagCell(t *testing.T) {
	t.Parallel()

	cell := marquee.NewFlagCell(marquee.MessageSystem)
	cell.Set(marquee.MessageDisabled | marquee.MessageTimeout)
	cell.Clear(marquee.MessageSystem)

	assert.True(t, cell.Has(marquee.MessageDisabled))
	assert.True(t, cell.Has(marquee.MessageTimeout))
	assert.False(t, cell.Has(marquee.MessageSystem))

	cell.Store(marquee.MessageWhisper)
	assert.Equal(t, marquee.MessageWhisper, cell.Load())
}

func TestThread(t *testing.T) {
	t.Parallel()

	t.Run("root never references its own thread", func(t *testing.T) {
		t.Parallel()
		root := sampleMessage()
		thread := marquee.NewThread(root)

		thread.AddReply(root)
		assert.Nil(t, root.ReplyThread)
		assert.Empty(t, thread.Replies())
	})

	t.Run("replies link back to thread and parent", func(t *testing.T) {
		t.Parallel()
		root := sampleMessage()
		thread := marquee.NewThread(root)
		reply := sampleMessage()
		thread.AddReply(reply)

		assert.Same(t, thread, reply.ReplyThread)
		assert.Same(t, root, reply.ReplyParent)
		require.Len(t, thread.Replies(), 1)
		assert.Same(t, reply, thread.Replies()[0])
	})
}
