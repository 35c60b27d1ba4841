package main

import (
	"fmt"
	"time"

	"github.com/mwielgus/marquee"
	"github.com/mwielgus/marquee/emotes"
	"github.com/mwielgus/marquee/goldmark"
)

// sampleEmotes returns a store seeded with a handful of demo emotes.
func sampleEmotes() *emotes.Store {
	store := emotes.NewStore()
	for _, name := range []string{"Kappa", "forsenE", "LULW", "peepoHappy"} {
		store.Add(&marquee.Emote{
			Name:     name,
			CopyText: name,
			Tooltip:  name + " - demo emote",
			Images:   demoImages(),
		})
	}
	return store
}

func demoImages() marquee.ImageSet {
	return marquee.NewImageSet(
		marquee.NewStaticImage(2, 1),
		marquee.NewStaticImage(4, 2),
		marquee.NewStaticImage(8, 4),
	)
}

// sampleMessages builds a short demo feed: plain chat, emotes, a reply
// thread, a layered emote and a message with moderation buttons.
func sampleMessages(store *emotes.Store) []*marquee.Message {
	at := time.Now().Add(-5 * time.Minute)
	next := func() time.Time {
		at = at.Add(20 * time.Second)
		return at
	}

	announcement := announcementMessage(next(),
		"## Stream starting\n\nToday: *more* chatting. Be nice.")

	hello := chatMessage(next(), store, "pajlada", "Pajlada",
		marquee.RGB{R: 0x2E, G: 0x8B, B: 0x57}, "hello chat Kappa")
	hello.Badges = []marquee.Badge{{Set: "moderator", Version: "1"}}

	spam := chatMessage(next(), store, "forsen", "Forsen",
		marquee.RGB{R: 0xB2, G: 0x22, B: 0x22}, "LULW LULW LULW")

	reply := chatMessage(next(), store, "nymn", "NymN",
		marquee.RGB{R: 0x1E, G: 0x90, B: 0xFF}, "what did he mean by this")
	makeReply(reply, hello)

	layered := chatMessage(next(), store, "supinic", "Supinic",
		marquee.RGB{R: 0xDA, G: 0xA5, B: 0x20}, "check this out")
	layered.AppendElement(marquee.NewLayeredEmote([]marquee.EmoteLayer{
		{Emote: store.Lookup("peepoHappy"), Flags: marquee.FlagEmoteImages},
		{Emote: store.Lookup("Kappa"), Flags: marquee.FlagEmoteImages},
	}, marquee.FlagEmoteImages, marquee.ColorText))

	modTarget := chatMessage(next(), store, "spambot", "spambot",
		marquee.RGB{R: 0x80, G: 0x80, B: 0x80}, "buy followers at example dot com")
	modTarget.AppendElement(marquee.NewModeration())

	return []*marquee.Message{announcement, hello, spam, reply, layered, modTarget}
}

// chatMessage builds a regular chat line: timestamp, bold username, then
// the text run through the emote tokenizer.
func chatMessage(at time.Time, store *emotes.Store, login, display string, color marquee.RGB, text string) *marquee.Message {
	m := marquee.NewMessage(0)
	m.ParseTime = at
	m.LoginName = login
	m.DisplayName = display
	m.MessageText = text
	m.SearchText = display + ": " + text
	m.UsernameColor = marquee.CustomColor(color)

	m.AppendElement(marquee.NewTimestamp(at))
	m.AppendElement(marquee.NewText(display+":", marquee.FlagUsername,
		marquee.CustomColor(color), marquee.FontChatMediumBold))
	for _, tok := range store.Parse(text) {
		switch t := tok.(type) {
		case marquee.TextToken:
			m.AppendElement(marquee.NewText(t.Text, marquee.FlagText,
				marquee.ColorText, marquee.FontChatMedium))
		case marquee.EmoteToken:
			m.AppendElement(marquee.NewEmote(t.Emote, marquee.FlagEmoteImages,
				marquee.ColorText))
		}
	}
	return m
}

// makeReply links m into parent's thread and prepends the reply header:
// a curve plus a single-line parent preview.
func makeReply(m, parent *marquee.Message) {
	thread := parent.ReplyThread
	if thread == nil {
		thread = marquee.NewThread(parent)
	}
	thread.AddReply(m)
	m.Flags.Set(marquee.MessageReply)

	preview := fmt.Sprintf("@%s: %s", parent.DisplayName, parent.MessageText)
	header := []marquee.Element{
		marquee.NewReplyCurve(),
		marquee.NewSingleLineText(preview, marquee.FlagRepliedMessage,
			marquee.ColorSystem, marquee.FontChatMedium),
		marquee.NewLinebreak(marquee.FlagRepliedMessage),
	}
	m.Elements = append(header, m.Elements...)
}

// announcementMessage renders markdown into a system message.
func announcementMessage(at time.Time, markdown string) *marquee.Message {
	m := marquee.NewMessage(marquee.MessageSystem)
	m.ParseTime = at
	m.MessageText = markdown
	m.AppendElement(marquee.NewTimestamp(at))
	for _, e := range goldmark.Elements(markdown) {
		m.AppendElement(e)
	}
	return m
}
