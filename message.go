package marquee

import "time"

// Badge identifies a chat badge by set and version.
type Badge struct {
	Set     string
	Version string
}

// Message is one chat message: an ordered sequence of elements plus
// metadata. Messages are immutable once built, with one deliberate
// exception: Flags is an atomic cell that may be updated after
// construction (moderation state, highlights). Everything else must go
// through CloneWith.
type Message struct {
	Flags *FlagCell

	ParseTime          time.Time
	ID                 string
	SearchText         string
	MessageText        string
	LoginName          string
	DisplayName        string
	LocalizedName      string
	TimeoutUser        string
	ChannelName        string
	UsernameColor      MessageColor
	ServerReceivedTime time.Time
	Badges             []Badge
	BadgeInfos         map[string]string
	HighlightColor     *RGB

	// ReplyThread is set only on replies, never on the thread's root.
	// The thread lives as long as any reply or the root retains it.
	ReplyThread *Thread
	ReplyParent *Message

	// Count is how many identical messages this one stands for.
	Count uint32

	Elements []Element
}

// NewMessage returns an empty message with the given flags.
func NewMessage(flags MessageFlags) *Message {
	return &Message{
		Flags: NewFlagCell(flags),
		Count: 1,
	}
}

// AppendElement appends an element during message construction.
func (m *Message) AppendElement(e Element) {
	m.Elements = append(m.Elements, e)
}

// CloneWith returns an independent copy of the message. Before the copy
// is returned, fn is called with it, so callers can produce variant
// views (redacted text, adjusted flags) without touching the original.
// Elements are deep-cloned; the reply thread and parent are shared.
func (m *Message) CloneWith(fn func(*Message)) *Message {
	clone := &Message{
		Flags:              NewFlagCell(m.Flags.Load()),
		ParseTime:          m.ParseTime,
		ID:                 m.ID,
		SearchText:         m.SearchText,
		MessageText:        m.MessageText,
		LoginName:          m.LoginName,
		DisplayName:        m.DisplayName,
		LocalizedName:      m.LocalizedName,
		TimeoutUser:        m.TimeoutUser,
		ChannelName:        m.ChannelName,
		UsernameColor:      m.UsernameColor,
		ServerReceivedTime: m.ServerReceivedTime,
		ReplyThread:        m.ReplyThread,
		ReplyParent:        m.ReplyParent,
		Count:              m.Count,
	}
	if m.Badges != nil {
		clone.Badges = append([]Badge(nil), m.Badges...)
	}
	if m.BadgeInfos != nil {
		clone.BadgeInfos = make(map[string]string, len(m.BadgeInfos))
		for k, v := range m.BadgeInfos {
			clone.BadgeInfos[k] = v
		}
	}
	if m.HighlightColor != nil {
		hc := *m.HighlightColor
		clone.HighlightColor = &hc
	}
	if m.Elements != nil {
		clone.Elements = make([]Element, len(m.Elements))
		for i, e := range m.Elements {
			clone.Elements[i] = e.Clone()
		}
	}
	if fn != nil {
		fn(clone)
	}
	return clone
}

// Layout walks the message's elements in order, rendering those that
// pass the flag filter into the container.
func (m *Message) Layout(c *Container, flags ElementFlags) {
	for _, e := range m.Elements {
		e.AddToContainer(c, flags)
	}
}
