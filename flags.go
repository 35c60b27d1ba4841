package marquee

import "sync/atomic"

// ElementFlags is a bitset of categorical tags on a message element. An
// element renders only when the render pass's flag filter intersects its
// own flags.
type ElementFlags uint64

const (
	FlagMisc ElementFlags = 1 << iota
	FlagText
	FlagUsername
	FlagTimestamp
	FlagChannelName
	FlagEmoteImages
	FlagEmoteText
	FlagBadgesGlobalAuthority
	FlagBadgesChannelAuthority
	FlagBadgesSubscription
	FlagBadgesVanity
	FlagBadgesFfz
	FlagBitsAmount
	FlagThumbnail
	FlagModeratorTools
	FlagRepliedMessage
	FlagReplyButton
	FlagCollapsed
	FlagLowercaseLinks
	FlagMention
)

// FlagNone matches nothing; an element carrying it never renders.
const FlagNone ElementFlags = 0

// FlagBadges is the union of all badge categories.
const FlagBadges = FlagBadgesGlobalAuthority | FlagBadgesChannelAuthority |
	FlagBadgesSubscription | FlagBadgesVanity | FlagBadgesFfz

// FlagsDefault is the filter used by a regular chat view.
const FlagsDefault = FlagMisc | FlagText | FlagUsername | FlagTimestamp |
	FlagChannelName | FlagEmoteImages | FlagBadges | FlagBitsAmount |
	FlagRepliedMessage | FlagMention

// Has reports whether all bits of other are set.
func (f ElementFlags) Has(other ElementFlags) bool { return f&other == other }

// HasAny reports whether any bit of other is set.
func (f ElementFlags) HasAny(other ElementFlags) bool { return f&other != 0 }

// Set adds the bits of other.
func (f *ElementFlags) Set(other ElementFlags) { *f |= other }

// MessageFlags is a bitset of per-message states.
type MessageFlags uint64

const (
	MessageSystem MessageFlags = 1 << iota
	MessageTimeout
	MessageHighlighted
	MessageDoNotTriggerNotification
	MessageCentered
	MessageDisabled
	MessageCollapsed
	MessageUntimeout
	MessageSubscription
	MessageDoNotLog
	MessageAutoMod
	MessageRecent
	MessageWhisper
	MessageHighlightedWhisper
	MessageDebug
	MessageSimilar
	MessageShowInMentions
	MessageFirstMessage
	MessageReply
	MessageElevated
	MessageSubscribedThread
	MessageCheer
)

// Has reports whether all bits of other are set.
func (f MessageFlags) Has(other MessageFlags) bool { return f&other == other }

// HasAny reports whether any bit of other is set.
func (f MessageFlags) HasAny(other MessageFlags) bool { return f&other != 0 }

// FlagCell is an atomically updatable MessageFlags value. It is the one
// piece of message state that may change after construction, so it lives
// behind atomics rather than as a plain field: readers racing with an
// update observe either the old or the new flags, never a torn value. A
// render pass that reads mid-update simply sees slightly stale flags.
type FlagCell struct {
	bits atomic.Uint64
}

// NewFlagCell returns a cell initialized to f.
func NewFlagCell(f MessageFlags) *FlagCell {
	c := &FlagCell{}
	c.bits.Store(uint64(f))
	return c
}

// Load returns the current flags.
func (c *FlagCell) Load() MessageFlags { return MessageFlags(c.bits.Load()) }

// Store replaces the current flags.
func (c *FlagCell) Store(f MessageFlags) { c.bits.Store(uint64(f)) }

// Set adds the bits of f.
func (c *FlagCell) Set(f MessageFlags) { c.bits.Or(uint64(f)) }

// Clear removes the bits of f.
func (c *FlagCell) Clear(f MessageFlags) { c.bits.And(^uint64(f)) }

// Has reports whether all bits of f are currently set.
func (c *FlagCell) Has(f MessageFlags) bool { return c.Load().Has(f) }
