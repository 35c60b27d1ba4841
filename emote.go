package marquee

// Emote is an externally owned, immutable emote resource. Identity is
// pointer identity: two layers referring to the same *Emote are the same
// emote.
type Emote struct {
	Name     string
	CopyText string
	Tooltip  string
	Images   ImageSet
}

// EmoteLayer is one layer of a layered emote: the emote plus the element
// flags of the provider it came from.
type EmoteLayer struct {
	Emote *Emote
	Flags ElementFlags
}
