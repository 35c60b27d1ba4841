package marquee

// LinkKind describes what clicking a layout element should do.
type LinkKind int

const (
	LinkNone LinkKind = iota
	LinkURL
	LinkUserInfo
	LinkUserAction
	LinkUserWhisper
	LinkJumpToChannel
)

// Link is a navigable action attached to an element. The zero value is
// not navigable.
type Link struct {
	Kind  LinkKind
	Value string
}

// IsValid reports whether the link points anywhere.
func (l Link) IsValid() bool { return l.Kind != LinkNone }
