// Package marquee lays out chat messages for display. A Message owns an
// ordered sequence of Elements; a render pass walks the sequence, asking
// each element, filtered by a flag set, to append visual primitives into
// a layout Container that performs line-breaking and width accounting.
package marquee

// ThumbnailKind classifies an element's preview image.
type ThumbnailKind int

const (
	ThumbnailNone ThumbnailKind = iota
	ThumbnailLink
)

// Element is one renderable unit within a message.
//
// AddToContainer emits zero or more primitives into the container when
// the filter flags intersect the element's own flags, and is a no-op
// otherwise. It never fails: absent or empty resources are skipped
// silently. Given identical container settings, repeated calls emit
// equivalent output.
//
// Clone returns an independent copy. Mutable sub-state is deep-copied;
// image and emote resources are shared because they are externally
// owned and immutable.
type Element interface {
	AddToContainer(c *Container, flags ElementFlags)
	Clone() Element

	Flags() ElementFlags
	AddFlags(flags ElementFlags)
	Link() Link
	Text() string
	Tooltip() string
	Thumbnail() Image
	HasTrailingSpace() bool
}

// elem carries the state shared by all element variants.
type elem struct {
	flags         ElementFlags
	link          Link
	text          string
	tooltip       string
	thumbnail     Image
	thumbnailKind ThumbnailKind
	trailingSpace bool
}

func newElem(flags ElementFlags) elem {
	return elem{flags: flags, trailingSpace: true}
}

// Flags returns the element's own flag set. Flags are fixed at
// construction; AddFlags is the only way to widen them.
func (e *elem) Flags() ElementFlags { return e.flags }

// AddFlags widens the element's flag set.
func (e *elem) AddFlags(flags ElementFlags) { e.flags.Set(flags) }

// Link returns the element's navigable action.
func (e *elem) Link() Link { return e.link }

// SetLink attaches a navigable action.
func (e *elem) SetLink(l Link) { e.link = l }

// Text returns the element's display string.
func (e *elem) Text() string { return e.text }

// SetText sets the element's display string.
func (e *elem) SetText(t string) { e.text = t }

// Tooltip returns the hover text.
func (e *elem) Tooltip() string { return e.tooltip }

// SetTooltip sets the hover text.
func (e *elem) SetTooltip(t string) { e.tooltip = t }

// Thumbnail returns the preview image, if any.
func (e *elem) Thumbnail() Image { return e.thumbnail }

// SetThumbnail attaches a preview image.
func (e *elem) SetThumbnail(img Image, kind ThumbnailKind) {
	e.thumbnail = img
	e.thumbnailKind = kind
}

// ThumbnailKind returns the preview image classification.
func (e *elem) ThumbnailKind() ThumbnailKind { return e.thumbnailKind }

// HasTrailingSpace reports whether a space follows this element when
// concatenating text.
func (e *elem) HasTrailingSpace() bool { return e.trailingSpace }

// SetTrailingSpace sets whether a space follows this element.
func (e *elem) SetTrailingSpace(v bool) { e.trailingSpace = v }

// cloneBase copies the shared state. The thumbnail is shared, not
// copied: it is an externally owned resource.
func (e *elem) cloneBase() elem { return *e }

// EmptyElement renders nothing under any filter.
type EmptyElement struct {
	elem
}

// NewEmpty returns a no-op element.
func NewEmpty() *EmptyElement {
	return &EmptyElement{elem: newElem(FlagNone)}
}

var emptySingleton = NewEmpty()

// Empty returns the shared no-op element.
func Empty() *EmptyElement { return emptySingleton }

func (e *EmptyElement) AddToContainer(c *Container, flags ElementFlags) {}

func (e *EmptyElement) Clone() Element {
	return &EmptyElement{elem: e.cloneBase()}
}

var _ Element = (*EmptyElement)(nil)
