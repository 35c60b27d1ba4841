package marquee

import "time"

// TimestampElement renders a message's time using the live timestamp
// format setting. The formatted child element is cached and regenerated
// only when the setting changes between renders.
type TimestampElement struct {
	elem
	time   time.Time
	format string
	child  *TextElement
}

// NewTimestamp returns a timestamp element for t.
func NewTimestamp(t time.Time) *TimestampElement {
	return &TimestampElement{elem: newElem(FlagTimestamp), time: t}
}

// Time returns the wrapped time.
func (e *TimestampElement) Time() time.Time { return e.time }

func (e *TimestampElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}
	format := c.Settings().TimestampFormat
	if e.child == nil || format != e.format {
		e.format = format
		e.child = formatTime(e.time, format)
	}
	e.child.AddToContainer(c, flags)
}

func formatTime(t time.Time, format string) *TextElement {
	return NewText(t.Format(format), FlagTimestamp, ColorSystem, FontChatMedium)
}

func (e *TimestampElement) Clone() Element {
	// The clone starts with a cold cache and reformats on first render.
	return &TimestampElement{elem: e.cloneBase(), time: e.time}
}

var _ Element = (*TimestampElement)(nil)

// LinebreakElement forces a layout break without visual output.
type LinebreakElement struct {
	elem
}

// NewLinebreak returns a linebreak element.
func NewLinebreak(flags ElementFlags) *LinebreakElement {
	return &LinebreakElement{elem: newElem(flags)}
}

func (e *LinebreakElement) AddToContainer(c *Container, flags ElementFlags) {
	if flags.HasAny(e.flags) {
		c.BreakLine()
	}
}

func (e *LinebreakElement) Clone() Element {
	return &LinebreakElement{elem: e.cloneBase()}
}

var _ Element = (*LinebreakElement)(nil)

// Reply curve geometry in unscaled cells.
const (
	replyCurveWidth     = 2.25
	replyCurveThickness = 0.2
	replyCurveRadius    = 0.75
	replyCurveMargin    = 0.25
)

// ReplyCurveElement renders the decorative curve that connects a reply
// to its parent preview.
type ReplyCurveElement struct {
	elem
}

// NewReplyCurve returns a reply curve element.
func NewReplyCurve() *ReplyCurveElement {
	return &ReplyCurveElement{elem: newElem(FlagRepliedMessage)}
}

func (e *ReplyCurveElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}
	s := c.Scale()
	c.AddPrimitive(CurvePrimitive{
		W:         replyCurveWidth * s,
		Thickness: replyCurveThickness * s,
		Radius:    replyCurveRadius * s,
		Margin:    replyCurveMargin * s,
	})
}

func (e *ReplyCurveElement) Clone() Element {
	return &ReplyCurveElement{elem: e.cloneBase()}
}

var _ Element = (*ReplyCurveElement)(nil)

// moderationIconSize is the square icon size in unscaled cells.
const moderationIconSize = 2.0

// ModerationElement renders one action button per configured moderation
// action, in configuration order, each linking to the action's
// invocation.
type ModerationElement struct {
	elem
}

// NewModeration returns a moderation action row element.
func NewModeration() *ModerationElement {
	return &ModerationElement{elem: newElem(FlagModeratorTools)}
}

func (e *ModerationElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.Has(FlagModeratorTools) {
		return
	}
	size := moderationIconSize * c.Scale()
	for _, action := range c.Settings().ModerationActions {
		link := Link{Kind: LinkUserAction, Value: action.Invocation}
		if action.Image != nil && !action.Image.Empty() {
			c.AddPrimitive(ImagePrimitive{
				Image: action.Image,
				W:     size,
				H:     size,
				Alt:   action.Invocation,
				Link:  link,
			})
			continue
		}
		c.AddPrimitive(TextIconPrimitive{
			Line1: action.Line1,
			Line2: action.Line2,
			W:     size,
			H:     size,
			Link:  link,
		})
	}
}

func (e *ModerationElement) Clone() Element {
	return &ModerationElement{elem: e.cloneBase()}
}

var _ Element = (*ModerationElement)(nil)
