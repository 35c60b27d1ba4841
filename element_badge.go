package marquee

// BadgeElement renders a badge image at the container's scale. Badge
// variants differ only in background treatment.
type BadgeElement struct {
	elem
	emote *Emote
}

// NewBadge returns a plain badge element.
func NewBadge(emote *Emote, flags ElementFlags) *BadgeElement {
	e := &BadgeElement{elem: newElem(flags), emote: emote}
	e.SetTooltip(emote.Tooltip)
	return e
}

// Emote returns the badge's emote resource.
func (e *BadgeElement) Emote() *Emote { return e.emote }

// badgeImage resolves the badge image and its scaled size, reporting
// false when nothing is loaded.
func (e *BadgeElement) badgeImage(c *Container) (img Image, w, h float64, ok bool) {
	img = e.emote.Images.ImageOrLoaded(c.Scale())
	if img.Empty() {
		return nil, 0, 0, false
	}
	return img, float64(img.Width()) * c.Scale(), float64(img.Height()) * c.Scale(), true
}

func (e *BadgeElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}
	img, w, h, ok := e.badgeImage(c)
	if !ok {
		return
	}
	c.AddPrimitive(ImagePrimitive{
		Image: img,
		W:     w,
		H:     h,
		Alt:   e.tooltip,
		Link:  e.link,
	})
}

func (e *BadgeElement) Clone() Element {
	return &BadgeElement{elem: e.cloneBase(), emote: e.emote}
}

var _ Element = (*BadgeElement)(nil)

// modBadgeBackground is the fixed moderator badge green.
var modBadgeBackground = RGB{0x34, 0xAE, 0x0A}

// ModBadgeElement is a badge on the moderator-green background.
type ModBadgeElement struct {
	BadgeElement
}

// NewModBadge returns a moderator badge element.
func NewModBadge(emote *Emote, flags ElementFlags) *ModBadgeElement {
	return &ModBadgeElement{BadgeElement: *NewBadge(emote, flags)}
}

func (e *ModBadgeElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}
	img, w, h, ok := e.badgeImage(c)
	if !ok {
		return
	}
	bg := modBadgeBackground
	c.AddPrimitive(ImagePrimitive{
		Image:      img,
		W:          w,
		H:          h,
		Alt:        e.tooltip,
		Background: &bg,
		Link:       e.link,
	})
}

func (e *ModBadgeElement) Clone() Element {
	return &ModBadgeElement{BadgeElement: BadgeElement{elem: e.cloneBase(), emote: e.emote}}
}

var _ Element = (*ModBadgeElement)(nil)

// VipBadgeElement is a VIP badge; it renders like a plain badge but
// keeps its own identity for cloning and filtering.
type VipBadgeElement struct {
	BadgeElement
}

// NewVipBadge returns a VIP badge element.
func NewVipBadge(emote *Emote, flags ElementFlags) *VipBadgeElement {
	return &VipBadgeElement{BadgeElement: *NewBadge(emote, flags)}
}

func (e *VipBadgeElement) Clone() Element {
	return &VipBadgeElement{BadgeElement: BadgeElement{elem: e.cloneBase(), emote: e.emote}}
}

var _ Element = (*VipBadgeElement)(nil)

// FfzBadgeElement is a FrankerFaceZ badge with a per-badge background
// color.
type FfzBadgeElement struct {
	BadgeElement
	color RGB
}

// NewFfzBadge returns an FFZ badge element with its background color.
func NewFfzBadge(emote *Emote, flags ElementFlags, color RGB) *FfzBadgeElement {
	return &FfzBadgeElement{BadgeElement: *NewBadge(emote, flags), color: color}
}

// BadgeColor returns the badge's background color.
func (e *FfzBadgeElement) BadgeColor() RGB { return e.color }

func (e *FfzBadgeElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}
	img, w, h, ok := e.badgeImage(c)
	if !ok {
		return
	}
	bg := e.color
	c.AddPrimitive(ImagePrimitive{
		Image:      img,
		W:          w,
		H:          h,
		Alt:        e.tooltip,
		Background: &bg,
		Link:       e.link,
	})
}

func (e *FfzBadgeElement) Clone() Element {
	return &FfzBadgeElement{
		BadgeElement: BadgeElement{elem: e.cloneBase(), emote: e.emote},
		color:        e.color,
	}
}

var _ Element = (*FfzBadgeElement)(nil)
