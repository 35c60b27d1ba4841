package marquee

import "strings"

// EmoteElement renders an emote image, falling back to the emote's copy
// text when image rendering is filtered out.
type EmoteElement struct {
	elem
	emote    *Emote
	fallback *TextElement
}

// NewEmote returns an emote element. The fallback text takes the given
// color.
func NewEmote(emote *Emote, flags ElementFlags, color MessageColor) *EmoteElement {
	e := &EmoteElement{
		elem:     newElem(flags),
		emote:    emote,
		fallback: NewText(emote.CopyText, FlagMisc, color, FontChatMedium),
	}
	e.SetTooltip(emote.Tooltip)
	return e
}

// Emote returns the wrapped emote.
func (e *EmoteElement) Emote() *Emote { return e.emote }

func (e *EmoteElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}
	if !flags.Has(FlagEmoteImages) {
		if e.fallback != nil {
			e.fallback.AddToContainer(c, FlagMisc)
		}
		return
	}
	img := e.emote.Images.ImageOrLoaded(c.Scale())
	if img.Empty() {
		return
	}
	scale := c.Settings().EmoteScale * c.Scale()
	c.AddPrimitive(ImagePrimitive{
		Image: img,
		W:     float64(img.Width()) * scale,
		H:     float64(img.Height()) * scale,
		Alt:   e.emote.Name,
		Link:  e.link,
	})
}

func (e *EmoteElement) Clone() Element {
	clone := &EmoteElement{elem: e.cloneBase(), emote: e.emote}
	if e.fallback != nil {
		clone.fallback = e.fallback.Clone().(*TextElement)
	}
	return clone
}

var _ Element = (*EmoteElement)(nil)

// boundingBox returns the pixel-wise max width and height over images.
func boundingBox(images []Image) (w, h int) {
	for _, img := range images {
		if img.Width() > w {
			w = img.Width()
		}
		if img.Height() > h {
			h = img.Height()
		}
	}
	return w, h
}

// LayeredEmoteElement composites an ordered set of emote layers into one
// glyph. All layers render onto a shared canvas sized to the largest
// resolved layer.
type LayeredEmoteElement struct {
	elem
	layers   []EmoteLayer
	color    MessageColor
	fallback *TextElement
	tooltips []string
}

// NewLayeredEmote returns a layered emote element over the given layers.
func NewLayeredEmote(layers []EmoteLayer, flags ElementFlags, color MessageColor) *LayeredEmoteElement {
	e := &LayeredEmoteElement{
		elem:   newElem(flags),
		layers: append([]EmoteLayer(nil), layers...),
		color:  color,
	}
	e.updateTooltips()
	return e
}

// AddLayer appends a layer and recomputes the derived tooltip state.
func (e *LayeredEmoteElement) AddLayer(layer EmoteLayer) {
	e.layers = append(e.layers, layer)
	e.updateTooltips()
}

// Layers returns the ordered layers.
func (e *LayeredEmoteElement) Layers() []EmoteLayer { return e.layers }

// Color returns the fallback text color.
func (e *LayeredEmoteElement) Color() MessageColor { return e.color }

// EmoteTooltips returns one tooltip per layer, in layer order.
func (e *LayeredEmoteElement) EmoteTooltips() []string { return e.tooltips }

// CopyText returns the space-joined copy text of all layers.
func (e *LayeredEmoteElement) CopyText() string {
	parts := make([]string, len(e.layers))
	for i, l := range e.layers {
		parts[i] = l.Emote.CopyText
	}
	return strings.Join(parts, " ")
}

// UniqueEmotes returns the layers de-duplicated by emote identity,
// preserving first-seen order.
func (e *LayeredEmoteElement) UniqueEmotes() []EmoteLayer {
	seen := make(map[*Emote]struct{}, len(e.layers))
	var unique []EmoteLayer
	for _, l := range e.layers {
		if _, ok := seen[l.Emote]; ok {
			continue
		}
		seen[l.Emote] = struct{}{}
		unique = append(unique, l)
	}
	return unique
}

func (e *LayeredEmoteElement) updateTooltips() {
	if len(e.layers) == 0 {
		e.tooltips = nil
		return
	}
	e.fallback = NewText(e.CopyText(), FlagMisc, e.color, FontChatMedium)

	tooltips := make([]string, len(e.layers))
	for i, l := range e.layers {
		tooltips[i] = l.Emote.Tooltip
	}
	e.tooltips = tooltips
	e.SetTooltip(strings.Join(tooltips, " "))
}

func (e *LayeredEmoteElement) loadedImages(scale float64) []Image {
	images := make([]Image, 0, len(e.layers))
	for _, l := range e.layers {
		img := l.Emote.Images.ImageOrLoaded(scale)
		if img.Empty() {
			continue
		}
		images = append(images, img)
	}
	return images
}

func (e *LayeredEmoteElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}
	if !flags.Has(FlagEmoteImages) {
		if e.fallback != nil {
			e.fallback.AddToContainer(c, FlagMisc)
		}
		return
	}
	images := e.loadedImages(c.Scale())
	if len(images) == 0 {
		return
	}

	scale := c.Settings().EmoteScale * c.Scale()
	boxW, boxH := boundingBox(images)

	widths := make([]float64, len(images))
	heights := make([]float64, len(images))
	for i, img := range images {
		widths[i] = float64(img.Width()) * scale
		heights[i] = float64(img.Height()) * scale
	}

	c.AddPrimitive(LayeredImagePrimitive{
		Images:  images,
		Widths:  widths,
		Heights: heights,
		W:       float64(boxW) * scale,
		H:       float64(boxH) * scale,
		Alt:     e.CopyText(),
		Link:    e.link,
	})
}

func (e *LayeredEmoteElement) Clone() Element {
	clone := &LayeredEmoteElement{
		elem:   e.cloneBase(),
		layers: append([]EmoteLayer(nil), e.layers...),
		color:  e.color,
	}
	clone.updateTooltips()
	return clone
}

var _ Element = (*LayeredEmoteElement)(nil)
