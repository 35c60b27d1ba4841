package marquee

// ImageElement renders a single fixed image scaled by the container's
// render scale.
type ImageElement struct {
	elem
	image Image
}

// NewImage returns an image element.
func NewImage(img Image, flags ElementFlags) *ImageElement {
	return &ImageElement{elem: newElem(flags), image: img}
}

// Image returns the wrapped image.
func (e *ImageElement) Image() Image { return e.image }

func (e *ImageElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}
	if e.image == nil || e.image.Empty() {
		return
	}
	c.AddPrimitive(ImagePrimitive{
		Image: e.image,
		W:     float64(e.image.Width()) * c.Scale(),
		H:     float64(e.image.Height()) * c.Scale(),
		Alt:   e.tooltip,
		Link:  e.link,
	})
}

func (e *ImageElement) Clone() Element {
	return &ImageElement{elem: e.cloneBase(), image: e.image}
}

var _ Element = (*ImageElement)(nil)

// CircularImageElement renders an image cropped to a circle over a
// padded background, e.g. an author avatar.
type CircularImageElement struct {
	elem
	image      Image
	padding    float64
	background RGB
}

// NewCircularImage returns a circular image element.
func NewCircularImage(img Image, padding float64, background RGB, flags ElementFlags) *CircularImageElement {
	return &CircularImageElement{
		elem:       newElem(flags),
		image:      img,
		padding:    padding,
		background: background,
	}
}

func (e *CircularImageElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}
	if e.image == nil || e.image.Empty() {
		return
	}
	bg := e.background
	c.AddPrimitive(ImagePrimitive{
		Image:      e.image,
		W:          float64(e.image.Width()) * c.Scale(),
		H:          float64(e.image.Height()) * c.Scale(),
		Alt:        e.tooltip,
		Background: &bg,
		Circular:   true,
		Padding:    e.padding,
		Link:       e.link,
	})
}

func (e *CircularImageElement) Clone() Element {
	return &CircularImageElement{
		elem:       e.cloneBase(),
		image:      e.image,
		padding:    e.padding,
		background: e.background,
	}
}

var _ Element = (*CircularImageElement)(nil)

// ScalingImageElement picks the best variant out of an image set for the
// container's scale at render time.
type ScalingImageElement struct {
	elem
	images ImageSet
}

// NewScalingImage returns a scaling image element.
func NewScalingImage(images ImageSet, flags ElementFlags) *ScalingImageElement {
	return &ScalingImageElement{elem: newElem(flags), images: images}
}

func (e *ScalingImageElement) AddToContainer(c *Container, flags ElementFlags) {
	if !flags.HasAny(e.flags) {
		return
	}
	img := e.images.ImageOrLoaded(c.Scale())
	if img.Empty() {
		return
	}
	c.AddPrimitive(ImagePrimitive{
		Image: img,
		W:     float64(img.Width()) * c.Scale(),
		H:     float64(img.Height()) * c.Scale(),
		Alt:   e.tooltip,
		Link:  e.link,
	})
}

func (e *ScalingImageElement) Clone() Element {
	return &ScalingImageElement{elem: e.cloneBase(), images: e.images}
}

var _ Element = (*ScalingImageElement)(nil)
