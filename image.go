package marquee

// Image is a displayable raster resource. Implementations are owned by
// the resource-loading subsystem; elements only query dimensions and
// emptiness. Dimensions are in unscaled cells.
type Image interface {
	Width() int
	Height() int
	Animated() bool
	Empty() bool
}

type emptyImage struct{}

func (emptyImage) Width() int     { return 0 }
func (emptyImage) Height() int    { return 0 }
func (emptyImage) Animated() bool { return false }
func (emptyImage) Empty() bool    { return true }

// EmptyImage is the sentinel returned when no image is available. It is
// skipped silently by every element.
var EmptyImage Image = emptyImage{}

// StaticImage is an always-loaded Image with fixed dimensions.
type StaticImage struct {
	W, H int
	Anim bool
}

// NewStaticImage returns a static image of the given size.
func NewStaticImage(w, h int) *StaticImage {
	return &StaticImage{W: w, H: h}
}

func (s *StaticImage) Width() int     { return s.W }
func (s *StaticImage) Height() int    { return s.H }
func (s *StaticImage) Animated() bool { return s.Anim }
func (s *StaticImage) Empty() bool    { return s.W <= 0 || s.H <= 0 }

var _ Image = (*StaticImage)(nil)

// ImageSet holds an image at up to three density variants. Variants that
// have not finished loading are nil.
type ImageSet struct {
	X1, X2, X3 Image
}

// NewImageSet returns a set with the given variants; any may be nil.
func NewImageSet(x1, x2, x3 Image) ImageSet {
	return ImageSet{X1: x1, X2: x2, X3: x3}
}

// ImageOrLoaded returns the best variant available right now for the
// given render scale. It never blocks on loading and never fails: when no
// variant is usable it returns EmptyImage and the caller skips the
// visual.
func (s ImageSet) ImageOrLoaded(scale float64) Image {
	var order []Image
	switch {
	case scale <= 1:
		order = []Image{s.X1, s.X2, s.X3}
	case scale <= 2:
		order = []Image{s.X2, s.X3, s.X1}
	default:
		order = []Image{s.X3, s.X2, s.X1}
	}
	for _, img := range order {
		if img != nil && !img.Empty() {
			return img
		}
	}
	return EmptyImage
}
