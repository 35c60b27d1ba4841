package marquee

// Primitive is a sealed interface over the visual primitives elements
// emit during layout. The unexported marker method prevents external
// implementations.
type Primitive interface {
	primitive()
	Width() float64
}

// TextPrimitive is a styled text fragment that fits on one line.
type TextPrimitive struct {
	Text          string
	W             float64
	Color         TermColor
	Style         FontStyle
	TrailingSpace bool
	Link          Link
}

func (TextPrimitive) primitive() {}

func (p TextPrimitive) Width() float64 { return p.W }

// ImagePrimitive is a sized image, optionally with a background
// treatment (badge coloring, circular crop).
type ImagePrimitive struct {
	Image      Image
	W, H       float64
	Alt        string
	Background *RGB
	Circular   bool
	Padding    float64
	Link       Link
}

func (ImagePrimitive) primitive() {}

func (p ImagePrimitive) Width() float64 { return p.W }

// LayeredImagePrimitive composites several images onto one shared
// canvas. Each layer keeps its own size but is co-aligned to the canvas.
type LayeredImagePrimitive struct {
	Images  []Image
	Widths  []float64
	Heights []float64
	W, H    float64
	Alt     string
	Link    Link
}

func (LayeredImagePrimitive) primitive() {}

func (p LayeredImagePrimitive) Width() float64 { return p.W }

// CurvePrimitive is the decorative reply curve glyph.
type CurvePrimitive struct {
	W         float64
	Thickness float64
	Radius    float64
	Margin    float64
}

func (CurvePrimitive) primitive() {}

func (p CurvePrimitive) Width() float64 { return p.W }

// TextIconPrimitive is a compact two-line text icon, used for
// moderation actions without an image.
type TextIconPrimitive struct {
	Line1, Line2 string
	W, H         float64
	Link         Link
}

func (TextIconPrimitive) primitive() {}

func (p TextIconPrimitive) Width() float64 { return p.W }

// Interface compliance checks.
var (
	_ Primitive = TextPrimitive{}
	_ Primitive = ImagePrimitive{}
	_ Primitive = LayeredImagePrimitive{}
	_ Primitive = CurvePrimitive{}
	_ Primitive = TextIconPrimitive{}
)

// Line is one laid-out visual line.
type Line struct {
	Primitives []Primitive
}

// Width returns the summed width of the line's primitives.
func (l Line) Width() float64 {
	var w float64
	for _, p := range l.Primitives {
		w += p.Width()
	}
	return w
}

// ContainerConfig configures a layout pass. Zero fields get defaults:
// scale 1, cell-based fonts, the default theme and settings, and a
// tokenizer that treats everything as text.
type ContainerConfig struct {
	Width     float64
	Scale     float64
	Fonts     FontSource
	Theme     Theme
	Settings  Settings
	Tokenizer Tokenizer
}

// Container accumulates the visual primitives a render pass emits,
// tracking line-wrap state and remaining width. Elements consume it; the
// render pass owns it. It also carries the read-only render context
// (scale, fonts, theme, settings, tokenizer) so elements never reach for
// ambient globals.
type Container struct {
	width     float64
	scale     float64
	fonts     FontSource
	theme     Theme
	settings  Settings
	tokenizer Tokenizer

	lines    []Line
	cur      []Primitive
	curWidth float64
}

// NewContainer returns a container ready for one layout pass.
func NewContainer(cfg ContainerConfig) *Container {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.Fonts == nil {
		cfg.Fonts = CellFontSource{}
	}
	if cfg.Theme == (Theme{}) {
		cfg.Theme = DefaultTheme()
	}
	if cfg.Tokenizer == nil {
		cfg.Tokenizer = plainTokenizer{}
	}
	return &Container{
		width:     cfg.Width,
		scale:     cfg.Scale,
		fonts:     cfg.Fonts,
		theme:     cfg.Theme,
		settings:  cfg.Settings.normalized(),
		tokenizer: cfg.Tokenizer,
	}
}

// Scale returns the render scale.
func (c *Container) Scale() float64 { return c.scale }

// LineWidth returns the full line width.
func (c *Container) LineWidth() float64 { return c.width }

// Theme returns the active theme.
func (c *Container) Theme() Theme { return c.theme }

// Settings returns the settings snapshot for this pass.
func (c *Container) Settings() Settings { return c.settings }

// Tokenizer returns the emote tokenizer for this pass.
func (c *Container) Tokenizer() Tokenizer { return c.tokenizer }

// Metrics returns font metrics for the style at the container's scale.
func (c *Container) Metrics(style FontStyle) FontMetrics {
	return c.fonts.Metrics(style, c.scale)
}

// RemainingWidth returns the unused width on the current line.
func (c *Container) RemainingWidth() float64 { return c.width - c.curWidth }

// FitsInLine reports whether a primitive of width w fits on the current
// line.
func (c *Container) FitsInLine(w float64) bool { return c.curWidth+w <= c.width }

// AtStartOfLine reports whether nothing has been emitted on the current
// line yet.
func (c *Container) AtStartOfLine() bool { return len(c.cur) == 0 }

// AddPrimitive appends p, breaking the line first if p does not fit and
// the line has content.
func (c *Container) AddPrimitive(p Primitive) {
	if !c.FitsInLine(p.Width()) && !c.AtStartOfLine() {
		c.BreakLine()
	}
	c.add(p)
}

// AddPrimitiveNoLineBreak appends p to the current line unconditionally.
// Callers are expected to have checked FitsInLine themselves.
func (c *Container) AddPrimitiveNoLineBreak(p Primitive) {
	c.add(p)
}

func (c *Container) add(p Primitive) {
	c.cur = append(c.cur, p)
	c.curWidth += p.Width() + c.separatorWidth(p)
}

// separatorWidth is the space cell a renderer emits between a primitive
// and its successor. The cursor advances past it so that a line whose
// primitives fill the width exactly does not overflow once the
// separators materialize.
func (c *Container) separatorWidth(p Primitive) float64 {
	if t, ok := p.(TextPrimitive); ok && !t.TrailingSpace {
		return 0
	}
	return c.scale
}

// BreakLine finishes the current line, empty or not, and starts a new
// one at full width.
func (c *Container) BreakLine() {
	c.lines = append(c.lines, Line{Primitives: c.cur})
	c.cur = nil
	c.curWidth = 0
}

// Lines returns the laid-out lines, including the pending line if it has
// content. The container state is not altered; the pass may continue
// emitting.
func (c *Container) Lines() []Line {
	out := make([]Line, len(c.lines), len(c.lines)+1)
	copy(out, c.lines)
	if len(c.cur) > 0 {
		out = append(out, Line{Primitives: c.cur})
	}
	return out
}
