package marquee

// TimestampChild exposes the cached formatted sub-element for tests.
func TimestampChild(e *TimestampElement) *TextElement { return e.child }
