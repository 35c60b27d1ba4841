package marquee

// ModerationAction is one configured quick-moderation button: the command
// it invokes plus either an icon image or a two-line text icon.
type ModerationAction struct {
	Invocation string
	Image      Image
	Line1      string
	Line2      string
}

// Settings is an immutable snapshot of the display settings a render
// pass needs. It is threaded into each render through the Container
// rather than read from ambient globals; the live-config collaborator
// swaps whole snapshots, so readers never see a half-updated value.
type Settings struct {
	EmoteScale        float64
	TimestampFormat   string
	ModerationActions []ModerationAction
}

// DefaultTimestampFormat is the Go layout used when none is configured.
const DefaultTimestampFormat = "15:04"

// DefaultSettings returns the baseline snapshot.
func DefaultSettings() Settings {
	return Settings{
		EmoteScale:      1,
		TimestampFormat: DefaultTimestampFormat,
	}
}

// normalized fills zero fields with defaults.
func (s Settings) normalized() Settings {
	if s.EmoteScale <= 0 {
		s.EmoteScale = 1
	}
	if s.TimestampFormat == "" {
		s.TimestampFormat = DefaultTimestampFormat
	}
	return s
}
