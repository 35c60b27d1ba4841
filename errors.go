package marquee

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrLogClosed indicates a write to a closed chat log channel.
	ErrLogClosed = errors.New("log closed")
)
