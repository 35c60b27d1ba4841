package chatlog

import "time"

// SetClock swaps the channel's time source for tests.
func (c *Channel) SetClock(now func() time.Time) { c.now = now }
