// Package moderation derives the presentation of quick-moderation
// actions and formats ban/timeout failures for display.
package moderation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mwielgus/marquee"
)

var (
	timeoutRe = regexp.MustCompile(`^[./]timeout.* (\d+)([mhdw]?)`)
	stripRe   = regexp.MustCompile(`[!/.]`)
)

// ParseAction builds a moderation action from its command invocation.
// Timeout commands show the duration as amount and unit ("10" over "m");
// anything else shows the first four letters of the command split over
// two lines. The caller may attach an icon image afterwards, which takes
// precedence over the text lines when rendering.
func ParseAction(invocation string) marquee.ModerationAction {
	a := marquee.ModerationAction{Invocation: invocation}

	if m := timeoutRe.FindStringSubmatch(invocation); m != nil {
		amount, _ := strconv.Atoi(m[1])
		a.Line1, a.Line2 = formatDuration(toSeconds(amount, m[2]))
		return a
	}

	r := []rune(displayWord(invocation))
	a.Line1 = string(r[:min(2, len(r))])
	if len(r) > 2 {
		a.Line2 = string(r[2:min(4, len(r))])
	}
	return a
}

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
)

func toSeconds(amount int, unit string) int {
	switch unit {
	case "m":
		return amount * minute
	case "h":
		return amount * hour
	case "d":
		return amount * day
	case "w":
		return amount * week
	default:
		return amount
	}
}

// formatDuration picks the largest unit that divides the duration into a
// short, readable amount.
func formatDuration(seconds int) (amount, unit string) {
	switch {
	case seconds < minute:
		return strconv.Itoa(seconds), "s"
	case seconds < hour:
		return strconv.Itoa(seconds / minute), "m"
	case seconds < day:
		return strconv.Itoa(seconds / hour), "h"
	case seconds < week:
		return strconv.Itoa(seconds / day), "d"
	default:
		return strconv.Itoa(seconds / week), "w"
	}
}

// BanError classifies why a ban or timeout request failed.
type BanError int

const (
	BanErrorUnknown BanError = iota
	BanErrorConflictingOperation
	BanErrorForwarded
	BanErrorRatelimited
	BanErrorTargetBanned
	BanErrorCannotBanUser
	BanErrorMissingScope
	BanErrorNotAuthorized
)

// FormatBanTimeoutError renders a ban/timeout failure as a user-facing
// message. operation is the verb attempted ("ban", "timeout"), message is
// the server-provided detail used for forwarded errors, and target names
// the user or channel the operation was aimed at.
func FormatBanTimeoutError(operation string, err BanError, message, target string) string {
	out := fmt.Sprintf("Failed to %s user - ", operation)
	switch err {
	case BanErrorConflictingOperation:
		out += "There was a conflicting ban operation on this user. Please try again."
	case BanErrorForwarded:
		out += message
	case BanErrorRatelimited:
		out += "You are being ratelimited. Try again in a few seconds."
	case BanErrorTargetBanned:
		out += fmt.Sprintf("%s is already banned in this channel.", target)
	case BanErrorCannotBanUser:
		out += fmt.Sprintf("You cannot %s %s.", operation, target)
	case BanErrorMissingScope:
		out += "Missing required scope. Re-login with your account and try again."
	case BanErrorNotAuthorized:
		out += "You don't have permission to perform that action."
	default:
		out += "An unknown error has occurred."
	}
	return out
}

// displayWord is the command word with punctuation stripped, used for the
// two-line fallback display.
func displayWord(invocation string) string {
	stripped := stripRe.ReplaceAllString(invocation, "")
	if i := strings.IndexByte(stripped, ' '); i >= 0 {
		stripped = stripped[:i]
	}
	return stripped
}
