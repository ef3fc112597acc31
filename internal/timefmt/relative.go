// Package timefmt renders timestamps relative to "now" the way the chat list,
// presence labels and call history show them.
package timefmt

import (
	"fmt"
	"time"
)

// Unknown is returned for zero timestamps.
const Unknown = "Unknown"

// Style selects the wording of a relative label.
type Style int

const (
	// MessageStyle labels conversation timestamps: "now", "5m ago", "03:04 PM", "Mon", "Jan 2".
	MessageStyle Style = iota
	// PresenceStyle labels last-seen times: "just now", "5m ago", "3h ago", "2d ago".
	PresenceStyle
	// CallStyle labels call history entries: "03:04 PM", "3h ago", "Mon", "Jan 2".
	CallStyle
)

// Relative formats past relative to now. It never fails: a zero past yields
// Unknown and a past after now counts as no time elapsed.
func Relative(past, now time.Time, style Style) string {
	if past.IsZero() {
		return Unknown
	}

	diff := max(now.Sub(past), 0)
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch style {
	case PresenceStyle:
		switch {
		case minutes < 1:
			return "just now"
		case minutes < 60:
			return fmt.Sprintf("%dm ago", minutes)
		case hours < 24:
			return fmt.Sprintf("%dh ago", hours)
		default:
			return fmt.Sprintf("%dd ago", days)
		}
	case CallStyle:
		switch {
		case hours < 1:
			return clock(past)
		case days < 1:
			return fmt.Sprintf("%dh ago", hours)
		case days < 7:
			return past.Format("Mon")
		default:
			return past.Format("Jan 2")
		}
	default:
		switch {
		case minutes < 1:
			return "now"
		case minutes < 60:
			return fmt.Sprintf("%dm ago", minutes)
		case hours < 24:
			return clock(past)
		case days < 7:
			return past.Format("Mon")
		default:
			return past.Format("Jan 2")
		}
	}
}

// Message is Relative with MessageStyle.
func Message(past, now time.Time) string { return Relative(past, now, MessageStyle) }

// LastSeen is Relative with PresenceStyle.
func LastSeen(past, now time.Time) string { return Relative(past, now, PresenceStyle) }

// Call is Relative with CallStyle.
func Call(past, now time.Time) string { return Relative(past, now, CallStyle) }

// Duration renders a call length in seconds as m:ss.
func Duration(seconds int) string {
	if seconds <= 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func clock(t time.Time) string {
	return t.Format("03:04 PM")
}
