package styles

import (
	"fmt"
	"time"
)

// StateBadge renders "active" on the accent color and "closed" muted.
func (t *Theme) StateBadge(active bool) string {
	if active {
		return t.Badge.Render("active")
	}
	return t.BadgeMuted.Render("closed")
}

// RelativeTime formats a time as a relative string (e.g. "2h ago").
func RelativeTime(tm time.Time) string {
	return relativeTo(time.Now(), tm)
}

func relativeTo(now, tm time.Time) string {
	if tm.IsZero() {
		return "never"
	}
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
