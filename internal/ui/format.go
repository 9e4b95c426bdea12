package ui

import (
	"fmt"
	"time"
)

// FormatAge renders the time since a commit as a rough human-readable
// age ("3 days ago", "2 months ago"). Months and years are approximated
// as 30 and 365 days.
func FormatAge(lastCommit, now time.Time) string {
	d := now.Sub(lastCommit)
	days := int(d.Hours() / 24)

	switch {
	case days == 0:
		hours := int(d.Hours())
		if hours == 0 {
			return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
		}
		return fmt.Sprintf("%d hours ago", hours)
	case days == 1:
		return "1 day ago"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 365:
		months := days / 30
		return fmt.Sprintf("%d month%s ago", months, plural(months))
	default:
		years := days / 365
		return fmt.Sprintf("%d year%s ago", years, plural(years))
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
