package formatter

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// StoryClock renders the wall-clock time a story was posted.
// Example: 14:05
func StoryClock(t time.Time) string {
	return t.Format("15:04")
}

// StoryAge renders how long ago a story was posted relative to now.
// Example: "2 hours ago"
func StoryAge(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// StoryPosition renders a 0-based index as "n/total".
func StoryPosition(idx, total int) string {
	if total <= 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", idx+1, total)
}
