package todo

import (
	"strings"
	"time"
)

// DefaultTimestampLayout renders a 2-digit year, long month, day, long weekday
// and 24-hour time, e.g. "26. October 17. Saturday 14:05".
const DefaultTimestampLayout = "06. January 2. Monday 15:04"

// FormatTimestamp renders t in local time with layout (or the default).
func FormatTimestamp(t time.Time, layout string) string {
	if strings.TrimSpace(layout) == "" {
		layout = DefaultTimestampLayout
	}
	return t.Local().Format(layout)
}
