package intent

import (
	"strings"
	"time"
)

// Accepted timestamp layouts, tried in order. The backend is asked for
// ISO 8601 but does not always include an offset or seconds.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseEventTime parses a backend-supplied timestamp. An unparseable or
// empty value is reported as absent, never as an error. Layouts without
// an offset are interpreted in loc.
func ParseEventTime(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeEventTimes resolves the start/end pair for a calendar event:
// a missing start becomes now, and a missing end, or an end at or before
// the start, becomes start + 1 hour.
func NormalizeEventTimes(startRaw, endRaw string, now time.Time, loc *time.Location) (time.Time, time.Time) {
	start, ok := ParseEventTime(startRaw, loc)
	if !ok {
		start = now
	}
	end, ok := ParseEventTime(endRaw, loc)
	if !ok || !end.After(start) {
		end = start.Add(time.Hour)
	}
	return start, end
}
