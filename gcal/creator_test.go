package gcal

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeTimes(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC)

	// End before start collapses to start + 1h.
	s, e := normalizeTimes(start, start.Add(-time.Hour), now)
	if !s.Equal(start) || !e.Equal(start.Add(time.Hour)) {
		t.Errorf("got %v / %v", s, e)
	}

	// End equal to start too.
	_, e = normalizeTimes(start, start, now)
	if !e.Equal(start.Add(time.Hour)) {
		t.Errorf("end = %v", e)
	}

	// Zero start falls back to now.
	s, e = normalizeTimes(time.Time{}, time.Time{}, now)
	if !s.Equal(now) || !e.Equal(now.Add(time.Hour)) {
		t.Errorf("got %v / %v", s, e)
	}

	// A valid interval passes through untouched.
	s, e = normalizeTimes(start, start.Add(2*time.Hour), now)
	if !s.Equal(start) || !e.Equal(start.Add(2*time.Hour)) {
		t.Errorf("got %v / %v", s, e)
	}
}

func TestWithAttribution(t *testing.T) {
	got := withAttribution("обсудить отчёт")
	if !strings.HasPrefix(got, "обсудить отчёт") || !strings.Contains(got, attribution) {
		t.Errorf("got %q", got)
	}

	// Empty description becomes just the attribution line.
	if got := withAttribution("  "); got != attribution {
		t.Errorf("got %q", got)
	}

	// Applying twice does not duplicate the line.
	once := withAttribution("текст")
	twice := withAttribution(once)
	if strings.Count(twice, attribution) != 1 {
		t.Errorf("attribution duplicated: %q", twice)
	}
}
