// Package gcal creates confirmed calendar actions as events on the
// user's primary Google Calendar.
package gcal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mrEkso/n8n-voice2action-telegram/confirm"
	"github.com/mrEkso/n8n-voice2action-telegram/internal/googleauth"
)

const insertURL = "https://www.googleapis.com/calendar/v3/calendars/primary/events"

// attribution is appended once to every event description.
const attribution = "Событие создано с помощью ассистента Voice2Action."

type Creator struct {
	dataDir string
	loc     *time.Location
	log     *slog.Logger

	mu     sync.Mutex
	client *http.Client

	now func() time.Time // test hook
}

func NewCreator(dataDir string, loc *time.Location, log *slog.Logger) *Creator {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = slog.Default()
	}
	return &Creator{
		dataDir: strings.TrimSpace(dataDir),
		loc:     loc,
		log:     log,
		now:     time.Now,
	}
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type eventBody struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
	ColorID     string    `json:"colorId,omitempty"`
}

func (c *Creator) CreateEvent(ctx context.Context, p confirm.CalendarPayload) (string, error) {
	if c == nil {
		return "", fmt.Errorf("nil calendar creator")
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return "", fmt.Errorf("event title is required")
	}

	// The stored payload is normalized already; re-apply the invariant
	// here so a direct caller cannot produce an inverted interval.
	start, end := normalizeTimes(p.StartTime, p.EndTime, c.now())

	client, err := c.httpClient(ctx)
	if err != nil {
		return "", err
	}

	body, _ := json.Marshal(eventBody{
		Summary:     title,
		Description: withAttribution(p.Description),
		Start:       eventTime{DateTime: start.Format(time.RFC3339), TimeZone: c.loc.String()},
		End:         eventTime{DateTime: end.Format(time.RFC3339), TimeZone: c.loc.String()},
		ColorID:     p.ColorID,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, insertURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calendar event creation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("calendar event creation failed: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	var created struct {
		ID string `json:"id"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&created)

	c.log.Info("calendar event created", "title", title, "event_id", created.ID)
	return fmt.Sprintf("Событие «%s» создано на %s — %s",
		title,
		start.In(c.loc).Format("02.01.2006 15:04"),
		end.In(c.loc).Format("02.01.2006 15:04"),
	), nil
}

func (c *Creator) httpClient(ctx context.Context) (*http.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	client, err := googleauth.Client(ctx, c.dataDir)
	if err != nil {
		return nil, fmt.Errorf("calendar is not configured: %w", err)
	}
	c.client = client
	return client, nil
}

func normalizeTimes(start, end, now time.Time) (time.Time, time.Time) {
	if start.IsZero() {
		start = now
	}
	if end.IsZero() || !end.After(start) {
		end = start.Add(time.Hour)
	}
	return start, end
}

func withAttribution(description string) string {
	description = strings.TrimSpace(description)
	if strings.Contains(description, attribution) {
		return description
	}
	if description == "" {
		return attribution
	}
	return description + "\n\n" + attribution
}
