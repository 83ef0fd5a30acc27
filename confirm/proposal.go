package confirm

import (
	"time"

	"github.com/mrEkso/n8n-voice2action-telegram/intent"
)

const defaultEventTitle = "Voice Event"

// NewEmailAction builds a pending email from a resolved intent. The
// fallback subject covers extractions that omitted one; the body
// defaults to the full original utterance.
func NewEmailAction(res intent.Result, originalText, userID string) PendingAction {
	subject := res.Subject
	if subject == "" {
		subject = intent.FallbackSubject
	}
	body := res.Body
	if body == "" {
		body = originalText
	}
	return PendingAction{
		ID:   NewID(KindEmail, userID),
		Kind: KindEmail,
		Email: EmailPayload{
			To:      res.Recipient,
			Subject: subject,
			Body:    body,
		},
		OriginalText: originalText,
		CreatedAt:    time.Now(),
	}
}

// NewCalendarAction builds a pending calendar event from a resolved
// intent. Times are normalized here so the stored payload already honors
// the end-after-start invariant: missing start becomes now, missing or
// non-positive end becomes start + 1 hour.
func NewCalendarAction(res intent.Result, originalText, userID string, now time.Time, loc *time.Location) PendingAction {
	start, end := intent.NormalizeEventTimes(res.StartTime, res.EndTime, now, loc)

	title := res.Title
	if title == "" {
		title = defaultEventTitle
	}
	description := res.Description
	if description == "" {
		description = originalText
	}

	return PendingAction{
		ID:   NewID(KindCalendar, userID),
		Kind: KindCalendar,
		Calendar: CalendarPayload{
			Title:       title,
			StartTime:   start,
			EndTime:     end,
			Description: description,
			ColorID:     res.ColorID,
		},
		OriginalText: originalText,
		CreatedAt:    now,
	}
}
