// Package confirm manages the lifetime of proposed side-effecting
// actions: each one waits in a store, keyed by an opaque id embedded in
// the UI's callback buttons, until the user confirms, cancels, or asks
// to edit it. Every path out of the store ends in deletion.
package confirm

import "time"

type Kind string

const (
	KindEmail    Kind = "email"
	KindCalendar Kind = "calendar"
)

type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type CalendarPayload struct {
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description"`
	ColorID     string    `json:"color_id,omitempty"`
}

// PendingAction is immutable after creation. Kind selects which payload
// field is populated.
type PendingAction struct {
	ID           string          `json:"id"`
	Kind         Kind            `json:"kind"`
	Email        EmailPayload    `json:"email,omitempty"`
	Calendar     CalendarPayload `json:"calendar,omitempty"`
	OriginalText string          `json:"original_text"`
	CreatedAt    time.Time       `json:"created_at"`
}
