package confirm

import (
	"context"
	"fmt"
	"log/slog"
)

// EmailSender delivers a confirmed email and returns a human-readable
// confirmation string.
type EmailSender interface {
	Send(ctx context.Context, p EmailPayload) (string, error)
}

// EventCreator creates a confirmed calendar event and returns a
// human-readable confirmation string.
type EventCreator interface {
	CreateEvent(ctx context.Context, p CalendarPayload) (string, error)
}

type OutcomeKind string

const (
	// OutcomeExecuted: the action was confirmed and the collaborator
	// succeeded. Message carries the collaborator's confirmation.
	OutcomeExecuted OutcomeKind = "executed"
	// OutcomeFailed: the action was confirmed but the collaborator
	// failed. The action is gone; there is no retry.
	OutcomeFailed OutcomeKind = "failed"
	// OutcomeCancelled: the user declined; no collaborator was invoked.
	OutcomeCancelled OutcomeKind = "cancelled"
	// OutcomeEdit: the user wants to resend a corrected command.
	// OriginalText carries the utterance to show back.
	OutcomeEdit OutcomeKind = "edit"
	// OutcomeStale: no pending action exists for the id.
	OutcomeStale OutcomeKind = "stale"
	// OutcomeInvalid: the callback payload itself was malformed.
	OutcomeInvalid OutcomeKind = "invalid"
)

type Outcome struct {
	Kind         OutcomeKind
	Action       Action
	ActionKind   Kind // email/calendar, set when the record was found
	Message      string
	OriginalText string
}

// Lifecycle drives a pending action to its terminal state. All three
// verbs end in deletion from the store; a repeated callback for the same
// id therefore lands in the stale branch.
type Lifecycle struct {
	store    Store
	email    EmailSender
	calendar EventCreator
	log      *slog.Logger
}

func NewLifecycle(store Store, email EmailSender, calendar EventCreator, log *slog.Logger) *Lifecycle {
	if log == nil {
		log = slog.Default()
	}
	return &Lifecycle{store: store, email: email, calendar: calendar, log: log}
}

// Handle interprets a callback payload against the store. It never
// returns an error: every failure mode maps to a user-facing outcome.
func (l *Lifecycle) Handle(ctx context.Context, payload string) Outcome {
	action, id, err := ParseCallback(payload)
	if err != nil {
		l.log.Warn("invalid callback payload", "error", err)
		return Outcome{Kind: OutcomeInvalid, Message: err.Error()}
	}

	pending, ok, err := l.store.Get(ctx, id)
	if err != nil {
		l.log.Error("confirmation store read failed", "id", id, "error", err)
		return Outcome{Kind: OutcomeFailed, Action: action, Message: err.Error()}
	}
	if !ok {
		l.log.Info("callback for unknown pending action", "action", string(action), "id", id)
		return Outcome{Kind: OutcomeStale, Action: action}
	}

	// Terminal no matter what happens below.
	defer func() {
		if err := l.store.Delete(ctx, id); err != nil {
			l.log.Error("failed to delete pending action", "id", id, "error", err)
		}
	}()

	switch action {
	case ActionCancel:
		return Outcome{Kind: OutcomeCancelled, Action: action, ActionKind: pending.Kind}

	case ActionEdit:
		return Outcome{
			Kind:         OutcomeEdit,
			Action:       action,
			ActionKind:   pending.Kind,
			OriginalText: pending.OriginalText,
		}

	default: // ActionConfirm
		msg, err := l.dispatch(ctx, pending)
		if err != nil {
			l.log.Error("pending action dispatch failed", "id", id, "kind", string(pending.Kind), "error", err)
			return Outcome{Kind: OutcomeFailed, Action: action, ActionKind: pending.Kind, Message: err.Error()}
		}
		return Outcome{Kind: OutcomeExecuted, Action: action, ActionKind: pending.Kind, Message: msg}
	}
}

func (l *Lifecycle) dispatch(ctx context.Context, pending PendingAction) (string, error) {
	switch pending.Kind {
	case KindEmail:
		if l.email == nil {
			return "", fmt.Errorf("email delivery is not configured")
		}
		return l.email.Send(ctx, pending.Email)
	case KindCalendar:
		if l.calendar == nil {
			return "", fmt.Errorf("calendar delivery is not configured")
		}
		return l.calendar.CreateEvent(ctx, pending.Calendar)
	default:
		return "", fmt.Errorf("unknown pending action kind: %q", pending.Kind)
	}
}
