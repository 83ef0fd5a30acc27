package confirm

import (
	"strings"
	"testing"
	"time"

	"github.com/mrEkso/n8n-voice2action-telegram/intent"
)

func TestNewEmailAction_Defaults(t *testing.T) {
	res := intent.Result{
		Intent:    intent.KindEmail,
		Recipient: "a@b.co",
	}
	action := NewEmailAction(res, "напомни им про отчёт", "42")

	if action.Kind != KindEmail {
		t.Fatalf("kind = %q", action.Kind)
	}
	if !strings.HasPrefix(action.ID, "email_") {
		t.Errorf("id = %q, want email_ prefix", action.ID)
	}
	if !strings.Contains(action.ID, "_42_") {
		t.Errorf("id = %q, want embedded user id", action.ID)
	}
	if action.Email.Subject != intent.FallbackSubject {
		t.Errorf("subject = %q", action.Email.Subject)
	}
	if action.Email.Body != "напомни им про отчёт" {
		t.Errorf("body = %q", action.Email.Body)
	}
	if action.OriginalText != "напомни им про отчёт" {
		t.Errorf("original text = %q", action.OriginalText)
	}
}

func TestNewEmailAction_ExtractedFieldsWin(t *testing.T) {
	res := intent.Result{
		Intent:    intent.KindEmail,
		Recipient: "a@b.co",
		Subject:   "Отчёт",
		Body:      "Отчёт готов.",
	}
	action := NewEmailAction(res, "original", "42")
	if action.Email.Subject != "Отчёт" || action.Email.Body != "Отчёт готов." {
		t.Fatalf("got %+v", action.Email)
	}
}

func TestNewCalendarAction_NormalizesTimes(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	res := intent.Result{
		Intent:    intent.KindCalendar,
		Title:     "Созвон",
		StartTime: "2026-09-02T15:00:00",
		EndTime:   "2026-09-02T14:00:00", // ends before it starts
		Category:  intent.CategoryWork,
		ColorID:   "5",
	}
	action := NewCalendarAction(res, "созвон завтра в 15", "42", now, time.UTC)

	if action.Kind != KindCalendar {
		t.Fatalf("kind = %q", action.Kind)
	}
	if !strings.HasPrefix(action.ID, "calendar_") {
		t.Errorf("id = %q", action.ID)
	}
	want := time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC)
	if !action.Calendar.StartTime.Equal(want) {
		t.Errorf("start = %v", action.Calendar.StartTime)
	}
	if !action.Calendar.EndTime.Equal(want.Add(time.Hour)) {
		t.Errorf("end = %v, want start + 1h", action.Calendar.EndTime)
	}
	if action.Calendar.ColorID != "5" {
		t.Errorf("color = %q", action.Calendar.ColorID)
	}
}

func TestNewCalendarAction_Defaults(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	action := NewCalendarAction(intent.Result{Intent: intent.KindCalendar}, "тренировка", "42", now, time.UTC)

	if action.Calendar.Title != defaultEventTitle {
		t.Errorf("title = %q", action.Calendar.Title)
	}
	if action.Calendar.Description != "тренировка" {
		t.Errorf("description = %q", action.Calendar.Description)
	}
	if !action.Calendar.StartTime.Equal(now) {
		t.Errorf("start = %v, want now", action.Calendar.StartTime)
	}
	if !action.Calendar.EndTime.Equal(now.Add(time.Hour)) {
		t.Errorf("end = %v", action.Calendar.EndTime)
	}
}

func TestNewID_Shape(t *testing.T) {
	id := NewID(KindEmail, "42")
	parts := strings.Split(id, "_")
	if len(parts) != 4 {
		t.Fatalf("id = %q, want 4 segments", id)
	}
	if parts[0] != string(KindEmail) || parts[2] != "42" {
		t.Errorf("id = %q", id)
	}
	if len(parts[3]) != 8 {
		t.Errorf("suffix = %q, want 8 chars", parts[3])
	}

	if NewID(KindEmail, "42") == id {
		t.Error("consecutive ids must differ")
	}
}
