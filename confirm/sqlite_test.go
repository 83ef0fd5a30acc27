package confirm

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "confirm.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_EmailRoundtrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	action := PendingAction{
		ID:   "email_1700000000_42_ab12cd34",
		Kind: KindEmail,
		Email: EmailPayload{
			To:      "a@b.co",
			Subject: "Отчёт",
			Body:    "Привет!",
		},
		OriginalText: "отправь письмо",
		CreatedAt:    time.Unix(1700000000, 0),
	}
	if err := s.Create(ctx, action); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(ctx, action.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("action not found after create")
	}
	if got.Kind != KindEmail || got.Email != action.Email {
		t.Fatalf("got %+v", got)
	}
	if got.OriginalText != action.OriginalText {
		t.Errorf("original text = %q", got.OriginalText)
	}
	if !got.CreatedAt.Equal(action.CreatedAt) {
		t.Errorf("created at = %v", got.CreatedAt)
	}
}

func TestSQLiteStore_CalendarRoundtrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	action := PendingAction{
		ID:   "calendar_1700000000_42_ab12cd34",
		Kind: KindCalendar,
		Calendar: CalendarPayload{
			Title:       "Тренировка",
			StartTime:   start,
			EndTime:     start.Add(time.Hour),
			Description: "зал",
			ColorID:     "9",
		},
		OriginalText: "тренировка завтра в 10",
	}
	if err := s.Create(ctx, action); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(ctx, action.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("action not found after create")
	}
	if got.Calendar.Title != "Тренировка" || got.Calendar.ColorID != "9" {
		t.Fatalf("got %+v", got.Calendar)
	}
	if !got.Calendar.EndTime.Equal(start.Add(time.Hour)) {
		t.Errorf("end time = %v", got.Calendar.EndTime)
	}
}

func TestSQLiteStore_MissAndDelete(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "email_1_7_nope"); err != nil || ok {
		t.Fatalf("Get miss: ok=%v err=%v", ok, err)
	}

	action := PendingAction{ID: "email_1_7_x", Kind: KindEmail}
	if err := s.Create(ctx, action); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, action.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, action.ID); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
	if _, ok, _ := s.Get(ctx, action.ID); ok {
		t.Fatal("action survived delete")
	}
}
