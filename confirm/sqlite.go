package confirm

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// SQLiteStore keeps pending actions in a sqlite database so a restart
// does not drop proposals the user has not answered yet. It implements
// the same Store contract as MemoryStore and is selected by
// configuration.
type SQLiteStore struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("missing sqlite dsn")
	}
	s := &SQLiteStore{dsn: dsn}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Create(ctx context.Context, action PendingAction) error {
	if s == nil {
		return fmt.Errorf("nil confirmation store")
	}
	if err := s.ensureOpen(); err != nil {
		return err
	}
	id := strings.TrimSpace(action.ID)
	if id == "" {
		return fmt.Errorf("missing pending action id")
	}
	if action.CreatedAt.IsZero() {
		action.CreatedAt = time.Now()
	}

	payload, err := marshalPayload(action)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO pending_actions (
  id, kind, payload_json, original_text, created_at_unix
) VALUES (?, ?, ?, ?, ?)
`, id, string(action.Kind), string(payload), action.OriginalText, action.CreatedAt.Unix())
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (PendingAction, bool, error) {
	if s == nil {
		return PendingAction{}, false, fmt.Errorf("nil confirmation store")
	}
	if err := s.ensureOpen(); err != nil {
		return PendingAction{}, false, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return PendingAction{}, false, nil
	}

	var (
		action        PendingAction
		kind          string
		payloadJSON   string
		createdAtUnix int64
	)
	err := s.db.QueryRowContext(ctx, `
SELECT id, kind, payload_json, original_text, created_at_unix
FROM pending_actions
WHERE id = ?
`, id).Scan(&action.ID, &kind, &payloadJSON, &action.OriginalText, &createdAtUnix)
	if err == sql.ErrNoRows {
		return PendingAction{}, false, nil
	}
	if err != nil {
		return PendingAction{}, false, err
	}

	action.Kind = Kind(kind)
	action.CreatedAt = time.Unix(createdAtUnix, 0)
	if err := unmarshalPayload(payloadJSON, &action); err != nil {
		return PendingAction{}, false, err
	}
	return action, true, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("nil confirmation store")
	}
	if err := s.ensureOpen(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM pending_actions WHERE id = ?`, strings.TrimSpace(id))
	return err
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("nil confirmation store")
	}
	if err := s.ensureOpen(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM pending_actions`)
	return err
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return err
	}
	s.db = db
	return s.migrate()
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *SQLiteStore) migrate() error {
	if s.db == nil {
		return fmt.Errorf("sqlite db is not open")
	}
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS pending_actions (
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL,
  payload_json TEXT NOT NULL,
  original_text TEXT,
  created_at_unix INTEGER NOT NULL
);
`)
	return err
}

func marshalPayload(action PendingAction) ([]byte, error) {
	switch action.Kind {
	case KindEmail:
		return json.Marshal(action.Email)
	case KindCalendar:
		return json.Marshal(action.Calendar)
	default:
		return nil, fmt.Errorf("unknown pending action kind: %q", action.Kind)
	}
}

func unmarshalPayload(payload string, action *PendingAction) error {
	switch action.Kind {
	case KindEmail:
		return json.Unmarshal([]byte(payload), &action.Email)
	case KindCalendar:
		return json.Unmarshal([]byte(payload), &action.Calendar)
	default:
		return fmt.Errorf("unknown pending action kind: %q", action.Kind)
	}
}
