package confirm

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// MemoryStore is the default, in-process store. With ttl > 0 an eviction
// loop deletes records older than the ttl, so abandoned proposals do not
// accumulate for the life of the process; a callback arriving for an
// evicted id lands in the ordinary stale-request branch. ttl <= 0 keeps
// records until explicitly deleted.
type MemoryStore struct {
	mu      sync.RWMutex
	actions map[string]PendingAction

	ttl       time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		actions: make(map[string]PendingAction),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	if ttl > 0 {
		go s.evictLoop()
	}
	return s
}

func (s *MemoryStore) Create(_ context.Context, action PendingAction) error {
	if s == nil {
		return fmt.Errorf("nil confirmation store")
	}
	id := strings.TrimSpace(action.ID)
	if id == "" {
		return fmt.Errorf("missing pending action id")
	}
	if action.CreatedAt.IsZero() {
		action.CreatedAt = time.Now()
	}
	s.mu.Lock()
	s.actions[id] = action
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (PendingAction, bool, error) {
	if s == nil {
		return PendingAction{}, false, fmt.Errorf("nil confirmation store")
	}
	s.mu.RLock()
	action, ok := s.actions[strings.TrimSpace(id)]
	s.mu.RUnlock()
	return action, ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("nil confirmation store")
	}
	s.mu.Lock()
	delete(s.actions, strings.TrimSpace(id))
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	if s == nil {
		return fmt.Errorf("nil confirmation store")
	}
	s.mu.Lock()
	s.actions = make(map[string]PendingAction)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.actions)
}

// Close stops the eviction loop. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *MemoryStore) evictLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.evictExpired(time.Now())
		}
	}
}

func (s *MemoryStore) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, action := range s.actions {
		if now.Sub(action.CreatedAt) > s.ttl {
			delete(s.actions, id)
		}
	}
}
