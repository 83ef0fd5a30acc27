// Package queue bounds how many inbound requests are processed at once.
// Requests beyond the limit wait in strict arrival order; a freed slot is
// handed to exactly one waiter.
package queue

import "sync"

type Status struct {
	Active int
	Queued int
	Max    int
}

type Queue struct {
	mu      sync.Mutex
	max     int
	active  int
	waiters []chan struct{}
}

func New(max int) *Queue {
	if max <= 0 {
		max = 1
	}
	return &Queue{max: max}
}

// Do runs fn once a concurrency slot is available. The slot is released
// whether fn succeeds or fails, and fn's error is returned to the caller
// unchanged. Waiters are never abandoned: the only way out of the wait is
// a slot release.
func (q *Queue) Do(fn func() error) error {
	q.acquire()
	defer q.release()
	return fn()
}

func (q *Queue) Status() Status {
	q.mu.Lock()
	defer q.mu.Unlock()
	return Status{Active: q.active, Queued: len(q.waiters), Max: q.max}
}

func (q *Queue) acquire() {
	q.mu.Lock()
	if q.active < q.max {
		q.active++
		q.mu.Unlock()
		return
	}
	grant := make(chan struct{})
	q.waiters = append(q.waiters, grant)
	q.mu.Unlock()
	<-grant
}

// release hands the slot directly to the oldest waiter when one exists,
// so the active count never dips below what is actually running and no
// other goroutine can steal the slot in between.
func (q *Queue) release() {
	q.mu.Lock()
	if len(q.waiters) > 0 {
		grant := q.waiters[0]
		q.waiters = q.waiters[1:]
		q.mu.Unlock()
		close(grant)
		return
	}
	q.active--
	q.mu.Unlock()
}
