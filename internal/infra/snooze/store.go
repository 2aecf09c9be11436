// Package snooze provides the process-wide snooze counter store.
package snooze

import (
	"sync"

	"chime/internal/domain/service"
)

// store is an in-memory implementation of service.SnoozeStore. Counters are
// process-wide and keyed by alarm ID; they do not survive a restart, which
// matches the lifecycle of a ringing cycle.
type store struct {
	mu     sync.RWMutex
	counts map[int64]int
}

// NewStore creates an empty snooze counter store.
func NewStore() service.SnoozeStore {
	return &store{
		counts: make(map[int64]int),
	}
}

// Count returns the snooze count for the alarm, zero if never snoozed.
func (s *store) Count(alarmID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.counts[alarmID]
}

// Increment adds one snooze and returns the new count.
func (s *store) Increment(alarmID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[alarmID]++

	return s.counts[alarmID]
}

// Reset clears the counter for the alarm.
func (s *store) Reset(alarmID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.counts, alarmID)
}
