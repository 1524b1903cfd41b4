package logic

import (
	"sync"

	"scrollwatch/internal/domain"
)

// MemorySnapshotStore is a bounded in-memory SnapshotStore. Once full, the
// oldest entry is overwritten.
type MemorySnapshotStore struct {
	mu      sync.RWMutex
	entries []domain.TimedSnapshot
	start   int
	count   int
}

// NewMemorySnapshotStore creates a store holding up to capacity entries
func NewMemorySnapshotStore(capacity int) *MemorySnapshotStore {
	if capacity < 1 {
		capacity = 1
	}
	return &MemorySnapshotStore{
		entries: make([]domain.TimedSnapshot, capacity),
	}
}

func (s *MemorySnapshotStore) Add(entry domain.TimedSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	capacity := len(s.entries)
	if s.count < capacity {
		s.entries[(s.start+s.count)%capacity] = entry
		s.count++
		return
	}
	s.entries[s.start] = entry
	s.start = (s.start + 1) % capacity
}

// All returns the entries oldest first
func (s *MemorySnapshotStore) All() []domain.TimedSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.TimedSnapshot, 0, s.count)
	for i := 0; i < s.count; i++ {
		result = append(result, s.entries[(s.start+i)%len(s.entries)])
	}
	return result
}

func (s *MemorySnapshotStore) Latest() (domain.TimedSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.count == 0 {
		return domain.TimedSnapshot{}, false
	}
	return s.entries[(s.start+s.count-1)%len(s.entries)], true
}

func (s *MemorySnapshotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

func (s *MemorySnapshotStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = 0
	s.count = 0
}
