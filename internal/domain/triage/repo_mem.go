package triage

import (
	"context"
	"sync"
)

// memoryHistoryRepo keeps the diagnosis log in process memory. The mutex
// covers the counter increment and the append together so two in-flight
// requests can never receive the same id. Readers always get copies, so a
// caller mutating a returned entry never alters the log.
type memoryHistoryRepo struct {
	mu      sync.Mutex
	counter int64
	entries []*HistoryEntry
}

// NewMemoryHistoryRepo returns an empty in-memory history log.
func NewMemoryHistoryRepo() HistoryRepository {
	return &memoryHistoryRepo{}
}

func (m *memoryHistoryRepo) Append(_ context.Context, e *HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	e.ID = m.counter
	stored := *e
	m.entries = append(m.entries, &stored)
	return nil
}

func (m *memoryHistoryRepo) List(_ context.Context) ([]*HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*HistoryEntry, len(m.entries))
	for i, e := range m.entries {
		entry := *e
		result[i] = &entry
	}
	return result, nil
}

func (m *memoryHistoryRepo) GetByID(_ context.Context, id int64) (*HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.ID == id {
			entry := *e
			return &entry, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryHistoryRepo) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	m.counter = 0
	return nil
}
