package triage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a history entry does not exist.
var ErrNotFound = errors.New("history entry not found")

// HistoryRepository is the append-only log of past diagnoses. Append assigns
// the next integer id starting at 1; Clear discards all entries and resets
// the id sequence to zero, so the next Append assigns 1 again. The id
// assignment and the append must be atomic as a unit.
type HistoryRepository interface {
	Append(ctx context.Context, e *HistoryEntry) error
	List(ctx context.Context) ([]*HistoryEntry, error)
	GetByID(ctx context.Context, id int64) (*HistoryEntry, error)
	Clear(ctx context.Context) error
}
