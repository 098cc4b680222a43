package triage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func testEntry(symptoms string) *HistoryEntry {
	return &HistoryEntry{
		Symptoms:       symptoms,
		SeverityTier:   TierModerate,
		Recommendation: RecommendationModerate,
		RiskScore:      42,
		Timestamp:      time.Now().UTC(),
	}
}

func TestMemoryRepo_AppendAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryHistoryRepo()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		e := testEntry(fmt.Sprintf("entry number %d", i))
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if e.ID != int64(i) {
			t.Errorf("expected id %d, got %d", i, e.ID)
		}
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.ID != int64(i+1) {
			t.Errorf("entry %d has id %d, want %d", i, e.ID, i+1)
		}
	}
}

func TestMemoryRepo_ClearResetsCounter(t *testing.T) {
	repo := NewMemoryHistoryRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Append(ctx, testEntry("before clear")); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty log after clear, got %d entries", len(entries))
	}

	e := testEntry("after clear")
	if err := repo.Append(ctx, e); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if e.ID != 1 {
		t.Errorf("expected id 1 after clear, got %d", e.ID)
	}
}

func TestMemoryRepo_ClearIsIdempotent(t *testing.T) {
	repo := NewMemoryHistoryRepo()
	ctx := context.Background()
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clearing an empty log must succeed, got %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("second clear must succeed, got %v", err)
	}
}

func TestMemoryRepo_GetByID(t *testing.T) {
	repo := NewMemoryHistoryRepo()
	ctx := context.Background()

	e := testEntry("findable entry about a sore throat")
	if err := repo.Append(ctx, e); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Symptoms != e.Symptoms {
		t.Errorf("expected %q, got %q", e.Symptoms, got.Symptoms)
	}

	if _, err := repo.GetByID(ctx, 999); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepo_AppendedEntriesAreSnapshots(t *testing.T) {
	repo := NewMemoryHistoryRepo()
	ctx := context.Background()

	e := testEntry("original text")
	if err := repo.Append(ctx, e); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	e.Symptoms = "mutated after append"

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Symptoms != "original text" {
		t.Errorf("stored entry was mutated externally: %q", got.Symptoms)
	}
}

func TestMemoryRepo_ReturnedEntriesAreSnapshots(t *testing.T) {
	repo := NewMemoryHistoryRepo()
	ctx := context.Background()

	e := testEntry("original text")
	if err := repo.Append(ctx, e); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	got.Symptoms = "mutated via GetByID result"

	listed, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	listed[0].Symptoms = "mutated via List result"

	again, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if again.Symptoms != "original text" {
		t.Errorf("stored entry was mutated through a reader: %q", again.Symptoms)
	}
}

func TestMemoryRepo_ConcurrentAppendsGetUniqueIDs(t *testing.T) {
	repo := NewMemoryHistoryRepo()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e := testEntry("concurrent entry")
			if err := repo.Append(ctx, e); err != nil {
				t.Errorf("append failed: %v", err)
				return
			}
			ids <- e.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d assigned", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d unique ids, got %d", n, len(seen))
	}
}
