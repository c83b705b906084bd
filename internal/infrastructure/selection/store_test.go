package selection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"hire-flow/internal/domain/application"
)

type mockCache struct {
	data map[string][]application.SelectionEntry
	err  error
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string][]application.SelectionEntry{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	entries, ok := m.data[key]
	if !ok {
		return false, nil
	}
	*(out.(*[]application.SelectionEntry)) = entries
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = value.([]application.SelectionEntry)
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.data, key)
	return nil
}

func TestStore_SaveLoadClear(t *testing.T) {
	s := NewStore(newMockCache())
	employerID, jobID := uuid.New(), uuid.New()
	entries := []application.SelectionEntry{
		{ApplicationID: uuid.New(), UserID: uuid.New()},
		{ApplicationID: uuid.New(), UserID: uuid.New()},
	}

	if err := s.Save(context.Background(), employerID, jobID, entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(context.Background(), employerID, jobID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}

	if err := s.Clear(context.Background(), employerID, jobID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = s.Load(context.Background(), employerID, jobID)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty selection after clear, got %d", len(got))
	}
}

func TestStore_FallsBackToLocalWhenCacheFails(t *testing.T) {
	c := newMockCache()
	s := NewStore(c)
	employerID, jobID := uuid.New(), uuid.New()
	entries := []application.SelectionEntry{{ApplicationID: uuid.New(), UserID: uuid.New()}}

	c.err = errors.New("redis down")
	_ = s.Save(context.Background(), employerID, jobID, entries)

	got, err := s.Load(context.Background(), employerID, jobID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected local fallback to serve 1 entry, got %d", len(got))
	}
}

func TestStore_ScopedPerEmployerAndJob(t *testing.T) {
	s := NewStore(newMockCache())
	employerID := uuid.New()
	jobA, jobB := uuid.New(), uuid.New()

	_ = s.Save(context.Background(), employerID, jobA, []application.SelectionEntry{{ApplicationID: uuid.New()}})

	got, _ := s.Load(context.Background(), employerID, jobB)
	if len(got) != 0 {
		t.Fatalf("selection leaked across jobs")
	}
}
