package selection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hire-flow/internal/domain/application"

	"github.com/google/uuid"
)

const entryTTL = 24 * time.Hour

// jsonCache is the slice of the Redis wrapper this store needs.
type jsonCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Store persists the selection set per employer+job. Redis is the shared
// backing; an in-process map mirrors every write so a Redis outage degrades
// to per-instance selection state instead of losing the feature.
type Store struct {
	cache jsonCache

	mu    sync.RWMutex
	local map[string][]application.SelectionEntry
}

func NewStore(cache jsonCache) *Store {
	return &Store{
		cache: cache,
		local: make(map[string][]application.SelectionEntry),
	}
}

func key(employerID, jobID uuid.UUID) string {
	return fmt.Sprintf("applicants:selection:%s:%s", employerID, jobID)
}

func (s *Store) Load(ctx context.Context, employerID, jobID uuid.UUID) ([]application.SelectionEntry, error) {
	k := key(employerID, jobID)

	if s.cache != nil {
		var entries []application.SelectionEntry
		hit, err := s.cache.GetJSON(ctx, k, &entries)
		if err == nil && hit {
			return entries, nil
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.local[k]
	out := make([]application.SelectionEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *Store) Save(ctx context.Context, employerID, jobID uuid.UUID, entries []application.SelectionEntry) error {
	k := key(employerID, jobID)

	s.mu.Lock()
	cp := make([]application.SelectionEntry, len(entries))
	copy(cp, entries)
	s.local[k] = cp
	s.mu.Unlock()

	if s.cache == nil {
		return nil
	}
	return s.cache.SetJSON(ctx, k, entries, entryTTL)
}

func (s *Store) Clear(ctx context.Context, employerID, jobID uuid.UUID) error {
	k := key(employerID, jobID)

	s.mu.Lock()
	delete(s.local, k)
	s.mu.Unlock()

	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, k)
}
