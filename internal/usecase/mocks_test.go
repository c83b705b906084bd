package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"hire-flow/internal/domain/application"
	"hire-flow/internal/notify"
	"hire-flow/internal/repository"

	"github.com/google/uuid"
)

type mockAppRepo struct {
	raws    []application.Raw
	listErr error

	jobID     uuid.UUID
	getJobErr error

	updateErr   error
	updateCalls int

	bulkAffected int64
	bulkErr      error
	bulkCalls    int
	bulkStatus   string
	bulkEntries  []application.SelectionEntry
}

func (m *mockAppRepo) ListByJob(context.Context, uuid.UUID) ([]application.Raw, error) {
	return m.raws, m.listErr
}

func (m *mockAppRepo) GetJobID(context.Context, uuid.UUID) (uuid.UUID, error) {
	return m.jobID, m.getJobErr
}

func (m *mockAppRepo) UpdateStatus(context.Context, uuid.UUID, string) (uuid.UUID, error) {
	m.updateCalls++
	return m.jobID, m.updateErr
}

func (m *mockAppRepo) BulkUpdateStatus(_ context.Context, _ uuid.UUID, status string, entries []application.SelectionEntry) (int64, error) {
	m.bulkCalls++
	m.bulkStatus = status
	m.bulkEntries = entries
	return m.bulkAffected, m.bulkErr
}

type mockJobRepo struct {
	details    application.JobDetails
	detailsErr error
	owned      bool
	ownedErr   error
}

func (m *mockJobRepo) GetDetails(context.Context, uuid.UUID) (application.JobDetails, error) {
	return m.details, m.detailsErr
}

func (m *mockJobRepo) IsOwnedBy(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return m.owned, m.ownedErr
}

type mockSelectionStore struct {
	entries []application.SelectionEntry
	loadErr error
	saveErr error

	saveCalls  int
	clearCalls int
}

func (m *mockSelectionStore) Load(context.Context, uuid.UUID, uuid.UUID) ([]application.SelectionEntry, error) {
	return m.entries, m.loadErr
}

func (m *mockSelectionStore) Save(_ context.Context, _, _ uuid.UUID, entries []application.SelectionEntry) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = entries
	return nil
}

func (m *mockSelectionStore) Clear(context.Context, uuid.UUID, uuid.UUID) error {
	m.clearCalls++
	m.entries = nil
	return nil
}

// mockCache is an in-memory stand-in for the Redis wrapper.
type mockCache struct {
	mu       sync.Mutex
	store    map[string][]byte
	locked   map[string]bool
	patterns []string

	denyLock bool
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte), locked: make(map[string]bool)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
	delete(m.locked, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patterns = append(m.patterns, pattern)
	return nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.denyLock || m.locked[key] {
		return false, nil
	}
	m.locked[key] = true
	return true, nil
}

type recorderCenter struct {
	mu     sync.Mutex
	events []notify.Notification
}

func (r *recorderCenter) Notify(_ context.Context, n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, n)
}

func (r *recorderCenter) byLevel(level notify.Level) []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Notification, 0)
	for _, n := range r.events {
		if n.Level == level {
			out = append(out, n)
		}
	}
	return out
}

type mockInviteRepo struct {
	mu      sync.Mutex
	created []repository.InterviewInvite
	err     error
}

func (m *mockInviteRepo) Create(_ context.Context, inv repository.InterviewInvite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, inv)
	return nil
}

func (m *mockInviteRepo) CountByJob(context.Context, uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created), nil
}
