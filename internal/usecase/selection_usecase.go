package usecase

import (
	"context"
	"log"

	"hire-flow/internal/domain/applicant"
	"hire-flow/internal/domain/application"
	"hire-flow/internal/repository"

	"github.com/google/uuid"
)

// SelectionStore persists the selection set per employer+job between
// requests. Implemented by infrastructure/selection.
type SelectionStore interface {
	Load(ctx context.Context, employerID, jobID uuid.UUID) ([]application.SelectionEntry, error)
	Save(ctx context.Context, employerID, jobID uuid.UUID, entries []application.SelectionEntry) error
	Clear(ctx context.Context, employerID, jobID uuid.UUID) error
}

type SelectionUsecase interface {
	Get(ctx context.Context, employerID, jobID uuid.UUID) ([]application.SelectionEntry, error)
	Toggle(ctx context.Context, employerID, jobID uuid.UUID, entry application.SelectionEntry) (bool, int, error)
	SelectAll(ctx context.Context, employerID, jobID uuid.UUID, filter applicant.FilterState) (int, error)
	Clear(ctx context.Context, employerID, jobID uuid.UUID) error
}

type SelectionService struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	store  SelectionStore
	logger *log.Logger
}

func NewSelectionUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	store SelectionStore,
	logger *log.Logger,
) *SelectionService {
	return &SelectionService{apps: apps, jobs: jobs, store: store, logger: logger}
}

func (s *SelectionService) Get(ctx context.Context, employerID, jobID uuid.UUID) ([]application.SelectionEntry, error) {
	if employerID == uuid.Nil || jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if err := s.authorize(ctx, employerID, jobID); err != nil {
		return nil, err
	}

	entries, err := s.store.Load(ctx, employerID, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	if entries == nil {
		entries = []application.SelectionEntry{}
	}
	return entries, nil
}

// Toggle flips one application in the selection. The record set is reloaded
// first so stale entries (applications that vanished since the selection was
// built) are pruned in the same write.
func (s *SelectionService) Toggle(ctx context.Context, employerID, jobID uuid.UUID, entry application.SelectionEntry) (bool, int, error) {
	if employerID == uuid.Nil || jobID == uuid.Nil || entry.ApplicationID == uuid.Nil {
		return false, 0, ErrInvalidInput
	}
	if err := s.authorize(ctx, employerID, jobID); err != nil {
		return false, 0, err
	}

	records, err := s.loadRecords(ctx, jobID)
	if err != nil {
		return false, 0, err
	}
	if !containsApplication(records, entry.ApplicationID) {
		return false, 0, ErrInvalidInput
	}

	sel, err := s.loadSelection(ctx, employerID, jobID)
	if err != nil {
		return false, 0, err
	}
	sel.Prune(records)

	selected := sel.Toggle(entry)

	if err := s.store.Save(ctx, employerID, jobID, sel.Entries()); err != nil {
		return false, 0, ErrInternal
	}
	return selected, sel.Len(), nil
}

// SelectAll toggles the whole filtered candidate set: every filtered record
// already selected means clear, anything less means union in the rest.
func (s *SelectionService) SelectAll(ctx context.Context, employerID, jobID uuid.UUID, filter applicant.FilterState) (int, error) {
	if employerID == uuid.Nil || jobID == uuid.Nil {
		return 0, ErrInvalidInput
	}
	if err := s.authorize(ctx, employerID, jobID); err != nil {
		return 0, err
	}

	records, err := s.loadRecords(ctx, jobID)
	if err != nil {
		return 0, err
	}

	filtered := applicant.FilterSort(records, filter)
	candidates := make([]application.SelectionEntry, 0, len(filtered))
	for _, r := range filtered {
		candidates = append(candidates, application.SelectionEntry{ApplicationID: r.ID, UserID: r.UserID})
	}

	sel, err := s.loadSelection(ctx, employerID, jobID)
	if err != nil {
		return 0, err
	}
	sel.Prune(records)
	sel.SelectAll(candidates)

	if err := s.store.Save(ctx, employerID, jobID, sel.Entries()); err != nil {
		return 0, ErrInternal
	}
	return sel.Len(), nil
}

func (s *SelectionService) Clear(ctx context.Context, employerID, jobID uuid.UUID) error {
	if employerID == uuid.Nil || jobID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := s.authorize(ctx, employerID, jobID); err != nil {
		return err
	}
	if err := s.store.Clear(ctx, employerID, jobID); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *SelectionService) authorize(ctx context.Context, employerID, jobID uuid.UUID) error {
	owned, err := s.jobs.IsOwnedBy(ctx, jobID, employerID)
	if err != nil {
		return ErrInternal
	}
	if !owned {
		return ErrForbidden
	}
	return nil
}

func (s *SelectionService) loadRecords(ctx context.Context, jobID uuid.UUID) ([]application.Record, error) {
	raws, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return application.NormalizeAll(raws), nil
}

func (s *SelectionService) loadSelection(ctx context.Context, employerID, jobID uuid.UUID) (*applicant.Selection, error) {
	entries, err := s.store.Load(ctx, employerID, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return applicant.NewSelection(entries...), nil
}

func containsApplication(records []application.Record, id uuid.UUID) bool {
	for _, r := range records {
		if r.ID == id {
			return true
		}
	}
	return false
}
