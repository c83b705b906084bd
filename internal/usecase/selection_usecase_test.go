package usecase

import (
	"context"
	"errors"
	"testing"

	"hire-flow/internal/domain/applicant"
	"hire-flow/internal/domain/application"

	"github.com/google/uuid"
)

func TestSelection_Toggle(t *testing.T) {
	raws := sampleRaws(nil, 3)
	store := &mockSelectionStore{}
	uc := NewSelectionUsecase(&mockAppRepo{raws: raws}, &mockJobRepo{owned: true}, store, nil)

	employerID := uuid.New()
	jobID := uuid.New()
	entry := application.SelectionEntry{ApplicationID: raws[0].ID, UserID: raws[0].UserID}

	selected, total, err := uc.Toggle(context.Background(), employerID, jobID, entry)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !selected || total != 1 {
		t.Fatalf("expected selected with total 1, got %v %d", selected, total)
	}

	selected, total, err = uc.Toggle(context.Background(), employerID, jobID, entry)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if selected || total != 0 {
		t.Fatalf("expected deselected with total 0, got %v %d", selected, total)
	}
}

func TestSelection_ToggleUnknownApplication(t *testing.T) {
	uc := NewSelectionUsecase(&mockAppRepo{raws: sampleRaws(nil, 2)}, &mockJobRepo{owned: true}, &mockSelectionStore{}, nil)

	_, _, err := uc.Toggle(context.Background(), uuid.New(), uuid.New(), application.SelectionEntry{
		ApplicationID: uuid.New(),
		UserID:        uuid.New(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSelection_TogglePrunesStaleEntries(t *testing.T) {
	raws := sampleRaws(nil, 2)
	stale := application.SelectionEntry{ApplicationID: uuid.New(), UserID: uuid.New()}
	store := &mockSelectionStore{entries: []application.SelectionEntry{stale}}
	uc := NewSelectionUsecase(&mockAppRepo{raws: raws}, &mockJobRepo{owned: true}, store, nil)

	_, total, err := uc.Toggle(context.Background(), uuid.New(), uuid.New(), application.SelectionEntry{
		ApplicationID: raws[0].ID,
		UserID:        raws[0].UserID,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected stale entry pruned, total=1, got %d", total)
	}
	for _, e := range store.entries {
		if e.ApplicationID == stale.ApplicationID {
			t.Fatalf("stale entry survived the save")
		}
	}
}

func TestSelection_SelectAllOverFilteredSet(t *testing.T) {
	raws := sampleRaws(nil, 12)
	store := &mockSelectionStore{}
	uc := NewSelectionUsecase(&mockAppRepo{raws: raws}, &mockJobRepo{owned: true}, store, nil)

	// sampleRaws cycles New/Reviewing/Shortlisted, so 4 of 12 are Reviewing.
	total, err := uc.SelectAll(context.Background(), uuid.New(), uuid.New(), applicant.FilterState{Status: "Reviewing"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected 4 selected, got %d", total)
	}
}

func TestSelection_SelectAllTogglesOff(t *testing.T) {
	raws := sampleRaws(nil, 5)
	store := &mockSelectionStore{}
	uc := NewSelectionUsecase(&mockAppRepo{raws: raws}, &mockJobRepo{owned: true}, store, nil)

	employerID := uuid.New()
	jobID := uuid.New()

	total, err := uc.SelectAll(context.Background(), employerID, jobID, applicant.FilterState{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected all 5 selected, got %d", total)
	}

	// All candidates already selected: the same call clears them.
	total, err = uc.SelectAll(context.Background(), employerID, jobID, applicant.FilterState{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected selection cleared, got %d", total)
	}
}

func TestSelection_Forbidden(t *testing.T) {
	uc := NewSelectionUsecase(&mockAppRepo{}, &mockJobRepo{owned: false}, &mockSelectionStore{}, nil)

	if _, err := uc.Get(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on get, got %v", err)
	}
	if err := uc.Clear(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on clear, got %v", err)
	}
}

func TestSelection_GetNeverNil(t *testing.T) {
	uc := NewSelectionUsecase(&mockAppRepo{}, &mockJobRepo{owned: true}, &mockSelectionStore{}, nil)

	entries, err := uc.Get(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if entries == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}
