package usecase

import (
	"context"
	"errors"
	"testing"

	"hire-flow/internal/domain/application"
	"hire-flow/internal/notify"

	"github.com/google/uuid"
)

func selectionOf(n int) []application.SelectionEntry {
	out := make([]application.SelectionEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, application.SelectionEntry{ApplicationID: uuid.New(), UserID: uuid.New()})
	}
	return out
}

func TestBulkAction_EmptySelectionNeverHitsRepo(t *testing.T) {
	apps := &mockAppRepo{}
	center := &recorderCenter{}
	uc := NewBulkActionUsecase(apps, &mockJobRepo{owned: true}, &mockInviteRepo{}, &mockSelectionStore{}, newMockCache(), center, nil)

	_, err := uc.ChangeStatus(context.Background(), uuid.New(), uuid.New(), "Shortlisted")
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
	if apps.bulkCalls != 0 {
		t.Fatalf("repo must not be called on empty selection")
	}
	warnings := center.byLevel(notify.LevelWarning)
	if len(warnings) != 1 || warnings[0].Message != "Select at least one applicant" {
		t.Fatalf("expected empty-selection warning, got %+v", warnings)
	}
}

func TestBulkAction_InvalidStatus(t *testing.T) {
	uc := NewBulkActionUsecase(&mockAppRepo{}, &mockJobRepo{owned: true}, &mockInviteRepo{}, &mockSelectionStore{}, newMockCache(), &recorderCenter{}, nil)

	_, err := uc.ChangeStatus(context.Background(), uuid.New(), uuid.New(), "archived")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestBulkAction_SuccessClearsSelectionAndCache(t *testing.T) {
	entries := selectionOf(3)
	store := &mockSelectionStore{entries: entries}
	apps := &mockAppRepo{bulkAffected: 3}
	cache := newMockCache()
	center := &recorderCenter{}
	jobID := uuid.New()

	uc := NewBulkActionUsecase(apps, &mockJobRepo{owned: true}, &mockInviteRepo{}, store, cache, center, nil)

	affected, err := uc.ChangeStatus(context.Background(), uuid.New(), jobID, "shortlisted")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if affected != 3 {
		t.Fatalf("expected 3 affected, got %d", affected)
	}
	if apps.bulkStatus != string(application.StatusShortlisted) {
		t.Fatalf("expected canonical status, got %q", apps.bulkStatus)
	}
	if store.clearCalls != 1 {
		t.Fatalf("expected selection cleared once, got %d", store.clearCalls)
	}
	if len(cache.patterns) != 1 || cache.patterns[0] != ApplicantListInvalidationPattern(jobID) {
		t.Fatalf("expected job list invalidation, got %v", cache.patterns)
	}
	success := center.byLevel(notify.LevelSuccess)
	if len(success) != 1 || success[0].Message != "Application state modified successfully" {
		t.Fatalf("expected success notification, got %+v", success)
	}
}

func TestBulkAction_FailurePreservesSelection(t *testing.T) {
	store := &mockSelectionStore{entries: selectionOf(2)}
	apps := &mockAppRepo{bulkErr: errors.New("db down")}
	center := &recorderCenter{}

	uc := NewBulkActionUsecase(apps, &mockJobRepo{owned: true}, &mockInviteRepo{}, store, newMockCache(), center, nil)

	_, err := uc.ChangeStatus(context.Background(), uuid.New(), uuid.New(), "Rejected")
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if store.clearCalls != 0 {
		t.Fatalf("selection must survive a failed action")
	}
	if len(center.byLevel(notify.LevelError)) != 1 {
		t.Fatalf("expected error notification")
	}
}

func TestBulkAction_SecondRunBlockedWhileInFlight(t *testing.T) {
	cache := newMockCache()
	cache.denyLock = true
	uc := NewBulkActionUsecase(&mockAppRepo{}, &mockJobRepo{owned: true}, &mockInviteRepo{}, &mockSelectionStore{entries: selectionOf(1)}, cache, &recorderCenter{}, nil)

	_, err := uc.ChangeStatus(context.Background(), uuid.New(), uuid.New(), "Interview")
	if !errors.Is(err, ErrActionInFlight) {
		t.Fatalf("expected ErrActionInFlight, got %v", err)
	}
}

func TestBulkAction_Forbidden(t *testing.T) {
	uc := NewBulkActionUsecase(&mockAppRepo{}, &mockJobRepo{owned: false}, &mockInviteRepo{}, &mockSelectionStore{entries: selectionOf(1)}, newMockCache(), &recorderCenter{}, nil)

	_, err := uc.ChangeStatus(context.Background(), uuid.New(), uuid.New(), "New")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBulkAction_SendInvites(t *testing.T) {
	entries := selectionOf(4)
	store := &mockSelectionStore{entries: entries}
	invites := &mockInviteRepo{}
	center := &recorderCenter{}
	jobID := uuid.New()

	uc := NewBulkActionUsecase(&mockAppRepo{}, &mockJobRepo{owned: true}, invites, store, newMockCache(), center, nil)

	sent, err := uc.SendInvites(context.Background(), uuid.New(), jobID, InviteInput{Message: "Interview next week"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sent != 4 {
		t.Fatalf("expected 4 invites, got %d", sent)
	}
	if len(invites.created) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(invites.created))
	}
	for _, inv := range invites.created {
		if inv.JobID != jobID {
			t.Fatalf("invite bound to wrong job: %+v", inv)
		}
	}
	if store.clearCalls != 1 {
		t.Fatalf("expected selection cleared after successful send")
	}
}

func TestBulkAction_SendInvitesFailureKeepsSelection(t *testing.T) {
	store := &mockSelectionStore{entries: selectionOf(2)}
	invites := &mockInviteRepo{err: errors.New("smtp down")}

	uc := NewBulkActionUsecase(&mockAppRepo{}, &mockJobRepo{owned: true}, invites, store, newMockCache(), &recorderCenter{}, nil)

	_, err := uc.SendInvites(context.Background(), uuid.New(), uuid.New(), InviteInput{})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if store.clearCalls != 0 {
		t.Fatalf("selection must survive a failed send")
	}
}
