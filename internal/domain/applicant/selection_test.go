package applicant

import (
	"testing"

	"github.com/google/uuid"

	"hire-flow/internal/domain/application"
)

func entry() application.SelectionEntry {
	return application.SelectionEntry{ApplicationID: uuid.New(), UserID: uuid.New()}
}

func TestSelection_ToggleIdempotent(t *testing.T) {
	s := NewSelection()
	e := entry()

	if selected := s.Toggle(e); !selected {
		t.Fatalf("first toggle should select")
	}
	if s.Len() != 1 || !s.Has(e.ApplicationID) {
		t.Fatalf("expected entry present")
	}

	if selected := s.Toggle(e); selected {
		t.Fatalf("second toggle should deselect")
	}
	if s.Len() != 0 {
		t.Fatalf("double toggle must restore the prior state, len=%d", s.Len())
	}
}

func TestSelection_ToggleIgnoresNilID(t *testing.T) {
	s := NewSelection()
	s.Toggle(application.SelectionEntry{UserID: uuid.New()})
	if s.Len() != 0 {
		t.Fatalf("nil application id must not be selectable")
	}
}

func TestSelection_SelectAllUnionsThenClears(t *testing.T) {
	s := NewSelection()
	other := entry()
	s.Toggle(other)

	candidates := []application.SelectionEntry{entry(), entry(), entry()}
	s.SelectAll(candidates)
	if s.Len() != 4 {
		t.Fatalf("expected union of 4, got %d", s.Len())
	}

	// Every candidate is now selected, so select-all flips to clear-all.
	s.SelectAll(candidates)
	if s.Len() != 0 {
		t.Fatalf("expected clear, got %d", s.Len())
	}
}

func TestSelection_SurvivesRefilter(t *testing.T) {
	// Selection is keyed by identity, not position: filtering the record set
	// down and back must not lose the entry.
	recA := application.Record{ID: uuid.New(), UserID: uuid.New(), Status: "New"}
	recB := application.Record{ID: uuid.New(), UserID: uuid.New(), Status: "Reviewing"}
	all := []application.Record{recA, recB}

	s := NewSelection()
	s.Toggle(application.SelectionEntry{ApplicationID: recA.ID, UserID: recA.UserID})

	_ = FilterSort(all, FilterState{Status: "Reviewing"}) // recA not visible
	_ = FilterSort(all, FilterState{Status: "New"})       // recA visible again

	if !s.Has(recA.ID) {
		t.Fatalf("selection lost across refilter")
	}
}

func TestSelection_PruneDropsStaleEntries(t *testing.T) {
	kept := application.Record{ID: uuid.New(), UserID: uuid.New()}
	s := NewSelection()
	s.Toggle(application.SelectionEntry{ApplicationID: kept.ID, UserID: kept.UserID})
	stale := entry()
	s.Toggle(stale)

	s.Prune([]application.Record{kept})

	if !s.Has(kept.ID) {
		t.Fatalf("live entry pruned")
	}
	if s.Has(stale.ApplicationID) {
		t.Fatalf("stale entry survived prune")
	}
}

func TestSelection_EntriesDeterministic(t *testing.T) {
	s := NewSelection(entry(), entry(), entry())
	first := s.Entries()
	second := s.Entries()
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 entries")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entries order not deterministic")
		}
	}
}
