package applicant

import (
	"sort"

	"github.com/google/uuid"

	"hire-flow/internal/domain/application"
)

// Selection is the set of applications currently checked for a bulk action.
// Keyed by application ID, so it survives re-filtering and re-sorting, and a
// user with applications on several jobs shown together stays unambiguous.
// Not safe for concurrent use; the selection store owns serialization.
type Selection struct {
	entries map[uuid.UUID]application.SelectionEntry
}

func NewSelection(entries ...application.SelectionEntry) *Selection {
	s := &Selection{entries: make(map[uuid.UUID]application.SelectionEntry, len(entries))}
	for _, e := range entries {
		if e.ApplicationID == uuid.Nil {
			continue
		}
		s.entries[e.ApplicationID] = e
	}
	return s
}

// Toggle flips membership for one application. Returns true when the entry is
// selected after the call. Double toggle is a no-op.
func (s *Selection) Toggle(e application.SelectionEntry) bool {
	if s == nil || e.ApplicationID == uuid.Nil {
		return false
	}
	if _, ok := s.entries[e.ApplicationID]; ok {
		delete(s.entries, e.ApplicationID)
		return false
	}
	s.entries[e.ApplicationID] = e
	return true
}

// SelectAll applies the all-or-clear toggle over the currently visible
// candidate set: when every candidate is already selected the whole selection
// is cleared, otherwise the candidates are unioned in.
func (s *Selection) SelectAll(candidates []application.SelectionEntry) {
	if s == nil || len(candidates) == 0 {
		return
	}

	selected := 0
	for _, c := range candidates {
		if _, ok := s.entries[c.ApplicationID]; ok {
			selected++
		}
	}
	if selected == len(candidates) {
		s.Clear()
		return
	}
	for _, c := range candidates {
		if c.ApplicationID == uuid.Nil {
			continue
		}
		s.entries[c.ApplicationID] = c
	}
}

// Clear empties the selection unconditionally.
func (s *Selection) Clear() {
	if s == nil {
		return
	}
	s.entries = make(map[uuid.UUID]application.SelectionEntry)
}

// Has reports whether the application is selected.
func (s *Selection) Has(applicationID uuid.UUID) bool {
	if s == nil {
		return false
	}
	_, ok := s.entries[applicationID]
	return ok
}

// Len returns the number of selected applications.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns the selection in a deterministic order.
func (s *Selection) Entries() []application.SelectionEntry {
	if s == nil {
		return nil
	}
	out := make([]application.SelectionEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ApplicationID.String() < out[j].ApplicationID.String()
	})
	return out
}

// Prune drops entries whose application is no longer part of the record set,
// e.g. after a refetch replaced the list.
func (s *Selection) Prune(records []application.Record) {
	if s == nil || len(s.entries) == 0 {
		return
	}
	valid := make(map[uuid.UUID]struct{}, len(records))
	for _, r := range records {
		valid[r.ID] = struct{}{}
	}
	for id := range s.entries {
		if _, ok := valid[id]; !ok {
			delete(s.entries, id)
		}
	}
}
