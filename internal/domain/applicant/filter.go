package applicant

import (
	"sort"
	"strings"

	"hire-flow/internal/domain/application"
)

type SortField string

const (
	SortByDateApplied SortField = "dateApplied"
	SortByName        SortField = "name"
	SortByMatchScore  SortField = "matchScore"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// StatusAll selects every status in a FilterState.
const StatusAll = "all"

// FilterState is the combination of search text, status filter, sort field and
// order, and requested page that determines what the caller sees.
type FilterState struct {
	SearchTerm string
	Status     string
	SortBy     SortField
	SortOrder  SortOrder
	Page       int
}

// FilterSort returns the ordered subset of records matching the state. The
// input is never mutated; calling twice with the same inputs yields the same
// output. Ties keep their prior relative order (stable sort).
func FilterSort(records []application.Record, st FilterState) []application.Record {
	status := strings.TrimSpace(st.Status)
	term := strings.ToLower(strings.TrimSpace(st.SearchTerm))

	out := make([]application.Record, 0, len(records))
	for _, rec := range records {
		if status != "" && !strings.EqualFold(status, StatusAll) && !strings.EqualFold(rec.Status, status) {
			continue
		}
		if term != "" && !matchesSearch(rec, term) {
			continue
		}
		out = append(out, rec)
	}

	cmp := comparator(st.SortBy)
	desc := st.SortOrder == SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})

	return out
}

// matchesSearch tests a lower-cased term against name, email, and each skill.
func matchesSearch(rec application.Record, term string) bool {
	if strings.Contains(strings.ToLower(rec.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Email), term) {
		return true
	}
	for _, s := range rec.Skills {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

func comparator(field SortField) func(a, b application.Record) int {
	switch field {
	case SortByName:
		return func(a, b application.Record) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case SortByMatchScore:
		return func(a, b application.Record) int {
			switch {
			case a.MatchScore < b.MatchScore:
				return -1
			case a.MatchScore > b.MatchScore:
				return 1
			default:
				return 0
			}
		}
	default:
		// dateApplied; zero times sort as the epoch.
		return func(a, b application.Record) int {
			switch {
			case a.DateApplied.Before(b.DateApplied):
				return -1
			case a.DateApplied.After(b.DateApplied):
				return 1
			default:
				return 0
			}
		}
	}
}

// ParseSortField falls back to dateApplied for unknown values.
func ParseSortField(raw string) SortField {
	switch SortField(strings.TrimSpace(raw)) {
	case SortByName:
		return SortByName
	case SortByMatchScore:
		return SortByMatchScore
	default:
		return SortByDateApplied
	}
}

// ParseSortOrder falls back to descending, the listing default.
func ParseSortOrder(raw string) SortOrder {
	if SortOrder(strings.ToLower(strings.TrimSpace(raw))) == SortAsc {
		return SortAsc
	}
	return SortDesc
}
