package applicant

import "hire-flow/internal/domain/application"

// DefaultPageSize is the fixed page size of the applicants list.
const DefaultPageSize = 10

// Page is one slice of an ordered record sequence. Page is the effective
// (clamped) 1-based page number actually served.
type Page struct {
	Records    []application.Record
	Page       int
	PageSize   int
	TotalPages int
	Total      int
}

// Paginate slices records for the requested 1-based page. A page pointing past
// the end of a shrunken set clamps back to the last page instead of serving an
// empty slice with live pager controls.
func Paginate(records []application.Record, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]application.Record, end-start)
	copy(out, records[start:end])

	return Page{
		Records:    out,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
	}
}
