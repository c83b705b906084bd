package applicant

import "hire-flow/internal/domain/application"

// StatusCounts holds per-bucket counts over the full, unfiltered record set.
// All is the total record count; records whose status matches no bucket are
// counted only there.
type StatusCounts struct {
	All       int
	ByStatus  map[application.Status]int
	Unmatched int
}

// CountByStatus buckets every record exactly once: exact status parse first,
// then the legacy keyword shim. The input is not mutated.
func CountByStatus(records []application.Record) StatusCounts {
	counts := StatusCounts{
		All:      len(records),
		ByStatus: make(map[application.Status]int, len(application.Statuses)),
	}
	for _, s := range application.Statuses {
		counts.ByStatus[s] = 0
	}

	for _, rec := range records {
		s, ok := application.Bucket(rec.Status)
		if !ok {
			counts.Unmatched++
			continue
		}
		counts.ByStatus[s]++
	}

	return counts
}
