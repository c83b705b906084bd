package applicant

import (
	"testing"

	"github.com/google/uuid"

	"hire-flow/internal/domain/application"
)

func makeRecords(n int) []application.Record {
	out := make([]application.Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, application.Record{ID: uuid.New(), UserID: uuid.New()})
	}
	return out
}

func TestPaginate_LastPartialPage(t *testing.T) {
	records := makeRecords(23)

	p := Paginate(records, 3, 10)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	if len(p.Records) != 3 {
		t.Fatalf("expected 3 records on last page, got %d", len(p.Records))
	}
	if p.Records[0].ID != records[20].ID {
		t.Fatalf("page 3 should start at record 20")
	}
}

func TestPaginate_SinglePage(t *testing.T) {
	p := Paginate(makeRecords(5), 1, 10)
	if p.TotalPages != 1 || len(p.Records) != 5 {
		t.Fatalf("expected one page of 5, got pages=%d len=%d", p.TotalPages, len(p.Records))
	}
}

func TestPaginate_ClampsPastEnd(t *testing.T) {
	p := Paginate(makeRecords(5), 9, 10)
	if p.Page != 1 {
		t.Fatalf("expected clamp to page 1, got %d", p.Page)
	}
	if len(p.Records) != 5 {
		t.Fatalf("expected full set after clamp, got %d", len(p.Records))
	}

	p = Paginate(makeRecords(23), 7, 10)
	if p.Page != 3 {
		t.Fatalf("expected clamp to last page 3, got %d", p.Page)
	}
}

func TestPaginate_EmptySet(t *testing.T) {
	p := Paginate(nil, 4, 10)
	if p.Page != 1 || p.TotalPages != 0 || p.Total != 0 {
		t.Fatalf("unexpected empty-set page: %+v", p)
	}
	if len(p.Records) != 0 {
		t.Fatalf("expected no records")
	}
}

func TestPaginate_Completeness(t *testing.T) {
	records := makeRecords(37)
	pageSize := 10

	seen := make(map[uuid.UUID]int)
	got := 0
	p := Paginate(records, 1, pageSize)
	for page := 1; page <= p.TotalPages; page++ {
		p = Paginate(records, page, pageSize)
		for _, r := range p.Records {
			seen[r.ID]++
			got++
		}
	}

	if got != len(records) {
		t.Fatalf("pages concatenate to %d records, want %d", got, len(records))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("record %s appeared %d times", id, n)
		}
	}
}
