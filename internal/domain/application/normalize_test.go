package application

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNormalize_Placeholders(t *testing.T) {
	raw := Raw{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: "new",
	}

	rec := Normalize(raw)

	if rec.Name != PlaceholderName {
		t.Fatalf("expected name placeholder, got %q", rec.Name)
	}
	if rec.Email != PlaceholderEmail {
		t.Fatalf("expected email placeholder, got %q", rec.Email)
	}
	if rec.Phone != PlaceholderPhone {
		t.Fatalf("expected phone placeholder, got %q", rec.Phone)
	}
	if rec.Location != PlaceholderLocation {
		t.Fatalf("expected location placeholder, got %q", rec.Location)
	}
	if rec.Skills == nil || len(rec.Skills) != 0 {
		t.Fatalf("expected empty skills slice, got %#v", rec.Skills)
	}
	if rec.WorkExperience == nil || rec.EducationList == nil {
		t.Fatalf("expected empty sub-record slices")
	}
	if rec.Status != "New" {
		t.Fatalf("expected canonicalized status New, got %q", rec.Status)
	}
}

func TestNormalize_KeepsUnknownStatusVerbatim(t *testing.T) {
	rec := Normalize(Raw{ID: uuid.New(), Status: " Withdrawn "})
	if rec.Status != "Withdrawn" {
		t.Fatalf("expected verbatim trimmed status, got %q", rec.Status)
	}
}

func TestNormalize_LastActivityDefaultsToDateApplied(t *testing.T) {
	applied := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := Normalize(Raw{ID: uuid.New(), CreatedAt: applied})
	if !rec.LastActivity.Equal(applied) {
		t.Fatalf("expected last activity %v, got %v", applied, rec.LastActivity)
	}
}

func TestMatchScore(t *testing.T) {
	cases := []struct {
		name      string
		applicant []string
		required  []string
		want      int
	}{
		{"no requirements", []string{"Go"}, nil, 0},
		{"full overlap", []string{"Go", "SQL"}, []string{"go", "sql"}, 100},
		{"half overlap", []string{"Go"}, []string{"Go", "Kubernetes"}, 50},
		{"no overlap", []string{"CSS"}, []string{"Go"}, 0},
		{"duplicate applicant skills count once", []string{"Go", "go", "GO"}, []string{"Go", "SQL"}, 50},
	}
	for _, c := range cases {
		if got := MatchScore(c.applicant, c.required); got != c.want {
			t.Fatalf("%s: MatchScore=%d, want %d", c.name, got, c.want)
		}
	}
}
