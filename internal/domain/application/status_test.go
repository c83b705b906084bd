package application

import "testing"

func TestParseStatus_CaseInsensitive(t *testing.T) {
	for _, raw := range []string{"reviewing", "REVIEWING", "Reviewing"} {
		s, ok := ParseStatus(raw)
		if !ok {
			t.Fatalf("expected %q to parse", raw)
		}
		if s != StatusReviewing {
			t.Fatalf("expected Reviewing, got %s", s)
		}
	}

	if _, ok := ParseStatus("under review"); ok {
		t.Fatalf("expected non-canonical value to fail exact parse")
	}
}

func TestLegacyBucket_FirstMatchWins(t *testing.T) {
	cases := []struct {
		raw    string
		want   Status
		wantOK bool
	}{
		{"new", StatusNew, true},
		{"Under Review", StatusReviewing, true},
		{"shortlisted for round 2", StatusShortlisted, true},
		{"phone interview scheduled", StatusInterview, true},
		{"offer extended", StatusOffered, true},
		{"rejected by panel", StatusRejected, true},
		{"withdrawn", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := LegacyBucket(c.raw)
		if ok != c.wantOK {
			t.Fatalf("LegacyBucket(%q) ok=%v, want %v", c.raw, ok, c.wantOK)
		}
		if got != c.want {
			t.Fatalf("LegacyBucket(%q)=%s, want %s", c.raw, got, c.want)
		}
	}
}

func TestLegacyBucket_NewRequiresExactMatch(t *testing.T) {
	// "renewed contract" must not land in the New bucket.
	if s, ok := LegacyBucket("renewed contract"); ok {
		t.Fatalf("expected no bucket, got %s", s)
	}
}

func TestBucket_PrefersExactParse(t *testing.T) {
	s, ok := Bucket("Interview")
	if !ok || s != StatusInterview {
		t.Fatalf("expected Interview, got %s ok=%v", s, ok)
	}
}
