package application

import "strings"

// Status is the closed set of application pipeline states. Stored values that
// predate the closed set are mapped through the legacy keyword shim below.
type Status string

const (
	StatusNew         Status = "New"
	StatusReviewing   Status = "Reviewing"
	StatusShortlisted Status = "Shortlisted"
	StatusInterview   Status = "Interview"
	StatusOffered     Status = "Offered"
	StatusRejected    Status = "Rejected"
)

// Statuses lists every canonical status in pipeline order.
var Statuses = []Status{
	StatusNew,
	StatusReviewing,
	StatusShortlisted,
	StatusInterview,
	StatusOffered,
	StatusRejected,
}

// ParseStatus matches a raw status string against the canonical set,
// case-insensitively.
func ParseStatus(raw string) (Status, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range Statuses {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// legacyBuckets preserves the keyword matching older records were classified
// with: lower-cased status, tested in order, first match wins. Kept only as a
// compatibility shim for stored values that do not parse exactly.
var legacyBuckets = []struct {
	keyword string
	exact   bool
	status  Status
}{
	{keyword: "new", exact: true, status: StatusNew},
	{keyword: "review", status: StatusReviewing},
	{keyword: "shortlist", status: StatusShortlisted},
	{keyword: "interview", status: StatusInterview},
	{keyword: "offer", status: StatusOffered},
	{keyword: "reject", status: StatusRejected},
}

// LegacyBucket classifies a raw status string by keyword. Returns false when
// the value matches no bucket; such records are counted only in the total.
func LegacyBucket(raw string) (Status, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	for _, b := range legacyBuckets {
		if b.exact {
			if s == b.keyword {
				return b.status, true
			}
			continue
		}
		if strings.Contains(s, b.keyword) {
			return b.status, true
		}
	}
	return "", false
}

// Bucket resolves a raw status to its canonical bucket: exact parse first,
// legacy keyword shim second.
func Bucket(raw string) (Status, bool) {
	if s, ok := ParseStatus(raw); ok {
		return s, true
	}
	return LegacyBucket(raw)
}

// IsValid reports whether s is one of the canonical statuses.
func (s Status) IsValid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}
