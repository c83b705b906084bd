package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Display placeholders substituted for missing optional fields. Missing data
// is never an error in this pipeline.
const (
	PlaceholderName     = "Unknown applicant"
	PlaceholderEmail    = "Email not provided"
	PlaceholderPhone    = "Phone not provided"
	PlaceholderLocation = "Location not provided"
)

// Raw is an application record as it arrives from storage or the application
// intake API, before display defaults are applied. Optional fields may be
// empty or nil.
type Raw struct {
	ID     uuid.UUID
	UserID uuid.UUID

	Name         string
	Email        string
	Phone        string
	ProfileImage string
	Location     string

	Skills         []string
	WorkExperience []Experience
	EducationList  []Education

	Status      string
	CoverLetter string
	ResumeURL   string

	CreatedAt time.Time
	UpdatedAt time.Time

	JobRequiredSkills []string
}

// Normalize maps a raw record into the flat view model: placeholders for
// missing display fields, canonicalized status, deterministic match score.
func Normalize(raw Raw) Record {
	rec := Record{
		ID:     raw.ID,
		UserID: raw.UserID,

		Name:         defaultString(raw.Name, PlaceholderName),
		Email:        defaultString(raw.Email, PlaceholderEmail),
		Phone:        defaultString(raw.Phone, PlaceholderPhone),
		ProfileImage: strings.TrimSpace(raw.ProfileImage),
		Location:     defaultString(raw.Location, PlaceholderLocation),

		Skills:         cleanStrings(raw.Skills),
		WorkExperience: raw.WorkExperience,
		EducationList:  raw.EducationList,

		CoverLetter: raw.CoverLetter,
		ResumeURL:   strings.TrimSpace(raw.ResumeURL),

		DateApplied:  raw.CreatedAt,
		LastActivity: raw.UpdatedAt,
	}

	if rec.WorkExperience == nil {
		rec.WorkExperience = []Experience{}
	}
	if rec.EducationList == nil {
		rec.EducationList = []Education{}
	}
	if rec.LastActivity.IsZero() {
		rec.LastActivity = rec.DateApplied
	}

	if s, ok := ParseStatus(raw.Status); ok {
		rec.Status = string(s)
	} else {
		rec.Status = strings.TrimSpace(raw.Status)
	}

	rec.MatchScore = MatchScore(rec.Skills, raw.JobRequiredSkills)

	return rec
}

// NormalizeAll normalizes a fetch batch in order.
func NormalizeAll(raws []Raw) []Record {
	out := make([]Record, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r))
	}
	return out
}

func defaultString(s, placeholder string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return placeholder
	}
	return s
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
