package application

import (
	"time"

	"github.com/google/uuid"
)

// Record is the normalized view of one candidate's submission against one job
// posting. ID identifies the application; UserID identifies the person.
type Record struct {
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

	// Status holds the canonical status when the stored value parses, else
	// the stored value verbatim.
	Status string

	CoverLetter string
	ResumeURL   string

	DateApplied  time.Time
	LastActivity time.Time

	MatchScore int
}

type Experience struct {
	Title     string
	Company   string
	StartDate *time.Time
	EndDate   *time.Time
}

type Education struct {
	Degree    string
	School    string
	StartDate *time.Time
	EndDate   *time.Time
}

// JobDetails is the read-only job header shown above the applicant list.
type JobDetails struct {
	ID             uuid.UUID
	Title          string
	Status         string
	DeliveryMode   string
	Salary         string
	CreatedAt      time.Time
	NoOfApplicants int
}

// SelectionEntry identifies one selected application. Selection is keyed by
// ApplicationID; UserID rides along for display and for the bulk wire payload.
type SelectionEntry struct {
	ApplicationID uuid.UUID `json:"application_id"`
	UserID        uuid.UUID `json:"user_id"`
}
