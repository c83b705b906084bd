package dto

import (
	"time"

	"hire-flow/internal/domain/applicant"
	"hire-flow/internal/domain/application"

	"github.com/google/uuid"
)

type ExperienceResponse struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type EducationResponse struct {
	Degree    string `json:"degree"`
	School    string `json:"school"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type ApplicantResponse struct {
	ApplicationID uuid.UUID `json:"application_id"`
	UserID        uuid.UUID `json:"user_id"`

	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profile_image,omitempty"`
	Location     string `json:"location"`

	Skills         []string             `json:"skills"`
	WorkExperience []ExperienceResponse `json:"work_experience"`
	EducationList  []EducationResponse  `json:"education_list"`

	Status      string `json:"status"`
	CoverLetter string `json:"cover_letter,omitempty"`
	ResumeURL   string `json:"resume_url,omitempty"`

	DateApplied  string `json:"date_applied"`
	LastActivity string `json:"last_activity"`

	MatchScore int `json:"match_score"`
}

type JobDetailsResponse struct {
	JobID          uuid.UUID `json:"job_id"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	DeliveryMode   string    `json:"delivery_mode"`
	Salary         string    `json:"salary"`
	PostedDate     string    `json:"posted_date"`
	NoOfApplicants int       `json:"no_of_applicants"`
}

type StatusCountsResponse struct {
	All       int            `json:"all"`
	ByStatus  map[string]int `json:"by_status"`
	Unmatched int            `json:"unmatched,omitempty"`
}

type ApplicantListResponse struct {
	Applicants []ApplicantResponse          `json:"applicants"`
	Page       int                          `json:"page"`
	TotalPages int                          `json:"total_pages"`
	Total      int                          `json:"total"`
	Counts     StatusCountsResponse         `json:"counts"`
	Job        JobDetailsResponse           `json:"job"`
	Selected   []application.SelectionEntry `json:"selected"`
}

func NewApplicantResponse(rec application.Record) ApplicantResponse {
	out := ApplicantResponse{
		ApplicationID: rec.ID,
		UserID:        rec.UserID,

		Name:         rec.Name,
		Email:        rec.Email,
		Phone:        rec.Phone,
		ProfileImage: rec.ProfileImage,
		Location:     rec.Location,

		Skills: rec.Skills,

		Status:      rec.Status,
		CoverLetter: rec.CoverLetter,
		ResumeURL:   rec.ResumeURL,

		DateApplied:  formatDate(rec.DateApplied),
		LastActivity: formatDate(rec.LastActivity),

		MatchScore: rec.MatchScore,
	}

	out.WorkExperience = make([]ExperienceResponse, 0, len(rec.WorkExperience))
	for _, e := range rec.WorkExperience {
		out.WorkExperience = append(out.WorkExperience, ExperienceResponse{
			Title:     e.Title,
			Company:   e.Company,
			StartDate: formatDatePtr(e.StartDate),
			EndDate:   formatDatePtr(e.EndDate),
		})
	}

	out.EducationList = make([]EducationResponse, 0, len(rec.EducationList))
	for _, e := range rec.EducationList {
		out.EducationList = append(out.EducationList, EducationResponse{
			Degree:    e.Degree,
			School:    e.School,
			StartDate: formatDatePtr(e.StartDate),
			EndDate:   formatDatePtr(e.EndDate),
		})
	}

	if out.Skills == nil {
		out.Skills = []string{}
	}

	return out
}

func NewJobDetailsResponse(d application.JobDetails) JobDetailsResponse {
	return JobDetailsResponse{
		JobID:          d.ID,
		Title:          d.Title,
		Status:         d.Status,
		DeliveryMode:   d.DeliveryMode,
		Salary:         d.Salary,
		PostedDate:     formatDate(d.CreatedAt),
		NoOfApplicants: d.NoOfApplicants,
	}
}

func NewStatusCountsResponse(c applicant.StatusCounts) StatusCountsResponse {
	out := StatusCountsResponse{
		All:       c.All,
		ByStatus:  make(map[string]int, len(c.ByStatus)),
		Unmatched: c.Unmatched,
	}
	for s, n := range c.ByStatus {
		out.ByStatus[string(s)] = n
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
