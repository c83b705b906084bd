package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hire-flow/internal/database"
	"hire-flow/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
)

type ApplicationRepository interface {
	// ListByJob returns every application for the job, with the applicant's
	// profile and the job's required skills embedded. Replace-only: callers
	// treat each result as a full snapshot of the list.
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Raw, error)

	// GetJobID resolves the job an application belongs to, so ownership can
	// be checked before any mutation.
	GetJobID(ctx context.Context, applicationID uuid.UUID) (uuid.UUID, error)

	// UpdateStatus is the single-application status change. Distinct contract
	// from BulkUpdateStatus; the two are not unified on purpose. Returns the
	// owning job so callers can invalidate that job's cached lists.
	UpdateStatus(ctx context.Context, applicationID uuid.UUID, status string) (uuid.UUID, error)

	// BulkUpdateStatus applies one status to every selected application of
	// the job in a single statement and reports how many rows changed.
	BulkUpdateStatus(ctx context.Context, jobID uuid.UUID, status string, entries []application.SelectionEntry) (int64, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Raw, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.user_id,
		        COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.phone, ''),
		        COALESCE(u.profile_image, ''), COALESCE(u.location, ''),
		        COALESCE(u.skills, '{}'),
		        COALESCE(a.status, ''), COALESCE(a.cover_letter, ''), COALESCE(a.resume_url, ''),
		        a.created_at, a.updated_at,
		        COALESCE(j.required_skills, '{}')
		 FROM applications a
		 JOIN users u ON u.id = a.user_id
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.job_id = $1
		 ORDER BY a.created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Raw, 0)
	userIDs := make([]uuid.UUID, 0)
	seenUsers := make(map[uuid.UUID]struct{})

	for rows.Next() {
		var raw application.Raw
		if err := rows.Scan(
			&raw.ID, &raw.UserID,
			&raw.Name, &raw.Email, &raw.Phone,
			&raw.ProfileImage, &raw.Location,
			&raw.Skills,
			&raw.Status, &raw.CoverLetter, &raw.ResumeURL,
			&raw.CreatedAt, &raw.UpdatedAt,
			&raw.JobRequiredSkills,
		); err != nil {
			return nil, err
		}
		out = append(out, raw)
		if _, ok := seenUsers[raw.UserID]; !ok {
			seenUsers[raw.UserID] = struct{}{}
			userIDs = append(userIDs, raw.UserID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	experience, err := r.workExperienceByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	education, err := r.educationByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	for i := range out {
		out[i].WorkExperience = experience[out[i].UserID]
		out[i].EducationList = education[out[i].UserID]
	}

	return out, nil
}

func (r *PostgresApplicationRepository) workExperienceByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]application.Experience, error) {
	out := make(map[uuid.UUID][]application.Experience, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT user_id, COALESCE(title, ''), COALESCE(company, ''), start_date, end_date
		 FROM work_experiences
		 WHERE user_id = ANY($1)
		 ORDER BY start_date DESC NULLS LAST`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID uuid.UUID
		var exp application.Experience
		var start, end *time.Time
		if err := rows.Scan(&userID, &exp.Title, &exp.Company, &start, &end); err != nil {
			return nil, err
		}
		exp.StartDate = start
		exp.EndDate = end
		out[userID] = append(out[userID], exp)
	}
	return out, rows.Err()
}

func (r *PostgresApplicationRepository) educationByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]application.Education, error) {
	out := make(map[uuid.UUID][]application.Education, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT user_id, COALESCE(degree, ''), COALESCE(school, ''), start_date, end_date
		 FROM education
		 WHERE user_id = ANY($1)
		 ORDER BY start_date DESC NULLS LAST`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID uuid.UUID
		var edu application.Education
		var start, end *time.Time
		if err := rows.Scan(&userID, &edu.Degree, &edu.School, &start, &end); err != nil {
			return nil, err
		}
		edu.StartDate = start
		edu.EndDate = end
		out[userID] = append(out[userID], edu)
	}
	return out, rows.Err()
}

func (r *PostgresApplicationRepository) GetJobID(ctx context.Context, applicationID uuid.UUID) (uuid.UUID, error) {
	var jobID uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT job_id FROM applications WHERE id = $1`, applicationID)
	if err := row.Scan(&jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrApplicationNotFound
		}
		return uuid.Nil, err
	}
	return jobID, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, applicationID uuid.UUID, status string) (uuid.UUID, error) {
	var jobID uuid.UUID
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $1, updated_at = now() WHERE id = $2 RETURNING job_id`,
		status, applicationID,
	)
	if err := row.Scan(&jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrApplicationNotFound
		}
		return uuid.Nil, err
	}
	return jobID, nil
}

func (r *PostgresApplicationRepository) BulkUpdateStatus(ctx context.Context, jobID uuid.UUID, status string, entries []application.SelectionEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if e.ApplicationID == uuid.Nil {
			continue
		}
		ids = append(ids, e.ApplicationID)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	return r.db.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = now() WHERE job_id = $2 AND id = ANY($3)`,
		status, jobID, ids,
	)
}
