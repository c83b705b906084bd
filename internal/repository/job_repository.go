package repository

import (
	"context"
	"database/sql"
	"errors"

	"hire-flow/internal/database"
	"hire-flow/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	GetDetails(ctx context.Context, jobID uuid.UUID) (application.JobDetails, error)
	IsOwnedBy(ctx context.Context, jobID, employerID uuid.UUID) (bool, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) GetDetails(ctx context.Context, jobID uuid.UUID) (application.JobDetails, error) {
	var d application.JobDetails
	row := r.db.QueryRow(ctx,
		`SELECT j.id, COALESCE(j.title, ''), COALESCE(j.status, ''), COALESCE(j.delivery_mode, ''),
		        COALESCE(j.salary, ''), j.created_at,
		        (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)
		 FROM jobs j
		 WHERE j.id = $1`,
		jobID,
	)
	err := row.Scan(&d.ID, &d.Title, &d.Status, &d.DeliveryMode, &d.Salary, &d.CreatedAt, &d.NoOfApplicants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return application.JobDetails{}, ErrJobNotFound
		}
		return application.JobDetails{}, err
	}
	return d, nil
}

func (r *PostgresJobRepository) IsOwnedBy(ctx context.Context, jobID, employerID uuid.UUID) (bool, error) {
	var owned bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1 AND employer_id = $2)`,
		jobID, employerID,
	)
	if err := row.Scan(&owned); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return owned, nil
}
