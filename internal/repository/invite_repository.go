package repository

import (
	"context"
	"time"

	"hire-flow/internal/database"

	"github.com/google/uuid"
)

type InterviewInvite struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	JobID         uuid.UUID
	UserID        uuid.UUID
	Message       string
	ScheduledAt   *time.Time
	CreatedAt     time.Time
}

type InviteRepository interface {
	Create(ctx context.Context, inv InterviewInvite) error
	CountByJob(ctx context.Context, jobID uuid.UUID) (int, error)
}

type PostgresInviteRepository struct {
	db database.DB
}

func NewPostgresInviteRepository(db database.DB) *PostgresInviteRepository {
	return &PostgresInviteRepository{db: db}
}

func (r *PostgresInviteRepository) Create(ctx context.Context, inv InterviewInvite) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO interview_invites (id, application_id, job_id, user_id, message, scheduled_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		inv.ID, inv.ApplicationID, inv.JobID, inv.UserID, inv.Message, inv.ScheduledAt,
	)
	return err
}

func (r *PostgresInviteRepository) CountByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM interview_invites WHERE job_id = $1`, jobID)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
