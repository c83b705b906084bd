package usecase

import (
	"context"
	"errors"
	"log"

	"hire-flow/internal/domain/application"
	"hire-flow/internal/repository"

	"github.com/google/uuid"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationStatusUsecase is the single-application status change, reached
// from an applicant's detail view. It shares nothing with the bulk path: no
// selection involved, one row, its own endpoint and payload shape.
type ApplicationStatusUsecase interface {
	UpdateStatus(ctx context.Context, employerID, applicationID uuid.UUID, status string) (application.Status, error)
}

type ApplicationStatus struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	cache  Cache
	logger *log.Logger
}

func NewApplicationStatusUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	cache Cache,
	logger *log.Logger,
) *ApplicationStatus {
	return &ApplicationStatus{apps: apps, jobs: jobs, cache: cache, logger: logger}
}

func (u *ApplicationStatus) UpdateStatus(ctx context.Context, employerID, applicationID uuid.UUID, rawStatus string) (application.Status, error) {
	if employerID == uuid.Nil || applicationID == uuid.Nil {
		return "", ErrInvalidInput
	}
	status, ok := application.ParseStatus(rawStatus)
	if !ok {
		return "", ErrInvalidStatus
	}

	jobID, err := u.apps.GetJobID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return "", ErrApplicationNotFound
		}
		return "", ErrInternal
	}

	owned, err := u.jobs.IsOwnedBy(ctx, jobID, employerID)
	if err != nil {
		return "", ErrInternal
	}
	if !owned {
		return "", ErrForbidden
	}

	if _, err := u.apps.UpdateStatus(ctx, applicationID, string(status)); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return "", ErrApplicationNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[ApplicationStatus] update failed | application=%s err=%v", applicationID, err)
		}
		return "", ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, ApplicantListInvalidationPattern(jobID))
	}

	return status, nil
}
