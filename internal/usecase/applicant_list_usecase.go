package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"hire-flow/internal/domain/applicant"
	"hire-flow/internal/domain/application"
	"hire-flow/internal/repository"

	"github.com/google/uuid"
)

type ApplicantListParams struct {
	EmployerID uuid.UUID
	JobID      uuid.UUID

	Search    string
	Status    string
	SortBy    applicant.SortField
	SortOrder applicant.SortOrder
	Page      int
}

// ApplicantListResult is everything the applicants page renders: the page
// slice, pager state, per-status counts over the unfiltered set, the job
// header, and the caller's current selection.
type ApplicantListResult struct {
	Records    []application.Record `json:"records"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"total_pages"`
	Total      int                  `json:"total"`

	Counts applicant.StatusCounts `json:"counts"`
	Job    application.JobDetails `json:"job"`

	Selected []application.SelectionEntry `json:"selected"`
}

type ApplicantListUsecase interface {
	ListApplicants(ctx context.Context, params ApplicantListParams) (ApplicantListResult, error)
}

type ApplicantList struct {
	apps       repository.ApplicationRepository
	jobs       repository.JobRepository
	selections SelectionStore
	cache      Cache
	logger     *log.Logger
}

func NewApplicantListUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	selections SelectionStore,
	cache Cache,
	logger *log.Logger,
) *ApplicantList {
	return &ApplicantList{apps: apps, jobs: jobs, selections: selections, cache: cache, logger: logger}
}

// cachedList is the cacheable portion of a result: everything except the
// caller's selection, which is per-employer state and always loaded fresh.
type cachedList struct {
	Records    []application.Record   `json:"records"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"total_pages"`
	Total      int                    `json:"total"`
	Counts     applicant.StatusCounts `json:"counts"`
	Job        application.JobDetails `json:"job"`
}

func (u *ApplicantList) ListApplicants(ctx context.Context, params ApplicantListParams) (ApplicantListResult, error) {
	if params.JobID == uuid.Nil || params.EmployerID == uuid.Nil {
		return ApplicantListResult{}, ErrInvalidInput
	}
	if params.Page < 0 {
		return ApplicantListResult{}, ErrInvalidInput
	}
	if params.Page == 0 {
		params.Page = 1
	}

	owned, err := u.jobs.IsOwnedBy(ctx, params.JobID, params.EmployerID)
	if err != nil {
		return ApplicantListResult{}, ErrInternal
	}
	if !owned {
		return ApplicantListResult{}, ErrForbidden
	}

	cacheKey := ApplicantListCacheKey(params)
	lockKey := ApplicantListLockKey(cacheKey)

	if u.cache != nil {
		var cached cachedList
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Applicants] Cache HIT: %s", cacheKey)
			}
			return u.withSelection(ctx, params, cached), nil
		}
		if u.logger != nil {
			u.logger.Printf("[Applicants] Cache MISS: %s", cacheKey)
		}
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			// Another instance is computing this page; give it a moment and
			// retry the cache before doing the work twice.
			time.Sleep(300 * time.Millisecond)
			var cached cachedList
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				return u.withSelection(ctx, params, cached), nil
			}
		}
	}

	out, err := u.build(ctx, params)
	if err != nil {
		return ApplicantListResult{}, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}

	return u.withSelection(ctx, params, out), nil
}

// build runs the full pipeline: fetch -> normalize -> counts over the whole
// set -> filter/sort -> paginate.
func (u *ApplicantList) build(ctx context.Context, params ApplicantListParams) (cachedList, error) {
	job, err := u.jobs.GetDetails(ctx, params.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return cachedList{}, ErrJobNotFound
		}
		return cachedList{}, ErrInternal
	}

	raws, err := u.apps.ListByJob(ctx, params.JobID)
	if err != nil {
		return cachedList{}, ErrInternal
	}

	records := application.NormalizeAll(raws)
	counts := applicant.CountByStatus(records)

	filtered := applicant.FilterSort(records, applicant.FilterState{
		SearchTerm: params.Search,
		Status:     params.Status,
		SortBy:     params.SortBy,
		SortOrder:  params.SortOrder,
		Page:       params.Page,
	})

	page := applicant.Paginate(filtered, params.Page, applicant.DefaultPageSize)

	return cachedList{
		Records:    page.Records,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Total:      page.Total,
		Counts:     counts,
		Job:        job,
	}, nil
}

func (u *ApplicantList) withSelection(ctx context.Context, params ApplicantListParams, c cachedList) ApplicantListResult {
	out := ApplicantListResult{
		Records:    c.Records,
		Page:       c.Page,
		TotalPages: c.TotalPages,
		Total:      c.Total,
		Counts:     c.Counts,
		Job:        c.Job,
		Selected:   []application.SelectionEntry{},
	}

	if u.selections == nil {
		return out
	}
	entries, err := u.selections.Load(ctx, params.EmployerID, params.JobID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Applicants] selection load failed: %v", err)
		}
		return out
	}
	if entries != nil {
		out.Selected = entries
	}
	return out
}
