package usecase

import (
	"context"
	"log"
	"time"

	"hire-flow/internal/dispatch"
	"hire-flow/internal/domain/application"
	"hire-flow/internal/notify"
	"hire-flow/internal/repository"

	"github.com/google/uuid"
)

const (
	msgSelectAtLeastOne = "Select at least one applicant"
	msgStatusModified   = "Application state modified successfully"
	msgStatusFailed     = "Failed to modify application state"
	msgInvitesSent      = "Interview invites sent"
	msgInvitesFailed    = "Failed to send interview invites"

	inviteWorkers = 4
)

type InviteInput struct {
	Message     string
	ScheduledAt *time.Time
}

// BulkActionUsecase coordinates actions over the current selection: validate
// non-empty, guard against a concurrent run, mutate, and only on success
// clear the selection and invalidate cached lists. On failure the selection
// is preserved so the caller can retry.
type BulkActionUsecase interface {
	ChangeStatus(ctx context.Context, employerID, jobID uuid.UUID, status string) (int64, error)
	SendInvites(ctx context.Context, employerID, jobID uuid.UUID, in InviteInput) (int, error)
}

type BulkAction struct {
	apps       repository.ApplicationRepository
	jobs       repository.JobRepository
	invites    repository.InviteRepository
	selections SelectionStore
	cache      Cache
	notifier   notify.Center
	logger     *log.Logger
}

func NewBulkActionUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	invites repository.InviteRepository,
	selections SelectionStore,
	cache Cache,
	notifier notify.Center,
	logger *log.Logger,
) *BulkAction {
	return &BulkAction{
		apps:       apps,
		jobs:       jobs,
		invites:    invites,
		selections: selections,
		cache:      cache,
		notifier:   notifier,
		logger:     logger,
	}
}

func (u *BulkAction) ChangeStatus(ctx context.Context, employerID, jobID uuid.UUID, rawStatus string) (int64, error) {
	if employerID == uuid.Nil || jobID == uuid.Nil {
		return 0, ErrInvalidInput
	}
	status, ok := application.ParseStatus(rawStatus)
	if !ok {
		return 0, ErrInvalidStatus
	}

	if err := u.authorize(ctx, employerID, jobID); err != nil {
		return 0, err
	}

	entries, err := u.loadSelection(ctx, employerID, jobID)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		u.warn(ctx, employerID, jobID, msgSelectAtLeastOne)
		return 0, ErrEmptySelection
	}

	release, err := u.acquireActionLock(ctx, employerID, jobID)
	if err != nil {
		return 0, err
	}
	defer release()

	affected, err := u.apps.BulkUpdateStatus(ctx, jobID, string(status), entries)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[BulkAction] status update failed | job=%s err=%v", jobID, err)
		}
		u.fail(ctx, employerID, jobID, msgStatusFailed)
		return 0, ErrInternal
	}

	u.finishMutation(ctx, employerID, jobID)
	u.success(ctx, employerID, jobID, msgStatusModified)
	return affected, nil
}

// SendInvites hands every selected application to the invite dispatcher. The
// per-applicant writes fan out over a bounded worker pool; the selection is
// cleared only when every invite was accepted.
func (u *BulkAction) SendInvites(ctx context.Context, employerID, jobID uuid.UUID, in InviteInput) (int, error) {
	if employerID == uuid.Nil || jobID == uuid.Nil {
		return 0, ErrInvalidInput
	}
	if err := u.authorize(ctx, employerID, jobID); err != nil {
		return 0, err
	}

	entries, err := u.loadSelection(ctx, employerID, jobID)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		u.warn(ctx, employerID, jobID, msgSelectAtLeastOne)
		return 0, ErrEmptySelection
	}

	release, err := u.acquireActionLock(ctx, employerID, jobID)
	if err != nil {
		return 0, err
	}
	defer release()

	pool := dispatch.NewWorkerPool(inviteWorkers, len(entries))
	results := pool.Run(ctx)
	for _, e := range entries {
		entry := e
		pool.Submit(func(taskCtx context.Context) error {
			return u.invites.Create(taskCtx, repository.InterviewInvite{
				ID:            uuid.New(),
				ApplicationID: entry.ApplicationID,
				JobID:         jobID,
				UserID:        entry.UserID,
				Message:       in.Message,
				ScheduledAt:   in.ScheduledAt,
			})
		})
	}
	pool.Close()

	sent := 0
	failed := 0
	for r := range results {
		if r.Err != nil {
			failed++
			if u.logger != nil {
				u.logger.Printf("[BulkAction] invite failed | job=%s err=%v", jobID, r.Err)
			}
			continue
		}
		sent++
	}

	if failed > 0 {
		u.fail(ctx, employerID, jobID, msgInvitesFailed)
		return sent, ErrInternal
	}

	u.finishMutation(ctx, employerID, jobID)
	u.success(ctx, employerID, jobID, msgInvitesSent)
	return sent, nil
}

func (u *BulkAction) authorize(ctx context.Context, employerID, jobID uuid.UUID) error {
	owned, err := u.jobs.IsOwnedBy(ctx, jobID, employerID)
	if err != nil {
		return ErrInternal
	}
	if !owned {
		return ErrForbidden
	}
	return nil
}

func (u *BulkAction) loadSelection(ctx context.Context, employerID, jobID uuid.UUID) ([]application.SelectionEntry, error) {
	entries, err := u.selections.Load(ctx, employerID, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return entries, nil
}

// acquireActionLock enforces one bulk action in flight per employer+job.
// Without Redis the lock degrades to a no-op, matching the cache policy.
func (u *BulkAction) acquireActionLock(ctx context.Context, employerID, jobID uuid.UUID) (func(), error) {
	if u.cache == nil {
		return func() {}, nil
	}
	key := BulkActionLockKey(employerID, jobID)
	ok, err := u.cache.SetIfNotExists(ctx, key, "1", 30*time.Second)
	if err != nil {
		return func() {}, nil
	}
	if !ok {
		return nil, ErrActionInFlight
	}
	return func() { _ = u.cache.Delete(context.Background(), key) }, nil
}

// finishMutation clears the selection and drops the job's cached list pages.
// Runs only after the mutation succeeded.
func (u *BulkAction) finishMutation(ctx context.Context, employerID, jobID uuid.UUID) {
	if err := u.selections.Clear(ctx, employerID, jobID); err != nil && u.logger != nil {
		u.logger.Printf("[BulkAction] selection clear failed | job=%s err=%v", jobID, err)
	}
	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, ApplicantListInvalidationPattern(jobID))
	}
}

func (u *BulkAction) warn(ctx context.Context, employerID, jobID uuid.UUID, msg string) {
	u.push(ctx, notify.LevelWarning, employerID, jobID, msg)
}

func (u *BulkAction) success(ctx context.Context, employerID, jobID uuid.UUID, msg string) {
	u.push(ctx, notify.LevelSuccess, employerID, jobID, msg)
}

func (u *BulkAction) fail(ctx context.Context, employerID, jobID uuid.UUID, msg string) {
	u.push(ctx, notify.LevelError, employerID, jobID, msg)
}

func (u *BulkAction) push(ctx context.Context, level notify.Level, employerID, jobID uuid.UUID, msg string) {
	if u.notifier == nil {
		return
	}
	u.notifier.Notify(ctx, notify.Notification{
		Level:      level,
		Message:    msg,
		EmployerID: employerID,
		JobID:      jobID,
	})
}
