// internal/service/activity.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/dangerclosesec/redline/internal/audit"
	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/dangerclosesec/redline/internal/lifecycle"
	"github.com/dangerclosesec/redline/internal/model"
	"github.com/dangerclosesec/redline/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// maxCascadeAttempts bounds retries when concurrent closures of sibling
// activities collide on the parent engagement row.
const maxCascadeAttempts = 4

type ActivityService struct {
	repo           repository.ActivityRepositoryIface
	engagementRepo repository.EngagementRepositoryIface
	engagementSvc  *EngagementService
	clock          lifecycle.Clock
	recorder       audit.Recorder
	validate       *validator.Validate
}

func NewActivityService(
	repo repository.ActivityRepositoryIface,
	engagementRepo repository.EngagementRepositoryIface,
	engagementSvc *EngagementService,
	clock lifecycle.Clock,
	recorder audit.Recorder,
) *ActivityService {
	return &ActivityService{
		repo:           repo,
		engagementRepo: engagementRepo,
		engagementSvc:  engagementSvc,
		clock:          clock,
		recorder:       recorder,
		validate:       validator.New(),
	}
}

type CreateActivityInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (s *ActivityService) Create(ctx context.Context, engagementID uuid.UUID, input CreateActivityInput) (*model.Activity, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.engagementRepo.FindByID(ctx, engagementID); err != nil {
		return nil, err
	}

	activity := &model.Activity{
		EngagementID: engagementID,
		Name:         input.Name,
		Description:  input.Description,
		Status:       lifecycle.StatusPending,
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *ActivityService) Get(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ActivityService) ListByEngagement(ctx context.Context, engagementID uuid.UUID) ([]*model.Activity, error) {
	if _, err := s.engagementRepo.FindByID(ctx, engagementID); err != nil {
		return nil, err
	}
	return s.repo.FindByEngagement(ctx, engagementID)
}

type UpdateActivityInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (s *ActivityService) Update(ctx context.Context, id uuid.UUID, input UpdateActivityInput) (*model.Activity, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activity.Name = input.Name
	activity.Description = input.Description

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// statusOutcome carries what one SetStatus transaction did, so auditing and
// notification happen only after the commit.
type statusOutcome struct {
	activity       *model.Activity
	activityFrom   lifecycle.Status
	changed        bool
	engagement     *model.Engagement
	engagementFrom lifecycle.Status
	at             time.Time
}

// SetStatus transitions the activity and cascades to the parent engagement:
// opening an activity opens a not-yet-open engagement, and closing the last
// non-closed activity closes the engagement. The child transition and the
// cascade commit as one transaction; serialization conflicts on the shared
// engagement row are retried with exponential backoff.
func (s *ActivityService) SetStatus(ctx context.Context, id uuid.UUID, next lifecycle.Status) (*model.Activity, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, next)
	}

	operation := func() (*statusOutcome, error) {
		out, err := s.applyStatus(ctx, id, next)
		if err != nil {
			if errors.Is(err, domain.ErrConcurrentModification) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return out, nil
	}

	out, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(maxCascadeAttempts),
	)
	if err != nil {
		return nil, err
	}

	if out.changed && s.recorder != nil {
		s.recorder.RecordStatusChange(ctx, "activity", out.activity.ID, out.activityFrom, next, false, out.at)
	}

	if out.engagement != nil {
		if s.recorder != nil {
			s.recorder.RecordStatusChange(ctx, "engagement", out.engagement.ID, out.engagementFrom, out.engagement.Status, true, out.at)
		}
		if out.engagement.IsClosed() && s.engagementSvc != nil {
			s.engagementSvc.notifyClosed(ctx, out.engagement)
		}
	}

	return out.activity, nil
}

// applyStatus runs one attempt of the transition plus cascade inside a single
// transaction.
func (s *ActivityService) applyStatus(ctx context.Context, id uuid.UUID, next lifecycle.Status) (*statusOutcome, error) {
	var out statusOutcome

	err := s.repo.InTransaction(ctx, func(activities repository.ActivityRepositoryIface, engagements repository.EngagementRepositoryIface) error {
		activity, err := activities.FindByID(ctx, id)
		if err != nil {
			return err
		}

		out.activity = activity
		out.activityFrom = activity.Status

		now := s.clock.Now()
		out.at = now

		changed, err := lifecycle.Apply(activity, next, now)
		if err != nil {
			return err
		}
		out.changed = changed
		if !changed {
			return nil
		}

		if err := activities.Update(ctx, activity); err != nil {
			return err
		}

		return s.cascade(ctx, activities, engagements, activity, next, now, &out)
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// cascade propagates an activity transition upward. Opening bubbles up
// immediately; closing bubbles up only when no sibling is left unfinished,
// which is vacuously true for an engagement's sole activity. A broken parent
// link aborts the whole transaction; nothing partial is ever written.
func (s *ActivityService) cascade(
	ctx context.Context,
	activities repository.ActivityRepositoryIface,
	engagements repository.EngagementRepositoryIface,
	activity *model.Activity,
	next lifecycle.Status,
	now time.Time,
	out *statusOutcome,
) error {
	engagement, err := engagements.FindByID(ctx, activity.EngagementID)
	if err != nil {
		return err
	}

	switch next {
	case lifecycle.StatusOpen:
		if engagement.IsOpen() {
			return nil
		}

	case lifecycle.StatusClosed:
		if engagement.IsClosed() {
			return nil
		}

		siblings, err := activities.FindByEngagement(ctx, engagement.ID)
		if err != nil {
			return err
		}
		for _, sibling := range siblings {
			if sibling.ID == activity.ID {
				// The triggering activity was updated earlier in this
				// transaction; its new status already counts as closed.
				continue
			}
			if !sibling.IsClosed() {
				return nil
			}
		}

	default:
		// Re-entering pending never propagates.
		return nil
	}

	out.engagementFrom = engagement.Status

	if _, err := lifecycle.Apply(engagement, next, now); err != nil {
		return err
	}

	if err := engagements.Update(ctx, engagement); err != nil {
		return err
	}

	out.engagement = engagement
	return nil
}
