// internal/service/engagement.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/redline/internal/audit"
	"github.com/dangerclosesec/redline/internal/config"
	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/dangerclosesec/redline/internal/email"
	"github.com/dangerclosesec/redline/internal/email/mailer"
	"github.com/dangerclosesec/redline/internal/lifecycle"
	"github.com/dangerclosesec/redline/internal/model"
	"github.com/dangerclosesec/redline/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type EngagementService struct {
	repo     repository.EngagementRepositoryIface
	appRepo  repository.ApplicationRepositoryIface
	clock    lifecycle.Clock
	recorder audit.Recorder
	email    *email.Service
	config   *config.Config
	validate *validator.Validate
}

func NewEngagementService(
	repo repository.EngagementRepositoryIface,
	appRepo repository.ApplicationRepositoryIface,
	clock lifecycle.Clock,
	recorder audit.Recorder,
	emailService *email.Service,
	config *config.Config,
) *EngagementService {
	return &EngagementService{
		repo:     repo,
		appRepo:  appRepo,
		clock:    clock,
		recorder: recorder,
		email:    emailService,
		config:   config,
		validate: validator.New(),
	}
}

type CreateEngagementInput struct {
	Name      string    `json:"name" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
}

func (s *EngagementService) Create(ctx context.Context, appID uuid.UUID, input CreateEngagementInput) (*model.Engagement, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.appRepo.FindByID(ctx, appID); err != nil {
		return nil, err
	}

	engagement := &model.Engagement{
		ApplicationID: appID,
		Name:          input.Name,
		Status:        lifecycle.StatusPending,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
	}

	if err := s.repo.Create(ctx, engagement); err != nil {
		return nil, err
	}

	return engagement, nil
}

func (s *EngagementService) Get(ctx context.Context, id uuid.UUID) (*model.Engagement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EngagementService) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*model.Engagement, error) {
	if _, err := s.appRepo.FindByID(ctx, appID); err != nil {
		return nil, err
	}
	return s.repo.FindByApplication(ctx, appID)
}

type UpdateEngagementInput struct {
	Name      string    `json:"name" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
}

// Update edits the engagement's schedule fields. Status is only mutated
// through SetStatus, so derived timestamps cannot drift.
func (s *EngagementService) Update(ctx context.Context, id uuid.UUID, input UpdateEngagementInput) (*model.Engagement, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	engagement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	engagement.Name = input.Name
	engagement.StartDate = input.StartDate
	engagement.EndDate = input.EndDate

	if err := s.repo.Update(ctx, engagement); err != nil {
		return nil, err
	}

	return engagement, nil
}

func (s *EngagementService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SetStatus applies a direct status edit to the engagement. Direct edits
// never propagate to the engagement's activities: force-closing or reopening
// an engagement leaves each activity's own record untouched.
func (s *EngagementService) SetStatus(ctx context.Context, id uuid.UUID, next lifecycle.Status) (*model.Engagement, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, next)
	}

	engagement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := engagement.Status
	now := s.clock.Now()

	changed, err := lifecycle.Apply(engagement, next, now)
	if err != nil {
		return nil, err
	}
	if !changed {
		return engagement, nil
	}

	if err := s.repo.Update(ctx, engagement); err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.RecordStatusChange(ctx, "engagement", engagement.ID, from, next, false, now)
	}

	if next == lifecycle.StatusClosed {
		s.notifyClosed(ctx, engagement)
	}

	return engagement, nil
}

// notifyClosed emails the configured mailbox about a finished engagement.
// Best effort: failures are logged, never returned.
func (s *EngagementService) notifyClosed(ctx context.Context, engagement *model.Engagement) {
	if s.email == nil || s.config == nil || s.config.Notify.EngagementClosedTo == "" {
		return
	}

	appName := ""
	if app, err := s.appRepo.FindByID(ctx, engagement.ApplicationID); err == nil {
		appName = app.Name
	}

	data := mailer.EngagementClosedTemplateData{
		EngagementName:  engagement.Name,
		ApplicationName: appName,
	}
	if engagement.ClosedAt != nil {
		data.ClosedAt = engagement.ClosedAt.Format(time.RFC3339)
	}
	if engagement.Duration != nil {
		data.Duration = engagement.Duration.String()
	}

	if err := mailer.SendEngagementClosedEmail(s.email, s.config.Notify.EngagementClosedTo, data); err != nil {
		slog.Warn("sending engagement closed email", "engagement_id", engagement.ID, "error", err)
	}
}
