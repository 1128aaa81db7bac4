// internal/service/application.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/dangerclosesec/redline/internal/model"
	"github.com/dangerclosesec/redline/internal/repository"
	"github.com/dangerclosesec/redline/internal/scoring"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ApplicationService struct {
	repo     repository.ApplicationRepositoryIface
	orgRepo  repository.OrganizationRepositoryIface
	catalog  *CatalogService
	validate *validator.Validate
}

func NewApplicationService(
	repo repository.ApplicationRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	catalog *CatalogService,
) *ApplicationService {
	return &ApplicationService{
		repo:     repo,
		orgRepo:  orgRepo,
		catalog:  catalog,
		validate: validator.New(),
	}
}

type CreateApplicationInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"omitempty,url"`
}

func (s *ApplicationService) Create(ctx context.Context, orgID uuid.UUID, input CreateApplicationInput) (*model.Application, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, err
	}

	app := &model.Application{
		OrganizationID: orgID,
		Name:           input.Name,
		Description:    input.Description,
		URL:            input.URL,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApplicationService) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Application, error) {
	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, err
	}
	return s.repo.FindByOrganization(ctx, orgID)
}

type UpdateApplicationInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"omitempty,url"`
}

func (s *ApplicationService) Update(ctx context.Context, id uuid.UUID, input UpdateApplicationInput) (*model.Application, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	app.Name = input.Name
	app.Description = input.Description
	app.URL = input.URL

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SetDataElements replaces the application's selected data elements with the
// given catalog entries.
func (s *ApplicationService) SetDataElements(ctx context.Context, id uuid.UUID, elementIDs []uuid.UUID) (*model.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	elements, err := s.catalog.ElementsByID(ctx, elementIDs)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceDataElements(ctx, app, elements); err != nil {
		return nil, err
	}

	app.DataElements = elements
	return app, nil
}

// Classification scores the application and reports its effective tier.
func (s *ApplicationService) Classification(ctx context.Context, id uuid.UUID) (*scoring.Classification, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c := scoring.Evaluate(app)
	return &c, nil
}

// SetOverride asserts a manual classification tier. The justification is
// mandatory; the computed score is untouched.
func (s *ApplicationService) SetOverride(ctx context.Context, id uuid.UUID, level model.ClassificationLevel, reason string) (*model.Application, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidClassification, level)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrOverrideReasonRequired
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	app.OverrideLevel = &level
	app.OverrideReason = reason

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// ClearOverride removes a manual classification, restoring the computed tier.
func (s *ApplicationService) ClearOverride(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	app.OverrideLevel = nil
	app.OverrideReason = ""

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}
