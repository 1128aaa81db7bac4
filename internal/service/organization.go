// internal/service/organization.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/redline/internal/model"
	"github.com/dangerclosesec/redline/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrganizationService struct {
	repo     repository.OrganizationRepositoryIface
	validate *validator.Validate
}

func NewOrganizationService(repo repository.OrganizationRepositoryIface) *OrganizationService {
	return &OrganizationService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateOrganizationInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org := &model.Organization{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

func (s *OrganizationService) Get(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrganizationService) List(ctx context.Context) ([]*model.Organization, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrganizationService) ListPaginated(ctx context.Context, offset, limit int) ([]*model.Organization, int64, error) {
	return s.repo.FindAllPaginated(ctx, offset, limit)
}

type UpdateOrganizationInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (s *OrganizationService) Update(ctx context.Context, id uuid.UUID, input UpdateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	org.Name = input.Name
	org.Description = input.Description

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
