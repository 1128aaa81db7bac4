// internal/repository/application.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/dangerclosesec/redline/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepositoryIface interface {
	Create(ctx context.Context, app *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Application, error)
	Update(ctx context.Context, app *model.Application) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceDataElements(ctx context.Context, app *model.Application, elements []model.DataElement) error
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return fmt.Errorf("creating application: %w", err)
	}
	return nil
}

// FindByID loads an application with its selected data elements, so the
// caller can score it without a second round trip.
func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	if err := r.db.WithContext(ctx).
		Preload("DataElements").
		First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("finding application: %w", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Application, error) {
	var apps []*model.Application
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("finding organization applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, app *model.Application) error {
	if err := r.db.WithContext(ctx).Save(app).Error; err != nil {
		return fmt.Errorf("updating application: %w", err)
	}
	return nil
}

// Delete removes the application and cascades to its engagements and their
// activities.
func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteApplicationTree(tx, id)
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// ReplaceDataElements swaps the application's element selection for the given
// set.
func (r *ApplicationRepository) ReplaceDataElements(ctx context.Context, app *model.Application, elements []model.DataElement) error {
	if err := r.db.WithContext(ctx).
		Model(app).
		Association("DataElements").
		Replace(elements); err != nil {
		return fmt.Errorf("replacing data elements: %w", err)
	}
	return nil
}

// deleteApplicationTree deletes one application and its dependents inside the
// caller's transaction. Shared with the organization cascade.
func deleteApplicationTree(tx *gorm.DB, appID uuid.UUID) error {
	var engagementIDs []uuid.UUID
	if err := tx.Model(&model.Engagement{}).
		Where("application_id = ?", appID).
		Pluck("id", &engagementIDs).Error; err != nil {
		return fmt.Errorf("listing engagements: %w", err)
	}

	if len(engagementIDs) > 0 {
		if err := tx.Where("engagement_id IN ?", engagementIDs).
			Delete(&model.Activity{}).Error; err != nil {
			return fmt.Errorf("deleting activities: %w", err)
		}
		if err := tx.Delete(&model.Engagement{}, "id IN ?", engagementIDs).Error; err != nil {
			return fmt.Errorf("deleting engagements: %w", err)
		}
	}

	if err := tx.Exec("DELETE FROM application_data_elements WHERE application_id = ?", appID).Error; err != nil {
		return fmt.Errorf("deleting data element selections: %w", err)
	}

	if err := tx.Delete(&model.Application{}, "id = ?", appID).Error; err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}

	return nil
}
