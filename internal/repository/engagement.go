// internal/repository/engagement.go
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

type EngagementRepositoryIface interface {
	Create(ctx context.Context, engagement *model.Engagement) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Engagement, error)
	FindByApplication(ctx context.Context, appID uuid.UUID) ([]*model.Engagement, error)
	Update(ctx context.Context, engagement *model.Engagement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EngagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

func (r *EngagementRepository) Create(ctx context.Context, engagement *model.Engagement) error {
	if err := r.db.WithContext(ctx).Create(engagement).Error; err != nil {
		return fmt.Errorf("creating engagement: %w", err)
	}
	return nil
}

func (r *EngagementRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Engagement, error) {
	var engagement model.Engagement
	if err := r.db.WithContext(ctx).First(&engagement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEngagementNotFound
		}
		return nil, fmt.Errorf("finding engagement: %w", err)
	}
	return &engagement, nil
}

func (r *EngagementRepository) FindByApplication(ctx context.Context, appID uuid.UUID) ([]*model.Engagement, error) {
	var engagements []*model.Engagement
	if err := r.db.WithContext(ctx).
		Where("application_id = ?", appID).
		Order("start_date").
		Find(&engagements).Error; err != nil {
		return nil, fmt.Errorf("finding application engagements: %w", err)
	}
	return engagements, nil
}

func (r *EngagementRepository) Update(ctx context.Context, engagement *model.Engagement) error {
	if err := r.db.WithContext(ctx).Save(engagement).Error; err != nil {
		return fmt.Errorf("updating engagement: %w", translateConflict(err))
	}
	return nil
}

// Delete removes an engagement and its activities.
func (r *EngagementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("engagement_id = ?", id).Delete(&model.Activity{}).Error; err != nil {
			return fmt.Errorf("deleting activities: %w", err)
		}
		if err := tx.Delete(&model.Engagement{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting engagement: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
