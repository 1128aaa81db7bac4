// internal/repository/activity.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/dangerclosesec/redline/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepositoryIface interface {
	Create(ctx context.Context, activity *model.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	FindByEngagement(ctx context.Context, engagementID uuid.UUID) ([]*model.Activity, error)
	Update(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error

	// InTransaction runs fn against transaction-scoped activity and
	// engagement repositories, so a status change and its cascade commit or
	// roll back as one unit. Serialization failures surface as
	// domain.ErrConcurrentModification.
	InTransaction(ctx context.Context, fn func(activities ActivityRepositoryIface, engagements EngagementRepositoryIface) error) error
}

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("creating activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.WithContext(ctx).
		Preload("Engagement").
		First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("finding activity: %w", err)
	}
	return &activity, nil
}

func (r *ActivityRepository) FindByEngagement(ctx context.Context, engagementID uuid.UUID) ([]*model.Activity, error) {
	var activities []*model.Activity
	if err := r.db.WithContext(ctx).
		Where("engagement_id = ?", engagementID).
		Order("created_at").
		Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("finding engagement activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity *model.Activity) error {
	if err := r.db.WithContext(ctx).Save(activity).Error; err != nil {
		return fmt.Errorf("updating activity: %w", translateConflict(err))
	}
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Activity{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) InTransaction(ctx context.Context, fn func(activities ActivityRepositoryIface, engagements EngagementRepositoryIface) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewActivityRepository(tx), NewEngagementRepository(tx))
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	return translateConflict(err)
}
