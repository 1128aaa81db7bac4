// internal/repository/data_element.go
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

type DataElementRepositoryIface interface {
	FindAll(ctx context.Context) ([]model.DataElement, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.DataElement, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.DataElement, error)
}

type DataElementRepository struct {
	db *gorm.DB
}

func NewDataElementRepository(db *gorm.DB) *DataElementRepository {
	return &DataElementRepository{db: db}
}

func (r *DataElementRepository) FindAll(ctx context.Context) ([]model.DataElement, error) {
	var elements []model.DataElement
	if err := r.db.WithContext(ctx).Order("category, name").Find(&elements).Error; err != nil {
		return nil, fmt.Errorf("finding data elements: %w", err)
	}
	return elements, nil
}

func (r *DataElementRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DataElement, error) {
	var element model.DataElement
	if err := r.db.WithContext(ctx).First(&element, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDataElementNotFound
		}
		return nil, fmt.Errorf("finding data element: %w", err)
	}
	return &element, nil
}

// FindByIDs resolves a set of catalog IDs. Any unknown ID fails the whole
// lookup; selections never silently shrink.
func (r *DataElementRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.DataElement, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var elements []model.DataElement
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&elements).Error; err != nil {
		return nil, fmt.Errorf("finding data elements: %w", err)
	}

	if len(elements) != len(ids) {
		return nil, domain.ErrDataElementNotFound
	}

	return elements, nil
}
