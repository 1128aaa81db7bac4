// internal/service/catalog.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/redline/internal/model"
	"github.com/dangerclosesec/redline/internal/repository"
	"github.com/google/uuid"
)

const catalogCacheKey = "catalog:data_elements"

// CatalogService serves the data element catalog. The catalog is static
// reference data, so full listings are held behind the TTL cache.
type CatalogService struct {
	repo  repository.DataElementRepositoryIface
	cache *CacheService
}

func NewCatalogService(repo repository.DataElementRepositoryIface, cache *CacheService) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

// Elements returns the full catalog.
func (s *CatalogService) Elements(ctx context.Context) ([]model.DataElement, error) {
	if s.cache == nil {
		return s.repo.FindAll(ctx)
	}

	var elements []model.DataElement
	err := s.cache.GetOrSet(ctx, catalogCacheKey, &elements, func() (interface{}, error) {
		return s.repo.FindAll(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	return elements, nil
}

// ElementsByID resolves catalog entries for a selection. Unknown IDs are an
// error, not a silent omission.
func (s *CatalogService) ElementsByID(ctx context.Context, ids []uuid.UUID) ([]model.DataElement, error) {
	return s.repo.FindByIDs(ctx, ids)
}
