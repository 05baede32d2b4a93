package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	catalogRepo "easyislanders/database/repository/catalog"
	"easyislanders/models"

	"github.com/go-redis/redis/v8"
)

// CatalogService resolves and searches marketplace listings.
type CatalogService interface {
	GetItem(ctx context.Context, id string) (*models.CatalogItem, error)
	Search(ctx context.Context, q models.SearchQuery) ([]models.CatalogItem, error)
}

// DefaultCatalogService implements CatalogService. When a cache client is
// wired, GetItem snapshots are cached under "catalog:item:<id>".
type DefaultCatalogService struct {
	Repo     catalogRepo.CatalogRepository
	Cache    *redis.Client
	CacheTTL time.Duration
}

// IsNotFound reports whether err means the catalog item does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, catalogRepo.ErrNotFound)
}

// GetItem resolves an item id to its canonical record.
func (s *DefaultCatalogService) GetItem(ctx context.Context, id string) (*models.CatalogItem, error) {
	cacheKey := "catalog:item:" + id

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var item models.CatalogItem
			if err := json.Unmarshal([]byte(data), &item); err == nil {
				return &item, nil
			}
		}
	}

	item, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		ttl := s.CacheTTL
		if ttl <= 0 {
			ttl = 10 * time.Minute
		}
		if data, err := json.Marshal(item); err == nil {
			s.Cache.Set(ctx, cacheKey, data, ttl)
		}
	}

	return item, nil
}

// Search returns the items satisfying every supplied condition, sorted when
// a sort key is requested. Full linear scan; catalog sizes are in the
// hundreds.
func (s *DefaultCatalogService) Search(ctx context.Context, q models.SearchQuery) ([]models.CatalogItem, error) {
	items, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("Search: failed to load catalog: %w", err)
	}

	matched := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if MatchesQuery(item, q) {
			matched = append(matched, item)
		}
	}

	SortItems(matched, q.SortBy)
	return matched, nil
}
